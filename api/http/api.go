// Copyright 2026 Northern.tech AS
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.

package http

import (
	"net/http"
	"sort"

	"github.com/ant0ine/go-json-rest/rest"
)

type ApiHandler interface {
	GetApp() (rest.App, error)
}

type OptionsGenerator func(methods []string) rest.HandlerFunc

// AllowHeaderOptionsGenerator answers OPTIONS with the methods supported
// by the route.
func AllowHeaderOptionsGenerator(methods []string) rest.HandlerFunc {
	return func(w rest.ResponseWriter, r *rest.Request) {
		for _, m := range methods {
			w.Header().Add("Allow", m)
		}
	}
}

func supportsMethod(method string, methods []string) bool {
	for _, m := range methods {
		if method == m {
			return true
		}
	}
	return false
}

// AutogenOptionsRoutes adds an OPTIONS route for every path that lacks one.
func AutogenOptionsRoutes(routes []*rest.Route, gen OptionsGenerator) []*rest.Route {
	methodGroups := make(map[string][]string, len(routes))
	var paths []string
	for _, route := range routes {
		if _, ok := methodGroups[route.PathExp]; !ok {
			paths = append(paths, route.PathExp)
		}
		methodGroups[route.PathExp] = append(methodGroups[route.PathExp], route.HttpMethod)
	}
	sort.Strings(paths)

	options := make([]*rest.Route, 0, len(methodGroups))
	for _, path := range paths {
		methods := methodGroups[path]
		if supportsMethod(http.MethodOptions, methods) {
			continue
		}
		methods = append(methods, http.MethodOptions)
		options = append(options, rest.Options(path, gen(methods)))
	}
	return append(routes, options...)
}
