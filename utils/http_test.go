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

package utils

import (
	"net/http"
	"testing"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/stretchr/testify/assert"
)

func mockRequest(url string, hasScheme bool) *rest.Request {
	req, _ := http.NewRequest("GET", url, nil)

	if !hasScheme {
		req.URL.Scheme = ""
	}

	return &rest.Request{Request: req, PathParams: nil, Env: nil}
}

func TestMakeLink(t *testing.T) {
	req := mockRequest("https://localhost:8080/api/v1/tasks?status=pending&page=4", false)

	l := MakeLink("first", req, 1, 10)
	assert.Equal(t,
		"<http://localhost:8080/api/v1/tasks?limit=10&page=1&status=pending>; rel=\"first\"",
		l)
}

func TestMakePageLinkHdrs(t *testing.T) {
	testCases := map[string]struct {
		page     int
		lastPage int
		hasNext  bool
		rels     []string
	}{
		"middle page": {
			page: 2, lastPage: 3, hasNext: true,
			rels: []string{"first", "prev", "next", "last"},
		},
		"first page": {
			page: 1, lastPage: 3, hasNext: true,
			rels: []string{"first", "next", "last"},
		},
		"last page": {
			page: 3, lastPage: 3,
			rels: []string{"first", "prev", "last"},
		},
		"empty listing": {
			page: 1,
			rels: []string{"first"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			req := mockRequest("http://localhost:8080/api/v1/tasks", true)
			links := MakePageLinkHdrs(req, tc.page, 10, tc.lastPage, tc.hasNext)
			if assert.Len(t, links, len(tc.rels)) {
				for i, rel := range tc.rels {
					assert.Contains(t, links[i], "rel=\""+rel+"\"")
				}
			}
		})
	}
}

func TestBuildURL(t *testing.T) {
	req := mockRequest("http://localhost:8080/api/v1/tasks", true)
	u := BuildURL(req, "/api/v1/tasks/#id", map[string]string{"#id": "abc"})
	assert.Equal(t, "http://localhost:8080/api/v1/tasks/abc", u.String())
}

func TestContainsString(t *testing.T) {
	assert.True(t, ContainsString("b", []string{"a", "b"}))
	assert.False(t, ContainsString("c", []string{"a", "b"}))
	assert.False(t, ContainsString("a", nil))
}

func TestBearerToken(t *testing.T) {
	testCases := map[string]struct {
		header string
		token  string
		ok     bool
	}{
		"ok":           {header: "Bearer abc.def", token: "abc.def", ok: true},
		"lowercase":    {header: "bearer abc", token: "abc", ok: true},
		"empty":        {header: ""},
		"scheme only":  {header: "Bearer "},
		"basic scheme": {header: "Basic dXNlcjpwYXNz"},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			token, ok := BearerToken(tc.header)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.token, token)
		})
	}
}
