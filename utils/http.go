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
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ant0ine/go-json-rest/rest"
)

const (
	PageName  = "page"
	LimitName = "limit"

	LinkTmpl = "<%s>; rel=\"%s\""
)

// MakeLink returns a Link header entry pointing at the given page of the
// current request, keeping every other query parameter.
func MakeLink(rel string, r *rest.Request, page, limit int) string {
	u := r.BaseUrl()
	if u.Scheme == "" {
		u.Scheme = "http"
	}
	u.Path = r.URL.Path

	q := url.Values{}
	for k, v := range r.URL.Query() {
		q[k] = v
	}
	q.Set(PageName, strconv.Itoa(page))
	q.Set(LimitName, strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	return fmt.Sprintf(LinkTmpl, u.String(), rel)
}

// MakePageLinkHdrs builds the first/prev/next links of a listing. lastPage
// is omitted when it is unknown (< 1).
func MakePageLinkHdrs(r *rest.Request, page, limit, lastPage int, hasNext bool) []string {
	var links []string

	links = append(links, MakeLink("first", r, 1, limit))
	if page > 1 {
		links = append(links, MakeLink("prev", r, page-1, limit))
	}
	if hasNext {
		links = append(links, MakeLink("next", r, page+1, limit))
	}
	if lastPage > 0 {
		links = append(links, MakeLink("last", r, lastPage, limit))
	}
	return links
}

// build URL using request 'r' and template, replace path params with
// elements from 'params' using lexical match as in strings.Replace()
func BuildURL(r *rest.Request, template string, params map[string]string) *url.URL {
	u := r.BaseUrl()

	path := template
	for k, v := range params {
		path = strings.Replace(path, k, v, -1)
	}
	u.Path = path

	return u
}
