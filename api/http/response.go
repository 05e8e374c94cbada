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
	"strconv"
	"strings"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/mendersoftware/go-lib-micro/log"

	"github.com/Kennedy01-crypto/taskflow-express-api/apperror"
	"github.com/Kennedy01-crypto/taskflow-express-api/store"
	"github.com/Kennedy01-crypto/taskflow-express-api/utils"
)

const hdrTotalCount = "X-Total-Count"

// SuccessResponse is the envelope of every successful non-listing reply.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Results *int        `json:"results,omitempty"`
	Data    interface{} `json:"data"`
}

// ListResponse is the envelope of the listing endpoints.
type ListResponse struct {
	Success    bool                        `json:"success"`
	Results    int                         `json:"results"`
	Total      int                         `json:"total"`
	Pagination map[string]interface{}      `json:"pagination"`
	Data       map[string][]store.Document `json:"data"`
}

// StatusResponse is the envelope of the authentication endpoints.
type StatusResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Token   string      `json:"token,omitempty"`
	Data    interface{} `json:"data"`
}

// NewListResponse wraps one page of docs. The total count key of the
// pagination block is named after the collection, e.g. totalTasks.
func NewListResponse(collection string, docs []store.Document, p store.Pagination) *ListResponse {
	if docs == nil {
		docs = []store.Document{}
	}
	return &ListResponse{
		Success: true,
		Results: len(docs),
		Total:   p.Total,
		Pagination: map[string]interface{}{
			totalKey(collection): p.Total,
			"totalPages":         p.TotalPages,
			"currentPage":        p.CurrentPage,
			"limit":              p.Limit,
			"nextPage":           p.NextPage,
			"prevPage":           p.PrevPage,
			"firstPage":          p.FirstPage,
			"lastPage":           p.LastPage,
		},
		Data: map[string][]store.Document{collection: docs},
	}
}

func totalKey(collection string) string {
	if collection == "" {
		return "total"
	}
	return "total" + strings.ToUpper(collection[:1]) + collection[1:]
}

func success(w rest.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	_ = w.WriteJson(SuccessResponse{Success: true, Data: data})
}

// writeListing writes the listing envelope along with the X-Total-Count
// and Link headers.
func writeListing(
	w rest.ResponseWriter,
	r *rest.Request,
	collection string,
	docs []store.Document,
	total int,
	page store.PageWindow,
) {
	p := page.Paginate(total)

	links := utils.MakePageLinkHdrs(r, page.Page, page.Limit, p.LastPage, p.NextPage != nil)
	for _, l := range links {
		w.Header().Add("Link", l)
	}
	// the response writer will ensure the header name is in Kebab-Pascal-Case
	w.Header().Add(hdrTotalCount, strconv.Itoa(total))
	_ = w.WriteJson(NewListResponse(collection, docs, p))
}

// ErrorResponder turns every handler failure into the client response and
// logs it.
type ErrorResponder struct {
	Mode apperror.Mode
}

func (er ErrorResponder) Respond(w rest.ResponseWriter, r *rest.Request, err error) {
	l := log.FromContext(r.Context())

	f := apperror.Inspect(err)
	if f.Operational {
		l.Warnf("%s failure: %v", f.Kind, err)
	} else {
		l.Errorf("unexpected failure: %+v", err)
	}

	resp := apperror.Classify(err, er.Mode)
	w.WriteHeader(resp.StatusCode)
	if werr := w.WriteJson(resp.Body); werr != nil {
		l.Errorf("failed to write error response: %v", werr)
	}
}

// NotFound replaces the router's default reply for unknown routes.
func (er ErrorResponder) NotFound(w rest.ResponseWriter, r *rest.Request) {
	er.Respond(w, r, apperror.Newf(http.StatusNotFound,
		"Can't find %s on this server!", r.URL.RequestURI()))
}
