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

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/ant0ine/go-json-rest/rest/test"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func makeHandler(t *testing.T, routes ...*rest.Route) http.Handler {
	router, err := rest.MakeRouter(TagRoutes(routes)...)
	assert.NoError(t, err)

	api := rest.NewApi()
	api.Use(&Middleware{})
	api.SetApp(router)
	return api.MakeHandler()
}

func TestMiddlewareLabelsByRoute(t *testing.T) {
	h := makeHandler(t,
		rest.Get("/things/:id", func(w rest.ResponseWriter, r *rest.Request) {
			_ = w.WriteJson(map[string]string{"id": r.PathParam("id")})
		}),
		rest.Delete("/things/:id", func(w rest.ResponseWriter, r *rest.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
		rest.Post("/things", func(w rest.ResponseWriter, r *rest.Request) {
			rest.Error(w, "nope", http.StatusBadRequest)
		}),
	)

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/things/:id", "200"))
	test.RunRequest(t, h, test.MakeSimpleRequest("GET", "http://localhost/things/1", nil)).
		CodeIs(http.StatusOK)
	test.RunRequest(t, h, test.MakeSimpleRequest("GET", "http://localhost/things/2", nil)).
		CodeIs(http.StatusOK)
	assert.Equal(t, before+2,
		testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/things/:id", "200")))

	testCases := map[string]struct {
		method string
		url    string
		route  string
		status string
	}{
		"no content": {
			method: "DELETE",
			url:    "http://localhost/things/1",
			route:  "/things/:id",
			status: "204",
		},
		"client error": {
			method: "POST",
			url:    "http://localhost/things",
			route:  "/things",
			status: "400",
		},
		"no route": {
			method: "GET",
			url:    "http://localhost/elsewhere",
			route:  routeUnknown,
			status: "404",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			counter := httpRequestsTotal.WithLabelValues(tc.method, tc.route, tc.status)
			before := testutil.ToFloat64(counter)
			test.RunRequest(t, h, test.MakeSimpleRequest(tc.method, tc.url, nil))
			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}

	assert.NotZero(t, testutil.CollectAndCount(httpRequestDuration))
}

func TestMiddlewareStatusAfterJSONBody(t *testing.T) {
	h := makeHandler(t,
		rest.Get("/late", func(w rest.ResponseWriter, r *rest.Request) {
			_ = w.WriteJson(map[string]string{"state": "sent"})
			// superfluous, the body already committed a 200
			w.WriteHeader(http.StatusInternalServerError)
		}),
	)

	ok := httpRequestsTotal.WithLabelValues("GET", "/late", "200")
	failed := httpRequestsTotal.WithLabelValues("GET", "/late", "500")
	before, beforeFailed := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	test.RunRequest(t, h, test.MakeSimpleRequest("GET", "http://localhost/late", nil)).
		CodeIs(http.StatusOK)

	assert.Equal(t, before+1, testutil.ToFloat64(ok))
	assert.Equal(t, beforeFailed, testutil.ToFloat64(failed))
}

func TestNormalizeRoute(t *testing.T) {
	assert.Equal(t, routeUnknown, normalizeRoute(nil))
	assert.Equal(t, routeUnknown, normalizeRoute(""))
	assert.Equal(t, "/api/v1/tasks", normalizeRoute("/api/v1/tasks"))
}

func TestHandler(t *testing.T) {
	httpRequestsTotal.WithLabelValues("GET", "/ping", "200").Inc()

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", http.NoBody))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "taskflow_http_requests_total")
}
