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
	"mime"
	"net/http"
	"strings"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/pkg/errors"

	"github.com/Kennedy01-crypto/taskflow-express-api/apperror"
)

const msgBadContentType = "Bad Content-Type or charset, expected 'application/json'"

var errBadContentType = apperror.New(http.StatusUnsupportedMediaType, msgBadContentType)

// RecoverMiddleware answers panics through the error responder.
type RecoverMiddleware struct {
	Responder ErrorResponder
}

func (mw *RecoverMiddleware) MiddlewareFunc(handler rest.HandlerFunc) rest.HandlerFunc {
	return func(w rest.ResponseWriter, r *rest.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				mw.Responder.Respond(w, r, errors.Errorf("panic: %v", rec))
			}
		}()
		handler(w, r)
	}
}

// ContentTypeCheckerMiddleware rejects non-empty payloads that are not
// UTF-8 JSON.
type ContentTypeCheckerMiddleware struct {
	Responder ErrorResponder
}

func (mw *ContentTypeCheckerMiddleware) MiddlewareFunc(handler rest.HandlerFunc) rest.HandlerFunc {
	return func(w rest.ResponseWriter, r *rest.Request) {
		mediatype, params, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		charset, ok := params["charset"]
		if !ok {
			charset = "UTF-8"
		}

		// a positive ContentLength means a known, non-empty body
		if r.ContentLength > 0 &&
			!(mediatype == "application/json" && strings.ToUpper(charset) == "UTF-8") {
			mw.Responder.Respond(w, r, errBadContentType)
			return
		}
		handler(w, r)
	}
}
