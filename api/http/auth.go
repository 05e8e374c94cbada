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
	"github.com/ant0ine/go-json-rest/rest"
	"github.com/mendersoftware/go-lib-micro/identity"
	"github.com/mendersoftware/go-lib-micro/log"

	"github.com/Kennedy01-crypto/taskflow-express-api/app"
	"github.com/Kennedy01-crypto/taskflow-express-api/utils"
)

const hdrAuthorization = "Authorization"

// authenticate resolves the bearer token of r, if any, and stores the
// identity in the request context. When ok is false the error response has
// already been written.
func (h *taskflowHandlers) authenticate(
	w rest.ResponseWriter,
	r *rest.Request,
) (present, ok bool) {
	header := r.Header.Get(hdrAuthorization)
	if header == "" {
		return false, true
	}
	token, found := utils.BearerToken(header)
	if !found {
		h.errors.Respond(w, r, app.ErrInvalidToken)
		return false, false
	}

	ctx := r.Context()
	id, err := h.app.Authenticate(ctx, token)
	if err != nil {
		h.errors.Respond(w, r, err)
		return false, false
	}

	l := log.FromContext(ctx).F(log.Ctx{"user_id": id.Subject})
	ctx = identity.WithContext(ctx, id)
	ctx = log.WithContext(ctx, l)
	r.Request = r.Request.WithContext(ctx)
	return true, true
}

// optionalUser lets anonymous requests through but rejects bad tokens.
func (h *taskflowHandlers) optionalUser(handler rest.HandlerFunc) rest.HandlerFunc {
	return func(w rest.ResponseWriter, r *rest.Request) {
		if _, ok := h.authenticate(w, r); !ok {
			return
		}
		handler(w, r)
	}
}

func (h *taskflowHandlers) requireUser(handler rest.HandlerFunc) rest.HandlerFunc {
	return func(w rest.ResponseWriter, r *rest.Request) {
		present, ok := h.authenticate(w, r)
		if !ok {
			return
		}
		if !present {
			h.errors.Respond(w, r, app.ErrNotLoggedIn)
			return
		}
		handler(w, r)
	}
}
