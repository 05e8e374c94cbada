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

package apperror

import (
	"net/http"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestInspect(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		err error

		kind        Kind
		code        int
		message     string
		operational bool
	}{
		"validation, two fields": {
			err: NewValidationError(
				FieldError{Field: "title", Message: "title required"},
				FieldError{Field: "dueDate", Message: "dueDate must be future"},
			),
			kind:        KindValidation,
			code:        http.StatusBadRequest,
			message:     "Invalid input data; title required. dueDate must be future",
			operational: true,
		},
		"validation, ozzo errors ordered by field": {
			err: validation.Errors{
				"title":    errors.New("Title is required"),
				"priority": errors.New("Priority cannot exceed 5"),
			},
			kind:        KindValidation,
			code:        http.StatusBadRequest,
			message:     "Invalid input data; Priority cannot exceed 5. Title is required",
			operational: true,
		},
		"validation, wrapped": {
			err: errors.Wrap(NewValidationError(
				FieldError{Field: "email", Message: "Please fill a valid email address"},
			), "failed to create user"),
			kind:        KindValidation,
			code:        http.StatusBadRequest,
			message:     "Invalid input data; Please fill a valid email address",
			operational: true,
		},
		"cast": {
			err:         &CastError{Path: "_id", Value: "not-an-id"},
			kind:        KindCast,
			code:        http.StatusBadRequest,
			message:     "Invalid _id: not-an-id.",
			operational: true,
		},
		"duplicate key, structured": {
			err: &DuplicateKeyError{
				KeyValue: map[string]interface{}{"email": "jane@example.com"},
			},
			kind:        KindDuplicateKey,
			code:        http.StatusBadRequest,
			message:     `Duplicate field value: "jane@example.com". Please use another value!`,
			operational: true,
		},
		"duplicate key, no payload": {
			err:         &DuplicateKeyError{Message: "E11000"},
			kind:        KindDuplicateKey,
			code:        http.StatusBadRequest,
			message:     "Duplicate field value. Please use another value!",
			operational: true,
		},
		"application": {
			err:         New(http.StatusNotFound, "No task found with that ID"),
			kind:        KindApplication,
			code:        http.StatusNotFound,
			message:     "No task found with that ID",
			operational: true,
		},
		"application, wrapped": {
			err:         errors.Wrap(New(http.StatusUnauthorized, "Incorrect email or password"), "login"),
			kind:        KindApplication,
			code:        http.StatusUnauthorized,
			message:     "Incorrect email or password",
			operational: true,
		},
		"application, bogus status code": {
			err:         New(200, "odd"),
			kind:        KindApplication,
			code:        http.StatusInternalServerError,
			message:     "odd",
			operational: true,
		},
		"cast inside application error chain wins": {
			err: &CastError{
				Path:  "_id",
				Value: "x",
				Err:   New(http.StatusNotFound, "not found"),
			},
			kind:        KindCast,
			code:        http.StatusBadRequest,
			message:     "Invalid _id: x.",
			operational: true,
		},
		"unknown": {
			err:     errors.New("connection reset by peer"),
			kind:    KindUnknown,
			code:    http.StatusInternalServerError,
			message: MsgSomethingWentWrong,
		},
		"nil": {
			err:     nil,
			kind:    KindUnknown,
			code:    http.StatusInternalServerError,
			message: MsgSomethingWentWrong,
		},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			f := Inspect(tc.err)
			assert.Equal(t, tc.kind, f.Kind)
			assert.Equal(t, tc.code, f.StatusCode)
			assert.Equal(t, tc.message, f.Message)
			assert.Equal(t, tc.operational, f.Operational)
		})
	}
}

func TestClassifyProduction(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		err  error
		resp Response
	}{
		"unknown never leaks": {
			err: errors.New("dial tcp 10.0.0.3:27017: i/o timeout"),
			resp: Response{
				StatusCode: http.StatusInternalServerError,
				Body: Body{
					Status:  "error",
					Message: "Something went wrong!",
				},
			},
		},
		"operational 404": {
			err: New(http.StatusNotFound, "No task found with that ID"),
			resp: Response{
				StatusCode: http.StatusNotFound,
				Body: Body{
					Status:  "fail",
					Message: "No task found with that ID",
				},
			},
		},
		"operational 503": {
			err: New(http.StatusServiceUnavailable, "Database unavailable"),
			resp: Response{
				StatusCode: http.StatusServiceUnavailable,
				Body: Body{
					Status:  "error",
					Message: "Database unavailable",
				},
			},
		},
		"validation": {
			err: NewValidationError(
				FieldError{Field: "title", Message: "title required"},
				FieldError{Field: "dueDate", Message: "dueDate must be future"},
			),
			resp: Response{
				StatusCode: http.StatusBadRequest,
				Body: Body{
					Status:  "fail",
					Message: "Invalid input data; title required. dueDate must be future",
				},
			},
		},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			resp := Classify(tc.err, Production)
			assert.Equal(t, tc.resp, resp)
		})
	}
}

func TestClassifyDevelopment(t *testing.T) {
	t.Parallel()

	err := errors.New("dial tcp 10.0.0.3:27017: i/o timeout")
	resp := Classify(err, Development)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "error", resp.Body.Status)
	assert.Equal(t, err.Error(), resp.Body.Message)
	assert.Contains(t, resp.Body.Stack, "TestClassifyDevelopment")

	cast := errors.Wrap(&CastError{Path: "_id", Value: "abc"}, "failed to fetch task")
	resp = Classify(cast, Development)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "fail", resp.Body.Status)
	assert.Equal(t, "Invalid _id: abc.", resp.Body.Message)
	assert.Equal(t, cast.Error(), resp.Body.Error)
	assert.Empty(t, resp.Body.Stack)

	app := New(http.StatusNotFound, "No category found with that ID")
	resp = Classify(app, Development)
	assert.Equal(t, Body{Status: "fail", Message: "No category found with that ID"}, resp.Body)
}

func TestClassifyIdempotent(t *testing.T) {
	t.Parallel()

	errs := []error{
		errors.New("boom"),
		New(http.StatusConflict, "conflict"),
		&DuplicateKeyError{KeyValue: map[string]interface{}{"name": "home"}},
		validation.Errors{"title": errors.New("Title is required")},
	}
	for _, err := range errs {
		for _, mode := range []Mode{Production, Development} {
			first := Classify(err, mode)
			second := Classify(err, mode)
			assert.Equal(t, first, second)
		}
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Development, ParseMode("dev"))
	assert.Equal(t, Development, ParseMode("Development"))
	assert.Equal(t, Production, ParseMode("prod"))
	assert.Equal(t, Production, ParseMode(""))
	assert.Equal(t, Production, ParseMode("staging"))
}

func TestStatusFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fail", StatusFor(400))
	assert.Equal(t, "fail", StatusFor(499))
	assert.Equal(t, "error", StatusFor(500))
	assert.Equal(t, "error", StatusFor(503))
}
