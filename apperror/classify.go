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
	"fmt"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"

	MsgSomethingWentWrong = "Something went wrong!"
	msgInvalidInput       = "Invalid input data"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindApplication
	KindCast
	KindValidation
	KindDuplicateKey
)

func (k Kind) String() string {
	switch k {
	case KindApplication:
		return "application"
	case KindCast:
		return "cast"
	case KindValidation:
		return "validation"
	case KindDuplicateKey:
		return "duplicate_key"
	}
	return "unknown"
}

// Mode selects how much detail reaches the client. The zero value is
// Production.
type Mode int

const (
	Production Mode = iota
	Development
)

func ParseMode(s string) Mode {
	switch strings.ToLower(s) {
	case "dev", "development":
		return Development
	}
	return Production
}

func (m Mode) String() string {
	if m == Development {
		return "development"
	}
	return "production"
}

// Failure is the classified form of an error.
type Failure struct {
	Kind        Kind
	StatusCode  int
	Message     string
	Operational bool
}

type Body struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

type Response struct {
	StatusCode int
	Body       Body
}

// Inspect classifies err into exactly one Kind. All recognised variants in
// the error chain are checked in the order application, cast, validation,
// duplicate key; the last one found determines the result.
func Inspect(err error) Failure {
	f := Failure{
		Kind:       KindUnknown,
		StatusCode: http.StatusInternalServerError,
		Message:    MsgSomethingWentWrong,
	}
	if err == nil {
		return f
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		code := appErr.StatusCode
		if code < 400 || code > 599 {
			code = http.StatusInternalServerError
		}
		f = Failure{
			Kind:        KindApplication,
			StatusCode:  code,
			Message:     appErr.Message,
			Operational: true,
		}
	}

	var castErr *CastError
	if errors.As(err, &castErr) {
		f = Failure{
			Kind:        KindCast,
			StatusCode:  http.StatusBadRequest,
			Message:     fmt.Sprintf("Invalid %s: %v.", castErr.Path, castErr.Value),
			Operational: true,
		}
	}

	var valErr *ValidationError
	var ozzoErrs validation.Errors
	if errors.As(err, &valErr) {
		f = validationFailure(valErr)
	} else if errors.As(err, &ozzoErrs) {
		f = validationFailure(FromValidation(ozzoErrs))
	}

	var dupErr *DuplicateKeyError
	if errors.As(err, &dupErr) {
		msg := "Duplicate field value. Please use another value!"
		if v, ok := dupErr.Value(); ok {
			msg = fmt.Sprintf("Duplicate field value: %q. Please use another value!",
				fmt.Sprint(v))
		}
		f = Failure{
			Kind:        KindDuplicateKey,
			StatusCode:  http.StatusBadRequest,
			Message:     msg,
			Operational: true,
		}
	}

	return f
}

func validationFailure(e *ValidationError) Failure {
	msg := msgInvalidInput
	if msgs := e.Messages(); len(msgs) > 0 {
		msg += "; " + strings.Join(msgs, ". ")
	}
	return Failure{
		Kind:        KindValidation,
		StatusCode:  http.StatusBadRequest,
		Message:     msg,
		Operational: true,
	}
}

// Classify produces the response for err. In production, non-operational
// failures collapse to a generic 500 so nothing about the internals leaks;
// in development the raw message, and for unknown failures the stack, are
// always included.
func Classify(err error, mode Mode) Response {
	f := Inspect(err)

	if mode == Development {
		body := Body{
			Status:  StatusFor(f.StatusCode),
			Message: f.Message,
		}
		if err != nil {
			raw := err.Error()
			if f.Kind == KindUnknown {
				body.Message = raw
				body.Stack = fmt.Sprintf("%+v", err)
			} else if raw != f.Message {
				body.Error = raw
			}
		}
		return Response{StatusCode: f.StatusCode, Body: body}
	}

	if !f.Operational {
		return Response{
			StatusCode: http.StatusInternalServerError,
			Body: Body{
				Status:  StatusError,
				Message: MsgSomethingWentWrong,
			},
		}
	}
	return Response{
		StatusCode: f.StatusCode,
		Body: Body{
			Status:  StatusFor(f.StatusCode),
			Message: f.Message,
		},
	}
}

func StatusFor(code int) string {
	if code >= 400 && code < 500 {
		return StatusFail
	}
	return StatusError
}
