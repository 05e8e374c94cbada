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

// Package apperror holds the failure types produced by the service and the
// classifier turning them into client facing responses.
package apperror

import (
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AppError is raised explicitly by application logic; it always carries the
// status code to respond with and is operational by construction.
type AppError struct {
	StatusCode int
	Message    string
}

func New(statusCode int, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func Newf(statusCode int, format string, args ...interface{}) *AppError {
	return New(statusCode, fmt.Sprintf(format, args...))
}

func (e *AppError) Error() string {
	return e.Message
}

type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports one or more violated field constraints.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// FromValidation converts ozzo-validation errors, ordered by field name.
func FromValidation(errs validation.Errors) *ValidationError {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]FieldError, 0, len(keys))
	for _, k := range keys {
		if errs[k] == nil {
			continue
		}
		fields = append(fields, FieldError{Field: k, Message: errs[k].Error()})
	}
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return msgs
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// CastError reports a value that could not be converted to the type the
// storage layer expects for Path.
type CastError struct {
	Path  string
	Value interface{}
	Err   error
}

func (e *CastError) Error() string {
	msg := fmt.Sprintf("cast to %s failed for value %q", e.Path, fmt.Sprint(e.Value))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CastError) Unwrap() error {
	return e.Err
}

// DuplicateKeyError reports a violated uniqueness constraint. KeyValue holds
// the conflicting field(s) when the driver reported them.
type DuplicateKeyError struct {
	KeyValue map[string]interface{}
	Message  string
}

func (e *DuplicateKeyError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("duplicate key: %v", e.KeyValue)
}

// Value returns the conflicting value: the lexically first key of KeyValue.
func (e *DuplicateKeyError) Value() (interface{}, bool) {
	if len(e.KeyValue) == 0 {
		return nil, false
	}
	keys := make([]string, 0, len(e.KeyValue))
	for k := range e.KeyValue {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return e.KeyValue[keys[0]], true
}
