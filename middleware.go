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
package main

import (
	"github.com/ant0ine/go-json-rest/rest"
	"github.com/mendersoftware/go-lib-micro/accesslog"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/mendersoftware/go-lib-micro/requestid"
	"github.com/mendersoftware/go-lib-micro/requestlog"
	"github.com/pkg/errors"

	api_http "github.com/Kennedy01-crypto/taskflow-express-api/api/http"
	"github.com/Kennedy01-crypto/taskflow-express-api/apperror"
	"github.com/Kennedy01-crypto/taskflow-express-api/metrics"
)

const (
	EnvProd = "prod"
	EnvDev  = "dev"
)

var (
	devResponder  = api_http.ErrorResponder{Mode: apperror.Development}
	prodResponder = api_http.ErrorResponder{Mode: apperror.Production}

	DefaultDevStack = []rest.Middleware{
		// logging
		&requestlog.RequestLogMiddleware{},
		&metrics.Middleware{},
		&accesslog.AccessLogMiddleware{Format: accesslog.SimpleLogFormat},
		&rest.TimerMiddleware{},
		&rest.RecorderMiddleware{},

		// catches the panic errors; the development responder includes
		// the stack trace
		&api_http.RecoverMiddleware{Responder: devResponder},

		// json pretty print
		&rest.JsonIndentMiddleware{},

		// verifies the request Content-Type header
		// The expected Content-Type is 'application/json'
		// if the content is non-null
		&api_http.ContentTypeCheckerMiddleware{Responder: devResponder},
		&requestid.RequestIdMiddleware{},
	}

	DefaultProdStack = []rest.Middleware{
		// logging
		&requestlog.RequestLogMiddleware{},
		&metrics.Middleware{},
		&accesslog.AccessLogMiddleware{Format: accesslog.SimpleLogFormat},
		&rest.TimerMiddleware{},
		&rest.RecorderMiddleware{},

		// catches the panic errors
		&api_http.RecoverMiddleware{Responder: prodResponder},

		// verifies the request Content-Type header
		// The expected Content-Type is 'application/json'
		// if the content is non-null
		&api_http.ContentTypeCheckerMiddleware{Responder: prodResponder},
		&requestid.RequestIdMiddleware{},
	}

	middlewareMap = map[string][]rest.Middleware{
		EnvProd: DefaultProdStack,
		EnvDev:  DefaultDevStack,
	}
)

// ErrorMode selects how much failure detail reaches clients for the given
// middleware stack.
func ErrorMode(mwtype string) apperror.Mode {
	return apperror.ParseMode(mwtype)
}

func SetupMiddleware(api *rest.Api, mwtype string) error {
	l := log.New(log.Ctx{})

	l.Infof("setting up %s middleware", mwtype)

	stack, ok := middlewareMap[mwtype]
	if !ok {
		return errors.Errorf("unknown middleware stack type %q", mwtype)
	}
	api.Use(stack...)

	return nil
}
