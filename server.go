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
	"net/http"
	"time"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	api_http "github.com/Kennedy01-crypto/taskflow-express-api/api/http"
	"github.com/Kennedy01-crypto/taskflow-express-api/app"
	"github.com/Kennedy01-crypto/taskflow-express-api/auth"
	"github.com/Kennedy01-crypto/taskflow-express-api/metrics"
	"github.com/Kennedy01-crypto/taskflow-express-api/store"
)

const uriMetrics = "/metrics"

func SetupAPI(stacktype string) (*rest.Api, error) {
	api := rest.NewApi()
	if err := SetupMiddleware(api, stacktype); err != nil {
		return nil, errors.Wrap(err, "failed to setup middleware")
	}

	//this will override the framework's error resp to the desired one:
	// {"error": "msg"}
	// instead of:
	// {"Error": "msg"}
	rest.ErrorFieldName = "error"

	return api, nil
}

// NewHandler assembles the API served on top of db.
func NewHandler(c config.Reader, db store.DataStore) (http.Handler, error) {
	l := log.New(log.Ctx{})

	taskflow := app.NewTaskflow(db)

	if secret := c.GetString(SettingJWTSecret); secret != "" {
		lifetime := time.Duration(c.GetInt(SettingJWTExpiration)) * time.Second
		tokens, err := auth.NewTokenIssuer(secret, lifetime)
		if err != nil {
			return nil, errors.Wrap(err, "token issuer setup failed")
		}
		taskflow = taskflow.WithTokenIssuer(tokens)
	} else {
		l.Warnf("%s is not set, authentication is disabled", SettingJWTSecret)
	}

	mwtype := c.GetString(SettingMiddleware)
	taskflowapi := api_http.NewTaskflowApiHandlers(taskflow, ErrorMode(mwtype))

	api, err := SetupAPI(mwtype)
	if err != nil {
		return nil, errors.Wrap(err, "API setup failed")
	}

	apph, err := taskflowapi.GetApp()
	if err != nil {
		return nil, errors.Wrap(err, "taskflow API handlers setup failed")
	}
	api.SetApp(apph)

	mux := http.NewServeMux()
	mux.Handle(uriMetrics, metrics.Handler())
	mux.Handle("/", api.MakeHandler())

	return mux, nil
}

func RunServer(c config.Reader, db store.DataStore) error {
	l := log.New(log.Ctx{})

	handler, err := NewHandler(c, db)
	if err != nil {
		return err
	}

	addr := c.GetString(SettingListen)
	l.Printf("listening on %s", addr)

	return http.ListenAndServe(addr, handler)
}
