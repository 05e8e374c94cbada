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
	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/pkg/errors"
)

const (
	SettingListen        = "listen"
	SettingListenDefault = ":3000"

	SettingMiddleware        = "middleware"
	SettingMiddlewareDefault = EnvProd

	SettingDb        = "mongo"
	SettingDbDefault = "mongo-taskflow:27017"

	SettingDbSSL        = "mongo_ssl"
	SettingDbSSLDefault = false

	SettingDbSSLSkipVerify        = "mongo_ssl_skipverify"
	SettingDbSSLSkipVerifyDefault = false

	SettingDbUsername = "mongo_username"
	SettingDbPassword = "mongo_password"

	SettingDbName        = "mongo_dbname"
	SettingDbNameDefault = "taskflow"

	// authentication endpoints answer 503 while unset
	SettingJWTSecret = "jwt_secret"

	SettingJWTExpiration        = "jwt_expiration_seconds"
	SettingJWTExpirationDefault = 86400
)

var (
	configDefaults = []config.Default{
		{Key: SettingListen, Value: SettingListenDefault},
		{Key: SettingMiddleware, Value: SettingMiddlewareDefault},
		{Key: SettingDb, Value: SettingDbDefault},
		{Key: SettingDbSSL, Value: SettingDbSSLDefault},
		{Key: SettingDbSSLSkipVerify, Value: SettingDbSSLSkipVerifyDefault},
		{Key: SettingDbName, Value: SettingDbNameDefault},
		{Key: SettingJWTExpiration, Value: SettingJWTExpirationDefault},
	}

	configValidators = []config.Validator{
		validateJWTExpiration,
	}
)

func validateJWTExpiration(c config.Reader) error {
	if c.GetInt(SettingJWTExpiration) <= 0 {
		return errors.Errorf("%s must be a positive number of seconds",
			SettingJWTExpiration)
	}
	return nil
}
