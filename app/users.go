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

package app

import (
	"context"

	"github.com/mendersoftware/go-lib-micro/identity"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	"github.com/Kennedy01-crypto/taskflow-express-api/auth"
	"github.com/Kennedy01-crypto/taskflow-express-api/model"
	"github.com/Kennedy01-crypto/taskflow-express-api/store"
)

// overridden in tests
var hashPassword = auth.HashPassword

func (tf *taskflow) Register(ctx context.Context, creds model.UserCredentials) (*model.User, error) {
	creds.Normalize()
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	existing, err := tf.db.GetUserByEmail(ctx, creds.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up user")
	} else if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := hashPassword(creds.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Email:    creds.Email,
		Password: hash,
	}
	if err := tf.db.InsertUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to register user")
	}
	user.Password = ""
	return user, nil
}

// Login checks the credentials and returns a token for the user. Unknown
// email and wrong password are indistinguishable to the caller.
func (tf *taskflow) Login(ctx context.Context, creds model.UserCredentials) (string, *model.User, error) {
	if tf.tokens == nil {
		return "", nil, ErrAuthDisabled
	}
	creds.Normalize()
	if creds.Email == "" || creds.Password == "" {
		return "", nil, ErrBadCredentials
	}

	user, err := tf.db.GetUserByEmail(ctx, creds.Email)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to look up user")
	} else if user == nil {
		return "", nil, ErrBadCredentials
	}

	err = auth.ComparePassword(user.Password, creds.Password)
	if err == auth.ErrPasswordMismatch {
		log.FromContext(ctx).Warnf("failed login for user %s", user.ID.Hex())
		return "", nil, ErrBadCredentials
	} else if err != nil {
		return "", nil, err
	}

	token, err := tf.tokens.Issue(ctx, user.ID.Hex())
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to issue token")
	}
	user.Password = ""
	return token, user, nil
}

// Authenticate turns a bearer token into the identity of its user.
func (tf *taskflow) Authenticate(ctx context.Context, token string) (*identity.Identity, error) {
	if tf.tokens == nil {
		return nil, ErrAuthDisabled
	}
	claims, err := tf.tokens.Validate(ctx, token)
	switch err {
	case nil:
	case auth.ErrExpiredToken:
		return nil, ErrExpiredToken
	case auth.ErrInvalidToken:
		return nil, ErrInvalidToken
	default:
		return nil, errors.Wrap(err, "failed to validate token")
	}
	return &identity.Identity{
		Subject: claims.Subject,
		IsUser:  true,
	}, nil
}

func (tf *taskflow) ListUsers(ctx context.Context, q store.ListQuery) ([]store.Document, int, error) {
	users, total, err := tf.db.ListUsers(ctx, q)
	if err != nil {
		return nil, -1, errors.Wrap(err, "failed to fetch users")
	}
	if users == nil {
		users = []store.Document{}
	}
	return users, total, nil
}

func (tf *taskflow) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := tf.db.GetUser(ctx, id)
	if err != nil {
		return nil, notFound(err, store.ErrUserNotFound, ErrUserNotFound, "failed to fetch user")
	}
	user.Password = ""
	return user, nil
}

func (tf *taskflow) DeleteUser(ctx context.Context, id string) error {
	err := tf.db.DeleteUser(ctx, id)
	if err != nil {
		return notFound(err, store.ErrUserNotFound, ErrUserNotFound, "failed to delete user")
	}
	return nil
}
