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

package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"
)

const DefaultTokenLifetime = 24 * time.Hour

var (
	ErrInvalidToken = errors.New("invalid authentication token")
	ErrExpiredToken = errors.New("authentication token has expired")
	ErrEmptySecret  = errors.New("jwt secret must not be empty")
)

// Claims are the validated contents of a token.
type Claims struct {
	Subject   string
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer signs and validates HS256 bearer tokens.
type TokenIssuer struct {
	key      []byte
	lifetime time.Duration
	timeFunc func() time.Time
}

func NewTokenIssuer(secret string, lifetime time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if lifetime <= 0 {
		lifetime = DefaultTokenLifetime
	}
	return &TokenIssuer{
		key:      []byte(secret),
		lifetime: lifetime,
		timeFunc: time.Now,
	}, nil
}

// Issue returns a token for subject, the stored user id.
func (i *TokenIssuer) Issue(ctx context.Context, subject string) (string, error) {
	now := i.timeFunc()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.lifetime)),
		ID:        uuid.New().String(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	log.FromContext(ctx).Debugf("issued token %s for %s", claims.ID, subject)
	return signed, nil
}

func (i *TokenIssuer) Validate(ctx context.Context, token string) (*Claims, error) {
	now := i.timeFunc()
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) {
			return i.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		log.FromContext(ctx).Debugf("token validation failed: %v", err)
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	c := &Claims{
		Subject: claims.Subject,
		ID:      claims.ID,
	}
	if claims.IssuedAt != nil {
		c.IssuedAt = claims.IssuedAt.Time
	}
	c.ExpiresAt = claims.ExpiresAt.Time
	return c, nil
}
