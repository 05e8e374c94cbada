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

package model

import (
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const UserMinPasswordLength = 8

var emailRegex = regexp.MustCompile(`.+@.+\..+`)

// User as stored. Password holds the bcrypt hash and is never serialized.
type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
	Version   int                `json:"-" bson:"__v"`
}

// UserCredentials is the body of both registration and login.
type UserCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *UserCredentials) Normalize() {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
}

func (c UserCredentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email,
			validation.Required.Error("Email is required"),
			validation.Match(emailRegex).Error("Please fill a valid email address"),
		),
		validation.Field(&c.Password,
			validation.Required.Error("Password is required"),
			validation.RuneLength(UserMinPasswordLength, 0).
				Error("Password must be longer than 8 characters"),
		),
	)
}
