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

const CategoryDefaultColor = "#FFFFFF"

var colorCodeRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

type Category struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	ColorCode   string             `json:"colorCode" bson:"colorCode"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
	Version     int                `json:"-" bson:"__v"`
}

type CategoryInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ColorCode   *string `json:"colorCode,omitempty"`
}

// Normalize lowercases and trims the name; names are unique in that form.
func (in *CategoryInput) Normalize() {
	if in.Name != nil {
		in.Name = strPtr(strings.ToLower(strings.TrimSpace(*in.Name)))
	}
	if in.Description != nil {
		in.Description = strPtr(strings.TrimSpace(*in.Description))
	}
	if in.ColorCode != nil {
		in.ColorCode = strPtr(strings.TrimSpace(*in.ColorCode))
	}
}

var (
	categoryNameRules = []validation.Rule{
		validation.Required.Error("Category name is required"),
	}
	categoryDescriptionRules = []validation.Rule{
		validation.RuneLength(0, 200).Error("Description cannot exceed 200 characters"),
	}
	colorCodeRules = []validation.Rule{
		validation.Match(colorCodeRegex).Error("Please provide a valid hex color code"),
	}
)

func (in CategoryInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.When(in.Name != nil, categoryNameRules...)),
		validation.Field(&in.Description, categoryDescriptionRules...),
		validation.Field(&in.ColorCode, colorCodeRules...),
	)
}

func (in CategoryInput) ToCategory() *Category {
	in.Normalize()
	c := &Category{ColorCode: CategoryDefaultColor}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.ColorCode != nil && *in.ColorCode != "" {
		c.ColorCode = *in.ColorCode
	}
	return c
}

func (c Category) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, categoryNameRules...),
		validation.Field(&c.Description, categoryDescriptionRules...),
		validation.Field(&c.ColorCode, colorCodeRules...),
	)
}
