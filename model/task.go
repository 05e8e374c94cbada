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
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Kennedy01-crypto/taskflow-express-api/apperror"
)

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in progress"
	TaskStatusCompleted  = "completed"

	TaskDefaultDescription = "No description provided"
	TaskDefaultPriority    = 3
	TaskDefaultAssignee    = "Unassigned"
)

var validTaskStatuses = []interface{}{
	TaskStatusPending,
	TaskStatusInProgress,
	TaskStatusCompleted,
}

// overridden in tests
var now = time.Now

type Task struct {
	ID primitive.ObjectID `json:"_id" bson:"_id,omitempty"`

	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Priority    int       `json:"priority" bson:"priority"`
	Duration    *float64  `json:"duration,omitempty" bson:"duration,omitempty"`
	DueDate     time.Time `json:"dueDate" bson:"dueDate"`
	AssignedTo  string    `json:"assignedTo" bson:"assignedTo"`
	Status      string    `json:"status" bson:"status"`
	Completed   bool      `json:"completed" bson:"completed"`
	Tags        []string  `json:"tags,omitempty" bson:"tags,omitempty"`

	Category *primitive.ObjectID `json:"category,omitempty" bson:"category,omitempty"`
	// owner, taken from the bearer token when present
	User *primitive.ObjectID `json:"user,omitempty" bson:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
	Version   int       `json:"-" bson:"__v"`
}

// TaskInput is the client supplied part of a task. It is used as is for
// partial updates; absent fields are left untouched.
type TaskInput struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Priority    *int       `json:"priority,omitempty"`
	Duration    *float64   `json:"duration,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	AssignedTo  *string    `json:"assignedTo,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Category    *string    `json:"category,omitempty"`
}

func strPtr(s string) *string {
	return &s
}

// Normalize trims the title and lowercases the status.
func (in *TaskInput) Normalize() {
	if in.Title != nil {
		in.Title = strPtr(strings.TrimSpace(*in.Title))
	}
	if in.Description != nil {
		in.Description = strPtr(strings.TrimSpace(*in.Description))
	}
	if in.Status != nil {
		in.Status = strPtr(strings.ToLower(strings.TrimSpace(*in.Status)))
	}
}

func priorityRule(value interface{}) error {
	v, _ := validation.Indirect(value)
	p, _ := v.(int)
	if p < 1 {
		return errors.New("Priority must be at least 1")
	} else if p > 5 {
		return errors.New("Priority cannot exceed 5")
	}
	return nil
}

func durationRule(value interface{}) error {
	v, _ := validation.Indirect(value)
	d, ok := v.(float64)
	if ok && d < 0 {
		return errors.New("Duration cannot be negative")
	}
	return nil
}

func futureDateRule(value interface{}) error {
	v, _ := validation.Indirect(value)
	d, ok := v.(time.Time)
	if ok && !d.After(now()) {
		return errors.New("Due date must be in the future!")
	}
	return nil
}

func statusRule(value interface{}) error {
	v, _ := validation.Indirect(value)
	s, _ := v.(string)
	for _, valid := range validTaskStatuses {
		if s == valid {
			return nil
		}
	}
	return fmt.Errorf("%s is not supported", s)
}

var (
	titleRules = []validation.Rule{
		validation.Required.Error("Title is required"),
		validation.RuneLength(3, 0).Error("Title must be at least 3 characters long"),
		validation.RuneLength(0, 50).Error("Title cannot exceed 50 characters"),
	}
	descriptionRules = []validation.Rule{
		validation.RuneLength(10, 0).Error("Description must be at least 10 characters long"),
		validation.RuneLength(0, 500).Error("Description cannot exceed 500 characters"),
	}
)

// Validate checks only the fields present in the input.
func (in TaskInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.When(in.Title != nil, titleRules...)),
		validation.Field(&in.Description, descriptionRules...),
		validation.Field(&in.Priority, validation.When(in.Priority != nil, validation.By(priorityRule))),
		validation.Field(&in.Duration, validation.By(durationRule)),
		validation.Field(&in.DueDate,
			validation.When(in.DueDate != nil,
				validation.Required.Error("Due date is required"),
				validation.By(futureDateRule),
			)),
		validation.Field(&in.Status, validation.When(in.Status != nil, validation.By(statusRule))),
	)
}

// ToTask builds a new task from the input, filling in defaults.
func (in TaskInput) ToTask() (*Task, error) {
	in.Normalize()
	t := &Task{
		Description: TaskDefaultDescription,
		Priority:    TaskDefaultPriority,
		AssignedTo:  TaskDefaultAssignee,
		Status:      TaskStatusPending,
		Duration:    in.Duration,
		Tags:        in.Tags,
	}
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.DueDate != nil {
		t.DueDate = *in.DueDate
	}
	if in.AssignedTo != nil && *in.AssignedTo != "" {
		t.AssignedTo = *in.AssignedTo
	}
	if in.Status != nil && *in.Status != "" {
		t.Status = *in.Status
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}
	if in.Category != nil {
		id, err := ParseID("category", *in.Category)
		if err != nil {
			return nil, err
		}
		t.Category = &id
	}
	return t, nil
}

func (t Task) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Title, titleRules...),
		validation.Field(&t.Description, descriptionRules...),
		validation.Field(&t.Priority, validation.By(priorityRule)),
		validation.Field(&t.Duration, validation.By(durationRule)),
		validation.Field(&t.DueDate,
			validation.Required.Error("Due date is required"),
			validation.By(futureDateRule),
		),
		validation.Field(&t.Status, validation.By(statusRule)),
	)
}

// ParseID converts a hex identifier, reporting a cast failure on path.
func ParseID(path, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &apperror.CastError{
			Path:  path,
			Value: id,
			Err:   err,
		}
	}
	return oid, nil
}
