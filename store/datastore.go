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

package store

import (
	"context"
	"errors"

	"github.com/Kennedy01-crypto/taskflow-express-api/model"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUserNotFound     = errors.New("user not found")
)

// Document is a raw stored record as returned by listings; projections
// make typed entities unsuitable there.
type Document map[string]interface{}

// DataStore is the storage collaborator. Identifiers are passed in their
// string form; implementations report malformed ones as
// *apperror.CastError and uniqueness violations as
// *apperror.DuplicateKeyError.
type DataStore interface {
	Ping(ctx context.Context) error

	// DatabaseName reports the name of the database in use.
	DatabaseName() string

	// ListTasks returns the page of tasks selected by q along with the
	// number of tasks matching q.Filter.
	ListTasks(ctx context.Context, q ListQuery) ([]Document, int, error)
	GetTask(ctx context.Context, id string) (*model.Task, error)

	// InsertTasks stores tasks in order, stopping at the first failure. Ids
	// and timestamps are set on the passed tasks.
	InsertTasks(ctx context.Context, tasks []*model.Task) error

	// UpdateTask applies the fields present in update and returns the
	// updated task.
	UpdateTask(ctx context.Context, id string, update *model.TaskInput) (*model.Task, error)
	DeleteTask(ctx context.Context, id string) error

	ListCategories(ctx context.Context, q ListQuery) ([]Document, int, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	InsertCategory(ctx context.Context, category *model.Category) error
	UpdateCategory(ctx context.Context, id string, update *model.CategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	// ListUsers never returns password hashes, whatever the projection.
	ListUsers(ctx context.Context, q ListQuery) ([]Document, int, error)
	GetUser(ctx context.Context, id string) (*model.User, error)

	// GetUserByEmail returns the user including the password hash, or nil
	// when there is none.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	InsertUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id string) error

	Migrate(ctx context.Context, version string) error

	WithAutomigrate() DataStore
}
