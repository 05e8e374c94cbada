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
	"net/http"

	"github.com/mendersoftware/go-lib-micro/identity"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	"github.com/Kennedy01-crypto/taskflow-express-api/apperror"
	"github.com/Kennedy01-crypto/taskflow-express-api/auth"
	"github.com/Kennedy01-crypto/taskflow-express-api/model"
	"github.com/Kennedy01-crypto/taskflow-express-api/store"
)

const (
	MsgTaskNotFound     = "Task Not Found"
	MsgCategoryNotFound = "Category not found"
	MsgUserNotFound     = "User not found"
	MsgUserExists       = "User with this email already exists"
	MsgBadCredentials   = "Incorrect email or password"
	MsgInvalidToken     = "Invalid token. Please log in again!"
	MsgExpiredToken     = "Your token has expired! Please log in again."
	MsgNoTasks          = "Please provide a non-empty list of tasks"
	MsgNotLoggedIn      = "You are not logged in! Please log in to get access."
	MsgAuthDisabled     = "Authentication is not configured"
	MsgDatabaseDown     = "MongoDB connection is NOT active or accessible."
)

var (
	ErrTaskNotFound     = apperror.New(http.StatusNotFound, MsgTaskNotFound)
	ErrCategoryNotFound = apperror.New(http.StatusNotFound, MsgCategoryNotFound)
	ErrUserNotFound     = apperror.New(http.StatusNotFound, MsgUserNotFound)
	ErrUserExists       = apperror.New(http.StatusBadRequest, MsgUserExists)
	ErrBadCredentials   = apperror.New(http.StatusUnauthorized, MsgBadCredentials)
	ErrInvalidToken     = apperror.New(http.StatusUnauthorized, MsgInvalidToken)
	ErrExpiredToken     = apperror.New(http.StatusUnauthorized, MsgExpiredToken)
	ErrNoTasks          = apperror.New(http.StatusBadRequest, MsgNoTasks)
	ErrNotLoggedIn      = apperror.New(http.StatusUnauthorized, MsgNotLoggedIn)
	ErrAuthDisabled     = apperror.New(http.StatusServiceUnavailable, MsgAuthDisabled)
	ErrDatabaseDown     = apperror.New(http.StatusServiceUnavailable, MsgDatabaseDown)
)

// TokenIssuer signs and checks bearer tokens.
type TokenIssuer interface {
	Issue(ctx context.Context, subject string) (string, error)
	Validate(ctx context.Context, token string) (*auth.Claims, error)
}

type DatabaseStatus struct {
	Connected bool   `json:"connected"`
	Database  string `json:"database"`
}

// this taskflow service interface
type TaskflowApp interface {
	HealthCheck(ctx context.Context) error
	DatabaseStatus(ctx context.Context) (*DatabaseStatus, error)

	ListTasks(ctx context.Context, q store.ListQuery) ([]store.Document, int, error)
	GetTask(ctx context.Context, id string) (*model.Task, error)
	CreateTask(ctx context.Context, in *model.TaskInput) (*model.Task, error)
	CreateTasks(ctx context.Context, in []*model.TaskInput) ([]*model.Task, error)
	UpdateTask(ctx context.Context, id string, in *model.TaskInput) (*model.Task, error)
	CompleteTask(ctx context.Context, id string) (*model.Task, error)
	DeleteTask(ctx context.Context, id string) error

	ListCategories(ctx context.Context, q store.ListQuery) ([]store.Document, int, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	CreateCategory(ctx context.Context, in *model.CategoryInput) (*model.Category, error)
	UpdateCategory(ctx context.Context, id string, in *model.CategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	Register(ctx context.Context, creds model.UserCredentials) (*model.User, error)
	Login(ctx context.Context, creds model.UserCredentials) (string, *model.User, error)
	Authenticate(ctx context.Context, token string) (*identity.Identity, error)
	ListUsers(ctx context.Context, q store.ListQuery) ([]store.Document, int, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error

	WithTokenIssuer(tokens TokenIssuer) TaskflowApp
}

type taskflow struct {
	db     store.DataStore
	tokens TokenIssuer
}

func NewTaskflow(d store.DataStore) TaskflowApp {
	return &taskflow{db: d}
}

func (tf *taskflow) WithTokenIssuer(tokens TokenIssuer) TaskflowApp {
	tf.tokens = tokens
	return tf
}

func (tf *taskflow) HealthCheck(ctx context.Context) error {
	err := tf.db.Ping(ctx)
	if err != nil {
		return errors.Wrap(err, "error reaching MongoDB")
	}
	return nil
}

func (tf *taskflow) DatabaseStatus(ctx context.Context) (*DatabaseStatus, error) {
	if err := tf.HealthCheck(ctx); err != nil {
		log.FromContext(ctx).Errorf("database status: %v", err)
		return nil, ErrDatabaseDown
	}
	return &DatabaseStatus{
		Connected: true,
		Database:  tf.db.DatabaseName(),
	}, nil
}

// notFound replaces the store sentinel with the client facing error and
// wraps anything else.
func notFound(err, sentinel error, replacement *apperror.AppError, msg string) error {
	if err == sentinel {
		return replacement
	}
	return errors.Wrap(err, msg)
}

func (tf *taskflow) ListTasks(ctx context.Context, q store.ListQuery) ([]store.Document, int, error) {
	tasks, total, err := tf.db.ListTasks(ctx, q)
	if err != nil {
		return nil, -1, errors.Wrap(err, "failed to fetch tasks")
	}
	if tasks == nil {
		tasks = []store.Document{}
	}
	return tasks, total, nil
}

func (tf *taskflow) GetTask(ctx context.Context, id string) (*model.Task, error) {
	task, err := tf.db.GetTask(ctx, id)
	if err != nil {
		return nil, notFound(err, store.ErrTaskNotFound, ErrTaskNotFound, "failed to fetch task")
	}
	return task, nil
}

// newTask validates the input and builds the task owned by the caller, if
// any.
func newTask(ctx context.Context, in *model.TaskInput) (*model.Task, error) {
	if in == nil {
		in = &model.TaskInput{}
	}
	task, err := in.ToTask()
	if err != nil {
		return nil, err
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}
	if id := identity.FromContext(ctx); id != nil && id.Subject != "" {
		owner, err := model.ParseID("user", id.Subject)
		if err != nil {
			return nil, err
		}
		task.User = &owner
	}
	return task, nil
}

func (tf *taskflow) CreateTask(ctx context.Context, in *model.TaskInput) (*model.Task, error) {
	task, err := newTask(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := tf.db.InsertTasks(ctx, []*model.Task{task}); err != nil {
		return nil, errors.Wrap(err, "failed to create task")
	}
	return task, nil
}

// CreateTasks validates every task before storing any of them.
func (tf *taskflow) CreateTasks(ctx context.Context, in []*model.TaskInput) ([]*model.Task, error) {
	if len(in) == 0 {
		return nil, ErrNoTasks
	}
	tasks := make([]*model.Task, len(in))
	for i := range in {
		task, err := newTask(ctx, in[i])
		if err != nil {
			return nil, err
		}
		tasks[i] = task
	}
	if err := tf.db.InsertTasks(ctx, tasks); err != nil {
		return nil, errors.Wrapf(err, "failed to create %d tasks", len(tasks))
	}
	log.FromContext(ctx).Infof("created %d tasks", len(tasks))
	return tasks, nil
}

func (tf *taskflow) UpdateTask(ctx context.Context, id string, in *model.TaskInput) (*model.Task, error) {
	if in == nil {
		in = &model.TaskInput{}
	}
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	task, err := tf.db.UpdateTask(ctx, id, in)
	if err != nil {
		return nil, notFound(err, store.ErrTaskNotFound, ErrTaskNotFound, "failed to update task")
	}
	return task, nil
}

func (tf *taskflow) CompleteTask(ctx context.Context, id string) (*model.Task, error) {
	completed := true
	status := model.TaskStatusCompleted
	task, err := tf.db.UpdateTask(ctx, id, &model.TaskInput{
		Completed: &completed,
		Status:    &status,
	})
	if err != nil {
		return nil, notFound(err, store.ErrTaskNotFound, ErrTaskNotFound, "failed to complete task")
	}
	return task, nil
}

func (tf *taskflow) DeleteTask(ctx context.Context, id string) error {
	err := tf.db.DeleteTask(ctx, id)
	if err != nil {
		return notFound(err, store.ErrTaskNotFound, ErrTaskNotFound, "failed to delete task")
	}
	return nil
}

func (tf *taskflow) ListCategories(ctx context.Context, q store.ListQuery) ([]store.Document, int, error) {
	categories, total, err := tf.db.ListCategories(ctx, q)
	if err != nil {
		return nil, -1, errors.Wrap(err, "failed to fetch categories")
	}
	if categories == nil {
		categories = []store.Document{}
	}
	return categories, total, nil
}

func (tf *taskflow) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	category, err := tf.db.GetCategory(ctx, id)
	if err != nil {
		return nil, notFound(err, store.ErrCategoryNotFound, ErrCategoryNotFound,
			"failed to fetch category")
	}
	return category, nil
}

func (tf *taskflow) CreateCategory(ctx context.Context, in *model.CategoryInput) (*model.Category, error) {
	if in == nil {
		in = &model.CategoryInput{}
	}
	category := in.ToCategory()
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if err := tf.db.InsertCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}
	return category, nil
}

func (tf *taskflow) UpdateCategory(
	ctx context.Context,
	id string,
	in *model.CategoryInput,
) (*model.Category, error) {
	if in == nil {
		in = &model.CategoryInput{}
	}
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	category, err := tf.db.UpdateCategory(ctx, id, in)
	if err != nil {
		return nil, notFound(err, store.ErrCategoryNotFound, ErrCategoryNotFound,
			"failed to update category")
	}
	return category, nil
}

func (tf *taskflow) DeleteCategory(ctx context.Context, id string) error {
	err := tf.db.DeleteCategory(ctx, id)
	if err != nil {
		return notFound(err, store.ErrCategoryNotFound, ErrCategoryNotFound,
			"failed to delete category")
	}
	return nil
}
