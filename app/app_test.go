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
	"errors"
	"testing"
	"time"

	"github.com/mendersoftware/go-lib-micro/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Kennedy01-crypto/taskflow-express-api/apperror"
	"github.com/Kennedy01-crypto/taskflow-express-api/model"
	"github.com/Kennedy01-crypto/taskflow-express-api/store"
	mstore "github.com/Kennedy01-crypto/taskflow-express-api/store/mocks"
)

func strPtr(s string) *string {
	return &s
}

func validInput(title string) *model.TaskInput {
	due := time.Now().Add(48 * time.Hour)
	return &model.TaskInput{
		Title:   strPtr(title),
		DueDate: &due,
	}
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		DataStoreError error
		ExpectedError  string
	}{
		"ok": {},
		"error, error reaching MongoDB": {
			DataStoreError: errors.New("connection refused"),
			ExpectedError:  "error reaching MongoDB: connection refused",
		},
	}
	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			ctx := context.TODO()
			db := &mstore.DataStore{}
			defer db.AssertExpectations(t)
			db.On("Ping", ctx).Return(tc.DataStoreError)
			if tc.DataStoreError == nil {
				db.On("DatabaseName").Return("taskflow")
			}

			tf := NewTaskflow(db)
			err := tf.HealthCheck(ctx)
			if tc.ExpectedError != "" {
				assert.EqualError(t, err, tc.ExpectedError)
			} else {
				assert.NoError(t, err)
			}

			status, err := tf.DatabaseStatus(ctx)
			if tc.ExpectedError != "" {
				assert.Equal(t, ErrDatabaseDown, err)
				assert.Nil(t, status)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, &DatabaseStatus{Connected: true, Database: "taskflow"}, status)
			}
		})
	}
}

func TestGetTask(t *testing.T) {
	t.Parallel()

	task := &model.Task{ID: primitive.NewObjectID(), Title: "write tests"}
	testCases := map[string]struct {
		storeTask *model.Task
		storeErr  error

		outErr  error
		outKind apperror.Kind
		outMsg  string
	}{
		"ok": {
			storeTask: task,
		},
		"not found": {
			storeErr: store.ErrTaskNotFound,
			outErr:   ErrTaskNotFound,
			outKind:  apperror.KindApplication,
			outMsg:   MsgTaskNotFound,
		},
		"bad id": {
			storeErr: &apperror.CastError{Path: "_id", Value: "nope"},
			outKind:  apperror.KindCast,
			outMsg:   "Invalid _id: nope.",
		},
		"db failure": {
			storeErr: errors.New("socket closed"),
			outKind:  apperror.KindUnknown,
			outMsg:   apperror.MsgSomethingWentWrong,
		},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			db := &mstore.DataStore{}
			defer db.AssertExpectations(t)
			db.On("GetTask", ctx, "some-id").Return(tc.storeTask, tc.storeErr)

			got, err := NewTaskflow(db).GetTask(ctx, "some-id")
			if tc.storeErr == nil {
				assert.NoError(t, err)
				assert.Equal(t, tc.storeTask, got)
				return
			}
			assert.Nil(t, got)
			if tc.outErr != nil {
				assert.Equal(t, tc.outErr, err)
			}
			f := apperror.Inspect(err)
			assert.Equal(t, tc.outKind, f.Kind)
			assert.Equal(t, tc.outMsg, f.Message)
		})
	}
}

func TestCreateTask(t *testing.T) {
	t.Parallel()

	owner := primitive.NewObjectID()
	testCases := map[string]struct {
		ctx   context.Context
		input *model.TaskInput

		insertErr error
		outKind   apperror.Kind
		outMsg    string
		outOwner  *primitive.ObjectID
	}{
		"ok, anonymous": {
			ctx:   context.Background(),
			input: validInput("write tests"),
		},
		"ok, owned by caller": {
			ctx: identity.WithContext(context.Background(), &identity.Identity{
				Subject: owner.Hex(),
				IsUser:  true,
			}),
			input:    validInput("write tests"),
			outOwner: &owner,
		},
		"error, validation": {
			ctx:     context.Background(),
			input:   &model.TaskInput{Title: strPtr("ab")},
			outKind: apperror.KindValidation,
			outMsg: "Invalid input data; Due date is required. " +
				"Title must be at least 3 characters long",
		},
		"error, nil input": {
			ctx:     context.Background(),
			outKind: apperror.KindValidation,
			outMsg:  "Invalid input data; Due date is required. Title is required",
		},
		"error, duplicate": {
			ctx:       context.Background(),
			input:     validInput("write tests"),
			insertErr: &apperror.DuplicateKeyError{KeyValue: map[string]interface{}{"title": "write tests"}},
			outKind:   apperror.KindDuplicateKey,
			outMsg:    `Duplicate field value: "write tests". Please use another value!`,
		},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			db := &mstore.DataStore{}
			defer db.AssertExpectations(t)

			if tc.outKind == apperror.KindUnknown || tc.insertErr != nil {
				db.On("InsertTasks", tc.ctx,
					mock.MatchedBy(func(tasks []*model.Task) bool {
						return len(tasks) == 1 && tasks[0].Title == "write tests"
					}),
				).Return(tc.insertErr)
			}

			task, err := NewTaskflow(db).CreateTask(tc.ctx, tc.input)
			if tc.outMsg != "" {
				f := apperror.Inspect(err)
				assert.Equal(t, tc.outKind, f.Kind)
				assert.Equal(t, tc.outMsg, f.Message)
				assert.Nil(t, task)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.TaskDefaultPriority, task.Priority)
			assert.Equal(t, model.TaskStatusPending, task.Status)
			assert.Equal(t, tc.outOwner, task.User)
		})
	}
}

func TestCreateTasks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		db := &mstore.DataStore{}
		defer db.AssertExpectations(t)
		db.On("InsertTasks", ctx, mock.MatchedBy(func(tasks []*model.Task) bool {
			return len(tasks) == 2 &&
				tasks[0].Title == "first task" &&
				tasks[1].Title == "second task"
		})).Return(nil)

		tasks, err := NewTaskflow(db).CreateTasks(ctx, []*model.TaskInput{
			validInput("first task"),
			validInput("second task"),
		})
		require.NoError(t, err)
		assert.Len(t, tasks, 2)
	})

	t.Run("one invalid task stores nothing", func(t *testing.T) {
		db := &mstore.DataStore{}
		defer db.AssertExpectations(t)

		_, err := NewTaskflow(db).CreateTasks(ctx, []*model.TaskInput{
			validInput("first task"),
			{Title: strPtr("second task")},
		})
		assert.Equal(t, apperror.KindValidation, apperror.Inspect(err).Kind)
		db.AssertNotCalled(t, "InsertTasks", mock.Anything, mock.Anything)
	})

	t.Run("empty list", func(t *testing.T) {
		db := &mstore.DataStore{}
		_, err := NewTaskflow(db).CreateTasks(ctx, nil)
		assert.Equal(t, ErrNoTasks, err)
	})
}

func TestUpdateTask(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("normalizes and validates present fields", func(t *testing.T) {
		db := &mstore.DataStore{}
		defer db.AssertExpectations(t)
		updated := &model.Task{Title: "renamed", Status: model.TaskStatusInProgress}
		db.On("UpdateTask", ctx, "id", mock.MatchedBy(func(in *model.TaskInput) bool {
			return *in.Title == "renamed" && *in.Status == model.TaskStatusInProgress &&
				in.DueDate == nil
		})).Return(updated, nil)

		got, err := NewTaskflow(db).UpdateTask(ctx, "id", &model.TaskInput{
			Title:  strPtr("  renamed "),
			Status: strPtr(" In Progress"),
		})
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("invalid priority", func(t *testing.T) {
		db := &mstore.DataStore{}
		defer db.AssertExpectations(t)
		prio := 9
		_, err := NewTaskflow(db).UpdateTask(ctx, "id", &model.TaskInput{Priority: &prio})
		assert.Equal(t,
			"Invalid input data; Priority cannot exceed 5",
			apperror.Inspect(err).Message)
	})

	t.Run("not found", func(t *testing.T) {
		db := &mstore.DataStore{}
		defer db.AssertExpectations(t)
		db.On("UpdateTask", ctx, "id", mock.Anything).Return(nil, store.ErrTaskNotFound)
		_, err := NewTaskflow(db).UpdateTask(ctx, "id", nil)
		assert.Equal(t, ErrTaskNotFound, err)
	})
}

func TestCompleteTask(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := &mstore.DataStore{}
	defer db.AssertExpectations(t)
	db.On("UpdateTask", ctx, "done", mock.MatchedBy(func(in *model.TaskInput) bool {
		return in.Completed != nil && *in.Completed &&
			in.Status != nil && *in.Status == model.TaskStatusCompleted &&
			in.Title == nil
	})).Return(&model.Task{Completed: true, Status: model.TaskStatusCompleted}, nil)
	db.On("UpdateTask", ctx, "gone", mock.Anything).Return(nil, store.ErrTaskNotFound)

	tf := NewTaskflow(db)
	task, err := tf.CompleteTask(ctx, "done")
	require.NoError(t, err)
	assert.True(t, task.Completed)

	_, err = tf.CompleteTask(ctx, "gone")
	assert.Equal(t, ErrTaskNotFound, err)
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := &mstore.DataStore{}
	defer db.AssertExpectations(t)
	db.On("DeleteTask", ctx, "ok").Return(nil)
	db.On("DeleteTask", ctx, "gone").Return(store.ErrTaskNotFound)
	db.On("DeleteTask", ctx, "broken").Return(errors.New("boom"))

	tf := NewTaskflow(db)
	assert.NoError(t, tf.DeleteTask(ctx, "ok"))
	assert.Equal(t, ErrTaskNotFound, tf.DeleteTask(ctx, "gone"))
	assert.EqualError(t, tf.DeleteTask(ctx, "broken"), "failed to delete task: boom")
}

func TestListTasks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	q := store.ListQuery{Page: store.NewPageWindow(1, 10)}

	db := &mstore.DataStore{}
	defer db.AssertExpectations(t)
	db.On("ListTasks", ctx, q).Return(nil, 0, nil).Once()

	docs, total, err := NewTaskflow(db).ListTasks(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)

	db.On("ListTasks", ctx, q).Return(nil, 0, errors.New("timeout")).Once()
	_, total, err = NewTaskflow(db).ListTasks(ctx, q)
	assert.EqualError(t, err, "failed to fetch tasks: timeout")
	assert.Equal(t, -1, total)
}

func TestCategories(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := &mstore.DataStore{}
	defer db.AssertExpectations(t)
	tf := NewTaskflow(db)

	db.On("InsertCategory", ctx, mock.MatchedBy(func(c *model.Category) bool {
		return c.Name == "home" && c.ColorCode == model.CategoryDefaultColor
	})).Return(nil)
	category, err := tf.CreateCategory(ctx, &model.CategoryInput{Name: strPtr("  Home ")})
	require.NoError(t, err)
	assert.Equal(t, "home", category.Name)

	_, err = tf.CreateCategory(ctx, &model.CategoryInput{
		Name:      strPtr("work"),
		ColorCode: strPtr("red"),
	})
	assert.Equal(t,
		"Invalid input data; Please provide a valid hex color code",
		apperror.Inspect(err).Message)

	db.On("GetCategory", ctx, "gone").Return(nil, store.ErrCategoryNotFound)
	_, err = tf.GetCategory(ctx, "gone")
	assert.Equal(t, ErrCategoryNotFound, err)

	db.On("UpdateCategory", ctx, "gone", mock.Anything).Return(nil, store.ErrCategoryNotFound)
	_, err = tf.UpdateCategory(ctx, "gone", &model.CategoryInput{Description: strPtr("x")})
	assert.Equal(t, ErrCategoryNotFound, err)

	_, err = tf.UpdateCategory(ctx, "any", &model.CategoryInput{Name: strPtr(" ")})
	assert.Equal(t,
		"Invalid input data; Category name is required",
		apperror.Inspect(err).Message)

	db.On("DeleteCategory", ctx, "gone").Return(store.ErrCategoryNotFound)
	assert.Equal(t, ErrCategoryNotFound, tf.DeleteCategory(ctx, "gone"))
}
