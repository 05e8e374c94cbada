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

package mongo

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Kennedy01-crypto/taskflow-express-api/apperror"
	"github.com/Kennedy01-crypto/taskflow-express-api/model"
	"github.com/Kennedy01-crypto/taskflow-express-api/store"
)

func TestCastFilter(t *testing.T) {
	t.Parallel()

	oid := primitive.NewObjectID()

	testCases := map[string]struct {
		query string
		out   bson.M
		err   string
	}{
		"strings pass through": {
			query: "status=pending&assignedTo[ne]=jane",
			out: bson.M{
				"status":     "pending",
				"assignedTo": bson.M{"$ne": "jane"},
			},
		},
		"numbers stay numbers": {
			query: "priority[gte]=2&duration[in]=10,20",
			out: bson.M{
				"priority": bson.M{"$gte": 2.0},
				"duration": bson.M{"$in": bson.A{10.0, 20.0}},
			},
		},
		"booleans": {
			query: "completed=true",
			out:   bson.M{"completed": true},
		},
		"dates": {
			query: "dueDate[lt]=2030-01-02",
			out: bson.M{"dueDate": bson.M{
				"$lt": time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC),
			}},
		},
		"object ids": {
			query: "category[in]=" + oid.Hex(),
			out:   bson.M{"category": bson.M{"$in": bson.A{oid}}},
		},
		"bad boolean": {
			query: "completed=maybe",
			err:   "Invalid completed: maybe.",
		},
		"bad date": {
			query: "dueDate[gte]=tomorrow",
			err:   "Invalid dueDate: tomorrow.",
		},
		"bad object id": {
			query: "category=home",
			err:   "Invalid category: home.",
		},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			params, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			out, err := taskSchema.castFilter(store.BuildQuery(params).Filter)
			if tc.err != "" {
				f := apperror.Inspect(err)
				assert.Equal(t, apperror.KindCast, f.Kind)
				assert.Equal(t, tc.err, f.Message)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.out, out)
		})
	}
}

func TestCastFilterHiddenFields(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		query string
		out   bson.M
	}{
		"hidden field": {
			query: "email=jane@example.com&password[gte]=$2a$10$M",
			out:   bson.M{"email": "jane@example.com"},
		},
		"path under a hidden field": {
			query: "password.0=$",
			out:   bson.M{},
		},
		"top level operator": {
			query: "$where=this.password.length>0",
			out:   bson.M{},
		},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			params, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			out, err := userSchema.castFilter(store.BuildQuery(params).Filter, DbUserPassword)
			assert.NoError(t, err)
			assert.Equal(t, tc.out, out)
		})
	}
}

func TestProjectionDoc(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		projection store.Projection
		hidden     []string
		out        bson.D
	}{
		"default": {
			projection: store.DefaultProjection(),
			out:        bson.D{{Key: "__v", Value: 0}},
		},
		"include": {
			projection: store.Projection{Include: []string{"title", "priority"}},
			out:        bson.D{{Key: "title", Value: 1}, {Key: "priority", Value: 1}},
		},
		"default with hidden": {
			projection: store.DefaultProjection(),
			hidden:     []string{"password"},
			out:        bson.D{{Key: "__v", Value: 0}, {Key: "password", Value: 0}},
		},
		"include drops hidden": {
			projection: store.Projection{Include: []string{"email", "password"}},
			hidden:     []string{"password"},
			out:        bson.D{{Key: "email", Value: 1}},
		},
		"only hidden requested": {
			projection: store.Projection{Include: []string{"password"}},
			hidden:     []string{"password"},
			out:        bson.D{{Key: "__v", Value: 0}, {Key: "password", Value: 0}},
		},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.out, projectionDoc(tc.projection, tc.hidden...))
		})
	}
}

func TestSortDoc(t *testing.T) {
	assert.Equal(t,
		bson.D{{Key: "createdAt", Value: -1}},
		sortDoc(nil))
	assert.Equal(t,
		bson.D{{Key: "priority", Value: -1}, {Key: "title", Value: 1}},
		sortDoc(store.SortSpec{
			{Field: "priority", Descending: true},
			{Field: "title"},
		}))

	// hidden fields never order results
	assert.Equal(t,
		bson.D{{Key: "email", Value: 1}},
		sortDoc(store.SortSpec{{Field: "password"}, {Field: "email"}}, DbUserPassword))
	assert.Equal(t,
		bson.D{{Key: "createdAt", Value: -1}},
		sortDoc(store.SortSpec{{Field: "password", Descending: true}}, DbUserPassword))
}

func TestTaskUpdateDoc(t *testing.T) {
	title := "New title"
	done := true
	empty := ""
	doc, err := taskUpdateDoc(&model.TaskInput{
		Title:     &title,
		Completed: &done,
		Category:  &empty,
	})
	require.NoError(t, err)

	set := doc["$set"].(bson.M)
	assert.Equal(t, "New title", set["title"])
	assert.Equal(t, true, set["completed"])
	assert.Contains(t, set, "updatedAt")
	assert.NotContains(t, set, "priority")
	assert.Equal(t, bson.M{"__v": 1}, doc["$inc"])
	assert.Equal(t, bson.M{"category": ""}, doc["$unset"])

	bad := "home"
	_, err = taskUpdateDoc(&model.TaskInput{Category: &bad})
	assert.Equal(t, "Invalid category: home.", apperror.Inspect(err).Message)
}
