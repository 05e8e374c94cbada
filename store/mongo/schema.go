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
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Kennedy01-crypto/taskflow-express-api/apperror"
	"github.com/Kennedy01-crypto/taskflow-express-api/model"
	"github.com/Kennedy01-crypto/taskflow-express-api/store"
	"github.com/Kennedy01-crypto/taskflow-express-api/utils"
)

type fieldType int

const (
	fieldString fieldType = iota
	fieldBool
	fieldDate
	fieldObjectID
)

// schema lists the stored fields whose filter operands are not plain
// strings; every other field is matched verbatim.
type schema map[string]fieldType

var (
	taskSchema = schema{
		DbID:            fieldObjectID,
		DbCreatedAt:     fieldDate,
		DbUpdatedAt:     fieldDate,
		DbTaskDueDate:   fieldDate,
		DbTaskCompleted: fieldBool,
		DbTaskCategory:  fieldObjectID,
		DbTaskUser:      fieldObjectID,
	}
	categorySchema = schema{
		DbID:        fieldObjectID,
		DbCreatedAt: fieldDate,
		DbUpdatedAt: fieldDate,
	}
	userSchema = schema{
		DbID:        fieldObjectID,
		DbCreatedAt: fieldDate,
		DbUpdatedAt: fieldDate,
	}
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// queryable reports whether clients may filter or sort on field: top level
// operators such as $where and anything under a hidden field are off limits.
func queryable(field string, hidden []string) bool {
	if field == "" || strings.HasPrefix(field, "$") {
		return false
	}
	root := strings.SplitN(field, ".", 2)[0]
	return !utils.ContainsString(root, hidden)
}

// castFilter converts string operands of typed fields, reporting values
// that cannot be converted as *apperror.CastError. Fields that are not
// queryable are dropped.
func (s schema) castFilter(filter store.Filter, hidden ...string) (bson.M, error) {
	out := bson.M{}
	for field, value := range filter {
		if !queryable(field, hidden) {
			continue
		}
		typ := s[field]

		ops, isOps := value.(map[string]interface{})
		if !isOps {
			v, err := castValue(typ, field, value)
			if err != nil {
				return nil, err
			}
			out[field] = v
			continue
		}

		castOps := bson.M{}
		for op, operand := range ops {
			if list, ok := operand.([]interface{}); ok {
				castList := make(bson.A, len(list))
				for i, item := range list {
					v, err := castValue(typ, field, item)
					if err != nil {
						return nil, err
					}
					castList[i] = v
				}
				castOps[op] = castList
				continue
			}
			v, err := castValue(typ, field, operand)
			if err != nil {
				return nil, err
			}
			castOps[op] = v
		}
		out[field] = castOps
	}
	return out, nil
}

func castValue(typ fieldType, path string, value interface{}) (interface{}, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil
	}

	switch typ {
	case fieldBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, &apperror.CastError{Path: path, Value: s, Err: err}
		}
		return b, nil

	case fieldDate:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return nil, &apperror.CastError{Path: path, Value: s}

	case fieldObjectID:
		return model.ParseID(path, s)
	}
	return s, nil
}
