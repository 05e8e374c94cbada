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
	"context"
	"regexp"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Kennedy01-crypto/taskflow-express-api/apperror"
	"github.com/Kennedy01-crypto/taskflow-express-api/model"
)

// matches the conflicting pair in `... dup key: { email: "jane@example.com" }`;
// older servers leave the field name out
var dupKeyRegex = regexp.MustCompile(`dup key: \{ ?(\w*)\s*:\s*"?(.*?)"? ?\}`)

func findByID(
	ctx context.Context,
	c *mongo.Collection,
	id string,
	dst interface{},
	notFound error,
	opts ...*mopts.FindOneOptions,
) error {
	oid, err := model.ParseID(DbID, id)
	if err != nil {
		return err
	}

	err = c.FindOne(ctx, bson.M{DbID: oid}, opts...).Decode(dst)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return notFound
		}
		return translateError(err, "failed to fetch "+c.Name())
	}
	return nil
}

func deleteByID(ctx context.Context, c *mongo.Collection, id string, notFound error) error {
	oid, err := model.ParseID(DbID, id)
	if err != nil {
		return err
	}

	res, err := c.DeleteOne(ctx, bson.M{DbID: oid})
	if err != nil {
		return translateError(err, "failed to delete from "+c.Name())
	}
	if res.DeletedCount == 0 {
		return notFound
	}
	return nil
}

// translateError turns uniqueness violations into
// *apperror.DuplicateKeyError and wraps everything else with msg.
func translateError(err error, msg string) error {
	if dup := duplicateKeyError(err); dup != nil {
		return dup
	}
	return errors.Wrap(err, msg)
}

func duplicateKeyError(err error) *apperror.DuplicateKeyError {
	if err == nil || !mongo.IsDuplicateKeyError(err) {
		return nil
	}
	dup := &apperror.DuplicateKeyError{Message: err.Error()}

	for _, raw := range rawServerErrors(err) {
		kv, ok := raw.Lookup("keyValue").DocumentOK()
		if !ok {
			continue
		}
		keyValue := map[string]interface{}{}
		if err := bson.Unmarshal(kv, &keyValue); err == nil && len(keyValue) > 0 {
			dup.KeyValue = keyValue
			return dup
		}
	}

	if m := dupKeyRegex.FindStringSubmatch(err.Error()); m != nil {
		dup.KeyValue = map[string]interface{}{m[1]: m[2]}
	}
	return dup
}

// rawServerErrors collects the server documents describing err.
func rawServerErrors(err error) []bson.Raw {
	var raws []bson.Raw

	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			raws = append(raws, e.Raw)
		}
		raws = append(raws, we.Raw)
	}
	var bwe mongo.BulkWriteException
	if errors.As(err, &bwe) {
		for _, e := range bwe.WriteErrors {
			raws = append(raws, e.Raw)
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) {
		raws = append(raws, ce.Raw)
	}
	return raws
}
