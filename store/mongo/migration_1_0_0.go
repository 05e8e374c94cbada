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

	"github.com/mendersoftware/go-lib-micro/mongo/migrate"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mopts "go.mongodb.org/mongo-driver/mongo/options"
)

const (
	IndexUserEmail      = "user_email"
	IndexCategoryName   = "category_name"
	IndexTasksCreatedAt = "tasks_created_at"
)

type migration_1_0_0 struct {
	ms  *DataStoreMongo
	ctx context.Context
}

// Up creates the unique indexes on user emails and category names, and the
// index backing the default listing order of tasks.
func (m *migration_1_0_0) Up(from migrate.Version) error {
	database := m.ms.client.Database(m.ms.dbName)

	indexes := []struct {
		coll  string
		model mongo.IndexModel
	}{{
		coll: DbUsersColl,
		model: mongo.IndexModel{
			Keys: bson.D{{Key: DbUserEmail, Value: 1}},
			Options: mopts.Index().
				SetName(IndexUserEmail).
				SetUnique(true),
		},
	}, {
		coll: DbCategoriesColl,
		model: mongo.IndexModel{
			Keys: bson.D{{Key: DbCategoryName, Value: 1}},
			Options: mopts.Index().
				SetName(IndexCategoryName).
				SetUnique(true),
		},
	}, {
		coll: DbTasksColl,
		model: mongo.IndexModel{
			Keys: bson.D{{Key: DbCreatedAt, Value: -1}},
			Options: mopts.Index().
				SetName(IndexTasksCreatedAt),
		},
	}}

	for _, idx := range indexes {
		_, err := database.Collection(idx.coll).
			Indexes().
			CreateOne(m.ctx, idx.model)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *migration_1_0_0) Version() migrate.Version {
	return migrate.MakeVersion(1, 0, 0)
}
