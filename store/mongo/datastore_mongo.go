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
	"crypto/tls"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	mopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Kennedy01-crypto/taskflow-express-api/model"
	"github.com/Kennedy01-crypto/taskflow-express-api/store"
	"github.com/Kennedy01-crypto/taskflow-express-api/utils"
)

const (
	DbVersion = "1.0.0"

	DbName = "taskflow"

	DbTasksColl      = "tasks"
	DbCategoriesColl = "categories"
	DbUsersColl      = "users"

	DbID        = "_id"
	DbCreatedAt = "createdAt"
	DbUpdatedAt = "updatedAt"
	DbVersionNo = "__v"

	DbTaskTitle       = "title"
	DbTaskDescription = "description"
	DbTaskPriority    = "priority"
	DbTaskDuration    = "duration"
	DbTaskDueDate     = "dueDate"
	DbTaskAssignedTo  = "assignedTo"
	DbTaskStatus      = "status"
	DbTaskCompleted   = "completed"
	DbTaskTags        = "tags"
	DbTaskCategory    = "category"
	DbTaskUser        = "user"

	DbCategoryName        = "name"
	DbCategoryDescription = "description"
	DbCategoryColorCode   = "colorCode"

	DbUserEmail    = "email"
	DbUserPassword = "password"

	connectTimeout = 10 * time.Second
)

// overridden in tests
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

type DataStoreMongoConfig struct {
	// connection string
	ConnectionString string

	// SSL support
	SSL           bool
	SSLSkipVerify bool

	// Overwrites credentials provided in connection string if provided
	Username string
	Password string

	// DbName defaults to DbName
	DbName string
}

type DataStoreMongo struct {
	client      *mongo.Client
	dbName      string
	automigrate bool
}

func NewDataStoreMongoWithClient(client *mongo.Client, dbName string) *DataStoreMongo {
	if dbName == "" {
		dbName = DbName
	}
	return &DataStoreMongo{
		client: client,
		dbName: dbName,
	}
}

func NewDataStoreMongo(config DataStoreMongoConfig) (*DataStoreMongo, error) {
	connectionString := config.ConnectionString
	if !strings.Contains(connectionString, "://") {
		connectionString = "mongodb://" + connectionString
	}
	clientOptions := mopts.Client().ApplyURI(connectionString)

	if config.Username != "" {
		clientOptions.SetAuth(mopts.Credential{
			Username: config.Username,
			Password: config.Password,
		})
	}

	if config.SSL {
		tlsConfig := &tls.Config{}
		tlsConfig.InsecureSkipVerify = config.SSLSkipVerify
		clientOptions.SetTLSConfig(tlsConfig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongo server")
	}

	// Validate connection
	if err = client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "error reaching mongo server")
	}

	return NewDataStoreMongoWithClient(client, config.DbName), nil
}

func (db *DataStoreMongo) collection(name string) *mongo.Collection {
	return db.client.Database(db.dbName).Collection(name)
}

func (db *DataStoreMongo) Ping(ctx context.Context) error {
	res := db.client.Database(db.dbName).RunCommand(ctx, bson.M{"ping": 1})
	return res.Err()
}

func (db *DataStoreMongo) DatabaseName() string {
	return db.dbName
}

func (db *DataStoreMongo) list(
	ctx context.Context,
	coll *mongo.Collection,
	fields schema,
	q store.ListQuery,
	hidden ...string,
) ([]store.Document, int, error) {
	filter, err := fields.castFilter(q.Filter, hidden...)
	if err != nil {
		return nil, 0, err
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, translateError(err, "failed to count documents")
	}

	findOpts := mopts.Find().
		SetSort(sortDoc(q.Sort, hidden...)).
		SetProjection(projectionDoc(q.Projection, hidden...)).
		SetSkip(int64(q.Page.Skip)).
		SetLimit(int64(q.Page.Limit))

	cur, err := coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, translateError(err, "failed to fetch documents")
	}
	defer cur.Close(ctx)

	docs := []store.Document{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, translateError(err, "failed to decode documents")
	}
	return docs, int(total), nil
}

func sortDoc(spec store.SortSpec, hidden ...string) bson.D {
	keys := make(store.SortSpec, 0, len(spec))
	for _, s := range spec {
		if queryable(s.Field, hidden) {
			keys = append(keys, s)
		}
	}
	if len(keys) == 0 {
		keys = store.DefaultSort()
	}
	doc := make(bson.D, 0, len(keys))
	for _, s := range keys {
		dir := 1
		if s.Descending {
			dir = -1
		}
		doc = append(doc, bson.E{Key: s.Field, Value: dir})
	}
	return doc
}

// projectionDoc renders p, making sure none of the hidden fields are ever
// returned.
func projectionDoc(p store.Projection, hidden ...string) bson.D {
	doc := bson.D{}
	for _, f := range p.Include {
		if utils.ContainsString(f, hidden) {
			continue
		}
		doc = append(doc, bson.E{Key: f, Value: 1})
	}
	if len(doc) > 0 {
		return doc
	}

	exclude := p.Exclude
	if len(p.Include) > 0 {
		exclude = store.DefaultProjection().Exclude
	}
	for _, f := range exclude {
		doc = append(doc, bson.E{Key: f, Value: 0})
	}
	for _, f := range hidden {
		if !utils.ContainsString(f, exclude) {
			doc = append(doc, bson.E{Key: f, Value: 0})
		}
	}
	return doc
}

func (db *DataStoreMongo) ListTasks(ctx context.Context, q store.ListQuery) ([]store.Document, int, error) {
	return db.list(ctx, db.collection(DbTasksColl), taskSchema, q)
}

func (db *DataStoreMongo) GetTask(ctx context.Context, id string) (*model.Task, error) {
	task := &model.Task{}
	err := findByID(ctx, db.collection(DbTasksColl), id, task, store.ErrTaskNotFound)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (db *DataStoreMongo) InsertTasks(ctx context.Context, tasks []*model.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	ts := now()
	docs := make([]interface{}, len(tasks))
	for i, t := range tasks {
		t.ID = primitive.NewObjectID()
		t.CreatedAt = ts
		t.UpdatedAt = ts
		t.Version = 0
		docs[i] = t
	}
	_, err := db.collection(DbTasksColl).InsertMany(ctx, docs)
	if err != nil {
		return translateError(err, "failed to store tasks")
	}
	return nil
}

func taskUpdateDoc(update *model.TaskInput) (bson.M, error) {
	set := bson.M{DbUpdatedAt: now()}
	unset := bson.M{}
	if update.Title != nil {
		set[DbTaskTitle] = *update.Title
	}
	if update.Description != nil {
		set[DbTaskDescription] = *update.Description
	}
	if update.Priority != nil {
		set[DbTaskPriority] = *update.Priority
	}
	if update.Duration != nil {
		set[DbTaskDuration] = *update.Duration
	}
	if update.DueDate != nil {
		set[DbTaskDueDate] = *update.DueDate
	}
	if update.AssignedTo != nil {
		set[DbTaskAssignedTo] = *update.AssignedTo
	}
	if update.Status != nil {
		set[DbTaskStatus] = *update.Status
	}
	if update.Completed != nil {
		set[DbTaskCompleted] = *update.Completed
	}
	if update.Tags != nil {
		set[DbTaskTags] = update.Tags
	}
	if update.Category != nil {
		if *update.Category == "" {
			unset[DbTaskCategory] = ""
		} else {
			oid, err := model.ParseID(DbTaskCategory, *update.Category)
			if err != nil {
				return nil, err
			}
			set[DbTaskCategory] = oid
		}
	}

	doc := bson.M{
		"$set": set,
		"$inc": bson.M{DbVersionNo: 1},
	}
	if len(unset) > 0 {
		doc["$unset"] = unset
	}
	return doc, nil
}

func (db *DataStoreMongo) UpdateTask(
	ctx context.Context,
	id string,
	update *model.TaskInput,
) (*model.Task, error) {
	oid, err := model.ParseID(DbID, id)
	if err != nil {
		return nil, err
	}
	doc, err := taskUpdateDoc(update)
	if err != nil {
		return nil, err
	}

	task := &model.Task{}
	err = db.collection(DbTasksColl).FindOneAndUpdate(ctx,
		bson.M{DbID: oid},
		doc,
		mopts.FindOneAndUpdate().SetReturnDocument(mopts.After),
	).Decode(task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrTaskNotFound
		}
		return nil, translateError(err, "failed to update task")
	}
	return task, nil
}

func (db *DataStoreMongo) DeleteTask(ctx context.Context, id string) error {
	return deleteByID(ctx, db.collection(DbTasksColl), id, store.ErrTaskNotFound)
}

func (db *DataStoreMongo) ListCategories(ctx context.Context, q store.ListQuery) ([]store.Document, int, error) {
	return db.list(ctx, db.collection(DbCategoriesColl), categorySchema, q)
}

func (db *DataStoreMongo) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	category := &model.Category{}
	err := findByID(ctx, db.collection(DbCategoriesColl), id, category, store.ErrCategoryNotFound)
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (db *DataStoreMongo) InsertCategory(ctx context.Context, category *model.Category) error {
	ts := now()
	category.ID = primitive.NewObjectID()
	category.CreatedAt = ts
	category.UpdatedAt = ts
	category.Version = 0

	_, err := db.collection(DbCategoriesColl).InsertOne(ctx, category)
	if err != nil {
		return translateError(err, "failed to store category")
	}
	return nil
}

func (db *DataStoreMongo) UpdateCategory(
	ctx context.Context,
	id string,
	update *model.CategoryInput,
) (*model.Category, error) {
	oid, err := model.ParseID(DbID, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{DbUpdatedAt: now()}
	if update.Name != nil {
		set[DbCategoryName] = *update.Name
	}
	if update.Description != nil {
		set[DbCategoryDescription] = *update.Description
	}
	if update.ColorCode != nil {
		set[DbCategoryColorCode] = *update.ColorCode
	}

	category := &model.Category{}
	err = db.collection(DbCategoriesColl).FindOneAndUpdate(ctx,
		bson.M{DbID: oid},
		bson.M{
			"$set": set,
			"$inc": bson.M{DbVersionNo: 1},
		},
		mopts.FindOneAndUpdate().SetReturnDocument(mopts.After),
	).Decode(category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrCategoryNotFound
		}
		return nil, translateError(err, "failed to update category")
	}
	return category, nil
}

func (db *DataStoreMongo) DeleteCategory(ctx context.Context, id string) error {
	return deleteByID(ctx, db.collection(DbCategoriesColl), id, store.ErrCategoryNotFound)
}

func (db *DataStoreMongo) ListUsers(ctx context.Context, q store.ListQuery) ([]store.Document, int, error) {
	return db.list(ctx, db.collection(DbUsersColl), userSchema, q, DbUserPassword)
}

func (db *DataStoreMongo) GetUser(ctx context.Context, id string) (*model.User, error) {
	user := &model.User{}
	err := findByID(ctx, db.collection(DbUsersColl), id, user, store.ErrUserNotFound,
		mopts.FindOne().SetProjection(bson.M{DbUserPassword: 0}))
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (db *DataStoreMongo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	err := db.collection(DbUsersColl).FindOne(ctx, bson.M{DbUserEmail: email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, translateError(err, "failed to fetch user")
	}
	return user, nil
}

func (db *DataStoreMongo) InsertUser(ctx context.Context, user *model.User) error {
	ts := now()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = ts
	user.UpdatedAt = ts
	user.Version = 0

	_, err := db.collection(DbUsersColl).InsertOne(ctx, user)
	if err != nil {
		return translateError(err, "failed to store user")
	}
	return nil
}

func (db *DataStoreMongo) DeleteUser(ctx context.Context, id string) error {
	return deleteByID(ctx, db.collection(DbUsersColl), id, store.ErrUserNotFound)
}
