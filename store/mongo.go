package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is the production Store, backed by a MongoDB database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the MongoDB deployment at uri and pings it before
// returning a Store over the named database.
func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

func (m *Mongo) Insert(ctx context.Context, collection string, doc any) (string, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("store: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (m *Mongo) Find(ctx context.Context, collection string, filter Filter, dest any) error {
	cur, err := m.db.Collection(collection).Find(ctx, toBSON(filter))
	if err != nil {
		return err
	}
	return cur.All(ctx, dest)
}

func (m *Mongo) FindOne(ctx context.Context, collection string, filter Filter, dest any) error {
	err := m.db.Collection(collection).FindOne(ctx, toBSON(filter)).Decode(dest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (m *Mongo) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	return m.db.Collection(collection).CountDocuments(ctx, toBSON(filter))
}

func (m *Mongo) Collections(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.D{})
}

// Disconnect closes the underlying client.
func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func toBSON(f Filter) bson.M {
	if f == nil {
		return bson.M{}
	}
	return bson.M(f)
}
