// Package database handles the connection to the document store.
package database

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/aryanch/projtrack/core"
)

// Collection names
const (
	PersonCollection  = "users"
	TaskCollection    = "tasks"
	RiskLogCollection = "risklogs"
)

// Open connects to the document store and pings it. Callers are expected to
// treat a returned error as fatal at startup.
func Open(ctx context.Context, conf *core.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, conf.Database.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.Database.URI))
	if err != nil {
		return nil, errors.Wrap(err, "connecting to database")
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, errors.Wrap(err, "pinging database")
	}
	return client.Database(conf.Database.Name), nil
}

// EnsureIndexes creates the indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(PersonCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return errors.Wrap(err, "creating email index")
}

// Close disconnects the underlying client.
func Close(ctx context.Context, db *mongo.Database) error {
	return db.Client().Disconnect(ctx)
}
