// Package mongodb implements the core repositories over the document store.
package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aryanch/projtrack/core/person"
	"github.com/aryanch/projtrack/storage/database"
)

type personRepository struct {
	col *mongo.Collection
}

func NewPersonRepository(db *mongo.Database) person.Repository {
	return &personRepository{col: db.Collection(database.PersonCollection)}
}

func (repo *personRepository) CreatePerson(ctx context.Context, p person.Person) (person.Person, error) {
	res, err := repo.col.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return person.Person{}, person.ErrEmailExists
		}
		return person.Person{}, errors.Wrap(err, "inserting person")
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return p, nil
}

func (repo *personRepository) QueryAllPersons(ctx context.Context) ([]person.Person, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := repo.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "querying persons")
	}

	persons := make([]person.Person, 0)
	if err = cur.All(ctx, &persons); err != nil {
		return nil, errors.Wrap(err, "decoding persons")
	}
	return persons, nil
}

func (repo *personRepository) GetPersonByID(ctx context.Context, id primitive.ObjectID) (person.Person, error) {
	var p person.Person
	if err := repo.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return person.Person{}, person.ErrNotFound
		}
		return person.Person{}, errors.Wrap(err, "getting person")
	}
	return p, nil
}

func (repo *personRepository) CountPersons(ctx context.Context) (int64, error) {
	count, err := repo.col.CountDocuments(ctx, bson.M{})
	return count, errors.Wrap(err, "counting persons")
}

func (repo *personRepository) DeleteAllPersons(ctx context.Context) error {
	_, err := repo.col.DeleteMany(ctx, bson.M{})
	return errors.Wrap(err, "deleting persons")
}
