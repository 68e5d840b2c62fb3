package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aryanch/projtrack/core/risk"
	"github.com/aryanch/projtrack/storage/database"
)

type riskLogRepository struct {
	col *mongo.Collection
}

func NewRiskLogRepository(db *mongo.Database) risk.LogRepository {
	return &riskLogRepository{col: db.Collection(database.RiskLogCollection)}
}

func (repo *riskLogRepository) CreateLog(ctx context.Context, l risk.Log) (risk.Log, error) {
	res, err := repo.col.InsertOne(ctx, l)
	if err != nil {
		return risk.Log{}, errors.Wrap(err, "inserting risk log")
	}
	l.ID = res.InsertedID.(primitive.ObjectID)
	return l, nil
}
