package inmemdb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aryanch/projtrack/core/risk"
)

type riskLogRepository struct {
	db *riskLogTable
}

func NewRiskLogRepository(db *DB) risk.LogRepository {
	return &riskLogRepository{db: db.riskLog}
}

func (repo *riskLogRepository) CreateLog(_ context.Context, l risk.Log) (risk.Log, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	l.ID = primitive.NewObjectID()
	repo.db.table[l.ID] = &l
	return l, nil
}
