package risk

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Log is a historical record of one aggregate risk computation. The request
// flow never writes these; only the admin snapshot command does.
type Log struct {
	ID            primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	OverallRisk   int                  `json:"overallRisk" bson:"overall_risk"`
	HighRiskTasks []primitive.ObjectID `json:"highRiskTasks" bson:"high_risk_tasks"`
	CalculatedAt  time.Time            `json:"calculatedAt" bson:"calculated_at"` // UTC
	CreatedAt     time.Time            `json:"createdAt" bson:"created_at"`       // UTC
	UpdatedAt     time.Time            `json:"updatedAt" bson:"updated_at"`       // UTC
}

type LogRepository interface {
	CreateLog(ctx context.Context, l Log) (Log, error)
}

// NewLog captures an Assessment as a Log record.
func NewLog(a Assessment) Log {
	now := time.Now().UTC()
	l := Log{
		OverallRisk:   a.OverallRisk,
		HighRiskTasks: make([]primitive.ObjectID, 0, len(a.HighRiskTasks)),
		CalculatedAt:  now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, st := range a.HighRiskTasks {
		l.HighRiskTasks = append(l.HighRiskTasks, st.ID)
	}
	return l
}
