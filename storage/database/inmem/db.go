// Package inmemdb provides mutex-guarded in-memory repositories, used by
// tests and local development.
package inmemdb

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aryanch/projtrack/core/person"
	"github.com/aryanch/projtrack/core/risk"
	"github.com/aryanch/projtrack/core/task"
)

type (
	DB struct {
		person  *personTable
		task    *taskTable
		riskLog *riskLogTable
	}

	personTable struct {
		sync.RWMutex
		table map[primitive.ObjectID]*person.Person
	}

	taskTable struct {
		sync.RWMutex
		table map[primitive.ObjectID]*task.Task
		order []primitive.ObjectID // insertion order
	}

	riskLogTable struct {
		sync.RWMutex
		table map[primitive.ObjectID]*risk.Log
	}
)

func Open() (*DB, error) {
	db := &DB{
		person:  &personTable{table: make(map[primitive.ObjectID]*person.Person)},
		task:    &taskTable{table: make(map[primitive.ObjectID]*task.Task)},
		riskLog: &riskLogTable{table: make(map[primitive.ObjectID]*risk.Log)},
	}
	return db, nil
}
