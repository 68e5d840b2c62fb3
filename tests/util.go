package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/aryanch/projtrack/core"
	"github.com/aryanch/projtrack/core/person"
	"github.com/aryanch/projtrack/core/task"
)

func CreatePerson(
	t *testing.T,
	repo person.Repository,
	name, email, role string,
) person.Person {
	now := time.Now().UTC()
	p := person.Person{
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p, err := repo.CreatePerson(context.Background(), p)
	if err != nil {
		t.Fatalf("CreatePerson() failed: %v", err)
	}
	return p
}

func CreateTask(
	t *testing.T,
	repo task.Repository,
	title string,
	assignee person.Person,
	deadline time.Time,
	status string,
	progress int,
) task.Task {
	now := time.Now().UTC()
	tsk := task.Task{
		Title:      title,
		AssigneeID: assignee.ID,
		Deadline:   deadline,
		Status:     status,
		Progress:   progress,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	tsk, err := repo.CreateTask(context.Background(), tsk)
	if err != nil {
		t.Fatalf("CreateTask() failed: %v", err)
	}
	return tsk
}

// Logger reports through the test log.
type Logger struct {
	t *testing.T
}

var _ core.Logger = (*Logger)(nil)

func NewLogger(t *testing.T) *Logger { return &Logger{t: t} }

func (l Logger) log(msg string, args []interface{}) {
	l.t.Helper()
	l.t.Log(append([]interface{}{msg}, args...)...)
}

func (l Logger) Debug(msg string, args ...interface{}) { l.log(msg, args) }
func (l Logger) Info(msg string, args ...interface{})  { l.log(msg, args) }
func (l Logger) Warn(msg string, args ...interface{})  { l.log(msg, args) }
func (l Logger) Error(msg string, args ...interface{}) { l.log(msg, args) }
func (l Logger) Fatal(msg string, args ...interface{}) { l.log(msg, args); l.t.FailNow() }
