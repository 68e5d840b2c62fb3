package inmemdb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aryanch/projtrack/core/task"
)

type taskRepository struct {
	db        *taskTable
	personTbl *personTable
}

func NewTaskRepository(db *DB) task.Repository {
	return &taskRepository{db: db.task, personTbl: db.person}
}

// populate attaches the assignee to `t`. Full projections carry the email;
// list projections drop it.
func (repo *taskRepository) populate(t task.Task, full bool) task.Task {
	repo.personTbl.RLock()
	defer repo.personTbl.RUnlock()

	if p, ok := repo.personTbl.table[t.AssigneeID]; ok {
		t.Assignee = task.NewAssignee(*p, full)
	}
	return t
}

func (repo *taskRepository) CreateTask(_ context.Context, t task.Task) (task.Task, error) {
	repo.db.Lock()
	t.ID = primitive.NewObjectID()
	repo.db.table[t.ID] = &t
	repo.db.order = append(repo.db.order, t.ID)
	repo.db.Unlock()

	return repo.populate(t, true /* full */), nil
}

func (repo *taskRepository) QueryAllTasks(_ context.Context) ([]task.Task, error) {
	repo.db.RLock()
	tasks := make([]task.Task, 0, len(repo.db.table))
	for _, id := range repo.db.order {
		if t, ok := repo.db.table[id]; ok {
			tasks = append(tasks, *t)
		}
	}
	repo.db.RUnlock()

	for i, t := range tasks {
		tasks[i] = repo.populate(t, false)
	}
	return tasks, nil
}

func (repo *taskRepository) GetTaskByID(_ context.Context, id primitive.ObjectID) (task.Task, error) {
	repo.db.RLock()
	t, ok := repo.db.table[id]
	repo.db.RUnlock()

	if !ok {
		return task.Task{}, task.ErrNotFound
	}
	return repo.populate(*t, true /* full */), nil
}

func (repo *taskRepository) UpdateTask(_ context.Context, id primitive.ObjectID, ut task.UpdateTask) (task.Task, error) {
	repo.db.Lock()

	orig, ok := repo.db.table[id]
	if !ok {
		repo.db.Unlock()
		return task.Task{}, task.ErrNotFound
	}

	// only save set fields
	if ut.Title != nil {
		orig.Title = *ut.Title
	}
	if ut.Description != nil {
		orig.Description = *ut.Description
	}
	if ut.AssignedTo != nil {
		assigneeID, err := primitive.ObjectIDFromHex(*ut.AssignedTo)
		if err != nil {
			repo.db.Unlock()
			return task.Task{}, err
		}
		orig.AssigneeID = assigneeID
	}
	if ut.Deadline != nil {
		orig.Deadline = *ut.Deadline
	}
	if ut.Status != nil {
		orig.Status = *ut.Status
	}
	if ut.Progress != nil {
		orig.Progress = *ut.Progress
	}
	orig.UpdatedAt = time.Now().UTC()

	updated := *orig
	repo.db.Unlock()

	return repo.populate(updated, true /* full */), nil
}

func (repo *taskRepository) DeleteTask(_ context.Context, id primitive.ObjectID) (task.Task, error) {
	repo.db.Lock()

	t, ok := repo.db.table[id]
	if !ok {
		repo.db.Unlock()
		return task.Task{}, task.ErrNotFound
	}
	deleted := *t
	delete(repo.db.table, id)
	for i, oid := range repo.db.order {
		if oid == id {
			repo.db.order = append(repo.db.order[:i], repo.db.order[i+1:]...)
			break
		}
	}
	repo.db.Unlock()

	return repo.populate(deleted, true /* full */), nil
}

func (repo *taskRepository) CountTasks(_ context.Context) (int64, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return int64(len(repo.db.table)), nil
}

func (repo *taskRepository) DeleteAllTasks(_ context.Context) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table = make(map[primitive.ObjectID]*task.Task)
	repo.db.order = nil
	return nil
}
