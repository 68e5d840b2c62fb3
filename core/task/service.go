package task

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aryanch/projtrack/core/person"
)

var (
	// errors
	ErrNotFound = errors.New("task not found")
)

type (
	Repository interface {
		CreateTask(ctx context.Context, t Task) (Task, error)
		// QueryAllTasks returns all tasks with their assignee's name and
		// role populated.
		QueryAllTasks(ctx context.Context) ([]Task, error)
		// GetTaskByID populates the assignee's name, email and role.
		GetTaskByID(ctx context.Context, id primitive.ObjectID) (Task, error)
		// UpdateTask merges the set fields of `ut` into the stored task
		// and returns the updated document.
		UpdateTask(ctx context.Context, id primitive.ObjectID, ut UpdateTask) (Task, error)
		// DeleteTask removes the task and returns the deleted document.
		DeleteTask(ctx context.Context, id primitive.ObjectID) (Task, error)
		CountTasks(ctx context.Context) (int64, error)
		DeleteAllTasks(ctx context.Context) error
	}

	Service struct {
		repo       Repository
		personRepo person.Repository
	}
)

func NewService(repo Repository, personRepo person.Repository) *Service {
	return &Service{repo: repo, personRepo: personRepo}
}

// Create verifies that the referenced assignee exists before saving; a missing
// assignee surfaces as person.ErrNotFound, not as a validation error.
func (svc *Service) Create(ctx context.Context, nt NewTask) (Task, error) {
	assigneeID, err := primitive.ObjectIDFromHex(nt.AssignedTo)
	if err != nil {
		return Task{}, errors.Wrap(person.ErrNotFound, nt.AssignedTo)
	}
	if _, err = svc.personRepo.GetPersonByID(ctx, assigneeID); err != nil {
		return Task{}, err
	}

	now := time.Now().UTC()
	t := Task{
		Title:       nt.Title,
		Description: nt.Description,
		AssigneeID:  assigneeID,
		Deadline:    nt.Deadline,
		Status:      nt.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if t.Status == "" {
		t.Status = StatusNotStarted
	}
	if nt.Progress != nil {
		t.Progress = *nt.Progress
	}
	return svc.repo.CreateTask(ctx, t)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Task, error) {
	return svc.repo.QueryAllTasks(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id primitive.ObjectID) (Task, error) {
	return svc.repo.GetTaskByID(ctx, id)
}

// Update applies a partial update. The assignee reference is only checked for
// well-formedness here, not for existence; see Create.
func (svc *Service) Update(ctx context.Context, id primitive.ObjectID, ut UpdateTask) (Task, error) {
	if ut.IsEmpty() {
		return svc.repo.GetTaskByID(ctx, id)
	}
	return svc.repo.UpdateTask(ctx, id, ut)
}

func (svc *Service) Delete(ctx context.Context, id primitive.ObjectID) (Task, error) {
	return svc.repo.DeleteTask(ctx, id)
}

func (svc *Service) Count(ctx context.Context) (int64, error) {
	return svc.repo.CountTasks(ctx)
}
