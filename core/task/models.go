package task

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aryanch/projtrack/core"
	"github.com/aryanch/projtrack/core/person"
)

// Statuses
const (
	StatusNotStarted = "not-started"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

var AllStatuses = []string{StatusNotStarted, StatusInProgress, StatusCompleted}

// Task is a unit of work assigned to a Person. Status and Progress are
// independently settable; they are not cross-validated.
type Task struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	AssigneeID  primitive.ObjectID `json:"-" bson:"assigned_to"`
	Assignee    *Assignee          `json:"assignedTo,omitempty" bson:"-"`
	Deadline    time.Time          `json:"deadline" bson:"deadline"`
	Status      string             `json:"status" bson:"status"`
	Progress    int                `json:"progress" bson:"progress"`    // 0 - 100
	CreatedAt   time.Time          `json:"createdAt" bson:"created_at"` // UTC
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updated_at"` // UTC
}

func (t Task) IsCompleted() bool { return t.Status == StatusCompleted }

// Assignee is the populated projection of the task's Person reference.
// List responses carry name and role only; detail responses add the email.
type Assignee struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email,omitempty"`
	Role  string             `json:"role"`
}

// NewAssignee projects a Person onto a task. The email is only kept for
// detail (full) views.
func NewAssignee(p person.Person, full bool) *Assignee {
	a := &Assignee{ID: p.ID, Name: p.Name, Role: p.Role}
	if full {
		a.Email = p.Email
	}
	return a
}

// NewTask contains information needed to create a new Task.
type NewTask struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	AssignedTo  string    `json:"assignedTo" validate:"required,objectid"`
	Deadline    time.Time `json:"deadline" validate:"required"`
	Status      string    `json:"status" validate:"omitempty,taskstatus"`
	Progress    *int      `json:"progress" validate:"omitempty,gte=0,lte=100"`
}

func (nt *NewTask) Validate(validate *validator.Validate, _ ut.Translator) error {
	nt.Title = core.CleanString(nt.Title)
	nt.Description = core.CleanString(nt.Description)
	nt.Status = core.CleanString(nt.Status, true /* lower */)
	return validate.Struct(nt)
}

// UpdateTask defines what information may be provided to modify an existing
// Task. Nil fields are left untouched.
type UpdateTask struct {
	Title       *string    `json:"title" validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	AssignedTo  *string    `json:"assignedTo" validate:"omitempty,objectid"`
	Deadline    *time.Time `json:"deadline"`
	Status      *string    `json:"status" validate:"omitempty,taskstatus"`
	Progress    *int       `json:"progress" validate:"omitempty,gte=0,lte=100"`
}

func (ut_ *UpdateTask) Validate(validate *validator.Validate, _ ut.Translator) error {
	if ut_.Title != nil {
		title := core.CleanString(*ut_.Title)
		ut_.Title = &title
	}
	if ut_.Description != nil {
		desc := core.CleanString(*ut_.Description)
		ut_.Description = &desc
	}
	if ut_.Status != nil {
		status := core.CleanString(*ut_.Status, true /* lower */)
		ut_.Status = &status
	}
	return validate.Struct(ut_)
}

func (ut_ UpdateTask) IsEmpty() bool {
	return ut_.Title == nil && ut_.Description == nil && ut_.AssignedTo == nil &&
		ut_.Deadline == nil && ut_.Status == nil && ut_.Progress == nil
}
