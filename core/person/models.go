package person

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aryanch/projtrack/core"
)

// Roles
const (
	RoleLearner        = "learner"
	RoleTeamLeader     = "team-leader"
	RoleProjectManager = "project-manager"
)

var AllRoles = []string{RoleLearner, RoleTeamLeader, RoleProjectManager}

// Person is anyone a task can be assigned to. People are created at seed or
// registration time and are never updated afterwards.
type Person struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email,omitempty" bson:"email"`
	Role      string             `json:"role" bson:"role"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"` // UTC
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"` // UTC
}

// Public is the minimal projection served to assignee dropdowns.
type Public struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
	Role string             `json:"role"`
}

func (p Person) Public() Public {
	return Public{ID: p.ID, Name: p.Name, Role: p.Role}
}

// NewPerson contains information needed to create a new Person.
type NewPerson struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,personrole"`
}

func (np *NewPerson) Validate(validate *validator.Validate, _ ut.Translator) error {
	np.Name = core.CleanString(np.Name)
	np.Email = core.CleanString(np.Email, true /* lower */)
	np.Role = core.CleanString(np.Role, true /* lower */)
	return validate.Struct(np)
}
