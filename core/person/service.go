package person

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aryanch/projtrack/core"
)

var (
	// errors
	ErrNotFound    = errors.New("user not found")
	ErrEmailExists = errors.New("a user with this email already exists")
)

type (
	Repository interface {
		CreatePerson(ctx context.Context, p Person) (Person, error)
		// QueryAllPersons returns all persons sorted by name.
		QueryAllPersons(ctx context.Context) ([]Person, error)
		GetPersonByID(ctx context.Context, id primitive.ObjectID) (Person, error)
		CountPersons(ctx context.Context) (int64, error)
		DeleteAllPersons(ctx context.Context) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, np NewPerson) (Person, error) {
	now := time.Now().UTC()
	p := Person{
		Name:      np.Name,
		Email:     np.Email,
		Role:      np.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if p.Role == "" {
		p.Role = RoleLearner
	}

	p, err := svc.repo.CreatePerson(ctx, p)
	if err != nil {
		if errors.Cause(err) == ErrEmailExists {
			return Person{}, core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return Person{}, err
	}
	return p, nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Person, error) {
	return svc.repo.QueryAllPersons(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id primitive.ObjectID) (Person, error) {
	return svc.repo.GetPersonByID(ctx, id)
}

func (svc *Service) Count(ctx context.Context) (int64, error) {
	return svc.repo.CountPersons(ctx)
}
