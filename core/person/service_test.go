package person_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aryanch/projtrack/core"
	"github.com/aryanch/projtrack/core/person"
	inmemdb "github.com/aryanch/projtrack/storage/database/inmem"
	testutil "github.com/aryanch/projtrack/tests"
)

func setup(t *testing.T) (*person.Service, person.Repository) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	repo := inmemdb.NewPersonRepository(db)
	return person.NewService(repo), repo
}

func TestServiceCreate(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	t.Run("role defaults to learner", func(t *testing.T) {
		p, err := svc.Create(ctx, person.NewPerson{Name: "Aryan Chaturvedi", Email: "aryan@example.com"})
		if err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
		if p.ID.IsZero() {
			t.Error("Create() did not set an id")
		}
		if p.Role != person.RoleLearner {
			t.Errorf("role = %q, want %q", p.Role, person.RoleLearner)
		}
	})

	t.Run("explicit role kept", func(t *testing.T) {
		p, err := svc.Create(ctx, person.NewPerson{
			Name:  "Shivani Tiwari",
			Email: "shivani@example.com",
			Role:  person.RoleTeamLeader,
		})
		if err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
		if p.Role != person.RoleTeamLeader {
			t.Errorf("role = %q, want %q", p.Role, person.RoleTeamLeader)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Create(ctx, person.NewPerson{Name: "Aryan C.", Email: "aryan@example.com"})
		vErr, ok := err.(*core.ValidationError)
		if !ok {
			t.Fatalf("Create() error = %v, want a validation error", err)
		}
		if len(vErr.Fields) != 1 || vErr.Fields[0].Field != "email" {
			t.Errorf("fields = %+v, want an email field error", vErr.Fields)
		}
	})
}

func TestServiceQueryAll(t *testing.T) {
	svc, repo := setup(t)

	testutil.CreatePerson(t, repo, "Shivani Tiwari", "shivani@example.com", person.RoleTeamLeader)
	testutil.CreatePerson(t, repo, "Abhishek Mishra", "abhishek@example.com", person.RoleLearner)
	testutil.CreatePerson(t, repo, "Indresh Upadhyay", "indresh@example.com", person.RoleProjectManager)

	persons, err := svc.QueryAll(context.Background())
	if err != nil {
		t.Fatalf("QueryAll() failed: %v", err)
	}
	wantNames := []string{"Abhishek Mishra", "Indresh Upadhyay", "Shivani Tiwari"}
	if len(persons) != len(wantNames) {
		t.Fatalf("got %d persons, want %d", len(persons), len(wantNames))
	}
	for i, name := range wantNames {
		if persons[i].Name != name {
			t.Errorf("persons[%d].Name = %q, want %q", i, persons[i].Name, name)
		}
	}
}

func TestServiceGetByID(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	usr := testutil.CreatePerson(t, repo, "Aryan Chaturvedi", "aryan@example.com", person.RoleLearner)

	got, err := svc.GetByID(ctx, usr.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if got.Email != usr.Email {
		t.Errorf("email = %q, want %q", got.Email, usr.Email)
	}

	if _, err = svc.GetByID(ctx, primitive.ObjectID{0xff}); errors.Cause(err) != person.ErrNotFound {
		t.Errorf("GetByID() error = %v, want %v", err, person.ErrNotFound)
	}
}
