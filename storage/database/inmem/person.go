package inmemdb

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aryanch/projtrack/core/person"
)

type personRepository struct {
	db *personTable
}

func NewPersonRepository(db *DB) person.Repository {
	return &personRepository{db: db.person}
}

func (repo *personRepository) query() []person.Person {
	persons := make([]person.Person, 0, len(repo.db.table))
	for _, p := range repo.db.table {
		persons = append(persons, *p)
	}
	return persons
}

func (repo *personRepository) CreatePerson(_ context.Context, p person.Person) (person.Person, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, existing := range repo.db.table {
		if existing.Email == p.Email {
			return person.Person{}, person.ErrEmailExists
		}
	}
	p.ID = primitive.NewObjectID()
	repo.db.table[p.ID] = &p
	return p, nil
}

func (repo *personRepository) QueryAllPersons(_ context.Context) ([]person.Person, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	persons := repo.query()
	sort.Slice(persons, func(i, j int) bool { return persons[i].Name < persons[j].Name })
	return persons, nil
}

func (repo *personRepository) GetPersonByID(_ context.Context, id primitive.ObjectID) (person.Person, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if p, ok := repo.db.table[id]; ok {
		return *p, nil
	}
	return person.Person{}, person.ErrNotFound
}

func (repo *personRepository) CountPersons(_ context.Context) (int64, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return int64(len(repo.db.table)), nil
}

func (repo *personRepository) DeleteAllPersons(_ context.Context) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table = make(map[primitive.ObjectID]*person.Person)
	return nil
}
