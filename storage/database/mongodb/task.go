package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aryanch/projtrack/core/person"
	"github.com/aryanch/projtrack/core/task"
	"github.com/aryanch/projtrack/storage/database"
)

type taskRepository struct {
	col       *mongo.Collection
	personCol *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) task.Repository {
	return &taskRepository{
		col:       db.Collection(database.TaskCollection),
		personCol: db.Collection(database.PersonCollection),
	}
}

// populateOne attaches the assignee to a single task.
func (repo *taskRepository) populateOne(ctx context.Context, t task.Task, full bool) (task.Task, error) {
	var p person.Person
	err := repo.personCol.FindOne(ctx, bson.M{"_id": t.AssigneeID}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// the referenced person may have been deleted; serve the task anyway
			return t, nil
		}
		return task.Task{}, errors.Wrap(err, "populating assignee")
	}
	t.Assignee = task.NewAssignee(p, full)
	return t, nil
}

// populateAll attaches assignees to a task list with a single keyed query.
func (repo *taskRepository) populateAll(ctx context.Context, tasks []task.Task) ([]task.Task, error) {
	if len(tasks) == 0 {
		return tasks, nil
	}

	ids := make([]primitive.ObjectID, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.AssigneeID)
	}
	cur, err := repo.personCol.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, errors.Wrap(err, "populating assignees")
	}
	var persons []person.Person
	if err = cur.All(ctx, &persons); err != nil {
		return nil, errors.Wrap(err, "decoding assignees")
	}

	byID := make(map[primitive.ObjectID]person.Person, len(persons))
	for _, p := range persons {
		byID[p.ID] = p
	}
	for i, t := range tasks {
		if p, ok := byID[t.AssigneeID]; ok {
			tasks[i].Assignee = task.NewAssignee(p, false)
		}
	}
	return tasks, nil
}

func (repo *taskRepository) CreateTask(ctx context.Context, t task.Task) (task.Task, error) {
	res, err := repo.col.InsertOne(ctx, t)
	if err != nil {
		return task.Task{}, errors.Wrap(err, "inserting task")
	}
	t.ID = res.InsertedID.(primitive.ObjectID)
	return repo.populateOne(ctx, t, true /* full */)
}

func (repo *taskRepository) QueryAllTasks(ctx context.Context) ([]task.Task, error) {
	cur, err := repo.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "querying tasks")
	}
	tasks := make([]task.Task, 0)
	if err = cur.All(ctx, &tasks); err != nil {
		return nil, errors.Wrap(err, "decoding tasks")
	}
	return repo.populateAll(ctx, tasks)
}

func (repo *taskRepository) GetTaskByID(ctx context.Context, id primitive.ObjectID) (task.Task, error) {
	var t task.Task
	if err := repo.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return task.Task{}, task.ErrNotFound
		}
		return task.Task{}, errors.Wrap(err, "getting task")
	}
	return repo.populateOne(ctx, t, true /* full */)
}

func (repo *taskRepository) UpdateTask(ctx context.Context, id primitive.ObjectID, ut task.UpdateTask) (task.Task, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if ut.Title != nil {
		set["title"] = *ut.Title
	}
	if ut.Description != nil {
		set["description"] = *ut.Description
	}
	if ut.AssignedTo != nil {
		assigneeID, err := primitive.ObjectIDFromHex(*ut.AssignedTo)
		if err != nil {
			return task.Task{}, errors.Wrap(err, "parsing assignee id")
		}
		set["assigned_to"] = assigneeID
	}
	if ut.Deadline != nil {
		set["deadline"] = *ut.Deadline
	}
	if ut.Status != nil {
		set["status"] = *ut.Status
	}
	if ut.Progress != nil {
		set["progress"] = *ut.Progress
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var t task.Task
	err := repo.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&t)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return task.Task{}, task.ErrNotFound
		}
		return task.Task{}, errors.Wrap(err, "updating task")
	}
	return repo.populateOne(ctx, t, true /* full */)
}

func (repo *taskRepository) DeleteTask(ctx context.Context, id primitive.ObjectID) (task.Task, error) {
	var t task.Task
	if err := repo.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return task.Task{}, task.ErrNotFound
		}
		return task.Task{}, errors.Wrap(err, "deleting task")
	}
	return repo.populateOne(ctx, t, true /* full */)
}

func (repo *taskRepository) CountTasks(ctx context.Context) (int64, error) {
	count, err := repo.col.CountDocuments(ctx, bson.M{})
	return count, errors.Wrap(err, "counting tasks")
}

func (repo *taskRepository) DeleteAllTasks(ctx context.Context) error {
	_, err := repo.col.DeleteMany(ctx, bson.M{})
	return errors.Wrap(err, "deleting tasks")
}
