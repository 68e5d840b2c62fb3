package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/aryanch/projtrack/core/person"
	"github.com/aryanch/projtrack/core/task"
)

// seed populates the database with sample persons and tasks covering the
// different risk scenarios. Existing data is kept unless force is set.
func (cli *commandLine) seed(force bool) error {
	ctx := context.Background()

	existing, err := cli.personRepo.QueryAllPersons(ctx)
	if err != nil {
		return errors.Wrap(err, "querying users")
	}
	if len(existing) > 0 {
		if !force {
			fmt.Printf("Found %d existing users. Use -force to re-seed.\n", len(existing))
			for i, p := range existing {
				fmt.Printf("  %d. %s (%s) - %s\n", i+1, p.Name, p.Email, p.Role)
			}
			return nil
		}
		if err = cli.taskRepo.DeleteAllTasks(ctx); err != nil {
			return errors.Wrap(err, "clearing tasks")
		}
		if err = cli.personRepo.DeleteAllPersons(ctx); err != nil {
			return errors.Wrap(err, "clearing users")
		}
		fmt.Println("Cleared existing data")
	}

	now := time.Now().UTC()
	persons := []person.Person{
		{Name: "Aryan Chaturvedi", Email: "aryan.chaturvedi@example.com", Role: person.RoleLearner},
		{Name: "Shivani Tiwari", Email: "shivani.tiwari@example.com", Role: person.RoleTeamLeader},
		{Name: "Indresh Upadhyay", Email: "indresh.upadhyay@example.com", Role: person.RoleProjectManager},
		{Name: "Abhishek Mishra", Email: "abhishek.mishra@example.com", Role: person.RoleLearner},
	}
	for i, p := range persons {
		p.CreatedAt, p.UpdatedAt = now, now
		if persons[i], err = cli.personRepo.CreatePerson(ctx, p); err != nil {
			return errors.Wrap(err, "creating user")
		}
	}
	fmt.Printf("Created %d sample users\n", len(persons))

	day := 24 * time.Hour
	tasks := []task.Task{
		{
			Title:       "Design Database Schema",
			Description: "Create ER diagram and design database tables",
			AssigneeID:  persons[0].ID,
			Deadline:    now.Add(-day), // overdue
			Status:      task.StatusInProgress,
			Progress:    60,
		},
		{
			Title:       "Implement User Authentication",
			Description: "Build login and registration system",
			AssigneeID:  persons[1].ID,
			Deadline:    now.Add(day), // low progress + near deadline
			Status:      task.StatusInProgress,
			Progress:    30,
		},
		{
			Title:       "Create API Endpoints",
			Description: "Develop REST API for task management",
			AssigneeID:  persons[2].ID,
			Deadline:    now.Add(3 * day),
			Status:      task.StatusInProgress,
			Progress:    45,
		},
		{
			Title:       "Write Unit Tests",
			Description: "Create test cases for all modules",
			AssigneeID:  persons[0].ID,
			Deadline:    now.Add(7 * day),
			Status:      task.StatusInProgress,
			Progress:    70,
		},
		{
			Title:       "Deploy Application",
			Description: "Deploy to production server",
			AssigneeID:  persons[1].ID,
			Deadline:    now.Add(14 * day),
			Status:      task.StatusNotStarted,
			Progress:    0,
		},
	}
	for _, t := range tasks {
		t.CreatedAt, t.UpdatedAt = now, now
		if _, err = cli.taskRepo.CreateTask(ctx, t); err != nil {
			return errors.Wrap(err, "creating task")
		}
	}
	fmt.Printf("Created %d sample tasks\n", len(tasks))

	return nil
}
