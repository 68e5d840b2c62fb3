package echoapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aryanch/projtrack/core/person"
	"github.com/aryanch/projtrack/core/task"
)

type personApi struct {
	svc     *person.Service
	taskSvc *task.Service
}

func registerPersonAPI(g *echo.Group, svc *person.Service, taskSvc *task.Service) {
	api := personApi{svc: svc, taskSvc: taskSvc}

	ug := g.Group("/users")
	ug.GET("/check", api.check)
	ug.GET("", api.list)
	ug.GET("/:id", api.retrieve)
}

// Handlers

// list serves the minimal projection used by assignee dropdowns.
func (api *personApi) list(ctx echo.Context) error {
	persons, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying users")
	}

	publics := make([]person.Public, 0, len(persons))
	for _, p := range persons {
		publics = append(publics, p.Public())
	}

	if len(publics) == 0 {
		return respondList(ctx, http.StatusOK, publics, 0, "No users found. Please seed the database.")
	}
	return respondList(ctx, http.StatusOK, publics, len(publics))
}

func (api *personApi) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	p, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "getting user")
	}
	return respond(ctx, http.StatusOK, p)
}

// check reports whether the database still needs seeding.
func (api *personApi) check(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	userCount, err := api.svc.Count(reqCtx)
	if err != nil {
		return errors.Wrap(err, "counting users")
	}
	taskCount, err := api.taskSvc.Count(reqCtx)
	if err != nil {
		return errors.Wrap(err, "counting tasks")
	}

	msg := fmt.Sprintf("Found %d users and %d tasks", userCount, taskCount)
	if userCount == 0 {
		msg = "No users found. Run: admin seed"
	}
	return respond(ctx, http.StatusOK, echo.Map{
		"users":        userCount,
		"tasks":        taskCount,
		"needsSeeding": userCount == 0,
		"message":      msg,
	})
}
