package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aryanch/projtrack/core"
	"github.com/aryanch/projtrack/core/task"
)

type taskApi struct {
	svc        *task.Service
	validate   *validator.Validate
	translator ut.Translator
}

func registerTaskAPI(g *echo.Group, svc *task.Service, validate *validator.Validate, translator ut.Translator) {
	api := taskApi{
		svc:        svc,
		validate:   validate,
		translator: translator,
	}

	tg := g.Group("/tasks")
	tg.GET("", api.list)
	tg.POST("", api.create)
	tg.GET("/:id", api.retrieve)
	tg.PUT("/:id", api.update)
	tg.DELETE("/:id", api.destroy)
}

// Handlers

func (api *taskApi) list(ctx echo.Context) error {
	tasks, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying tasks")
	}
	return respondList(ctx, http.StatusOK, tasks, len(tasks))
}

func (api *taskApi) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	t, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "getting task")
	}
	return respond(ctx, http.StatusOK, t)
}

func (api *taskApi) create(ctx echo.Context) error {
	var data task.NewTask
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTask")
	}
	if err := data.Validate(api.validate, api.translator); err != nil {
		return err
	}

	t, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating task")
	}
	return respond(ctx, http.StatusCreated, t)
}

func (api *taskApi) update(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var data task.UpdateTask
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateTask")
	}
	if err := data.Validate(api.validate, api.translator); err != nil {
		return err
	}

	t, err := api.svc.Update(ctx.Request().Context(), id, data)
	if err != nil {
		return errors.Wrap(err, "updating task")
	}
	return respond(ctx, http.StatusOK, t)
}

func (api *taskApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	t, err := api.svc.Delete(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "deleting task")
	}
	return respondMessage(ctx, http.StatusOK, t, "Task deleted successfully")
}

// pathID parses the `:id` path param; a malformed id is a validation error.
func pathID(ctx echo.Context) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		return primitive.NilObjectID, core.NewValidationError(errors.New("invalid id"),
			core.FieldError{Field: "id", Error: "must be a valid object id"})
	}
	return id, nil
}
