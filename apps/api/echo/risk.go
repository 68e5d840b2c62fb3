package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aryanch/projtrack/core/dashboard"
	"github.com/aryanch/projtrack/core/risk"
	"github.com/aryanch/projtrack/core/task"
)

type riskApi struct {
	taskSvc *task.Service
}

func registerRiskAPI(g *echo.Group, taskSvc *task.Service) {
	api := riskApi{taskSvc: taskSvc}

	g.GET("/risk/project", api.project)
	g.GET("/dashboard", api.dashboard)
}

// Handlers

// project serves the aggregate risk assessment over all tasks.
func (api *riskApi) project(ctx echo.Context) error {
	tasks, err := api.taskSvc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying tasks")
	}
	return respond(ctx, http.StatusOK, risk.Assess(tasks))
}

// dashboard serves the summary statistics.
func (api *riskApi) dashboard(ctx echo.Context) error {
	tasks, err := api.taskSvc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying tasks")
	}
	return respond(ctx, http.StatusOK, dashboard.Build(tasks))
}
