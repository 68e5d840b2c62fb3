package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	endpointCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "projtrack_endpoint_calls_total",
		Help: "Total number of calls per endpoint.",
	}, []string{"method", "path"})
	endpointErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "projtrack_endpoint_errors_total",
		Help: "Total number of errored calls per endpoint.",
	}, []string{"method", "path"})
)

func init() {
	prometheus.MustRegister(endpointCalls, endpointErrors)
}

// metricsMiddleware counts calls and errors per route.
func metricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			method, path := ctx.Request().Method, ctx.Path()
			endpointCalls.WithLabelValues(method, path).Inc()

			err := next(ctx)
			if err != nil {
				endpointErrors.WithLabelValues(method, path).Inc()
			}
			return err
		}
	}
}
