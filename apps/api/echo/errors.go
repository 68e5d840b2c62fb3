package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aryanch/projtrack/core"
	"github.com/aryanch/projtrack/core/person"
	"github.com/aryanch/projtrack/core/task"
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that translates
// our errors into the response envelope: not-found -> 404, validation -> 400,
// anything else -> 500 with the underlying error text.
// signalShutdown is called in order to gracefully shut the server down
// whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		resp := Response{Success: false}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			resp.Message = httpErrMessage(origErr)
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(translator)
			}
			code = http.StatusBadRequest
			resp.Message = "Validation failed"
			resp.Error = fldErrs
		case *core.ValidationError:
			code = http.StatusBadRequest
			resp.Message = "Validation failed"
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				resp.Error = fldErrs
			} else {
				resp.Error = origErr.Error()
			}
		default:
			switch origErr {
			case task.ErrNotFound:
				code = http.StatusNotFound
				resp.Message = "Task not found"
			case person.ErrNotFound:
				code = http.StatusNotFound
				resp.Message = "User not found"
			default: // any other error is a server error
				code = http.StatusInternalServerError
				resp.Message = "Internal server error"
				resp.Error = err.Error()

				logger.Error(resp.Message, errors.Wrap(err, resp.Message))

				// shutting down...
				if core.IsShutdown(err) {
					signalShutdown()
				}
			}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead {
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, resp)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}

func httpErrMessage(err *echo.HTTPError) string {
	if msg, ok := err.Message.(string); ok {
		return msg
	}
	return http.StatusText(err.Code)
}
