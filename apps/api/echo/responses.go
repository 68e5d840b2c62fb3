package echoapi

import "github.com/labstack/echo/v4"

// Response is the envelope wrapping every API payload.
type Response struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func respond(ctx echo.Context, code int, data interface{}) error {
	return ctx.JSON(code, Response{Success: true, Data: data})
}

func respondMessage(ctx echo.Context, code int, data interface{}, msg string) error {
	return ctx.JSON(code, Response{Success: true, Data: data, Message: msg})
}

// respondList includes the list length in the envelope.
func respondList(ctx echo.Context, code int, data interface{}, count int, msg ...string) error {
	resp := Response{Success: true, Count: &count, Data: data}
	if len(msg) > 0 {
		resp.Message = msg[0]
	}
	return ctx.JSON(code, resp)
}
