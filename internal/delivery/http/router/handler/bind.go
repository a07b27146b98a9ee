package handler

import (
	"prepmap/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// bindRequest binds and validates req. When it reports false the 400
// response has been written and err is what the handler should return.
func bindRequest(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BadRequest(c, "INVALID_INPUT", "Invalid request parameters")
	}
	if err := c.Validate(req); err != nil {
		return false, response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	return true, nil
}
