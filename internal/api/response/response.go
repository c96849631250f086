// Package response implements the API's body-level envelope. Every
// business response travels as HTTP 200; the real status lives in the
// body's status field, which clients depend on. Only unmatched routes
// and disallowed methods use real HTTP status codes.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the wire shape of every response: errors is present only
// on failure with no data, data only on success, never both.
type Envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func build(status int, message string, errs, data interface{}) Envelope {
	env := Envelope{Status: status, Message: message}
	if data == nil && errs != nil {
		env.Errors = errs
	} else if errs == nil && data != nil {
		env.Data = data
	}
	return env
}

// JSON writes the envelope with transport status 200.
func JSON(c echo.Context, status int, message string, errs, data interface{}) error {
	return c.JSON(http.StatusOK, build(status, message, errs, data))
}

// OK is a success envelope with an optional payload.
func OK(c echo.Context, message string, data interface{}) error {
	return JSON(c, http.StatusOK, message, nil, data)
}

// ValidationError carries a field error map under status 400.
func ValidationError(c echo.Context, errs interface{}) error {
	return JSON(c, http.StatusBadRequest, "Validation Error", errs, nil)
}

// BadRequest is a 400 envelope with a bare message.
func BadRequest(c echo.Context, message string) error {
	return JSON(c, http.StatusBadRequest, message, nil, nil)
}

// Unauthorized is the generic authorization failure: it never reveals
// which check denied the request.
func Unauthorized(c echo.Context) error {
	return JSON(c, http.StatusUnauthorized, "Unauthorized", nil, nil)
}

// NoPermission is the gate's denial envelope.
func NoPermission(c echo.Context) error {
	return JSON(c, http.StatusUnauthorized, "Don't have permission", nil, nil)
}

// Transport writes an envelope with a real HTTP status code. Reserved
// for route-level failures (404 unmatched route, 405 bad method).
func Transport(c echo.Context, status int, message string, errs interface{}) error {
	return c.JSON(status, build(status, message, errs, nil))
}
