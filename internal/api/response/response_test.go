package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, fn func(c echo.Context) error) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, fn(c))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestEnvelopeAlwaysTravelsAsHTTP200(t *testing.T) {
	rec, body := write(t, func(c echo.Context) error {
		return JSON(c, 401, "Bad credentials", nil, nil)
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 401, body["status"])
	assert.Equal(t, "Bad credentials", body["message"])
}

func TestEnvelopeNeverCarriesErrorsAndData(t *testing.T) {
	// errors only when there is no data
	_, body := write(t, func(c echo.Context) error {
		return JSON(c, 400, "Validation Error", map[string]string{"name": "required"}, nil)
	})
	assert.Contains(t, body, "errors")
	assert.NotContains(t, body, "data")

	// data only when there are no errors
	_, body = write(t, func(c echo.Context) error {
		return JSON(c, 200, "Done", nil, map[string]string{"token": "abc"})
	})
	assert.Contains(t, body, "data")
	assert.NotContains(t, body, "errors")

	// both supplied: neither wins, the envelope stays bare
	_, body = write(t, func(c echo.Context) error {
		return JSON(c, 200, "Done", map[string]string{"x": "y"}, map[string]string{"a": "b"})
	})
	assert.NotContains(t, body, "errors")
	assert.NotContains(t, body, "data")
}

func TestTransportUsesRealStatusCodes(t *testing.T) {
	rec, body := write(t, func(c echo.Context) error {
		return Transport(c, http.StatusNotFound, "Route not found", nil)
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.EqualValues(t, 404, body["status"])

	rec, _ = write(t, func(c echo.Context) error {
		return Transport(c, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHelperMessages(t *testing.T) {
	_, body := write(t, func(c echo.Context) error { return Unauthorized(c) })
	assert.Equal(t, "Unauthorized", body["message"])
	assert.EqualValues(t, 401, body["status"])

	_, body = write(t, func(c echo.Context) error { return NoPermission(c) })
	assert.Equal(t, "Don't have permission", body["message"])

	_, body = write(t, func(c echo.Context) error { return ValidationError(c, map[string]string{"email": "bad"}) })
	assert.Equal(t, "Validation Error", body["message"])
	assert.EqualValues(t, 400, body["status"])
}
