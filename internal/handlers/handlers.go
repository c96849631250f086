package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"strconv"

	apivalidator "jobboard/internal/api/validator"
	"jobboard/internal/api/response"

	"github.com/labstack/echo/v4"
)

// invalid translates a failed c.Validate call into the envelope's
// validation shape; anything that is not a field error surfaces as a
// bare 400 with the raw message.
func invalid(c echo.Context, err error) error {
	var ve apivalidator.ValidationErrors
	if errors.As(err, &ve) {
		return response.ValidationError(c, apivalidator.Format(ve))
	}
	return response.BadRequest(c, err.Error())
}

// requiredField is the single-field validation failure shape used when
// an id arrives via query string instead of a bound struct.
func requiredField(c echo.Context, field string) error {
	return response.ValidationError(c, map[string]string{
		field: "The " + field + " field is required.",
	})
}

func invalidField(c echo.Context, field, message string) error {
	return response.ValidationError(c, map[string]string{field: message})
}

// queryID reads a numeric id from the query string. ok is false when
// the parameter is absent or not a positive integer.
func queryID(c echo.Context, name string) (uint, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// pagination mirrors the ten-per-page listing shape used by the admin
// job list.
type pagination struct {
	CurrentPage int         `json:"current_page"`
	PerPage     int         `json:"per_page"`
	Total       int64       `json:"total"`
	Data        interface{} `json:"data"`
}

func pageParam(c echo.Context) int {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	return page
}

// readUpload pulls the bytes and metadata out of an optional multipart
// file field. A missing field returns nil bytes and no error.
func readUpload(c echo.Context, field string) ([]byte, *multipart.FileHeader, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil, nil
	}
	src, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, nil, err
	}
	return data, fileHeader, nil
}
