package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ValidationErrors wraps the validator's ValidationErrors
type ValidationErrors []playgroundvalidator.FieldError

// CustomValidator wraps go-playground/validator
type CustomValidator struct {
	validator *playgroundvalidator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() echo.Validator {
	v := playgroundvalidator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Domain enum tags
	err := v.RegisterValidation("publish_status", validatePublishStatus)
	if err != nil {
		return nil
	}
	err = v.RegisterValidation("application_status", validateApplicationStatus)
	if err != nil {
		return nil
	}
	err = v.RegisterValidation("experience_years", validateExperienceYears)
	if err != nil {
		return nil
	}

	return &CustomValidator{validator: v}
}

func validatePublishStatus(fl playgroundvalidator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "pending" || s == "rejected" || s == "under review" || s == "accepted"
}

func validateApplicationStatus(fl playgroundvalidator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "pending" || s == "rejected" || s == "under review" || s == "accepted"
}

func validateExperienceYears(fl playgroundvalidator.FieldLevel) bool {
	switch fl.Field().String() {
	case "less than 1 year", "1-3 years", "3-5 years", "5-7 years", "more than 7 years":
		return true
	default:
		return false
	}
}

// Validate implements echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		var validationErrors playgroundvalidator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return ValidationErrors(validationErrors)
		}
		return err
	}
	return nil
}

// Error implements the error interface for ValidationErrors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}
	var fields []string
	for _, err := range ve {
		fields = append(fields, err.Field())
	}
	return fmt.Sprintf("validation failed on fields: %s", strings.Join(fields, ", "))
}

// Format renders the errors as the field map carried in the response
// envelope's errors slot.
func Format(ve ValidationErrors) map[string]string {
	errMap := make(map[string]string)
	for _, err := range ve {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		switch tag {
		case "required":
			errMap[field] = fmt.Sprintf("The %s field is required.", field)
		case "email":
			errMap[field] = fmt.Sprintf("The %s must be a valid email address.", field)
		case "min":
			errMap[field] = fmt.Sprintf("The %s must be at least %s characters.", field, param)
		case "max":
			errMap[field] = fmt.Sprintf("The %s may not be greater than %s characters.", field, param)
		case "eqfield":
			errMap[field] = fmt.Sprintf("The %s confirmation does not match.", field)
		case "oneof":
			errMap[field] = fmt.Sprintf("The selected %s is invalid.", field)
		case "publish_status":
			errMap[field] = fmt.Sprintf("The %s must be one of: pending, rejected, under review, accepted.", field)
		case "application_status":
			errMap[field] = fmt.Sprintf("The %s must be one of: pending, rejected, under review, accepted.", field)
		case "experience_years":
			errMap[field] = fmt.Sprintf("The selected %s is invalid.", field)
		default:
			errMap[field] = fmt.Sprintf("The %s field failed validation: %s.", field, tag)
		}
	}
	return errMap
}
