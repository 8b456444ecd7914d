package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/model"
	sharedError "github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/error"
	"github.com/go-playground/validator/v10"
)

// ToErrorResponse converts gin binding/validator errors into a standardized response.
// Every failing field is reported; Message carries the first one.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	if len(validationErrors) == 0 {
		return nil, false
	}

	fields := make([]sharedError.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, sharedError.FieldError{
			Field:   fe.Field(),
			Message: getErrorMessage(fe),
		})
	}

	resp := sharedError.ValidationFailed
	resp.Message = fmt.Sprintf("%s: %s", fields[0].Field, fields[0].Message)
	resp.Errors = fields
	return &resp, true
}

// FieldErrorResponse builds a validation response for a single field outside of struct binding (path params)
func FieldErrorResponse(field, message string) sharedError.ErrorResponse {
	resp := sharedError.ValidationFailed
	resp.Message = fmt.Sprintf("%s: %s", field, message)
	resp.Errors = []sharedError.FieldError{{Field: field, Message: message}}
	return resp
}

// getErrorMessage returns user-friendly error message for validation error
func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "availability":
		return "must be one of: " + joinLabels(model.Availabilities)
	case "volunteer_status":
		return "must be one of: " + joinLabels(model.Statuses)
	default:
		return fmt.Sprintf("'%s' is invalid", fe.Field())
	}
}

func joinLabels[T ~string](labels []T) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = string(l)
	}
	return strings.Join(parts, ", ")
}
