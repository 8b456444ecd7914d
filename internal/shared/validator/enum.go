package validator

import (
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/model"
	"github.com/go-playground/validator/v10"
)

// ValidateAvailability accepts only the closed set of availability labels
func ValidateAvailability(fl validator.FieldLevel) bool {
	return model.Availability(fl.Field().String()).IsValid()
}

// ValidateStatus accepts only the closed set of volunteer status labels
func ValidateStatus(fl validator.FieldLevel) bool {
	return model.Status(fl.Field().String()).IsValid()
}
