package volunteer

import (
	"net/http"

	sharedError "github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/error"
)

const (
	volunteerNotFound  = "VOLUNTEER_NOT_FOUND"  // errInfo
	emailAlreadyExists = "EMAIL_ALREADY_EXISTS" // errInfo
)

var (
	ErrVolunteerNotFound  = sharedError.NewDomainError(volunteerNotFound)
	ErrEmailAlreadyExists = sharedError.NewDomainError(emailAlreadyExists)
)

func init() {
	sharedError.RegisterDomainErrorResponse(volunteerNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "VOLUNTEER-001",
		Message: "Volunteer not found.",
	})

	sharedError.RegisterDomainErrorResponse(emailAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "VOLUNTEER-002",
		Message: "Email already registered.",
	})
}
