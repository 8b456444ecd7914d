package handler

import (
	"strconv"

	sharedError "github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// BindJSON parses and validates JSON request body
// Returns true if binding succeeded, false if failed (response already sent)
//
// Usage:
//
//	var req CreateVolunteerRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	return bind(c, c.ShouldBindJSON(obj))
}

// BindQuery parses and validates query string parameters, same contract as BindJSON
func BindQuery(c *gin.Context, obj any) bool {
	return bind(c, c.ShouldBindQuery(obj))
}

func bind(c *gin.Context, err error) bool {
	if err == nil {
		return true
	}

	// Add error to context for middleware logging
	c.Error(err)

	// Check if it's a validation error
	if resp, ok := validator.ToErrorResponse(err); ok {
		c.JSON(resp.Status, resp)
	} else {
		// JSON parsing error or other binding errors
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
	}
	return false
}

// ParamInt64 reads an integer path parameter
// Returns false with a validation response already sent when the value is not an integer
func ParamInt64(c *gin.Context, name string) (int64, bool) {
	value, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.Error(err)
		resp := validator.FieldErrorResponse(name, "value is not a valid integer")
		c.JSON(resp.Status, resp)
		return 0, false
	}
	return value, true
}

// RespondError sends an error response with logging
//
// Usage:
//
//	if err := service.DoSomething(); err != nil {
//	    handler.RespondError(c, err, sharedError.InternalServerError)
//	    return
//	}
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	// Add error to context for middleware logging
	c.Error(err)

	// Send error response
	c.JSON(errResp.Status, errResp)
}

// RespondDomainError resolves a registered domain error, falling back to InternalServerError
func RespondDomainError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		RespondError(c, err, resp)
		return
	}

	RespondError(c, err, sharedError.InternalServerError)
}
