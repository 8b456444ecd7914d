package validator_test

import (
	"net/http"
	"testing"

	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/model"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enumPayload struct {
	Availability model.Availability `json:"availability" binding:"required,availability"`
	Status       *model.Status      `json:"status" binding:"omitnil,volunteer_status"`
	Name         string             `json:"name" binding:"required,min=3"`
}

func setup(t *testing.T) {
	t.Helper()
	require.NoError(t, validator.RegisterAll())
}

func TestEnumValidators(t *testing.T) {
	setup(t)
	v, err := validator.GetValidator()
	require.NoError(t, err)

	inactive := model.StatusInactive
	bogus := model.Status("archived")

	testCases := []struct {
		name    string
		payload enumPayload
		wantErr bool
	}{
		{"valid without status", enumPayload{Availability: model.AvailabilityWeekends, Name: "Ana"}, false},
		{"valid with status", enumPayload{Availability: model.AvailabilityFullTime, Status: &inactive, Name: "Ana"}, false},
		{"unknown availability", enumPayload{Availability: "midnight", Name: "Ana"}, true},
		{"unknown status", enumPayload{Availability: model.AvailabilityMorning, Status: &bogus, Name: "Ana"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.payload)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToErrorResponse_ReportsEveryField(t *testing.T) {
	setup(t)
	v, err := validator.GetValidator()
	require.NoError(t, err)

	// Given: two invalid fields
	err = v.Struct(enumPayload{Availability: "midnight", Name: "A"})
	require.Error(t, err)

	// When
	resp, ok := validator.ToErrorResponse(err)

	// Then: both are reported by their json names
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Status)
	assert.Equal(t, "ERROR-001", resp.Code)
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, "availability", resp.Errors[0].Field)
	assert.Contains(t, resp.Errors[0].Message, "full-time")
	assert.Equal(t, "name", resp.Errors[1].Field)
	assert.Equal(t, "must be at least 3 characters", resp.Errors[1].Message)
}

func TestToErrorResponse_NotValidationError(t *testing.T) {
	_, ok := validator.ToErrorResponse(assert.AnError)
	assert.False(t, ok)
}
