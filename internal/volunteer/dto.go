package volunteer

import (
	"time"

	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/model"
)

type CreateVolunteerRequest struct {
	Name         string             `json:"name" binding:"required,min=3,max=100"`
	Email        string             `json:"email" binding:"required,email"`
	Phone        string             `json:"phone" binding:"required,min=10"`
	DesiredRole  string             `json:"desired_role" binding:"required,min=3"`
	Availability model.Availability `json:"availability" binding:"required,availability"`
}

// UpdateVolunteerRequest is a partial update: a nil field is left untouched.
// Email, id and registration time are not part of the shape and cannot change.
type UpdateVolunteerRequest struct {
	Name         *string             `json:"name" binding:"omitnil,min=3,max=100"`
	Phone        *string             `json:"phone" binding:"omitnil,min=10"`
	DesiredRole  *string             `json:"desired_role" binding:"omitnil,min=3"`
	Availability *model.Availability `json:"availability" binding:"omitnil,availability"`
	Status       *model.Status       `json:"status" binding:"omitnil,volunteer_status"`
}

// ApplyTo overwrites every present field of v
func (r *UpdateVolunteerRequest) ApplyTo(v *model.Volunteer) {
	if r.Name != nil {
		v.Name = *r.Name
	}
	if r.Phone != nil {
		v.Phone = *r.Phone
	}
	if r.DesiredRole != nil {
		v.DesiredRole = *r.DesiredRole
	}
	if r.Availability != nil {
		v.Availability = *r.Availability
	}
	if r.Status != nil {
		v.Status = *r.Status
	}
}

type ListVolunteersRequest struct {
	Status       *model.Status       `form:"status" binding:"omitnil,volunteer_status"`
	Role         string              `form:"role"`
	Availability *model.Availability `form:"availability" binding:"omitnil,availability"`
}

// Filter converts the query into a repository filter
func (r *ListVolunteersRequest) Filter() Filter {
	return Filter{
		Status:       r.Status,
		Role:         r.Role,
		Availability: r.Availability,
	}
}

type VolunteerResponse struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	DesiredRole  string             `json:"desired_role"`
	Availability model.Availability `json:"availability"`
	Status       model.Status       `json:"status"`
	RegisteredAt time.Time          `json:"registered_at"`
}

func NewVolunteerResponse(v *model.Volunteer) *VolunteerResponse {
	return &VolunteerResponse{
		ID:           v.ID,
		Name:         v.Name,
		Email:        v.Email,
		Phone:        v.Phone,
		DesiredRole:  v.DesiredRole,
		Availability: v.Availability,
		Status:       v.Status,
		RegisteredAt: v.RegisteredAt,
	}
}
