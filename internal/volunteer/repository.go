package volunteer

import (
	"context"
	"strings"

	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/model"
)

// Repository stores volunteer records in insertion order.
// FindByID and Update return ErrVolunteerNotFound for unknown ids;
// Create returns ErrEmailAlreadyExists when the email is taken.
type Repository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, v *model.Volunteer) error
	FindAll(ctx context.Context, filter Filter) ([]model.Volunteer, error)
	FindByID(ctx context.Context, id int64) (*model.Volunteer, error)
	Update(ctx context.Context, v *model.Volunteer) error
}

// Filter narrows a listing; zero-valued fields do not filter. Supplied fields combine with AND.
type Filter struct {
	Status       *model.Status
	Role         string // case-insensitive substring of DesiredRole
	Availability *model.Availability
}

func (f Filter) Matches(v *model.Volunteer) bool {
	if f.Status != nil && v.Status != *f.Status {
		return false
	}
	if f.Availability != nil && v.Availability != *f.Availability {
		return false
	}
	return f.matchesRole(v)
}

func (f Filter) matchesRole(v *model.Volunteer) bool {
	if f.Role == "" {
		return true
	}
	return strings.Contains(strings.ToLower(v.DesiredRole), strings.ToLower(f.Role))
}
