package volunteer

import (
	"context"
	"fmt"
	"sync"

	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/model"
)

// MemoryRepository keeps records in an ordered slice with its own id sequence.
// Ids start at 1 and advance only on a successful Create.
type MemoryRepository struct {
	mu         sync.RWMutex
	volunteers []model.Volunteer
	nextID     int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.indexByEmail(email) >= 0, nil
}

func (r *MemoryRepository) Create(_ context.Context, v *model.Volunteer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexByEmail(v.Email) >= 0 {
		return fmt.Errorf("insert volunteer: %w", ErrEmailAlreadyExists)
	}

	v.ID = r.nextID
	r.nextID++
	r.volunteers = append(r.volunteers, *v)
	return nil
}

func (r *MemoryRepository) FindAll(_ context.Context, filter Filter) ([]model.Volunteer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Volunteer, 0, len(r.volunteers))
	for i := range r.volunteers {
		if filter.Matches(&r.volunteers[i]) {
			result = append(result, r.volunteers[i])
		}
	}
	return result, nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id int64) (*model.Volunteer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexByID(id)
	if i < 0 {
		return nil, fmt.Errorf("volunteer id=%d: %w", id, ErrVolunteerNotFound)
	}

	found := r.volunteers[i]
	return &found, nil
}

// Update replaces the mutable fields of the stored record; Email and RegisteredAt are kept
func (r *MemoryRepository) Update(_ context.Context, v *model.Volunteer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByID(v.ID)
	if i < 0 {
		return fmt.Errorf("volunteer id=%d: %w", v.ID, ErrVolunteerNotFound)
	}

	stored := &r.volunteers[i]
	stored.Name = v.Name
	stored.Phone = v.Phone
	stored.DesiredRole = v.DesiredRole
	stored.Availability = v.Availability
	stored.Status = v.Status
	return nil
}

func (r *MemoryRepository) indexByID(id int64) int {
	for i := range r.volunteers {
		if r.volunteers[i].ID == id {
			return i
		}
	}
	return -1
}

// indexByEmail is an exact, case-sensitive match over every record, inactive ones included
func (r *MemoryRepository) indexByEmail(email string) int {
	for i := range r.volunteers {
		if r.volunteers[i].Email == email {
			return i
		}
	}
	return -1
}

var _ Repository = (*MemoryRepository)(nil)
