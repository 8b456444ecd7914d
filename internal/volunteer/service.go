package volunteer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/model"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/metrics"
)

// VolunteerService implements registration, listing, lookup, partial update and soft delete.
// Writes are serialized so the email check and the insert cannot interleave.
type VolunteerService struct {
	repository Repository
	metrics    *metrics.Metrics
	now        func() time.Time

	writeMu sync.Mutex
}

type Option func(*VolunteerService)

// WithClock overrides the registration timestamp source
func WithClock(now func() time.Time) Option {
	return func(s *VolunteerService) {
		s.now = now
	}
}

func NewVolunteerService(repository Repository, m *metrics.Metrics, opts ...Option) *VolunteerService {
	s := &VolunteerService{
		repository: repository,
		metrics:    m,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *VolunteerService) Create(ctx context.Context, request *CreateVolunteerRequest) (*VolunteerResponse, error) {
	log := logger.FromContext(ctx)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	exists, err := s.repository.ExistsByEmail(ctx, request.Email)
	if err != nil {
		log.Error("Failed to check email existence", "error", err)
		return nil, fmt.Errorf("check email existence: %w", err)
	}
	if exists {
		log.Warn("Volunteer email already registered", "email", logger.MaskEmail(request.Email))
		return nil, fmt.Errorf("create volunteer: %w", ErrEmailAlreadyExists)
	}

	volunteer := model.NewVolunteer(
		request.Name,
		request.Email,
		request.Phone,
		request.DesiredRole,
		request.Availability,
		s.now(),
	)
	if err := s.repository.Create(ctx, volunteer); err != nil {
		log.Error("Failed to create volunteer", "error", err)
		return nil, fmt.Errorf("create volunteer: %w", err)
	}

	s.metrics.IncrementVolunteersCreated()
	log.Info("Volunteer created", "id", volunteer.ID, "email", logger.MaskEmail(volunteer.Email))

	return NewVolunteerResponse(volunteer), nil
}

func (s *VolunteerService) List(ctx context.Context, request *ListVolunteersRequest) ([]*VolunteerResponse, error) {
	volunteers, err := s.repository.FindAll(ctx, request.Filter())
	if err != nil {
		return nil, fmt.Errorf("list volunteers: %w", err)
	}

	response := make([]*VolunteerResponse, 0, len(volunteers))
	for i := range volunteers {
		response = append(response, NewVolunteerResponse(&volunteers[i]))
	}
	return response, nil
}

func (s *VolunteerService) Get(ctx context.Context, id int64) (*VolunteerResponse, error) {
	volunteer, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewVolunteerResponse(volunteer), nil
}

// Update overwrites the fields present in request. Nothing is written when the id is unknown.
func (s *VolunteerService) Update(ctx context.Context, id int64, request *UpdateVolunteerRequest) (*VolunteerResponse, error) {
	log := logger.FromContext(ctx)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	volunteer, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	request.ApplyTo(volunteer)

	if err := s.repository.Update(ctx, volunteer); err != nil {
		log.Error("Failed to update volunteer", "id", id, "error", err)
		return nil, fmt.Errorf("update volunteer: %w", err)
	}

	log.Info("Volunteer updated", "id", id)
	return NewVolunteerResponse(volunteer), nil
}

// Delete marks the volunteer inactive. Deleting an inactive volunteer succeeds without a write.
func (s *VolunteerService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	volunteer, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if volunteer.Status == model.StatusInactive {
		log.Debug("Volunteer already inactive", "id", id)
		return nil
	}

	volunteer.Status = model.StatusInactive
	if err := s.repository.Update(ctx, volunteer); err != nil {
		log.Error("Failed to deactivate volunteer", "id", id, "error", err)
		return fmt.Errorf("deactivate volunteer: %w", err)
	}

	s.metrics.IncrementVolunteersDeactivated()
	log.Info("Volunteer deactivated", "id", id)
	return nil
}
