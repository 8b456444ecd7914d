package volunteer

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/model"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/database"
	"gorm.io/gorm"
)

// GormRepository stores volunteers in the volunteer table; insertion order is id order
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Volunteer{}).
		Where("email = ?", email).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *GormRepository) Create(ctx context.Context, v *model.Volunteer) error {
	err := r.db.WithContext(ctx).Create(v).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("insert volunteer: %w", ErrEmailAlreadyExists)
	}
	return err
}

// FindAll applies the exact-match filters in SQL and the role substring match in Go,
// so case folding is identical to MemoryRepository whatever the database collation
func (r *GormRepository) FindAll(ctx context.Context, filter Filter) ([]model.Volunteer, error) {
	query := r.db.WithContext(ctx).Order("id ASC")
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Availability != nil {
		query = query.Where("availability = ?", string(*filter.Availability))
	}

	var rows []model.Volunteer
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]model.Volunteer, 0, len(rows))
	for i := range rows {
		if filter.matchesRole(&rows[i]) {
			result = append(result, rows[i])
		}
	}
	return result, nil
}

func (r *GormRepository) FindByID(ctx context.Context, id int64) (*model.Volunteer, error) {
	return findByID(ctx, r.db, id)
}

func (r *GormRepository) Update(ctx context.Context, v *model.Volunteer) error {
	return database.WithTransaction(ctx, r.db, func(tx *gorm.DB) error {
		if _, err := findByID(ctx, tx, v.ID); err != nil {
			return err
		}

		// email, id and registered_at are never written
		return tx.Model(&model.Volunteer{ID: v.ID}).
			Updates(map[string]interface{}{
				"name":         v.Name,
				"phone":        v.Phone,
				"desired_role": v.DesiredRole,
				"availability": string(v.Availability),
				"status":       string(v.Status),
			}).Error
	})
}

func findByID(ctx context.Context, db *gorm.DB, id int64) (*model.Volunteer, error) {
	var v model.Volunteer
	err := db.WithContext(ctx).Where("id = ?", id).First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("volunteer id=%d: %w", id, ErrVolunteerNotFound)
		}
		return nil, err
	}
	return &v, nil
}

var _ Repository = (*GormRepository)(nil)
