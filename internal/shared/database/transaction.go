package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// WithTransaction runs fn in a transaction bound to ctx.
// fn returning an error rolls back; returning nil commits.
//
//	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    if _, err := findByID(ctx, tx, id); err != nil {
//	        return err
//	    }
//	    return tx.Model(&model.Volunteer{ID: id}).Updates(v).Error
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return errors.New("database: transaction function is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return db.WithContext(ctx).Transaction(fn)
}
