// Package services holds the per-entity business rules: reference
// resolution, not-found signalling, full-replace updates and the
// transaction boundary around every write.
package services

import (
	"errors"

	"personal-finance-backend/internal/apierror"
	"personal-finance-backend/internal/models"

	"gorm.io/gorm"
)

type finder[E any] interface {
	FindByID(id int64) (*E, error)
}

// get loads the request target, translating a missing or soft-deleted
// row into the 404 error shape.
func get[E any](f finder[E], entity string, id int64) (*E, error) {
	e, err := f.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.IDNotFound(entity, id)
	}
	return e, err
}

// resolve turns a request-body reference into the referenced row. An
// absent reference clears the relation; a present one must carry an
// id that resolves to a live row.
func resolve[E any](f finder[E], entity string, ref models.Ref) (*E, error) {
	if !ref.Present {
		return nil, nil
	}
	if ref.ID == nil {
		return nil, apierror.IDNotFound(entity, nil)
	}
	e, err := f.FindByID(*ref.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.IDNotFound(entity, *ref.ID)
	}
	return e, err
}
