package models

import (
	"time"

	"gorm.io/gorm"
)

// Base carries the identity, audit timestamps and soft-delete marker
// shared by every entity. gorm.DeletedAt keeps deleted rows out of
// every query and turns Delete into an UPDATE on deleted_at.
type Base struct {
	ID        int64          `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
