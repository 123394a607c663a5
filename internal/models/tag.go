package models

type Tag struct {
	Base
	Name string `gorm:"size:255;not null" json:"name"`
	// Color is an RGBA value, stored wide enough for the full
	// unsigned 32-bit range.
	Color int64 `gorm:"not null" json:"color"`
}
