package models

type Bank struct {
	Base
	Code string `gorm:"size:3;not null" json:"code"`
	Name string `gorm:"size:150;not null" json:"name"`
}

// Uniqueness of Code is enforced by the partial index banks_code_key
// (see migration in cmd/server), scoped to non-deleted rows so a
// deleted bank's code can be registered again.
