package models

import "time"

type Provision struct {
	Base
	Name        string     `gorm:"size:255;not null" json:"name"`
	InitialDate time.Time  `gorm:"column:initial_date;not null" json:"initialDate"`
	FinalDate   *time.Time `gorm:"column:final_date" json:"finalDate"`
	Amount      int        `gorm:"not null;default:0" json:"amount"`
}
