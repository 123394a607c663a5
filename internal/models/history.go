package models

import (
	"encoding/json"
	"time"
)

type History struct {
	Base
	Name        string    `gorm:"size:255;not null" json:"name"`
	PaymentDate time.Time `gorm:"column:payment_date;not null" json:"paymentDate"`
	Amount      int       `gorm:"not null;default:0" json:"amount"`
	AccountID   *int64    `json:"-"`
	Account     *Account  `json:"account"`
	Tags        []Tag     `gorm:"many2many:history_tags" json:"tags"`
}

type tagRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color int64  `json:"color"`
}

func (h History) MarshalJSON() ([]byte, error) {
	tags := make([]tagRef, 0, len(h.Tags))
	for _, t := range h.Tags {
		tags = append(tags, tagRef{ID: t.ID, Name: t.Name, Color: t.Color})
	}
	return json.Marshal(struct {
		ID          int64     `json:"id"`
		Name        string    `json:"name"`
		PaymentDate time.Time `json:"paymentDate"`
		Amount      int       `json:"amount"`
		Account     *Account  `json:"account"`
		Tags        []tagRef  `json:"tags"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}{
		ID:          h.ID,
		Name:        h.Name,
		PaymentDate: h.PaymentDate,
		Amount:      h.Amount,
		Account:     h.Account,
		Tags:        tags,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	})
}
