package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type AccountType string

const (
	AccountTypeChecking   AccountType = "CHECKING"
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeSalary     AccountType = "SALARY"
	AccountTypeInvestment AccountType = "INVESTMENT"
)

func (t AccountType) valid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeSalary, AccountTypeInvestment:
		return true
	}
	return false
}

// UnmarshalJSON rejects unknown type names so a bad enum value fails
// at decode time, before field validation runs.
func (t *AccountType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v := AccountType(s)
	if !v.valid() {
		return fmt.Errorf("unknown account type %q", s)
	}
	*t = v
	return nil
}

type Account struct {
	Base
	Name        string      `gorm:"size:255;not null" json:"name"`
	Type        AccountType `gorm:"column:account_type;size:20;not null" json:"type"`
	BankID      *int64      `json:"-"`
	Bank        *Bank       `json:"bank"`
	Branch      *string     `gorm:"size:255" json:"branch"`
	Number      *string     `gorm:"column:account_number;size:255" json:"number"`
	CreditLimit int         `gorm:"not null;default:0" json:"creditLimit"`
}

// bankRef is the nested shape a referenced bank takes inside an
// account payload: id plus the fields, without audit timestamps.
type bankRef struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

func (a Account) MarshalJSON() ([]byte, error) {
	out := struct {
		ID          int64       `json:"id"`
		Name        string      `json:"name"`
		Type        AccountType `json:"type"`
		Bank        *bankRef    `json:"bank"`
		Branch      *string     `json:"branch"`
		Number      *string     `json:"number"`
		CreditLimit int         `json:"creditLimit"`
		CreatedAt   time.Time   `json:"createdAt"`
		UpdatedAt   time.Time   `json:"updatedAt"`
	}{
		ID:          a.ID,
		Name:        a.Name,
		Type:        a.Type,
		Branch:      a.Branch,
		Number:      a.Number,
		CreditLimit: a.CreditLimit,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.Bank != nil {
		out.Bank = &bankRef{ID: a.Bank.ID, Code: a.Bank.Code, Name: a.Bank.Name}
	}
	return json.Marshal(out)
}
