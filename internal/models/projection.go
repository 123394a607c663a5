package models

import "time"

// HistoryProjection is the read shape of the history list endpoint:
// only the listing fields, with account and bank joined in eagerly.
type HistoryProjection struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	PaymentDate time.Time          `json:"paymentDate"`
	Amount      int                `json:"amount"`
	Account     *AccountProjection `json:"account"`
}

type AccountProjection struct {
	Name        string          `json:"name"`
	Type        AccountType     `json:"type"`
	Bank        *BankProjection `json:"bank"`
	Branch      *string         `json:"branch"`
	Number      *string         `json:"number"`
	CreditLimit int             `json:"creditLimit"`
}

type BankProjection struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func NewHistoryProjection(h History) HistoryProjection {
	p := HistoryProjection{
		ID:          h.ID,
		Name:        h.Name,
		PaymentDate: h.PaymentDate,
		Amount:      h.Amount,
	}
	if h.Account != nil {
		p.Account = &AccountProjection{
			Name:        h.Account.Name,
			Type:        h.Account.Type,
			Branch:      h.Account.Branch,
			Number:      h.Account.Number,
			CreditLimit: h.Account.CreditLimit,
		}
		if h.Account.Bank != nil {
			p.Account.Bank = &BankProjection{
				Code: h.Account.Bank.Code,
				Name: h.Account.Bank.Name,
			}
		}
	}
	return p
}
