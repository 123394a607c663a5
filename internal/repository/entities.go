package repository

import (
	"personal-finance-backend/internal/models"

	"gorm.io/gorm"
)

// Per-entity instances of the shared repository. The search clause is
// the one piece that varies: banks match on code or name, everything
// else matches on name.

func NewBankRepository(db *gorm.DB) *Repository[models.Bank] {
	return New[models.Bank](db, "LOWER(code) LIKE ? OR LOWER(name) LIKE ?")
}

func NewAccountRepository(db *gorm.DB) *Repository[models.Account] {
	return New[models.Account](db, "LOWER(name) LIKE ?", "Bank")
}

func NewProvisionRepository(db *gorm.DB) *Repository[models.Provision] {
	return New[models.Provision](db, "LOWER(name) LIKE ?")
}

func NewTagRepository(db *gorm.DB) *Repository[models.Tag] {
	return New[models.Tag](db, "LOWER(name) LIKE ?")
}

// HistoryRepository adds the projected list the history endpoint
// serves: account and bank joined eagerly, trimmed to listing fields.
type HistoryRepository struct {
	*Repository[models.History]
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{
		Repository: New[models.History](db, "LOWER(name) LIKE ?", "Account.Bank", "Tags"),
	}
}

func (r *HistoryRepository) WithTx(tx *gorm.DB) *HistoryRepository {
	return &HistoryRepository{Repository: r.Repository.WithTx(tx)}
}

func (r *HistoryRepository) ListProjections(page, size int, term string) ([]models.HistoryProjection, error) {
	rows, err := r.List(page, size, term)
	if err != nil {
		return nil, err
	}
	out := make([]models.HistoryProjection, 0, len(rows))
	for _, h := range rows {
		out = append(out, models.NewHistoryProjection(h))
	}
	return out, nil
}
