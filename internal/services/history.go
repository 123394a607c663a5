package services

import (
	"personal-finance-backend/internal/models"
	"personal-finance-backend/internal/repository"

	"gorm.io/gorm"
)

type HistoryService struct {
	repo     *repository.HistoryRepository
	accounts *repository.Repository[models.Account]
	tags     *repository.Repository[models.Tag]
	db       *gorm.DB
}

func NewHistoryService(
	repo *repository.HistoryRepository,
	accounts *repository.Repository[models.Account],
	tags *repository.Repository[models.Tag],
) *HistoryService {
	return &HistoryService{repo: repo, accounts: accounts, tags: tags, db: repo.DB()}
}

func (s *HistoryService) Count(term string) (int64, error) {
	return s.repo.Count(term)
}

// ListAll serves the projected read shape, not the full entity.
func (s *HistoryService) ListAll(page, size int, term string) ([]models.HistoryProjection, error) {
	return s.repo.ListProjections(page, size, term)
}

func (s *HistoryService) GetByID(id int64) (*models.History, error) {
	return get(s.repo, "History", id)
}

func (s *HistoryService) Create(history *models.History, account models.Ref, tags []models.Ref) (*models.History, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		if err := s.resolveRefs(tx, history, account, tags); err != nil {
			return err
		}
		if err := repo.Create(history); err != nil {
			return err
		}
		return s.replaceTags(tx, history)
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}

func (s *HistoryService) Update(id int64, history *models.History, account models.Ref, tags []models.Ref) (*models.History, error) {
	var persisted *models.History
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		var err error
		persisted, err = get(repo, "History", id)
		if err != nil {
			return err
		}

		if err := s.resolveRefs(tx, persisted, account, tags); err != nil {
			return err
		}

		persisted.Name = history.Name
		persisted.PaymentDate = history.PaymentDate
		persisted.Amount = history.Amount

		if err := repo.Save(persisted); err != nil {
			return err
		}
		return s.replaceTags(tx, persisted)
	})
	if err != nil {
		return nil, err
	}
	return persisted, nil
}

func (s *HistoryService) Delete(id int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		persisted, err := get(repo, "History", id)
		if err != nil {
			return err
		}
		return repo.Delete(persisted)
	})
}

// resolveRefs loads the referenced account and tags onto the history,
// clearing whatever was not sent.
func (s *HistoryService) resolveRefs(tx *gorm.DB, history *models.History, account models.Ref, tags []models.Ref) error {
	resolved, err := resolve(s.accounts.WithTx(tx), "Account", account)
	if err != nil {
		return err
	}
	history.Account = resolved
	history.AccountID = nil
	if resolved != nil {
		history.AccountID = &resolved.ID
	}

	history.Tags = make([]models.Tag, 0, len(tags))
	for _, ref := range tags {
		// a list element is always an explicit reference
		ref.Present = true
		tag, err := resolve(s.tags.WithTx(tx), "Tag", ref)
		if err != nil {
			return err
		}
		history.Tags = append(history.Tags, *tag)
	}
	return nil
}

// replaceTags rewrites the join table to exactly the resolved set.
func (s *HistoryService) replaceTags(tx *gorm.DB, history *models.History) error {
	assoc := tx.Model(history).Omit("Tags.*").Association("Tags")
	if len(history.Tags) == 0 {
		return assoc.Clear()
	}
	tags := make([]models.Tag, len(history.Tags))
	copy(tags, history.Tags)
	return assoc.Replace(&tags)
}
