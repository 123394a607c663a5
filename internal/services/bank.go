package services

import (
	"personal-finance-backend/internal/models"
	"personal-finance-backend/internal/repository"

	"gorm.io/gorm"
)

type BankService struct {
	repo *repository.Repository[models.Bank]
	db   *gorm.DB
}

func NewBankService(repo *repository.Repository[models.Bank]) *BankService {
	return &BankService{repo: repo, db: repo.DB()}
}

func (s *BankService) Count(term string) (int64, error) {
	return s.repo.Count(term)
}

func (s *BankService) ListAll(page, size int, term string) ([]models.Bank, error) {
	return s.repo.List(page, size, term)
}

func (s *BankService) GetByID(id int64) (*models.Bank, error) {
	return get(s.repo, "Bank", id)
}

func (s *BankService) Create(bank *models.Bank) (*models.Bank, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(bank)
	})
	if err != nil {
		return nil, err
	}
	return bank, nil
}

func (s *BankService) Update(id int64, bank *models.Bank) (*models.Bank, error) {
	var persisted *models.Bank
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		var err error
		persisted, err = get(repo, "Bank", id)
		if err != nil {
			return err
		}

		persisted.Code = bank.Code
		persisted.Name = bank.Name

		return repo.Save(persisted)
	})
	if err != nil {
		return nil, err
	}
	return persisted, nil
}

func (s *BankService) Delete(id int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		persisted, err := get(repo, "Bank", id)
		if err != nil {
			return err
		}
		return repo.Delete(persisted)
	})
}
