package services

import (
	"personal-finance-backend/internal/models"
	"personal-finance-backend/internal/repository"

	"gorm.io/gorm"
)

type AccountService struct {
	repo  *repository.Repository[models.Account]
	banks *repository.Repository[models.Bank]
	db    *gorm.DB
}

func NewAccountService(
	repo *repository.Repository[models.Account],
	banks *repository.Repository[models.Bank],
) *AccountService {
	return &AccountService{repo: repo, banks: banks, db: repo.DB()}
}

func (s *AccountService) Count(term string) (int64, error) {
	return s.repo.Count(term)
}

func (s *AccountService) ListAll(page, size int, term string) ([]models.Account, error) {
	return s.repo.List(page, size, term)
}

func (s *AccountService) GetByID(id int64) (*models.Account, error) {
	return get(s.repo, "Account", id)
}

func (s *AccountService) Create(account *models.Account, bank models.Ref) (*models.Account, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		resolved, err := resolve(s.banks.WithTx(tx), "Bank", bank)
		if err != nil {
			return err
		}
		account.Bank = resolved
		if resolved != nil {
			account.BankID = &resolved.ID
		}

		return s.repo.WithTx(tx).Create(account)
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AccountService) Update(id int64, account *models.Account, bank models.Ref) (*models.Account, error) {
	var persisted *models.Account
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		var err error
		persisted, err = get(repo, "Account", id)
		if err != nil {
			return err
		}

		resolved, err := resolve(s.banks.WithTx(tx), "Bank", bank)
		if err != nil {
			return err
		}
		persisted.Bank = resolved
		persisted.BankID = nil
		if resolved != nil {
			persisted.BankID = &resolved.ID
		}

		persisted.Name = account.Name
		persisted.Type = account.Type
		persisted.Branch = account.Branch
		persisted.Number = account.Number
		persisted.CreditLimit = account.CreditLimit

		return repo.Save(persisted)
	})
	if err != nil {
		return nil, err
	}
	return persisted, nil
}

func (s *AccountService) Delete(id int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		persisted, err := get(repo, "Account", id)
		if err != nil {
			return err
		}
		return repo.Delete(persisted)
	})
}
