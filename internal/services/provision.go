package services

import (
	"personal-finance-backend/internal/models"
	"personal-finance-backend/internal/repository"

	"gorm.io/gorm"
)

type ProvisionService struct {
	repo *repository.Repository[models.Provision]
	db   *gorm.DB
}

func NewProvisionService(repo *repository.Repository[models.Provision]) *ProvisionService {
	return &ProvisionService{repo: repo, db: repo.DB()}
}

func (s *ProvisionService) Count(term string) (int64, error) {
	return s.repo.Count(term)
}

func (s *ProvisionService) ListAll(page, size int, term string) ([]models.Provision, error) {
	return s.repo.List(page, size, term)
}

func (s *ProvisionService) GetByID(id int64) (*models.Provision, error) {
	return get(s.repo, "Provision", id)
}

func (s *ProvisionService) Create(provision *models.Provision) (*models.Provision, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(provision)
	})
	if err != nil {
		return nil, err
	}
	return provision, nil
}

func (s *ProvisionService) Update(id int64, provision *models.Provision) (*models.Provision, error) {
	var persisted *models.Provision
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		var err error
		persisted, err = get(repo, "Provision", id)
		if err != nil {
			return err
		}

		persisted.Name = provision.Name
		persisted.InitialDate = provision.InitialDate
		persisted.FinalDate = provision.FinalDate
		persisted.Amount = provision.Amount

		return repo.Save(persisted)
	})
	if err != nil {
		return nil, err
	}
	return persisted, nil
}

func (s *ProvisionService) Delete(id int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		persisted, err := get(repo, "Provision", id)
		if err != nil {
			return err
		}
		return repo.Delete(persisted)
	})
}
