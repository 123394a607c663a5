package services

import (
	"personal-finance-backend/internal/models"
	"personal-finance-backend/internal/repository"

	"gorm.io/gorm"
)

type TagService struct {
	repo *repository.Repository[models.Tag]
	db   *gorm.DB
}

func NewTagService(repo *repository.Repository[models.Tag]) *TagService {
	return &TagService{repo: repo, db: repo.DB()}
}

func (s *TagService) Count(term string) (int64, error) {
	return s.repo.Count(term)
}

func (s *TagService) ListAll(page, size int, term string) ([]models.Tag, error) {
	return s.repo.List(page, size, term)
}

func (s *TagService) GetByID(id int64) (*models.Tag, error) {
	return get(s.repo, "Tag", id)
}

func (s *TagService) Create(tag *models.Tag) (*models.Tag, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(tag)
	})
	if err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) Update(id int64, tag *models.Tag) (*models.Tag, error) {
	var persisted *models.Tag
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		var err error
		persisted, err = get(repo, "Tag", id)
		if err != nil {
			return err
		}

		persisted.Name = tag.Name
		persisted.Color = tag.Color

		return repo.Save(persisted)
	})
	if err != nil {
		return nil, err
	}
	return persisted, nil
}

func (s *TagService) Delete(id int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		persisted, err := get(repo, "Tag", id)
		if err != nil {
			return err
		}
		return repo.Delete(persisted)
	})
}
