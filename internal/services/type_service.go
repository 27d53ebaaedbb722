package services

import (
	"gorm.io/gorm"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
)

// typeService handles the append-only category-label catalog.
type typeService struct {
	db *gorm.DB
}

// NewTypeService creates a new TypeServicer.
func NewTypeService(db *gorm.DB) TypeServicer {
	return &typeService{db: db}
}

// CreateType appends a catalog entry.
func (s *typeService) CreateType(name, relate string) (*models.TransactionType, error) {
	entry := &models.TransactionType{Name: name, Relate: relate}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entry, nil
}

// GetTypesByRelation returns the catalog entries for one entity kind.
func (s *typeService) GetTypesByRelation(relate string) ([]models.TransactionType, error) {
	var entries []models.TransactionType
	if err := s.db.Where("relate = ?", relate).Order("id").Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entries, nil
}
