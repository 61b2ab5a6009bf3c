package repository

import (
	"context"

	"local-services-marketplace/internal/domain/entity"
	domainerrors "local-services-marketplace/internal/domain/errors"
	domainRepo "local-services-marketplace/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type categoryRepository struct{}

func NewCategoryRepository() domainRepo.CategoryRepository {
	return &categoryRepository{}
}

func (r *categoryRepository) FindAllActive(ctx context.Context, db *gorm.DB) ([]entity.Category, error) {
	var categories []entity.Category
	err := db.WithContext(ctx).Where("is_active = ?", true).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, domainerrors.NewStorageError("list categories", err)
	}
	return categories, nil
}

func (r *categoryRepository) Upsert(ctx context.Context, db *gorm.DB, categories []entity.Category) error {
	if len(categories) == 0 {
		return nil
	}
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "is_active", "updated_at"}),
	}).Create(&categories).Error
	if err != nil {
		return domainerrors.NewStorageError("upsert categories", err)
	}
	return nil
}
