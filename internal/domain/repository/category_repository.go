package repository

import (
	"context"

	"local-services-marketplace/internal/domain/entity"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	FindAllActive(ctx context.Context, db *gorm.DB) ([]entity.Category, error)
	// Upsert inserts categories by name, refreshing description and status of existing rows.
	Upsert(ctx context.Context, db *gorm.DB, categories []entity.Category) error
}
