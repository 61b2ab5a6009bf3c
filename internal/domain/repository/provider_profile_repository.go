package repository

import (
	"context"

	"local-services-marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProviderProfileRepository persists provider profiles. Lookups return
// (nil, nil) when nothing matches; FindByID ignores is_active so callers
// decide visibility. Failures are *errors.StorageError, and a second profile
// for the same owner is errors.ErrConflict.
type ProviderProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.ProviderProfile) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.ProviderProfile, error)
	FindByOwnerID(ctx context.Context, db *gorm.DB, ownerID uuid.UUID) (*entity.ProviderProfile, error)
	// Update replaces category, bio, location and contact only.
	Update(ctx context.Context, db *gorm.DB, profile *entity.ProviderProfile) error
	AppendPortfolioItem(ctx context.Context, db *gorm.DB, item *entity.PortfolioItem) error
	ListActive(ctx context.Context, db *gorm.DB, limit, offset int) ([]entity.ProviderProfile, int64, error)
	Search(ctx context.Context, db *gorm.DB, filter entity.ProviderFilter, sort entity.ProviderSort, limit, offset int) ([]entity.ProviderProfile, int64, error)
}
