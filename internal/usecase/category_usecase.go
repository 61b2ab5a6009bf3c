package usecase

import (
	"context"

	"local-services-marketplace/internal/converter"
	"local-services-marketplace/internal/delivery/dto"
	"local-services-marketplace/internal/domain/entity"
	"local-services-marketplace/internal/domain/repository"
	"local-services-marketplace/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CategoryUsecase interface {
	ListActive(ctx context.Context) (*dto.CategoryListResponse, error)
	// Seed upserts categories by name and drops the cached list.
	Seed(ctx context.Context, categories []entity.Category) error
	// Warm primes the cache from the database.
	Warm(ctx context.Context) error
}

type categoryUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	categoryRepo repository.CategoryRepository
	cache        *service.CategoryCache
}

func NewCategoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	categoryRepo repository.CategoryRepository,
	cache *service.CategoryCache,
) CategoryUsecase {
	return &categoryUsecase{
		db:           db,
		log:          log,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

func (u *categoryUsecase) ListActive(ctx context.Context) (*dto.CategoryListResponse, error) {
	categories, err := u.cache.Get(ctx, u.load)
	if err != nil {
		u.log.Warnf("Failed to list categories: %+v", err)
		return nil, err
	}

	return &dto.CategoryListResponse{
		Categories: converter.CategoriesToResponses(categories),
		Total:      len(categories),
	}, nil
}

func (u *categoryUsecase) Seed(ctx context.Context, categories []entity.Category) error {
	if err := u.categoryRepo.Upsert(ctx, u.db, categories); err != nil {
		u.log.Warnf("Failed to upsert categories: %+v", err)
		return err
	}
	if err := u.cache.Invalidate(ctx); err != nil {
		u.log.Warnf("Failed to invalidate category cache: %+v", err)
	}
	return nil
}

func (u *categoryUsecase) Warm(ctx context.Context) error {
	return u.cache.Warm(ctx, u.load)
}

func (u *categoryUsecase) load(ctx context.Context) ([]entity.Category, error) {
	return u.categoryRepo.FindAllActive(ctx, u.db)
}
