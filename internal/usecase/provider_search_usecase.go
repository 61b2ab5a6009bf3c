package usecase

import (
	"context"

	"local-services-marketplace/internal/converter"
	"local-services-marketplace/internal/delivery/dto"
	"local-services-marketplace/internal/domain/entity"
	"local-services-marketplace/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ProviderSearchUsecase serves the public listing and filtered search.
// Only active profiles are ever returned.
type ProviderSearchUsecase interface {
	List(ctx context.Context, query dto.ProviderListQuery) (*dto.ProviderListResponse, error)
	Search(ctx context.Context, query dto.ProviderSearchQuery) (*dto.ProviderListResponse, error)
}

type providerSearchUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	profileRepo repository.ProviderProfileRepository
}

func NewProviderSearchUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	profileRepo repository.ProviderProfileRepository,
) ProviderSearchUsecase {
	return &providerSearchUsecase{
		db:          db,
		log:         log,
		profileRepo: profileRepo,
	}
}

func (u *providerSearchUsecase) List(ctx context.Context, query dto.ProviderListQuery) (*dto.ProviderListResponse, error) {
	page, limit := normalizePage(query.Page, query.Limit)

	profiles, total, err := u.profileRepo.ListActive(ctx, u.db, limit, pageOffset(page, limit))
	if err != nil {
		u.log.Warnf("Failed to list provider profiles: %+v", err)
		return nil, err
	}

	return &dto.ProviderListResponse{
		Providers:  converter.ProviderProfilesToResponses(profiles),
		Pagination: buildPagination(page, limit, total),
	}, nil
}

// Search ranks by rating when any filter is set and degrades to the newest-first
// listing when none is.
func (u *providerSearchUsecase) Search(ctx context.Context, query dto.ProviderSearchQuery) (*dto.ProviderListResponse, error) {
	page, limit := normalizePage(query.Page, query.Limit)
	filter := entity.ProviderFilter{
		Category: query.Category,
		State:    query.State,
		LGA:      query.LGA,
		Keyword:  query.Keyword,
	}.Normalize()

	sort := entity.SortTopRated
	if filter.IsEmpty() {
		sort = entity.SortNewest
	}

	profiles, total, err := u.profileRepo.Search(ctx, u.db, filter, sort, limit, pageOffset(page, limit))
	if err != nil {
		u.log.Warnf("Failed to search provider profiles: %+v", err)
		return nil, err
	}

	return &dto.ProviderListResponse{
		Providers:  converter.ProviderProfilesToResponses(profiles),
		Pagination: buildPagination(page, limit, total),
		SearchParams: &dto.SearchParamsResponse{
			Category: filter.Category,
			State:    filter.State,
			LGA:      filter.LGA,
			Keyword:  filter.Keyword,
		},
	}, nil
}
