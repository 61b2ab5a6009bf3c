package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"local-services-marketplace/internal/delivery/dto"
	"local-services-marketplace/internal/domain/entity"
	"local-services-marketplace/internal/repository"
	"local-services-marketplace/internal/service"
	"local-services-marketplace/internal/testutil"
	"local-services-marketplace/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSearchUsecase(t *testing.T) (ProviderSearchUsecase, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewProviderSearchUsecase(db, testutil.NewTestLogger(), repository.NewProviderProfileRepository()), db
}

func seedProfiles(t *testing.T, db *gorm.DB, n int, mutate func(i int, p *entity.ProviderProfile)) []*entity.ProviderProfile {
	t.Helper()
	base := time.Now().Add(-time.Hour)
	out := make([]*entity.ProviderProfile, 0, n)
	for i := 0; i < n; i++ {
		p := testutil.NewProfile(uuid.New())
		p.CreatedAt = base.Add(time.Duration(i) * time.Second)
		if mutate != nil {
			mutate(i, p)
		}
		out = append(out, testutil.CreateProfile(t, db, p))
	}
	return out
}

func TestProviderSearchUsecase_Pagination(t *testing.T) {
	uc, db := newSearchUsecase(t)
	seedProfiles(t, db, 25, nil)
	ctx := context.Background()

	for page, want := range map[int]int{1: 10, 2: 10, 3: 5, 4: 0} {
		t.Run(fmt.Sprintf("page %d", page), func(t *testing.T) {
			listed, err := uc.List(ctx, dto.ProviderListQuery{Page: page, Limit: 10})
			require.NoError(t, err)
			require.Len(t, listed.Providers, want)
			require.Equal(t, dto.PaginationResponse{Current: page, Pages: 3, Total: 25}, listed.Pagination)

			searched, err := uc.Search(ctx, dto.ProviderSearchQuery{Category: "plumb", Page: page, Limit: 10})
			require.NoError(t, err)
			require.Len(t, searched.Providers, want)
			require.Equal(t, dto.PaginationResponse{Current: page, Pages: 3, Total: 25}, searched.Pagination)
		})
	}
}

func TestProviderSearchUsecase_PageDefaults(t *testing.T) {
	uc, db := newSearchUsecase(t)
	seedProfiles(t, db, 12, nil)
	ctx := context.Background()

	defaulted, err := uc.List(ctx, dto.ProviderListQuery{Page: 0, Limit: -5})
	require.NoError(t, err)
	require.Len(t, defaulted.Providers, DefaultLimit)
	require.Equal(t, dto.PaginationResponse{Current: 1, Pages: 2, Total: 12}, defaulted.Pagination)

	capped, err := uc.List(ctx, dto.ProviderListQuery{Page: 1, Limit: 5000})
	require.NoError(t, err)
	require.Len(t, capped.Providers, 12)
	require.Equal(t, 1, capped.Pagination.Pages)

	far, err := uc.List(ctx, dto.ProviderListQuery{Page: 1 << 40, Limit: 10})
	require.NoError(t, err)
	require.Empty(t, far.Providers)
	require.Equal(t, 1<<40, far.Pagination.Current)
}

func TestProviderSearchUsecase_EmptyResult(t *testing.T) {
	uc, _ := newSearchUsecase(t)

	res, err := uc.Search(context.Background(), dto.ProviderSearchQuery{State: "Kano"})
	require.NoError(t, err)
	require.NotNil(t, res.Providers)
	require.Empty(t, res.Providers)
	require.Equal(t, dto.PaginationResponse{Current: 1, Pages: 0, Total: 0}, res.Pagination)
}

func TestProviderSearchUsecase_InactiveHidden(t *testing.T) {
	uc, db := newSearchUsecase(t)
	profiles := seedProfiles(t, db, 3, nil)
	testutil.Deactivate(t, db, profiles[1].ID)
	ctx := context.Background()

	listed, err := uc.List(ctx, dto.ProviderListQuery{})
	require.NoError(t, err)
	require.EqualValues(t, 2, listed.Pagination.Total)

	searched, err := uc.Search(ctx, dto.ProviderSearchQuery{Category: "Plumbing"})
	require.NoError(t, err)
	require.EqualValues(t, 2, searched.Pagination.Total)
	for _, p := range searched.Providers {
		require.NotEqual(t, profiles[1].ID, p.ID)
	}

	// the repository still sees it
	found, err := repository.NewProviderProfileRepository().FindByID(ctx, db, profiles[1].ID)
	require.NoError(t, err)
	require.NotNil(t, found)
}

func TestProviderSearchUsecase_SortDependsOnFilter(t *testing.T) {
	uc, db := newSearchUsecase(t)
	ratings := []string{"2.00", "5.00", "3.50"}
	profiles := seedProfiles(t, db, 3, func(i int, p *entity.ProviderProfile) {
		p.RatingAverage = decimal.RequireFromString(ratings[i])
	})
	ctx := context.Background()

	// no filter: newest first
	plain, err := uc.Search(ctx, dto.ProviderSearchQuery{Category: "   "})
	require.NoError(t, err)
	require.Equal(t, profiles[2].ID, plain.Providers[0].ID)
	require.Equal(t, profiles[1].ID, plain.Providers[1].ID)
	require.Equal(t, profiles[0].ID, plain.Providers[2].ID)

	// any filter: best rated first
	rated, err := uc.Search(ctx, dto.ProviderSearchQuery{State: "lagos"})
	require.NoError(t, err)
	require.Equal(t, profiles[1].ID, rated.Providers[0].ID)
	require.Equal(t, profiles[2].ID, rated.Providers[1].ID)
	require.Equal(t, profiles[0].ID, rated.Providers[2].ID)
	require.Equal(t, &dto.SearchParamsResponse{State: "lagos"}, rated.SearchParams)
}

func TestProviderSearchUsecase_PartialMatchIsPolicy(t *testing.T) {
	uc, db := newSearchUsecase(t)
	seedProfiles(t, db, 2, func(i int, p *entity.ProviderProfile) {
		if i == 1 {
			p.Category = "Plumbing & electrical repairs"
		}
	})

	res, err := uc.Search(context.Background(), dto.ProviderSearchQuery{Category: "Plumb"})
	require.NoError(t, err)
	require.EqualValues(t, 2, res.Pagination.Total)
}

func TestProviderDiscovery_EndToEnd(t *testing.T) {
	db := testutil.NewTestDB(t)
	log := testutil.NewTestLogger()
	repo := repository.NewProviderProfileRepository()
	profiles := NewProviderProfileUsecase(db, log, validator.NewValidator(), repo,
		service.NewAuditService(log, repository.NewAuditLogRepository()))
	search := NewProviderSearchUsecase(db, log, repo)
	ctx := context.Background()

	req := validProfileRequest()
	req.Category = "Plumbing"
	req.Bio = strings.Repeat("b", 50)
	req.Contact.Phone = "08012345678"
	created, err := profiles.Create(ctx, uuid.New(), req)
	require.NoError(t, err)

	hit, err := search.Search(ctx, dto.ProviderSearchQuery{Category: "plumb"})
	require.NoError(t, err)
	require.Len(t, hit.Providers, 1)
	require.Equal(t, created.ID, hit.Providers[0].ID)

	miss, err := search.Search(ctx, dto.ProviderSearchQuery{Category: "Electrical"})
	require.NoError(t, err)
	require.Empty(t, miss.Providers)
}
