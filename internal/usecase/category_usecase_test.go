package usecase

import (
	"context"
	"testing"
	"time"

	"local-services-marketplace/internal/domain/entity"
	"local-services-marketplace/internal/repository"
	"local-services-marketplace/internal/service"
	"local-services-marketplace/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestCategoryUsecase_ListAndSeed(t *testing.T) {
	db := testutil.NewTestDB(t)
	mr, client := testutil.NewTestRedis(t)
	log := testutil.NewTestLogger()
	uc := NewCategoryUsecase(db, log, repository.NewCategoryRepository(), service.NewCategoryCache(client, log, time.Minute))
	ctx := context.Background()

	require.NoError(t, uc.Seed(ctx, []entity.Category{
		{Name: "Plumbing", IsActive: true},
		{Name: "Carpentry", IsActive: true},
	}))
	require.NoError(t, uc.Warm(ctx))
	require.True(t, mr.Exists(service.CategoryCacheKey))

	listed, err := uc.ListActive(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, listed.Total)
	require.Equal(t, "Carpentry", listed.Categories[0].Name)

	// seeding drops the cached list so new rows show up immediately
	require.NoError(t, uc.Seed(ctx, []entity.Category{{Name: "Welding", IsActive: true}}))
	require.False(t, mr.Exists(service.CategoryCacheKey))

	listed, err = uc.ListActive(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, listed.Total)
}
