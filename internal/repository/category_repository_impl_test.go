package repository

import (
	"context"
	"testing"

	"local-services-marketplace/internal/domain/entity"
	"local-services-marketplace/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_UpsertAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCategoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, db, []entity.Category{
		{Name: "Plumbing", Description: "Pipes", IsActive: true},
		{Name: "Electrical", Description: "Wiring", IsActive: true},
		{Name: "Tailoring", Description: "Clothes", IsActive: true},
	}))

	// second run refreshes existing rows instead of duplicating them
	require.NoError(t, repo.Upsert(ctx, db, []entity.Category{
		{Name: "Plumbing", Description: "Pipes and drains", IsActive: true},
		{Name: "Tailoring", Description: "Clothes", IsActive: false},
	}))

	categories, err := repo.FindAllActive(ctx, db)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	require.Equal(t, "Electrical", categories[0].Name)
	require.Equal(t, "Plumbing", categories[1].Name)
	require.Equal(t, "Pipes and drains", categories[1].Description)

	var total int64
	require.NoError(t, db.Model(&entity.Category{}).Count(&total).Error)
	require.EqualValues(t, 3, total)
}

func TestCategoryRepository_UpsertEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	require.NoError(t, NewCategoryRepository().Upsert(context.Background(), db, nil))
}
