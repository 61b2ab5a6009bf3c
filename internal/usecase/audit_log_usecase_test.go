package usecase

import (
	"context"
	"testing"

	"local-services-marketplace/internal/domain/entity"
	"local-services-marketplace/internal/repository"
	"local-services-marketplace/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestAuditLogUsecase_ListMine(t *testing.T) {
	profiles, db := newProfileUsecase(t)
	audit := NewAuditLogUsecase(db, testutil.NewTestLogger(), repository.NewAuditLogRepository())
	ctx := context.Background()
	owner := uuid.New()

	created, err := profiles.Create(ctx, owner, validProfileRequest())
	require.NoError(t, err)
	_, err = profiles.Update(ctx, created.ID, owner, validProfileRequest())
	require.NoError(t, err)

	// someone else's history stays out
	_, err = profiles.Create(ctx, uuid.New(), validProfileRequest())
	require.NoError(t, err)

	mine, err := audit.ListMine(ctx, owner, 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 2, mine.Pagination.Total)
	require.Equal(t, entity.AuditActionProfileUpdate, mine.Logs[0].Action)
	require.Equal(t, entity.AuditActionProfileCreate, mine.Logs[1].Action)

	second, err := audit.ListMine(ctx, owner, 2, 1)
	require.NoError(t, err)
	require.Len(t, second.Logs, 1)
	require.Equal(t, entity.AuditActionProfileCreate, second.Logs[0].Action)
}
