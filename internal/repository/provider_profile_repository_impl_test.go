package repository

import (
	"context"
	"testing"
	"time"

	"local-services-marketplace/internal/domain/entity"
	domainerrors "local-services-marketplace/internal/domain/errors"
	"local-services-marketplace/internal/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestProviderProfileRepository_CreateAndFind(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewProviderProfileRepository()
	ctx := context.Background()

	owner := uuid.New()
	profile := testutil.NewProfile(owner)
	require.NoError(t, repo.Create(ctx, db, profile))
	require.NotEqual(t, uuid.Nil, profile.ID)

	found, err := repo.FindByID(ctx, db, profile.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, owner, found.OwnerID)
	require.Equal(t, "Ikeja", found.Location.LGA)
	require.Equal(t, "08012345678", found.Contact.WhatsApp)
	require.Empty(t, found.Portfolio)

	byOwner, err := repo.FindByOwnerID(ctx, db, owner)
	require.NoError(t, err)
	require.NotNil(t, byOwner)
	require.Equal(t, profile.ID, byOwner.ID)

	missing, err := repo.FindByID(ctx, db, uuid.New())
	require.NoError(t, err)
	require.Nil(t, missing)

	noOwner, err := repo.FindByOwnerID(ctx, db, uuid.New())
	require.NoError(t, err)
	require.Nil(t, noOwner)
}

func TestProviderProfileRepository_FindByIDIgnoresActiveFlag(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewProviderProfileRepository()
	ctx := context.Background()

	profile := testutil.CreateProfile(t, db, testutil.NewProfile(uuid.New()))
	testutil.Deactivate(t, db, profile.ID)

	found, err := repo.FindByID(ctx, db, profile.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.False(t, found.IsActive)
}

func TestProviderProfileRepository_CreateDuplicateOwner(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewProviderProfileRepository()
	ctx := context.Background()

	owner := uuid.New()
	require.NoError(t, repo.Create(ctx, db, testutil.NewProfile(owner)))

	err := repo.Create(ctx, db, testutil.NewProfile(owner))
	require.ErrorIs(t, err, domainerrors.ErrConflict)

	var count int64
	require.NoError(t, db.Model(&entity.ProviderProfile{}).Where("owner_id = ?", owner).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestProviderProfileRepository_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewProviderProfileRepository()
	ctx := context.Background()

	profile := testutil.NewProfile(uuid.New())
	profile.RatingAverage = decimal.RequireFromString("4.50")
	profile.RatingCount = 12
	testutil.CreateProfile(t, db, profile)

	profile.Category = "Electrical"
	profile.Bio = "Certified electrician for homes and offices."
	profile.Location = entity.Location{State: "Abuja", City: "Garki", LGA: "AMAC"}
	profile.Contact = entity.Contact{Phone: "2348098765432", WhatsApp: "2348098765432"}
	// fields outside the update set must be left alone
	profile.RatingCount = 0
	profile.IsVerified = true
	require.NoError(t, repo.Update(ctx, db, profile))

	found, err := repo.FindByID(ctx, db, profile.ID)
	require.NoError(t, err)
	require.Equal(t, "Electrical", found.Category)
	require.Equal(t, "AMAC", found.Location.LGA)
	require.Equal(t, "2348098765432", found.Contact.Phone)
	require.Empty(t, found.Contact.Email)
	require.Equal(t, 12, found.RatingCount)
	require.False(t, found.IsVerified)
	require.True(t, found.RatingAverage.Equal(decimal.RequireFromString("4.5")))
}

func TestProviderProfileRepository_UpdateMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewProviderProfileRepository()

	profile := testutil.NewProfile(uuid.New())
	profile.ID = uuid.New()
	err := repo.Update(context.Background(), db, profile)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProviderProfileRepository_AppendPortfolioItem(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewProviderProfileRepository()
	ctx := context.Background()

	profile := testutil.NewProfile(uuid.New())
	profile.CreatedAt = time.Now().Add(-time.Hour)
	profile.UpdatedAt = profile.CreatedAt
	testutil.CreateProfile(t, db, profile)

	for _, desc := range []string{"first", "second", "third"} {
		item := &entity.PortfolioItem{
			ProviderProfileID: profile.ID,
			ImageURL:          "https://img.example.com/" + desc + ".jpg",
			Description:       desc,
			UploadedAt:        time.Now(),
		}
		require.NoError(t, repo.AppendPortfolioItem(ctx, db, item))
		require.NotZero(t, item.ID)
	}

	found, err := repo.FindByID(ctx, db, profile.ID)
	require.NoError(t, err)
	require.Len(t, found.Portfolio, 3)
	require.Equal(t, "first", found.Portfolio[0].Description)
	require.Equal(t, "second", found.Portfolio[1].Description)
	require.Equal(t, "third", found.Portfolio[2].Description)
	require.True(t, found.UpdatedAt.After(profile.CreatedAt))
}

func TestProviderProfileRepository_SearchFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewProviderProfileRepository()
	ctx := context.Background()

	plumber := testutil.NewProfile(uuid.New())
	testutil.CreateProfile(t, db, plumber)

	electrician := testutil.NewProfile(uuid.New())
	electrician.Category = "Electrical"
	electrician.Bio = "Wiring, inverters and solar panel installs."
	electrician.Location = entity.Location{State: "Lagos", City: "Lekki", LGA: "Eti-Osa"}
	testutil.CreateProfile(t, db, electrician)

	tailor := testutil.NewProfile(uuid.New())
	tailor.Category = "Tailoring"
	tailor.Bio = "Native wear at 100% satisfaction."
	tailor.Location = entity.Location{State: "Oyo", City: "Ibadan", LGA: "Ibadan North"}
	testutil.CreateProfile(t, db, tailor)

	hidden := testutil.NewProfile(uuid.New())
	testutil.CreateProfile(t, db, hidden)
	testutil.Deactivate(t, db, hidden.ID)

	tests := []struct {
		name   string
		filter entity.ProviderFilter
		want   []uuid.UUID
	}{
		{"category substring any case", entity.ProviderFilter{Category: "PLUMB"}, []uuid.UUID{plumber.ID}},
		{"state", entity.ProviderFilter{State: "lagos"}, []uuid.UUID{plumber.ID, electrician.ID}},
		{"lga", entity.ProviderFilter{LGA: "eti"}, []uuid.UUID{electrician.ID}},
		{"keyword in bio", entity.ProviderFilter{Keyword: "solar"}, []uuid.UUID{electrician.ID}},
		{"keyword in category", entity.ProviderFilter{Keyword: "tailor"}, []uuid.UUID{tailor.ID}},
		{"filters combine", entity.ProviderFilter{Category: "plumbing", State: "oyo"}, nil},
		{"percent is literal", entity.ProviderFilter{Keyword: "100%"}, []uuid.UUID{tailor.ID}},
		{"lone percent matches only literal", entity.ProviderFilter{Keyword: "%"}, []uuid.UUID{tailor.ID}},
		{"underscore is literal", entity.ProviderFilter{Category: "_"}, nil},
		{"blank filter is unset", entity.ProviderFilter{Category: "   "}, []uuid.UUID{plumber.ID, electrician.ID, tailor.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles, total, err := repo.Search(ctx, db, tt.filter, entity.SortTopRated, 100, 0)
			require.NoError(t, err)
			require.EqualValues(t, len(tt.want), total)

			got := make([]uuid.UUID, 0, len(profiles))
			for _, p := range profiles {
				require.True(t, p.IsActive)
				got = append(got, p.ID)
			}
			require.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestProviderProfileRepository_SearchOrdering(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewProviderProfileRepository()
	ctx := context.Background()
	base := time.Now().Add(-24 * time.Hour)

	mk := func(rating string, age time.Duration) *entity.ProviderProfile {
		p := testutil.NewProfile(uuid.New())
		p.RatingAverage = decimal.RequireFromString(rating)
		p.CreatedAt = base.Add(age)
		return testutil.CreateProfile(t, db, p)
	}
	oldBest := mk("4.90", 0)
	newMid := mk("3.00", 2*time.Hour)
	newerMid := mk("3.00", 3*time.Hour)
	newestLow := mk("1.00", 4*time.Hour)

	rated, _, err := repo.Search(ctx, db, entity.ProviderFilter{State: "lagos"}, entity.SortTopRated, 10, 0)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{oldBest.ID, newerMid.ID, newMid.ID, newestLow.ID}, ids(rated))

	newest, _, err := repo.ListActive(ctx, db, 10, 0)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{newestLow.ID, newerMid.ID, newMid.ID, oldBest.ID}, ids(newest))
}

func TestProviderProfileRepository_SearchPagination(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewProviderProfileRepository()
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 25; i++ {
		p := testutil.NewProfile(uuid.New())
		p.CreatedAt = base.Add(time.Duration(i) * time.Second)
		testutil.CreateProfile(t, db, p)
	}

	seen := map[uuid.UUID]bool{}
	for page, want := range []int{10, 10, 5, 0} {
		profiles, total, err := repo.ListActive(ctx, db, 10, page*10)
		require.NoError(t, err)
		require.EqualValues(t, 25, total)
		require.Len(t, profiles, want)
		for _, p := range profiles {
			require.False(t, seen[p.ID], "profile repeated across pages")
			seen[p.ID] = true
		}
	}
	require.Len(t, seen, 25)
}

func TestProviderProfileRepository_SearchEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewProviderProfileRepository()

	profiles, total, err := repo.Search(context.Background(), db, entity.ProviderFilter{Category: "nothing"}, entity.SortTopRated, 10, 0)
	require.NoError(t, err)
	require.Zero(t, total)
	require.NotNil(t, profiles)
	require.Empty(t, profiles)
}

func ids(profiles []entity.ProviderProfile) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.ID)
	}
	return out
}
