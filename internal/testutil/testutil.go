// Package testutil holds shared fixtures for package tests: an in-memory
// SQLite database migrated with the domain entities, a miniredis-backed
// client and a silent logger.
package testutil

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"local-services-marketplace/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection serializes writers the way row locks would in Postgres
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.ProviderProfile{},
		&entity.PortfolioItem{},
		&entity.Category{},
		&entity.AuditLog{},
	), "migrate sqlite")

	return db
}

func NewTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func NewTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// NewProfile returns an active, valid profile for owner.
func NewProfile(ownerID uuid.UUID) *entity.ProviderProfile {
	return &entity.ProviderProfile{
		OwnerID:  ownerID,
		Category: "Plumbing",
		Bio:      "Experienced plumber handling leaks and installations.",
		Location: entity.Location{
			State: "Lagos",
			City:  "Ikeja",
			LGA:   "Ikeja",
		},
		Contact: entity.Contact{
			Phone:    "08012345678",
			WhatsApp: "08012345678",
			Email:    "plumber@example.com",
		},
		RatingAverage: decimal.Zero,
		IsActive:      true,
	}
}

// CreateProfile inserts profile directly, bypassing validation.
func CreateProfile(t *testing.T, db *gorm.DB, profile *entity.ProviderProfile) *entity.ProviderProfile {
	t.Helper()
	require.NoError(t, db.Create(profile).Error)
	return profile
}

// Deactivate soft-deletes a profile the way moderation would.
func Deactivate(t *testing.T, db *gorm.DB, id uuid.UUID) {
	t.Helper()
	require.NoError(t, db.Model(&entity.ProviderProfile{}).Where("id = ?", id).Update("is_active", false).Error)
}
