package repository

import (
	"context"

	"local-services-marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error
	// FindByUserID returns one page of the user's entries, newest first, and the total count.
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit, offset int) ([]entity.AuditLog, int64, error)
}
