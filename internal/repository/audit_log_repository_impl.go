package repository

import (
	"context"

	"local-services-marketplace/internal/domain/entity"
	domainerrors "local-services-marketplace/internal/domain/errors"
	domainRepo "local-services-marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error {
	if err := db.WithContext(ctx).Create(log).Error; err != nil {
		return domainerrors.NewStorageError("create audit log", err)
	}
	return nil
}

func (r *auditLogRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit, offset int) ([]entity.AuditLog, int64, error) {
	query := db.WithContext(ctx).Model(&entity.AuditLog{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewStorageError("count audit logs", err)
	}

	logs := []entity.AuditLog{}
	if total == 0 || int64(offset) >= total {
		return logs, total, nil
	}

	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	if err != nil {
		return nil, 0, domainerrors.NewStorageError("list audit logs", err)
	}
	return logs, total, nil
}
