package usecase

import (
	"context"

	"local-services-marketplace/internal/converter"
	"local-services-marketplace/internal/delivery/dto"
	"local-services-marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditLogUsecase exposes a user's own change history.
type AuditLogUsecase interface {
	ListMine(ctx context.Context, userID uuid.UUID, page, limit int) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) ListMine(ctx context.Context, userID uuid.UUID, page, limit int) (*dto.AuditLogListResponse, error) {
	page, limit = normalizePage(page, limit)

	logs, total, err := u.auditLogRepo.FindByUserID(ctx, u.db, userID, limit, pageOffset(page, limit))
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:       converter.AuditLogsToResponses(logs),
		Pagination: buildPagination(page, limit, total),
	}, nil
}
