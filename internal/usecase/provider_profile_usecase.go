package usecase

import (
	"context"
	"time"

	"local-services-marketplace/internal/converter"
	"local-services-marketplace/internal/delivery/dto"
	"local-services-marketplace/internal/domain/entity"
	domainerrors "local-services-marketplace/internal/domain/errors"
	"local-services-marketplace/internal/domain/repository"
	"local-services-marketplace/internal/service"
	"local-services-marketplace/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const auditEntityProviderProfile = "provider_profile"

// ProviderProfileUsecase owns the profile lifecycle: NoProfile -> Active on
// create, then Active -> Active on update or portfolio append.
type ProviderProfileUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *dto.ProviderProfileRequest) (*dto.ProviderProfileResponse, error)
	Update(ctx context.Context, profileID, requesterID uuid.UUID, req *dto.ProviderProfileRequest) (*dto.ProviderProfileResponse, error)
	AddPortfolioItem(ctx context.Context, profileID, requesterID uuid.UUID, req *dto.PortfolioItemRequest) (*dto.PortfolioItemResponse, error)
	GetPublic(ctx context.Context, profileID uuid.UUID, message string) (*dto.PublicProviderResponse, error)
	GetMine(ctx context.Context, ownerID uuid.UUID) (*dto.ProviderProfileResponse, error)
}

type providerProfileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	validator    *validator.CustomValidator
	profileRepo  repository.ProviderProfileRepository
	auditService service.AuditService
}

func NewProviderProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	profileRepo repository.ProviderProfileRepository,
	auditService service.AuditService,
) ProviderProfileUsecase {
	return &providerProfileUsecase{
		db:           db,
		log:          log,
		validator:    validator,
		profileRepo:  profileRepo,
		auditService: auditService,
	}
}

func (u *providerProfileUsecase) Create(ctx context.Context, ownerID uuid.UUID, req *dto.ProviderProfileRequest) (*dto.ProviderProfileResponse, error) {
	trimProfileRequest(req)
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, domainerrors.NewStorageError("begin transaction", tx.Error)
	}
	defer tx.Rollback()

	existing, err := u.profileRepo.FindByOwnerID(ctx, tx, ownerID)
	if err != nil {
		u.log.Warnf("Failed to find provider profile by owner: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.ErrConflict
	}

	profile := &entity.ProviderProfile{
		OwnerID:       ownerID,
		RatingAverage: decimal.Zero,
		RatingCount:   0,
		IsVerified:    false,
		IsActive:      true,
	}
	applyProfileRequest(profile, req)

	// the unique index on owner_id settles a race the pre-check lost
	if err := u.profileRepo.Create(ctx, tx, profile); err != nil {
		u.log.Warnf("Failed to create provider profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &ownerID, entity.AuditActionProfileCreate, auditEntityProviderProfile, profile.ID.String(), converter.ProviderProfileToResponse(profile)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, domainerrors.NewStorageError("commit provider profile", err)
	}

	return u.reload(ctx, profile)
}

func (u *providerProfileUsecase) Update(ctx context.Context, profileID, requesterID uuid.UUID, req *dto.ProviderProfileRequest) (*dto.ProviderProfileResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, domainerrors.NewStorageError("begin transaction", tx.Error)
	}
	defer tx.Rollback()

	profile, err := u.loadOwnedProfile(ctx, tx, profileID, requesterID)
	if err != nil {
		return nil, err
	}

	trimProfileRequest(req)
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}

	// Capture old value for audit
	oldValue := converter.ProviderProfileToResponse(profile)

	applyProfileRequest(profile, req)
	if err := u.profileRepo.Update(ctx, tx, profile); err != nil {
		u.log.Warnf("Failed to update provider profile: %+v", err)
		return nil, err
	}

	newValue := converter.ProviderProfileToResponse(profile)
	if err := u.auditService.LogUpdate(ctx, tx, &requesterID, entity.AuditActionProfileUpdate, auditEntityProviderProfile, profile.ID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, domainerrors.NewStorageError("commit provider profile", err)
	}

	return u.reload(ctx, profile)
}

func (u *providerProfileUsecase) AddPortfolioItem(ctx context.Context, profileID, requesterID uuid.UUID, req *dto.PortfolioItemRequest) (*dto.PortfolioItemResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, domainerrors.NewStorageError("begin transaction", tx.Error)
	}
	defer tx.Rollback()

	profile, err := u.loadOwnedProfile(ctx, tx, profileID, requesterID)
	if err != nil {
		return nil, err
	}

	trimPortfolioRequest(req)
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}

	item := &entity.PortfolioItem{
		ProviderProfileID: profile.ID,
		ImageURL:          req.ImageURL,
		Description:       req.Description,
		UploadedAt:        time.Now(),
	}
	if err := u.profileRepo.AppendPortfolioItem(ctx, tx, item); err != nil {
		u.log.Warnf("Failed to append portfolio item: %+v", err)
		return nil, err
	}

	itemResponse := converter.PortfolioItemToResponse(item)
	if err := u.auditService.LogCreate(ctx, tx, &requesterID, entity.AuditActionPortfolioAdd, auditEntityProviderProfile, profile.ID.String(), itemResponse); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, domainerrors.NewStorageError("commit portfolio item", err)
	}

	return itemResponse, nil
}

func (u *providerProfileUsecase) GetPublic(ctx context.Context, profileID uuid.UUID, message string) (*dto.PublicProviderResponse, error) {
	profile, err := u.profileRepo.FindByID(ctx, u.db, profileID)
	if err != nil {
		u.log.Warnf("Failed to find provider profile: %+v", err)
		return nil, err
	}
	// inactive profiles are reported exactly like missing ones
	if profile == nil || !profile.IsActive {
		return nil, domainerrors.ErrNotFound
	}

	return converter.ProviderProfileToPublicResponse(profile, message), nil
}

func (u *providerProfileUsecase) GetMine(ctx context.Context, ownerID uuid.UUID) (*dto.ProviderProfileResponse, error) {
	profile, err := u.profileRepo.FindByOwnerID(ctx, u.db, ownerID)
	if err != nil {
		u.log.Warnf("Failed to find provider profile by owner: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, domainerrors.ErrNotFound
	}

	return converter.ProviderProfileToResponse(profile), nil
}

// loadOwnedProfile is the single ownership gate for every mutation.
func (u *providerProfileUsecase) loadOwnedProfile(ctx context.Context, db *gorm.DB, profileID, requesterID uuid.UUID) (*entity.ProviderProfile, error) {
	profile, err := u.profileRepo.FindByID(ctx, db, profileID)
	if err != nil {
		u.log.Warnf("Failed to find provider profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, domainerrors.ErrNotFound
	}
	if profile.OwnerID != requesterID {
		u.log.Warnf("User %s attempted to modify provider profile %s", requesterID, profileID)
		return nil, domainerrors.ErrForbidden
	}
	return profile, nil
}

func (u *providerProfileUsecase) reload(ctx context.Context, profile *entity.ProviderProfile) (*dto.ProviderProfileResponse, error) {
	fresh, err := u.profileRepo.FindByID(ctx, u.db, profile.ID)
	if err != nil {
		u.log.Warnf("Failed to reload provider profile: %+v", err)
		return nil, err
	}
	if fresh == nil {
		return nil, domainerrors.ErrNotFound
	}
	return converter.ProviderProfileToResponse(fresh), nil
}

func applyProfileRequest(profile *entity.ProviderProfile, req *dto.ProviderProfileRequest) {
	profile.Category = req.Category
	profile.Bio = req.Bio
	profile.Location = entity.Location{
		State: req.Location.State,
		City:  req.Location.City,
		LGA:   req.Location.LGA,
	}
	profile.Contact = entity.Contact{
		Phone:    req.Contact.Phone,
		WhatsApp: req.Contact.WhatsApp,
		Email:    req.Contact.Email,
	}
}
