package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"local-services-marketplace/internal/domain/entity"
	domainerrors "local-services-marketplace/internal/domain/errors"
	domainRepo "local-services-marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// columns replaced by a full profile update
var profileUpdateColumns = []string{
	"category",
	"bio",
	"location_state",
	"location_city",
	"location_lga",
	"contact_phone",
	"contact_whatsapp",
	"contact_email",
	"updated_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type providerProfileRepository struct{}

func NewProviderProfileRepository() domainRepo.ProviderProfileRepository {
	return &providerProfileRepository{}
}

func (r *providerProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.ProviderProfile) error {
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(profile).Error; err != nil {
		if isDuplicateKeyError(err, "owner_id") {
			return domainerrors.ErrConflict
		}
		return domainerrors.NewStorageError("create provider profile", err)
	}
	return nil
}

func (r *providerProfileRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.ProviderProfile, error) {
	return r.findOne(ctx, db, "id = ?", id)
}

func (r *providerProfileRepository) FindByOwnerID(ctx context.Context, db *gorm.DB, ownerID uuid.UUID) (*entity.ProviderProfile, error) {
	return r.findOne(ctx, db, "owner_id = ?", ownerID)
}

func (r *providerProfileRepository) Update(ctx context.Context, db *gorm.DB, profile *entity.ProviderProfile) error {
	result := db.WithContext(ctx).
		Model(profile).
		Select(profileUpdateColumns).
		Updates(profile)
	if result.Error != nil {
		return domainerrors.NewStorageError("update provider profile", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *providerProfileRepository) AppendPortfolioItem(ctx context.Context, db *gorm.DB, item *entity.PortfolioItem) error {
	if err := db.WithContext(ctx).Create(item).Error; err != nil {
		return domainerrors.NewStorageError("append portfolio item", err)
	}

	err := db.WithContext(ctx).
		Model(&entity.ProviderProfile{}).
		Where("id = ?", item.ProviderProfileID).
		Update("updated_at", time.Now()).Error
	if err != nil {
		return domainerrors.NewStorageError("touch provider profile", err)
	}
	return nil
}

func (r *providerProfileRepository) ListActive(ctx context.Context, db *gorm.DB, limit, offset int) ([]entity.ProviderProfile, int64, error) {
	return r.Search(ctx, db, entity.ProviderFilter{}, entity.SortNewest, limit, offset)
}

// Search returns one page of active profiles matching filter and the total
// number of matches.
func (r *providerProfileRepository) Search(ctx context.Context, db *gorm.DB, filter entity.ProviderFilter, sort entity.ProviderSort, limit, offset int) ([]entity.ProviderProfile, int64, error) {
	filter = filter.Normalize()

	base := func() *gorm.DB {
		query := db.WithContext(ctx).Model(&entity.ProviderProfile{}).Where("is_active = ?", true)
		return applyProviderFilter(query, filter)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewStorageError("count provider profiles", err)
	}

	profiles := []entity.ProviderProfile{}
	if total == 0 || int64(offset) >= total {
		return profiles, total, nil
	}

	query := base()
	if sort == entity.SortTopRated {
		query = query.Order("rating_average DESC")
	}
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Preload("Owner").
		Preload("Portfolio", orderPortfolio).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, domainerrors.NewStorageError("search provider profiles", err)
	}

	return profiles, total, nil
}

func (r *providerProfileRepository) findOne(ctx context.Context, db *gorm.DB, cond string, arg interface{}) (*entity.ProviderProfile, error) {
	var profile entity.ProviderProfile
	err := db.WithContext(ctx).
		Preload("Owner").
		Preload("Portfolio", orderPortfolio).
		Where(cond, arg).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domainerrors.NewStorageError("find provider profile", err)
	}
	return &profile, nil
}

func orderPortfolio(db *gorm.DB) *gorm.DB {
	return db.Order("portfolio_items.id ASC")
}

func applyProviderFilter(query *gorm.DB, filter entity.ProviderFilter) *gorm.DB {
	if filter.Category != "" {
		query = query.Where(`LOWER(category) LIKE ? ESCAPE '\'`, containsPattern(filter.Category))
	}
	if filter.State != "" {
		query = query.Where(`LOWER(location_state) LIKE ? ESCAPE '\'`, containsPattern(filter.State))
	}
	if filter.LGA != "" {
		query = query.Where(`LOWER(location_lga) LIKE ? ESCAPE '\'`, containsPattern(filter.LGA))
	}
	if filter.Keyword != "" {
		pattern := containsPattern(filter.Keyword)
		query = query.Where(`(LOWER(category) LIKE ? ESCAPE '\' OR LOWER(bio) LIKE ? ESCAPE '\')`, pattern, pattern)
	}
	return query
}

// containsPattern turns free text into a case-insensitive substring LIKE
// pattern with the user's wildcards taken literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
