package repository

import (
	"context"
	"errors"

	"local-services-marketplace/internal/domain/entity"
	domainerrors "local-services-marketplace/internal/domain/errors"
	domainRepo "local-services-marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateKeyError(err, "email") {
			return domainerrors.ErrConflict
		}
		return domainerrors.NewStorageError("create user", err)
	}
	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domainerrors.NewStorageError("find user by email", err)
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domainerrors.NewStorageError("find user", err)
	}
	return &user, nil
}
