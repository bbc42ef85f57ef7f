package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"autosalon/internal/apperrors"
	"autosalon/internal/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.New(apperrors.NotFound, "Пользователь не найден")
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Ошибка получения пользователя", err)
	}
	return &u, nil
}

func (r *UserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.New(apperrors.NotFound, "Пользователь не найден")
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Ошибка получения пользователя", err)
	}
	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, u *models.User) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("LOWER(email) = LOWER(?)", u.Email).
		Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.Internal, "Ошибка создания пользователя", err)
	}
	if count > 0 {
		return apperrors.New(apperrors.Conflict, "Пользователь с таким email уже существует")
	}

	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return apperrors.Wrap(apperrors.Internal, "Ошибка создания пользователя", err)
	}
	return nil
}
