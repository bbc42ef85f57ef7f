package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"autosalon/internal/apperrors"
	"autosalon/internal/models"
)

type BrandRepo struct {
	db *gorm.DB
}

func NewBrandRepo(db *gorm.DB) *BrandRepo {
	return &BrandRepo{db: db}
}

func (r *BrandRepo) List(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	if err := r.db.WithContext(ctx).Order("name asc").Find(&brands).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Ошибка получения марок", err)
	}
	return brands, nil
}

func (r *BrandRepo) GetByID(ctx context.Context, id uint) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).First(&brand, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.New(apperrors.NotFound, "Марка не найдена")
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Ошибка получения марки", err)
	}
	return &brand, nil
}

func (r *BrandRepo) Create(ctx context.Context, brand *models.Brand) error {
	// проверка уникальности имени
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Brand{}).
		Where("LOWER(name) = LOWER(?)", brand.Name).
		Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.Internal, "Ошибка создания марки", err)
	}
	if count > 0 {
		return apperrors.New(apperrors.Conflict, "Марка с таким названием уже существует")
	}

	if err := r.db.WithContext(ctx).Create(brand).Error; err != nil {
		return apperrors.Wrap(apperrors.Internal, "Ошибка создания марки", err)
	}
	return nil
}

func (r *BrandRepo) Update(ctx context.Context, brand *models.Brand) error {
	var existing models.Brand
	err := r.db.WithContext(ctx).First(&existing, brand.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.New(apperrors.NotFound, "Марка не найдена")
	}
	if err != nil {
		return apperrors.Wrap(apperrors.Internal, "Ошибка обновления марки", err)
	}

	// проверка уникальности имени (кроме текущей записи)
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Brand{}).
		Where("LOWER(name) = LOWER(?) AND id <> ?", brand.Name, brand.ID).
		Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.Internal, "Ошибка обновления марки", err)
	}
	if count > 0 {
		return apperrors.New(apperrors.Conflict, "Марка с таким названием уже существует")
	}

	brand.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(brand).Error; err != nil {
		return apperrors.Wrap(apperrors.Internal, "Ошибка обновления марки", err)
	}
	return nil
}

func (r *BrandRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Brand{}, id)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.Internal, "Ошибка удаления марки", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.NotFound, "Марка не найдена")
	}
	return nil
}
