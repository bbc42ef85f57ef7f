package repository

import (
	"context"

	"gorm.io/gorm"

	"autosalon/internal/apperrors"
	"autosalon/internal/models"
)

// ReferenceRepo — чтение справочников (кузов, топливо, трансмиссия, привод).
type ReferenceRepo struct {
	db *gorm.DB
}

func NewReferenceRepo(db *gorm.DB) *ReferenceRepo {
	return &ReferenceRepo{db: db}
}

func (r *ReferenceRepo) BodyTypes(ctx context.Context) ([]models.BodyType, error) {
	var items []models.BodyType
	if err := r.db.WithContext(ctx).Order("name asc").Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Ошибка получения типов кузова", err)
	}
	return items, nil
}

func (r *ReferenceRepo) FuelTypes(ctx context.Context) ([]models.FuelType, error) {
	var items []models.FuelType
	if err := r.db.WithContext(ctx).Order("name asc").Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Ошибка получения типов топлива", err)
	}
	return items, nil
}

func (r *ReferenceRepo) TransmissionTypes(ctx context.Context) ([]models.TransmissionType, error) {
	var items []models.TransmissionType
	if err := r.db.WithContext(ctx).Order("name asc").Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Ошибка получения типов трансмиссии", err)
	}
	return items, nil
}

func (r *ReferenceRepo) DriveTypes(ctx context.Context) ([]models.DriveType, error) {
	var items []models.DriveType
	if err := r.db.WithContext(ctx).Order("name asc").Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Ошибка получения типов привода", err)
	}
	return items, nil
}
