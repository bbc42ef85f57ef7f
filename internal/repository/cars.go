package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"autosalon/internal/apperrors"
	"autosalon/internal/models"
)

type CarRepo struct {
	db *gorm.DB
}

func NewCarRepo(db *gorm.DB) *CarRepo {
	return &CarRepo{db: db}
}

// CarFilter — параметры выборки каталога.
// Указатели отличают "не задано" от нулевого значения.
type CarFilter struct {
	Brand    string
	Status   models.CarStatus
	BodyType string

	FuelTypeID         uint
	TransmissionTypeID uint
	DriveTypeID        uint

	YearFrom, YearTo                 *int
	PriceFrom, PriceTo               *float64
	MileageFrom, MileageTo           *int
	EngineVolumeFrom, EngineVolumeTo *float64
	PowerFrom, PowerTo               *int

	SortBy   string
	SortDesc bool
}

var carSortColumns = map[string]string{
	"price":      "price",
	"year":       "year",
	"mileage":    "mileage",
	"brand":      "brand",
	"created_at": "created_at",
}

func (r *CarRepo) List(ctx context.Context, f CarFilter) ([]models.Car, error) {
	q := r.db.WithContext(ctx).Model(&models.Car{}).
		Preload("FuelType").Preload("TransmissionType").Preload("DriveType")

	if f.Brand != "" {
		q = q.Where("LOWER(brand) LIKE LOWER(?)", "%"+f.Brand+"%")
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.BodyType != "" {
		q = q.Where("LOWER(body_type) = LOWER(?)", f.BodyType)
	}
	if f.FuelTypeID > 0 {
		q = q.Where("fuel_type_id = ?", f.FuelTypeID)
	}
	if f.TransmissionTypeID > 0 {
		q = q.Where("transmission_type_id = ?", f.TransmissionTypeID)
	}
	if f.DriveTypeID > 0 {
		q = q.Where("drive_type_id = ?", f.DriveTypeID)
	}

	q = rangeWhere(q, "year", f.YearFrom, f.YearTo)
	q = rangeWhere(q, "price", f.PriceFrom, f.PriceTo)
	q = rangeWhere(q, "mileage", f.MileageFrom, f.MileageTo)
	q = rangeWhere(q, "engine_volume", f.EngineVolumeFrom, f.EngineVolumeTo)
	q = rangeWhere(q, "power", f.PowerFrom, f.PowerTo)

	column, ok := carSortColumns[f.SortBy]
	if !ok {
		// по умолчанию — новые сверху
		column = "created_at"
		f.SortDesc = true
	}
	dir := "asc"
	if f.SortDesc {
		dir = "desc"
	}
	q = q.Order(fmt.Sprintf("%s %s", column, dir))

	var cars []models.Car
	if err := q.Find(&cars).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Ошибка получения автомобилей", err)
	}
	return cars, nil
}

func rangeWhere[T any](q *gorm.DB, column string, from, to *T) *gorm.DB {
	if from != nil {
		q = q.Where(column+" >= ?", *from)
	}
	if to != nil {
		q = q.Where(column+" <= ?", *to)
	}
	return q
}

func (r *CarRepo) GetByID(ctx context.Context, id uint) (*models.Car, error) {
	var car models.Car
	err := r.db.WithContext(ctx).
		Preload("FuelType").Preload("TransmissionType").Preload("DriveType").
		First(&car, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.New(apperrors.NotFound, "Автомобиль не найден")
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Ошибка получения автомобиля", err)
	}
	return &car, nil
}

func (r *CarRepo) Create(ctx context.Context, car *models.Car) error {
	if err := r.db.WithContext(ctx).Create(car).Error; err != nil {
		return apperrors.Wrap(apperrors.Internal, "Ошибка создания автомобиля", err)
	}
	return nil
}

// Update — полное обновление карточки по id.
func (r *CarRepo) Update(ctx context.Context, car *models.Car) error {
	var existing models.Car
	err := r.db.WithContext(ctx).First(&existing, car.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.New(apperrors.NotFound, "Автомобиль не найден")
	}
	if err != nil {
		return apperrors.Wrap(apperrors.Internal, "Ошибка обновления автомобиля", err)
	}

	car.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(car).Error; err != nil {
		return apperrors.Wrap(apperrors.Internal, "Ошибка обновления автомобиля", err)
	}
	return nil
}

func (r *CarRepo) UpdateStatus(ctx context.Context, id uint, status models.CarStatus) (*models.Car, error) {
	res := r.db.WithContext(ctx).Model(&models.Car{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Ошибка обновления статуса", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.New(apperrors.NotFound, "Автомобиль не найден")
	}
	return r.GetByID(ctx, id)
}

func (r *CarRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Car{}, id)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.Internal, "Ошибка удаления автомобиля", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.NotFound, "Автомобиль не найден")
	}
	return nil
}
