package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"autosalon/internal/apperrors"
	"autosalon/internal/models"
)

type DealRepo struct {
	db *gorm.DB
}

func NewDealRepo(db *gorm.DB) *DealRepo {
	return &DealRepo{db: db}
}

// DealView — денормализованное представление сделки для выдачи:
// сделка + имя и текущая цена автомобиля + имена клиента и менеджера.
// LEFT JOIN: если автомобиль/клиент/менеджер удалены, сделка всё равно
// возвращается, обогащённые поля остаются пустыми.
type DealView struct {
	models.Deal `gorm:"embedded"`

	CarName         *string  `json:"car_name"`
	CarCurrentPrice *float64 `json:"car_current_price"`
	ClientName      *string  `json:"client_name"`
	ManagerName     *string  `json:"manager_name"`
}

func (r *DealRepo) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("deals").
		Select("deals.*, " +
			"(cars.brand || ' ' || cars.model) AS car_name, " +
			"cars.price AS car_current_price, " +
			"clients.name AS client_name, " +
			"users.name AS manager_name").
		Joins("LEFT JOIN cars ON cars.id = deals.car_id").
		Joins("LEFT JOIN clients ON clients.id = deals.client_id").
		Joins("LEFT JOIN users ON users.id = deals.manager_id")
}

func (r *DealRepo) ListViews(ctx context.Context) ([]DealView, error) {
	var views []DealView
	if err := r.viewQuery(ctx).Order("deals.created_at desc").Find(&views).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Ошибка получения сделок", err)
	}
	return views, nil
}

func (r *DealRepo) GetView(ctx context.Context, id uint) (*DealView, error) {
	var view DealView
	err := r.viewQuery(ctx).Where("deals.id = ?", id).First(&view).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.New(apperrors.NotFound, "Сделка не найдена")
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Ошибка получения сделки", err)
	}
	return &view, nil
}

func (r *DealRepo) GetByID(ctx context.Context, id uint) (*models.Deal, error) {
	var deal models.Deal
	err := r.db.WithContext(ctx).First(&deal, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.New(apperrors.NotFound, "Сделка не найдена")
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Ошибка получения сделки", err)
	}
	return &deal, nil
}

func (r *DealRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Deal{}, id)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.Internal, "Ошибка удаления сделки", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.NotFound, "Сделка не найдена")
	}
	return nil
}
