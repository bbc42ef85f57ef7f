package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"autosalon/internal/apperrors"
	"autosalon/internal/models"
	"autosalon/internal/repository"
)

// DealService — ядро: создание сделки одной транзакцией
// (клиент + снапшот автомобиля + перевод его статуса) и жизненный цикл
// статуса сделки.
type DealService struct {
	db    *gorm.DB
	deals *repository.DealRepo
}

func NewDealService(db *gorm.DB) *DealService {
	return &DealService{db: db, deals: repository.NewDealRepo(db)}
}

type CreateDealInput struct {
	CarID     uint
	ClientID  uint
	ManagerID uint
	Type      models.DealType
}

type CreateDealWithClientInput struct {
	CarID      uint
	ClientName string
	ManagerID  uint
	Type       models.DealType
}

// Create оформляет сделку на существующего клиента.
func (s *DealService) Create(ctx context.Context, in CreateDealInput) (*repository.DealView, error) {
	if in.CarID == 0 || in.ClientID == 0 || in.ManagerID == 0 || in.Type == "" {
		return nil, apperrors.New(apperrors.InvalidArgument, "Обязательные поля: car_id, client_id, manager_id, type")
	}
	if !validDealType(in.Type) {
		return nil, apperrors.New(apperrors.InvalidArgument, "Неверный тип сделки")
	}

	var dealID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, in.ClientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.New(apperrors.NotFound, "Клиент не найден")
			}
			return apperrors.Wrap(apperrors.Internal, "Ошибка создания сделки", err)
		}
		return s.createDealTx(tx, in.CarID, client.ID, in.ManagerID, in.Type, &dealID)
	})
	if err != nil {
		return nil, err
	}

	return s.deals.GetView(ctx, dealID)
}

// CreateWithNewClient оформляет сделку и заводит клиента одной транзакцией.
// Если автомобиль не найден или недоступен, клиент тоже не сохраняется.
func (s *DealService) CreateWithNewClient(ctx context.Context, in CreateDealWithClientInput) (*repository.DealView, error) {
	name := strings.TrimSpace(in.ClientName)
	if in.CarID == 0 || name == "" || in.ManagerID == 0 || in.Type == "" {
		return nil, apperrors.New(apperrors.InvalidArgument, "Обязательные поля: car_id, client_name, manager_id, type")
	}
	if !validDealType(in.Type) {
		return nil, apperrors.New(apperrors.InvalidArgument, "Неверный тип сделки")
	}

	var dealID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		client := models.Client{Name: name}
		if err := tx.Create(&client).Error; err != nil {
			return apperrors.Wrap(apperrors.Internal, "Ошибка создания клиента", err)
		}
		return s.createDealTx(tx, in.CarID, client.ID, in.ManagerID, in.Type, &dealID)
	})
	if err != nil {
		return nil, err
	}

	return s.deals.GetView(ctx, dealID)
}

// createDealTx — общая часть обеих операций, выполняется внутри транзакции.
func (s *DealService) createDealTx(tx *gorm.DB, carID, clientID, managerID uint, dealType models.DealType, dealID *uint) error {
	var manager models.User
	if err := tx.First(&manager, managerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.NotFound, "Менеджер не найден")
		}
		return apperrors.Wrap(apperrors.Internal, "Ошибка создания сделки", err)
	}

	var car models.Car
	err := tx.Preload("FuelType").Preload("TransmissionType").Preload("DriveType").
		First(&car, carID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.NotFound, "Автомобиль не найден")
		}
		return apperrors.Wrap(apperrors.Internal, "Ошибка создания сделки", err)
	}

	deal := snapshotDeal(&car, clientID, managerID, dealType)
	if err := tx.Create(deal).Error; err != nil {
		return apperrors.Wrap(apperrors.Internal, "Ошибка создания сделки", err)
	}

	// Перевод статуса автомобиля строго из available: две конкурирующие
	// сделки на один автомобиль пройти не могут — вторая получит Conflict.
	res := tx.Model(&models.Car{}).
		Where("id = ? AND status = ?", carID, models.CarAvailable).
		Update("status", dealType.TargetCarStatus())
	if res.Error != nil {
		return apperrors.Wrap(apperrors.Internal, "Ошибка обновления статуса автомобиля", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.Conflict, "Автомобиль недоступен для сделки")
	}

	*dealID = deal.ID
	return nil
}

// snapshotDeal копирует описательные поля автомобиля в сделку.
// Снапшот фиксирует состояние на момент оформления и далее не меняется.
func snapshotDeal(car *models.Car, clientID, managerID uint, dealType models.DealType) *models.Deal {
	deal := &models.Deal{
		CarID:     car.ID,
		ClientID:  clientID,
		ManagerID: managerID,
		Type:      dealType,
		Status:    models.DealNew,

		CarBrand:            car.Brand,
		CarModel:            car.Model,
		CarYear:             car.Year,
		CarPrice:            car.Price,
		CarMileage:          car.Mileage,
		CarBodyType:         car.BodyType,
		CarDescription:      car.Description,
		CarEngineVolume:     car.EngineVolume,
		CarPower:            car.Power,
		CarStatusAtCreation: car.Status,
	}
	if car.FuelType != nil {
		deal.CarFuelType = car.FuelType.Name
	}
	if car.TransmissionType != nil {
		deal.CarTransmissionType = car.TransmissionType.Name
	}
	if car.DriveType != nil {
		deal.CarDriveType = car.DriveType.Name
	}
	return deal
}

// UpdateStatus переводит сделку по state machine. Отмена сделки
// возвращает автомобиль в available, если его статус всё ещё
// соответствует исходу этой сделки (компенсирующий переход).
func (s *DealService) UpdateStatus(ctx context.Context, id uint, to models.DealStatus) (*models.Deal, error) {
	if !validDealStatus(to) {
		return nil, apperrors.New(apperrors.InvalidArgument, "Неверный статус")
	}

	var deal models.Deal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deal, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.New(apperrors.NotFound, "Сделка не найдена")
			}
			return apperrors.Wrap(apperrors.Internal, "Ошибка обновления сделки", err)
		}

		from := deal.Status
		if err := models.ApplyTransition(&deal, to, time.Now()); err != nil {
			return apperrors.New(apperrors.InvalidArgument, "Недопустимый переход статуса")
		}

		if err := tx.Save(&deal).Error; err != nil {
			return apperrors.Wrap(apperrors.Internal, "Ошибка обновления сделки", err)
		}

		if to == models.DealCanceled && from != models.DealCanceled {
			res := tx.Model(&models.Car{}).
				Where("id = ? AND status = ?", deal.CarID, deal.Type.TargetCarStatus()).
				Update("status", models.CarAvailable)
			if res.Error != nil {
				return apperrors.Wrap(apperrors.Internal, "Ошибка обновления статуса автомобиля", res.Error)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

func (s *DealService) Complete(ctx context.Context, id uint) (*models.Deal, error) {
	return s.UpdateStatus(ctx, id, models.DealCompleted)
}

func (s *DealService) Cancel(ctx context.Context, id uint) (*models.Deal, error) {
	return s.UpdateStatus(ctx, id, models.DealCanceled)
}

func validDealType(t models.DealType) bool {
	return t == models.DealSale || t == models.DealReservation
}

func validDealStatus(s models.DealStatus) bool {
	switch s {
	case models.DealNew, models.DealInProcess, models.DealCompleted, models.DealCanceled:
		return true
	}
	return false
}
