package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"autosalon/internal/apperrors"
	"autosalon/internal/models"
)

type ClientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) *ClientRepo {
	return &ClientRepo{db: db}
}

func (r *ClientRepo) List(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&clients).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Ошибка получения клиентов", err)
	}
	return clients, nil
}

func (r *ClientRepo) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).First(&client, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.New(apperrors.NotFound, "Клиент не найден")
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Ошибка получения клиента", err)
	}
	return &client, nil
}

func (r *ClientRepo) Create(ctx context.Context, client *models.Client) error {
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		return apperrors.Wrap(apperrors.Internal, "Ошибка создания клиента", err)
	}
	return nil
}

func (r *ClientRepo) Update(ctx context.Context, client *models.Client) error {
	var existing models.Client
	err := r.db.WithContext(ctx).First(&existing, client.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.New(apperrors.NotFound, "Клиент не найден")
	}
	if err != nil {
		return apperrors.Wrap(apperrors.Internal, "Ошибка обновления клиента", err)
	}

	client.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(client).Error; err != nil {
		return apperrors.Wrap(apperrors.Internal, "Ошибка обновления клиента", err)
	}
	return nil
}

func (r *ClientRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Client{}, id)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.Internal, "Ошибка удаления клиента", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.NotFound, "Клиент не найден")
	}
	return nil
}
