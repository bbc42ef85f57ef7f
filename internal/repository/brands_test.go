package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autosalon/internal/apperrors"
	"autosalon/internal/models"
)

func TestBrandCreateDuplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewBrandRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Brand{Name: "Toyota", Country: "Япония"}))

	err := repo.Create(ctx, &models.Brand{Name: "TOYOTA"})
	require.Error(t, err)
	assert.Equal(t, apperrors.Conflict, apperrors.KindOf(err))
}

func TestBrandUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewBrandRepo(db)
	ctx := context.Background()

	toyota := models.Brand{Name: "Toyota"}
	bmw := models.Brand{Name: "BMW"}
	require.NoError(t, repo.Create(ctx, &toyota))
	require.NoError(t, repo.Create(ctx, &bmw))

	// переименование в занятое имя не проходит
	bmw.Name = "toyota"
	err := repo.Update(ctx, &bmw)
	assert.Equal(t, apperrors.Conflict, apperrors.KindOf(err))

	// пересохранение под своим же именем — не конфликт
	toyota.Country = "Япония"
	require.NoError(t, repo.Update(ctx, &toyota))

	got, err := repo.GetByID(ctx, toyota.ID)
	require.NoError(t, err)
	assert.Equal(t, "Япония", got.Country)
}

func TestBrandDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewBrandRepo(db)
	ctx := context.Background()

	brand := models.Brand{Name: "Lada"}
	require.NoError(t, repo.Create(ctx, &brand))
	require.NoError(t, repo.Delete(ctx, brand.ID))
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(repo.Delete(ctx, brand.ID)))
}
