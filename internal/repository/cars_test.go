package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"autosalon/internal/apperrors"
	"autosalon/internal/database"
	"autosalon/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedCars(t *testing.T, db *gorm.DB) {
	t.Helper()
	cars := []models.Car{
		{Brand: "Toyota", Model: "Camry", Year: 2022, Price: 3_200_000, Mileage: 15_000, BodyType: "Седан", Status: models.CarAvailable},
		{Brand: "Toyota", Model: "RAV4", Year: 2020, Price: 2_800_000, Mileage: 60_000, BodyType: "Кроссовер", Status: models.CarSold},
		{Brand: "BMW", Model: "X5", Year: 2023, Price: 8_500_000, Mileage: 5_000, BodyType: "Кроссовер", Status: models.CarAvailable},
		{Brand: "Lada", Model: "Vesta", Year: 2019, Price: 900_000, Mileage: 90_000, BodyType: "Седан", Status: models.CarReserved},
	}
	for i := range cars {
		require.NoError(t, db.Create(&cars[i]).Error)
	}
}

func TestCarListFilters(t *testing.T) {
	db := newTestDB(t)
	seedCars(t, db)
	repo := NewCarRepo(db)
	ctx := context.Background()

	// подстрока марки без учёта регистра
	cars, err := repo.List(ctx, CarFilter{Brand: "toyo"})
	require.NoError(t, err)
	require.Len(t, cars, 2)

	cars, err = repo.List(ctx, CarFilter{Status: models.CarAvailable})
	require.NoError(t, err)
	require.Len(t, cars, 2)

	from, to := 2020, 2022
	cars, err = repo.List(ctx, CarFilter{YearFrom: &from, YearTo: &to})
	require.NoError(t, err)
	require.Len(t, cars, 2)

	priceTo := 1_000_000.0
	cars, err = repo.List(ctx, CarFilter{PriceTo: &priceTo})
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, "Lada", cars[0].Brand)

	cars, err = repo.List(ctx, CarFilter{BodyType: "седан"})
	require.NoError(t, err)
	require.Len(t, cars, 2)
}

func TestCarListSort(t *testing.T) {
	db := newTestDB(t)
	seedCars(t, db)
	repo := NewCarRepo(db)
	ctx := context.Background()

	cars, err := repo.List(ctx, CarFilter{SortBy: "price"})
	require.NoError(t, err)
	require.Len(t, cars, 4)
	assert.Equal(t, "Vesta", cars[0].Model)
	assert.Equal(t, "X5", cars[3].Model)

	cars, err = repo.List(ctx, CarFilter{SortBy: "year", SortDesc: true})
	require.NoError(t, err)
	assert.Equal(t, 2023, cars[0].Year)

	// произвольная колонка в сортировку не попадает
	cars, err = repo.List(ctx, CarFilter{SortBy: "status; DROP TABLE cars"})
	require.NoError(t, err)
	require.Len(t, cars, 4)
}

func TestCarGetUpdateDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewCarRepo(db)
	ctx := context.Background()

	car := &models.Car{Brand: "Kia", Model: "Rio", Year: 2021, Price: 1_500_000}
	require.NoError(t, repo.Create(ctx, car))
	require.NotZero(t, car.ID)

	got, err := repo.GetByID(ctx, car.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rio", got.Model)

	_, err = repo.GetByID(ctx, 999)
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))

	created := got.CreatedAt
	got.Price = 1_400_000
	require.NoError(t, repo.Update(ctx, got))

	fresh, err := repo.GetByID(ctx, car.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(1_400_000), fresh.Price)
	// дата создания при обновлении не сбрасывается
	assert.Equal(t, created.Unix(), fresh.CreatedAt.Unix())

	updated, err := repo.UpdateStatus(ctx, car.ID, models.CarReserved)
	require.NoError(t, err)
	assert.Equal(t, models.CarReserved, updated.Status)

	_, err = repo.UpdateStatus(ctx, 999, models.CarSold)
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))

	require.NoError(t, repo.Delete(ctx, car.ID))
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(repo.Delete(ctx, car.ID)))
}
