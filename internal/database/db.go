package database

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"autosalon/internal/models"
)

// Connect открывает соединение с PostgreSQL с повторными попытками
// (база может подниматься дольше сервиса).
func Connect(dsn string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Infof("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Info("connected to DB successfully")
			return db, nil
		}

		log.Warnf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect to db after %d attempts: %w", maxAttempts, err)
}

// Migrate создаёт/обновляет схему.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Car{},
		&models.Client{},
		&models.Deal{},
		&models.Brand{},
		&models.BodyType{},
		&models.FuelType{},
		&models.TransmissionType{},
		&models.DriveType{},
		&models.AuditLog{},
	)
}
