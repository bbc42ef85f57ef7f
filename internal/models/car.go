package models

import "time"

type CarStatus string

const (
	CarAvailable CarStatus = "available"
	CarSold      CarStatus = "sold"
	CarReserved  CarStatus = "reserved"
)

type Car struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Brand       string    `gorm:"size:100;not null" json:"brand"`
	Model       string    `gorm:"size:100;not null" json:"model"`
	Year        int       `gorm:"not null" json:"year"`
	Price       float64   `gorm:"not null" json:"price"`
	Mileage     int       `json:"mileage"`
	BodyType    string    `gorm:"size:100" json:"body_type"`
	Description string    `gorm:"type:text" json:"description"`
	Status      CarStatus `gorm:"type:varchar(20);not null;default:'available'" json:"status"`

	// характеристики двигателя (необязательные)
	EngineVolume *float64 `json:"engine_volume"`
	Power        *int     `json:"power"`

	// справочники
	FuelTypeID         *uint             `json:"fuel_type_id"`
	FuelType           *FuelType         `json:"fuel_type,omitempty"`
	TransmissionTypeID *uint             `json:"transmission_type_id"`
	TransmissionType   *TransmissionType `json:"transmission_type,omitempty"`
	DriveTypeID        *uint             `json:"drive_type_id"`
	DriveType          *DriveType        `json:"drive_type,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
