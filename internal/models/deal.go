package models

import "time"

type DealType string

const (
	DealSale        DealType = "sale"
	DealReservation DealType = "reservation"
)

type DealStatus string

const (
	DealNew       DealStatus = "new"
	DealInProcess DealStatus = "in_process"
	DealCompleted DealStatus = "completed"
	DealCanceled  DealStatus = "canceled"
)

// TargetCarStatus — в какой статус переводится автомобиль при создании сделки.
func (t DealType) TargetCarStatus() CarStatus {
	if t == DealReservation {
		return CarReserved
	}
	return CarSold
}

type Deal struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CarID     uint `gorm:"index" json:"car_id"`
	ClientID  uint `gorm:"index" json:"client_id"`
	ManagerID uint `gorm:"index" json:"manager_id"`

	Type   DealType   `gorm:"type:varchar(20);not null" json:"type"`
	Status DealStatus `gorm:"type:varchar(20);not null" json:"status"`

	// Снапшот автомобиля на момент сделки. Не меняется после создания,
	// даже если карточку автомобиля потом отредактируют.
	CarBrand            string    `gorm:"size:100" json:"car_brand"`
	CarModel            string    `gorm:"size:100" json:"car_model"`
	CarYear             int       `json:"car_year"`
	CarPrice            float64   `json:"car_price"`
	CarMileage          int       `json:"car_mileage"`
	CarBodyType         string    `gorm:"size:100" json:"car_body_type"`
	CarDescription      string    `gorm:"type:text" json:"car_description"`
	CarEngineVolume     *float64  `json:"car_engine_volume"`
	CarPower            *int      `json:"car_power"`
	CarFuelType         string    `gorm:"size:50" json:"car_fuel_type"`
	CarTransmissionType string    `gorm:"size:50" json:"car_transmission_type"`
	CarDriveType        string    `gorm:"size:50" json:"car_drive_type"`
	CarStatusAtCreation CarStatus `gorm:"type:varchar(20)" json:"car_status_at_creation"`

	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}
