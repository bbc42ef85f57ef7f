package models

import "time"

type Brand struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Country   string    `gorm:"size:100" json:"country"`
	CreatedAt time.Time `json:"created_at"`
}
