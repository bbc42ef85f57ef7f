package models

import "time"

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID uint `json:"user_id"`
	User   User `json:"user"`

	Entity   string `gorm:"size:50;not null" json:"entity"` // "car", "client", "deal", "brand"
	EntityID uint   `json:"entity_id"`
	Action   string `gorm:"size:50;not null" json:"action"` // "create", "update", "delete", "status_change"
	Details  string `gorm:"type:text" json:"details"`
}
