package database

import (
	"gorm.io/gorm"

	"autosalon/internal/models"
)

// CreateAuditLog — запись в журнал аудита. Ошибка записи не должна
// ломать основную операцию, поэтому только логируется на уровне gorm.
func CreateAuditLog(db *gorm.DB, userID uint, entity string, entityID uint, action, details string) {
	if db == nil {
		return
	}
	record := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	_ = db.Create(&record).Error
}
