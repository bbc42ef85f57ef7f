package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autosalon/internal/models"
)

func (h *Handler) ListAuditLogs(c *gin.Context) {
	var logs []models.AuditLog
	err := h.db.WithContext(c.Request.Context()).
		Preload("User").
		Order("created_at desc").
		Limit(200).
		Find(&logs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения журнала аудита"})
		return
	}

	c.JSON(http.StatusOK, logs)
}
