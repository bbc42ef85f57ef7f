package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autosalon/internal/models"
)

// Stats — сводные счётчики для дашборда.
func (h *Handler) Stats(c *gin.Context) {
	db := h.db.WithContext(c.Request.Context())

	var cars, clients, deals, users int64
	for _, item := range []struct {
		model any
		dst   *int64
	}{
		{&models.Car{}, &cars},
		{&models.Client{}, &clients},
		{&models.Deal{}, &deals},
		{&models.User{}, &users},
	} {
		if err := db.Model(item.model).Count(item.dst).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения статистики"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"cars":    cars,
		"clients": clients,
		"deals":   deals,
		"users":   users,
	})
}
