package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"autosalon/internal/apperrors"
	"autosalon/internal/database"
	"autosalon/internal/middleware"
)

// respondError переводит ошибку сервиса в HTTP-ответ {"error": "..."}.
// Внутренние ошибки логируются, наружу уходит только общее сообщение.
func respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	if kind == apperrors.Internal {
		log.WithFields(log.Fields{
			"path": c.Request.URL.Path,
			"err":  err,
		}).Error("internal error")
	}
	c.JSON(apperrors.HTTPStatus(kind), gin.H{"error": apperrors.ClientMessage(err)})
}

// parseID разбирает :id из пути; при ошибке сам пишет ответ 400.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID"})
		return 0, false
	}
	return uint(id), true
}

// audit пишет запись в журнал от имени текущего пользователя.
func (h *Handler) audit(c *gin.Context, entity string, entityID uint, action, details string) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return
	}
	database.CreateAuditLog(h.db, claims.UserID, entity, entityID, action, details)
}
