package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"autosalon/internal/models"
)

type clientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

func (h *Handler) ListClients(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *Handler) GetClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	client, err := h.clients.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *Handler) CreateClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Обязательное поле: name"})
		return
	}

	client := &models.Client{
		Name:  name,
		Phone: strings.TrimSpace(req.Phone),
		Email: strings.TrimSpace(req.Email),
		Notes: strings.TrimSpace(req.Notes),
	}
	if err := h.clients.Create(c.Request.Context(), client); err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "client", client.ID, "create", "Создан клиент: "+client.Name)
	c.JSON(http.StatusCreated, client)
}

func (h *Handler) UpdateClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Обязательное поле: name"})
		return
	}

	client := &models.Client{
		ID:    id,
		Name:  name,
		Phone: strings.TrimSpace(req.Phone),
		Email: strings.TrimSpace(req.Email),
		Notes: strings.TrimSpace(req.Notes),
	}
	if err := h.clients.Update(c.Request.Context(), client); err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "client", client.ID, "update", "Изменён клиент: "+client.Name)
	c.JSON(http.StatusOK, client)
}

func (h *Handler) DeleteClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.clients.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "client", id, "delete", "Удалён клиент")
	c.JSON(http.StatusOK, gin.H{"message": "Клиент удален"})
}
