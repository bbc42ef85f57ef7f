package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"autosalon/internal/models"
)

type brandRequest struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

func (h *Handler) ListBrands(c *gin.Context) {
	brands, err := h.brands.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (h *Handler) GetBrand(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	brand, err := h.brands.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, brand)
}

func (h *Handler) CreateBrand(c *gin.Context) {
	var req brandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Обязательное поле: name"})
		return
	}

	brand := &models.Brand{Name: name, Country: strings.TrimSpace(req.Country)}
	if err := h.brands.Create(c.Request.Context(), brand); err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "brand", brand.ID, "create", "Создана марка: "+brand.Name)
	c.JSON(http.StatusCreated, brand)
}

func (h *Handler) UpdateBrand(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req brandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Обязательное поле: name"})
		return
	}

	brand := &models.Brand{ID: id, Name: name, Country: strings.TrimSpace(req.Country)}
	if err := h.brands.Update(c.Request.Context(), brand); err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "brand", brand.ID, "update", "Изменена марка: "+brand.Name)
	c.JSON(http.StatusOK, brand)
}

func (h *Handler) DeleteBrand(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.brands.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "brand", id, "delete", "Удалена марка")
	c.JSON(http.StatusOK, gin.H{"message": "Марка удалена"})
}
