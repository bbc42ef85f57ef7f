package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"autosalon/internal/models"
	"autosalon/internal/service"
)

type createDealRequest struct {
	CarID     uint            `json:"car_id"`
	ClientID  uint            `json:"client_id"`
	ManagerID uint            `json:"manager_id"`
	Type      models.DealType `json:"type"`
}

type createDealWithClientRequest struct {
	CarID      uint            `json:"car_id"`
	ClientName string          `json:"client_name"`
	ManagerID  uint            `json:"manager_id"`
	Type       models.DealType `json:"type"`
}

func (h *Handler) ListDeals(c *gin.Context) {
	views, err := h.deals.ListViews(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *Handler) GetDeal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.deals.GetView(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) CreateDeal(c *gin.Context) {
	var req createDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	view, err := h.dealSvc.Create(c.Request.Context(), service.CreateDealInput{
		CarID:     req.CarID,
		ClientID:  req.ClientID,
		ManagerID: req.ManagerID,
		Type:      req.Type,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "deal", view.ID, "create", fmt.Sprintf("Создана сделка: %s %s", view.CarBrand, view.CarModel))
	c.JSON(http.StatusCreated, view)
}

func (h *Handler) CreateDealWithClient(c *gin.Context) {
	var req createDealWithClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	view, err := h.dealSvc.CreateWithNewClient(c.Request.Context(), service.CreateDealWithClientInput{
		CarID:      req.CarID,
		ClientName: req.ClientName,
		ManagerID:  req.ManagerID,
		Type:       req.Type,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "deal", view.ID, "create", fmt.Sprintf("Создана сделка: %s %s", view.CarBrand, view.CarModel))
	c.JSON(http.StatusCreated, view)
}

type dealStatusRequest struct {
	Status models.DealStatus `json:"status"`
}

func (h *Handler) UpdateDealStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dealStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	deal, err := h.dealSvc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "deal", id, "status_change", "Статус сделки: "+string(req.Status))
	c.JSON(http.StatusOK, deal)
}

func (h *Handler) CompleteDeal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deal, err := h.dealSvc.Complete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "deal", id, "status_change", "Сделка завершена")
	c.JSON(http.StatusOK, deal)
}

func (h *Handler) CancelDeal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deal, err := h.dealSvc.Cancel(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "deal", id, "status_change", "Сделка отменена")
	c.JSON(http.StatusOK, deal)
}

func (h *Handler) DeleteDeal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deals.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "deal", id, "delete", "Удалена сделка")
	c.JSON(http.StatusOK, gin.H{"message": "Сделка удалена"})
}
