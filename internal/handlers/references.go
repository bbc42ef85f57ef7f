package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListBodyTypes(c *gin.Context) {
	items, err := h.refs.BodyTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) ListFuelTypes(c *gin.Context) {
	items, err := h.refs.FuelTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) ListTransmissionTypes(c *gin.Context) {
	items, err := h.refs.TransmissionTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) ListDriveTypes(c *gin.Context) {
	items, err := h.refs.DriveTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
