package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"autosalon/internal/models"
	"autosalon/internal/repository"
)

type carRequest struct {
	Brand       string           `json:"brand"`
	Model       string           `json:"model"`
	Year        int              `json:"year"`
	Price       float64          `json:"price"`
	Mileage     int              `json:"mileage"`
	BodyType    string           `json:"body_type"`
	Description string           `json:"description"`
	Status      models.CarStatus `json:"status"`

	EngineVolume       *float64 `json:"engine_volume"`
	Power              *int     `json:"power"`
	FuelTypeID         *uint    `json:"fuel_type_id"`
	TransmissionTypeID *uint    `json:"transmission_type_id"`
	DriveTypeID        *uint    `json:"drive_type_id"`
}

func (r *carRequest) toModel() (*models.Car, error) {
	r.Brand = strings.TrimSpace(r.Brand)
	r.Model = strings.TrimSpace(r.Model)

	if r.Brand == "" || r.Model == "" || r.Year == 0 || r.Price == 0 {
		return nil, fmt.Errorf("required fields missing")
	}
	if r.Status == "" {
		r.Status = models.CarAvailable
	}
	if !validCarStatus(r.Status) {
		return nil, fmt.Errorf("invalid status")
	}

	return &models.Car{
		Brand:              r.Brand,
		Model:              r.Model,
		Year:               r.Year,
		Price:              r.Price,
		Mileage:            r.Mileage,
		BodyType:           strings.TrimSpace(r.BodyType),
		Description:        strings.TrimSpace(r.Description),
		Status:             r.Status,
		EngineVolume:       r.EngineVolume,
		Power:              r.Power,
		FuelTypeID:         r.FuelTypeID,
		TransmissionTypeID: r.TransmissionTypeID,
		DriveTypeID:        r.DriveTypeID,
	}, nil
}

func validCarStatus(s models.CarStatus) bool {
	switch s {
	case models.CarAvailable, models.CarSold, models.CarReserved:
		return true
	}
	return false
}

func (h *Handler) ListCars(c *gin.Context) {
	f := repository.CarFilter{
		Brand:    c.Query("brand"),
		Status:   models.CarStatus(c.Query("status")),
		BodyType: c.Query("body_type"),

		FuelTypeID:         queryUint(c, "fuel_type_id"),
		TransmissionTypeID: queryUint(c, "transmission_type_id"),
		DriveTypeID:        queryUint(c, "drive_type_id"),

		YearFrom:         queryInt(c, "year_from"),
		YearTo:           queryInt(c, "year_to"),
		PriceFrom:        queryFloat(c, "price_from"),
		PriceTo:          queryFloat(c, "price_to"),
		MileageFrom:      queryInt(c, "mileage_from"),
		MileageTo:        queryInt(c, "mileage_to"),
		EngineVolumeFrom: queryFloat(c, "engine_volume_from"),
		EngineVolumeTo:   queryFloat(c, "engine_volume_to"),
		PowerFrom:        queryInt(c, "power_from"),
		PowerTo:          queryInt(c, "power_to"),

		SortBy:   c.Query("sort"),
		SortDesc: c.Query("order") != "asc",
	}

	cars, err := h.cars.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

func (h *Handler) GetCar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	car, err := h.cars.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (h *Handler) CreateCar(c *gin.Context) {
	var req carRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	car, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Обязательные поля: brand, model, year, price"})
		return
	}

	if err := h.cars.Create(c.Request.Context(), car); err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "car", car.ID, "create", "Создан автомобиль: "+car.Brand+" "+car.Model)
	c.JSON(http.StatusCreated, car)
}

func (h *Handler) UpdateCar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req carRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	car, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Обязательные поля: brand, model, year, price"})
		return
	}
	car.ID = id

	if err := h.cars.Update(c.Request.Context(), car); err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "car", car.ID, "update", "Изменён автомобиль: "+car.Brand+" "+car.Model)
	c.JSON(http.StatusOK, car)
}

type carStatusRequest struct {
	Status models.CarStatus `json:"status"`
}

func (h *Handler) UpdateCarStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req carStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !validCarStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный статус"})
		return
	}

	car, err := h.cars.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "car", id, "status_change", "Статус автомобиля: "+string(req.Status))
	c.JSON(http.StatusOK, car)
}

func (h *Handler) DeleteCar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.cars.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "car", id, "delete", "Удалён автомобиль")
	c.JSON(http.StatusOK, gin.H{"message": "Автомобиль удален"})
}

// query-хелперы: отсутствующий или нечитаемый параметр — просто не фильтр.

func queryInt(c *gin.Context, name string) *int {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func queryFloat(c *gin.Context, name string) *float64 {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func queryUint(c *gin.Context, name string) uint {
	v := c.Query(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return uint(n)
}
