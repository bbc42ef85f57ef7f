package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"autosalon/internal/config"
	"autosalon/internal/handlers"
	"autosalon/internal/middleware"
	"autosalon/internal/policy"
)

func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	h := handlers.New(db, cfg)

	// AUTH
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)
	r.POST("/auth/register", h.Register)

	// публичное чтение каталогов и справочников
	r.GET("/cars", h.ListCars)
	r.GET("/cars/:id", h.GetCar)
	r.GET("/clients", h.ListClients)
	r.GET("/clients/:id", h.GetClient)
	r.GET("/deals", h.ListDeals)
	r.GET("/deals/:id", h.GetDeal)
	r.GET("/brands", h.ListBrands)
	r.GET("/brands/:id", h.GetBrand)
	r.GET("/body-types", h.ListBodyTypes)
	r.GET("/fuel-types", h.ListFuelTypes)
	r.GET("/transmission-types", h.ListTransmissionTypes)
	r.GET("/drive-types", h.ListDriveTypes)
	r.GET("/stats", h.Stats)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	auth := r.Group("/")
	auth.Use(middleware.Authenticate(cfg.JWTSecret))

	auth.POST("/auth/logout", h.Logout)
	auth.GET("/user/profile", h.Profile)

	// АВТОМОБИЛИ
	auth.POST("/cars", middleware.Require(policy.OpCarWrite), h.CreateCar)
	auth.PUT("/cars/:id", middleware.Require(policy.OpCarWrite), h.UpdateCar)
	auth.PUT("/cars/:id/status", middleware.Require(policy.OpCarWrite), h.UpdateCarStatus)
	auth.DELETE("/cars/:id", middleware.Require(policy.OpCarDelete), h.DeleteCar)

	// КЛИЕНТЫ
	auth.POST("/clients", middleware.Require(policy.OpClientWrite), h.CreateClient)
	auth.PUT("/clients/:id", middleware.Require(policy.OpClientWrite), h.UpdateClient)
	auth.DELETE("/clients/:id", middleware.Require(policy.OpClientWrite), h.DeleteClient)

	// СДЕЛКИ
	auth.POST("/deals", middleware.Require(policy.OpDealWrite), h.CreateDeal)
	auth.POST("/deals/with-client", middleware.Require(policy.OpDealWrite), h.CreateDealWithClient)
	auth.PUT("/deals/:id/status", middleware.Require(policy.OpDealWrite), h.UpdateDealStatus)
	auth.PUT("/deals/:id/complete", middleware.Require(policy.OpDealWrite), h.CompleteDeal)
	auth.PUT("/deals/:id/cancel", middleware.Require(policy.OpDealWrite), h.CancelDeal)
	auth.DELETE("/deals/:id", middleware.Require(policy.OpDealDelete), h.DeleteDeal)

	// МАРКИ
	auth.POST("/brands", middleware.Require(policy.OpBrandWrite), h.CreateBrand)
	auth.PUT("/brands/:id", middleware.Require(policy.OpBrandWrite), h.UpdateBrand)
	auth.DELETE("/brands/:id", middleware.Require(policy.OpBrandDelete), h.DeleteBrand)

	// АУДИТ
	auth.GET("/audit", middleware.Require(policy.OpAuditRead), h.ListAuditLogs)

	return r
}
