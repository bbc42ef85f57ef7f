package handlers

import (
	"gorm.io/gorm"

	"autosalon/internal/config"
	"autosalon/internal/repository"
	"autosalon/internal/service"
)

// Handler держит все зависимости обработчиков; собирается один раз в роутере.
type Handler struct {
	db  *gorm.DB
	cfg *config.Config

	authSvc *service.AuthService
	dealSvc *service.DealService

	cars    *repository.CarRepo
	clients *repository.ClientRepo
	brands  *repository.BrandRepo
	deals   *repository.DealRepo
	users   *repository.UserRepo
	refs    *repository.ReferenceRepo
}

func New(db *gorm.DB, cfg *config.Config) *Handler {
	return &Handler{
		db:      db,
		cfg:     cfg,
		authSvc: service.NewAuthService(db, cfg),
		dealSvc: service.NewDealService(db),
		cars:    repository.NewCarRepo(db),
		clients: repository.NewClientRepo(db),
		brands:  repository.NewBrandRepo(db),
		deals:   repository.NewDealRepo(db),
		users:   repository.NewUserRepo(db),
		refs:    repository.NewReferenceRepo(db),
	}
}
