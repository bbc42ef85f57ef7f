package main

import (
	log "github.com/sirupsen/logrus"

	"autosalon/internal/config"
	"autosalon/internal/database"
	"autosalon/internal/server"
)

func main() {
	cfg := config.Load()

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	db, err := database.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	database.Seed(db, cfg.AdminEmail, cfg.AdminPassword)

	r := server.NewRouter(db, cfg)

	addr := ":" + cfg.ServerPort
	log.Infof("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
