package main

import (
	"log"

	"careerhub-backend/internal/bootstrap"
	"careerhub-backend/internal/shared/config"
	"careerhub-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("starting API server on %s", addr)
	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
