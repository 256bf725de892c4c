package main

import (
	"context"
	"log"

	"taskly.com/internal/api"
	"taskly.com/internal/auth"
	"taskly.com/internal/config"
	"taskly.com/internal/infra"
)

func main() {
	cfg := config.LoadConfig()

	pg, err := infra.NewPostgresClient(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	rdb := infra.NewRedisClient(cfg.Redis)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		// Stats caching is best-effort; the API works without Redis.
		log.Printf("Warning: Failed to connect to Redis, caching disabled: %v", err)
		rdb = nil
	}

	tokens := auth.NewTokenManager(cfg.JWT)

	app := api.NewServer(cfg)
	router := api.NewRouter(app, cfg, pg.DB, rdb, tokens)
	router.RegisterRoutes()

	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := app.Listen(cfg.Server.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
