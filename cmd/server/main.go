package main

import (
	"context"
	"log"

	"github.com/david/rfp-tracker/internal/api"
	"github.com/david/rfp-tracker/internal/config"
	"github.com/david/rfp-tracker/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.Mongo.URL)
	if err != nil {
		log.Fatalf("Failed to connect to store: %v", err)
	}
	defer client.Disconnect(ctx)

	store := db.NewStore(client.Database(cfg.Mongo.DBName))

	srv := api.NewServer(store, cfg)
	log.Printf("Server starting on port %d...", cfg.Server.Port)
	if err := srv.Start(cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
