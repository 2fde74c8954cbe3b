package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"product-apis/internal/config"
	"product-apis/internal/database"
	"product-apis/internal/handlers"
	"product-apis/internal/logger"
	"product-apis/internal/routes"
	"product-apis/internal/store"
	"product-apis/internal/upstream"
)

func main() {
	// --- Environment & Config ---
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found, relying on system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Init(cfg.AppEnv)

	// --- Embedded Store ---
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	defer db.Close()

	// --- Application Setup ---
	app := handlers.New(
		upstream.NewClient(cfg.ProductsURL, cfg.BrandsURL, cfg.UpstreamTimeout),
		store.New(db),
	)

	router := routes.SetupRouter(app)

	log.Info().Str("port", cfg.Port).Msg("starting product APIs server")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
