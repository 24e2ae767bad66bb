package main

import (
	"restaurant-menu-api/config"
	"restaurant-menu-api/handlers"
	"restaurant-menu-api/journal"
	"restaurant-menu-api/logger"
	"restaurant-menu-api/middleware"
	"restaurant-menu-api/routes"
	"restaurant-menu-api/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.Init(cfg.LogLevel, cfg.IsProduction())

	gin.SetMode(cfg.GinMode)

	// Journal database (in memory unless JOURNAL_DSN says otherwise)
	db, err := config.OpenJournal(cfg.JournalDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open change journal")
	}
	log.Info().Str("dsn", cfg.JournalDSN).Msg("✅ Change journal ready")

	menuStore := store.NewSeeded()
	j := journal.New(db, log)
	detach := j.Attach(menuStore)
	defer detach()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.CORS())

	h := handlers.New(menuStore, j, cfg.JWTSecret, cfg.TokenTTL, log)
	routes.SetupRoutes(r, h)

	log.Info().Int("items", menuStore.Len()).Msgf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
