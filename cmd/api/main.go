package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rodrigoquadros/barber-agenda/internal/config"
	dbpkg "github.com/rodrigoquadros/barber-agenda/internal/db"
	"github.com/rodrigoquadros/barber-agenda/internal/logging"
	"github.com/rodrigoquadros/barber-agenda/internal/middleware"
	"github.com/rodrigoquadros/barber-agenda/internal/routes"
)

func main() {

	cfg := config.Load()
	logger := logging.New(cfg)
	db := dbpkg.NewDB(cfg)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, logger)

	logger.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
