package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/rodrigoquadros/barber-agenda/internal/config"
	"github.com/rodrigoquadros/barber-agenda/internal/handlers"
	infraRepo "github.com/rodrigoquadros/barber-agenda/internal/infra/repository"
	"github.com/rodrigoquadros/barber-agenda/internal/metrics"
	"github.com/rodrigoquadros/barber-agenda/internal/middleware"
	"github.com/rodrigoquadros/barber-agenda/internal/ratelimit"
	"github.com/rodrigoquadros/barber-agenda/internal/token"
	ucAppointment "github.com/rodrigoquadros/barber-agenda/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zerolog.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	metrics.Register()

	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)
	loginLimiter := buildLoginLimiter(cfg, logger)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, logger)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, logger)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, tokens, loginLimiter, logger)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		updateAppointmentUC,
		logger,
	)
	serviceHandler := handlers.NewServiceHandler(db, logger)
	clientHandler := handlers.NewClientHandler(db, logger)
	dashboardHandler := handlers.NewDashboardHandler(db, logger)
	financeHandler := handlers.NewFinanceHandler(db, logger)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		api.GET("/services", serviceHandler.List)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.PUT("/appointments/:id", appointmentHandler.Update)

			secured.POST("/services", serviceHandler.Create)

			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)

			secured.GET("/dashboard", dashboardHandler.GetToday)
			secured.GET("/finances", financeHandler.List)
		}
	}
}

// buildLoginLimiter prefere redis (vale entre processos) com fallback
// em memória; sem REDIS_ADDR fica só o de memória.
func buildLoginLimiter(cfg *config.Config, logger *zerolog.Logger) ratelimit.Limiter {
	memory := ratelimit.NewMemoryLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)

	if cfg.RedisAddr == "" {
		return memory
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	primary := ratelimit.NewRedisLimiter(client, cfg.LoginRateLimit, cfg.LoginRateWindow)
	return ratelimit.NewFailoverLimiter(primary, memory, logger)
}
