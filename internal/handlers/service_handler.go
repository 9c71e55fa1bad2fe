package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/rodrigoquadros/barber-agenda/internal/httperr"
	"github.com/rodrigoquadros/barber-agenda/internal/models"
)

type ServiceHandler struct {
	db     *gorm.DB
	logger *zerolog.Logger
}

func NewServiceHandler(db *gorm.DB, logger *zerolog.Logger) *ServiceHandler {
	return &ServiceHandler{db: db, logger: logger}
}

type CreateServiceRequest struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Duration int      `json:"duration"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	services := []models.Service{}
	if err := h.db.Order("name ASC").Find(&services).Error; err != nil {
		h.logger.Error().Err(err).Msg("failed to list services")
		httperr.Internal(c, "failed_to_list_services", "Erro interno do servidor")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name == "" || req.Price == nil {
		httperr.BadRequest(c, "missing_fields", "Nome e preço são obrigatórios")
		return
	}

	if *req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "Preço não pode ser negativo")
		return
	}

	duration := req.Duration
	if duration <= 0 {
		duration = 30
	}

	svc := models.Service{
		Name:        req.Name,
		Price:       *req.Price,
		DurationMin: duration,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		h.logger.Error().Err(err).Msg("failed to create service")
		httperr.Internal(c, "failed_to_create_service", "Erro interno do servidor")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Serviço criado com sucesso",
		"serviceId": svc.ID,
	})
}
