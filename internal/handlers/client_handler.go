package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/rodrigoquadros/barber-agenda/internal/httperr"
	"github.com/rodrigoquadros/barber-agenda/internal/models"
)

type ClientHandler struct {
	db     *gorm.DB
	logger *zerolog.Logger
}

func NewClientHandler(db *gorm.DB, logger *zerolog.Logger) *ClientHandler {
	return &ClientHandler{db: db, logger: logger}
}

type CreateClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (h *ClientHandler) List(c *gin.Context) {
	clients := []models.Client{}
	if err := h.db.Order("name ASC").Find(&clients).Error; err != nil {
		h.logger.Error().Err(err).Msg("failed to list clients")
		httperr.Internal(c, "failed_to_list_clients", "Erro interno do servidor")
		return
	}

	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name == "" {
		httperr.BadRequest(c, "missing_fields", "Nome é obrigatório")
		return
	}

	client := models.Client{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	if err := h.db.Create(&client).Error; err != nil {
		h.logger.Error().Err(err).Msg("failed to create client")
		httperr.Internal(c, "failed_to_create_client", "Erro interno do servidor")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Cliente criado com sucesso",
		"clientId": client.ID,
	})
}
