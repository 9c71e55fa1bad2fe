package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rodrigoquadros/barber-agenda/internal/httperr"
	"github.com/rodrigoquadros/barber-agenda/internal/models"
	"github.com/rodrigoquadros/barber-agenda/internal/ratelimit"
	"github.com/rodrigoquadros/barber-agenda/internal/token"
)

type AuthHandler struct {
	db      *gorm.DB
	tokens  *token.Manager
	limiter ratelimit.Limiter
	logger  *zerolog.Logger
}

func NewAuthHandler(
	db *gorm.DB,
	tokens *token.Manager,
	limiter ratelimit.Limiter,
	logger *zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		db:      db,
		tokens:  tokens,
		limiter: limiter,
		logger:  logger,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		httperr.BadRequest(c, "missing_fields", "Nome, email e senha são obrigatórios")
		return
	}

	if len(req.Password) < 6 {
		httperr.BadRequest(c, "weak_password", "Senha deve ter pelo menos 6 caracteres")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro interno do servidor")
		return
	}

	role := req.Role
	if role == "" {
		role = "barber"
	}

	user := models.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
		Role:         role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.BadRequest(c, "email_taken", "E-mail já cadastrado")
			return
		}
		h.logger.Error().Err(err).Msg("failed to create user")
		httperr.Internal(c, "failed_to_create_user", "Erro interno do servidor")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Usuário criado com sucesso",
		"userId":  user.ID,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	allowed, err := h.limiter.Allow(c.Request.Context(), c.ClientIP())
	if err != nil {
		h.logger.Error().Err(err).Msg("login rate limiter failed")
	} else if !allowed {
		httperr.TooManyRequests(c, "too_many_attempts", "Muitas tentativas. Tente novamente em instantes.")
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		httperr.BadRequest(c, "missing_fields", "Email e senha são obrigatórios")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// email desconhecido e senha errada respondem o mesmo erro:
	// nada de enumeração de usuários
	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas")
			return
		}
		h.logger.Error().Err(err).Msg("login query failed")
		httperr.Internal(c, "internal_error", "Erro interno do servidor")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas")
		return
	}

	tok, err := h.tokens.Issue(&user)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to sign token")
		httperr.Internal(c, "failed_to_generate_token", "Erro interno do servidor")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tok,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
