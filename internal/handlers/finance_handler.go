package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/rodrigoquadros/barber-agenda/internal/httperr"
	"github.com/rodrigoquadros/barber-agenda/internal/httpresp"
	"github.com/rodrigoquadros/barber-agenda/internal/middleware"
)

type FinanceHandler struct {
	db     *gorm.DB
	logger *zerolog.Logger
}

func NewFinanceHandler(db *gorm.DB, logger *zerolog.Logger) *FinanceHandler {
	return &FinanceHandler{db: db, logger: logger}
}

type financeRow struct {
	ID            uint    `json:"id"`
	AppointmentID uint    `json:"appointment_id"`
	ClientName    string  `json:"client_name"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"payment_method"`
	PaidAt        time.Time `json:"paid_at"`
}

// List devolve as receitas dos atendimentos do barbeiro autenticado.
func (h *FinanceHandler) List(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	rows := []financeRow{}
	err := h.db.
		Table("finances AS f").
		Select("f.id, f.appointment_id, a.client_name, a.date, f.amount, f.method, f.paid_at").
		Joins("JOIN appointments a ON a.id = f.appointment_id").
		Where("a.barber_id = ?", barberID).
		Order("f.paid_at DESC").
		Scan(&rows).Error

	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list finances")
		httperr.Internal(c, "failed_to_list_finances", "Erro interno do servidor")
		return
	}

	httpresp.List(c, rows)
}
