package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	domain "github.com/rodrigoquadros/barber-agenda/internal/domain/appointment"
	"github.com/rodrigoquadros/barber-agenda/internal/httperr"
	"github.com/rodrigoquadros/barber-agenda/internal/httpresp"
	"github.com/rodrigoquadros/barber-agenda/internal/middleware"
	"github.com/rodrigoquadros/barber-agenda/internal/models"
)

type DashboardHandler struct {
	db     *gorm.DB
	logger *zerolog.Logger
}

func NewDashboardHandler(db *gorm.DB, logger *zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{db: db, logger: logger}
}

type dashboardStats struct {
	TotalAppointments     int64 `json:"total_appointments"`
	CompletedAppointments int64 `json:"completed_appointments"`
	PendingAppointments   int64 `json:"pending_appointments"`
	CancelledAppointments int64 `json:"cancelled_appointments"`
}

// GetToday resume o dia do barbeiro autenticado.
func (h *DashboardHandler) GetToday(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	today := time.Now().Format("2006-01-02")

	var stats dashboardStats

	base := func() *gorm.DB {
		return h.db.Model(&models.Appointment{}).
			Where("barber_id = ? AND date = ?", barberID, today)
	}

	if err := base().Count(&stats.TotalAppointments).Error; err != nil {
		h.logger.Error().Err(err).Msg("failed to load dashboard stats")
		httperr.Internal(c, "failed_to_load_stats", "Erro interno do servidor")
		return
	}

	base().Where("status = ?", string(domain.StatusCompleted)).Count(&stats.CompletedAppointments)
	base().Where("status = ?", string(domain.StatusScheduled)).Count(&stats.PendingAppointments)
	base().Where("status = ?", string(domain.StatusCancelled)).Count(&stats.CancelledAppointments)

	httpresp.OK(c, gin.H{
		"today": today,
		"stats": stats,
	})
}
