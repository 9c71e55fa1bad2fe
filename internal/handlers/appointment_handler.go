package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rodrigoquadros/barber-agenda/internal/httperr"
	"github.com/rodrigoquadros/barber-agenda/internal/metrics"
	"github.com/rodrigoquadros/barber-agenda/internal/middleware"
	ucAppointment "github.com/rodrigoquadros/barber-agenda/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	listUC   *ucAppointment.ListAppointments
	updateUC *ucAppointment.UpdateAppointment
	logger   *zerolog.Logger
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listUC *ucAppointment.ListAppointments,
	updateUC *ucAppointment.UpdateAppointment,
	logger *zerolog.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		listUC:   listUC,
		updateUC: updateUC,
		logger:   logger,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName string `json:"client_name"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	ServiceID  *uint  `json:"service_id"`
	ClientID   *uint  `json:"client_id"`
	Notes      string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		BarberID:   barberID,
		ClientName: req.ClientName,
		ClientID:   req.ClientID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		Time:       req.Time,
		Notes:      req.Notes,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "missing_fields"):
			httperr.BadRequest(c, "missing_fields", "Nome do cliente, data e hora são obrigatórios")
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida")
		case httperr.IsBusiness(err, "slot_taken"):
			metrics.IncSlotConflict()
			httperr.BadRequest(c, "slot_taken", "Horário já ocupado")
		default:
			h.logger.Error().Err(err).Msg("failed to create appointment")
			httperr.Internal(c, "failed_to_create_appointment", "Erro interno do servidor")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Agendamento criado com sucesso",
		"appointmentId": ap.ID,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	rows, err := h.listUC.Execute(c.Request.Context(), ucAppointment.ListAppointmentsInput{
		BarberID: barberID,
		Date:     c.Query("date"),
		Status:   c.Query("status"),
	})

	if err != nil {
		if httperr.IsBusiness(err, "invalid_status") {
			httperr.BadRequest(c, "invalid_status", "Status inválido")
			return
		}
		h.logger.Error().Err(err).Msg("failed to list appointments")
		httperr.Internal(c, "failed_to_list_appointments", "Erro interno do servidor")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// ======================================================
// UPDATE (status / notes)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	err = h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		AppointmentID: uint(id),
		BarberID:      barberID,
		Status:        req.Status,
		Notes:         req.Notes,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "no_updates"):
			httperr.BadRequest(c, "no_updates", "Nenhuma atualização fornecida")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Status inválido")
		case httperr.IsBusiness(err, "invalid_status_change"):
			httperr.BadRequest(c, "invalid_status_change", "Agendamento não pode mudar para esse status")
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado")
		default:
			h.logger.Error().Err(err).Msg("failed to update appointment")
			httperr.Internal(c, "failed_to_update_appointment", "Erro interno do servidor")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Agendamento atualizado com sucesso",
	})
}
