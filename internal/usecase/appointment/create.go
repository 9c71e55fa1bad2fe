package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	domain "github.com/rodrigoquadros/barber-agenda/internal/domain/appointment"
	"github.com/rodrigoquadros/barber-agenda/internal/httperr"
	"github.com/rodrigoquadros/barber-agenda/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarberID uint

	ClientName string
	ClientID   *uint
	ServiceID  *uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	logger *zerolog.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	logger *zerolog.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		logger: logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	name := strings.TrimSpace(in.ClientName)
	if name == "" || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// Caminho comum: responde 400 amigável antes do insert. A garantia
	// real contra corrida é o índice único parcial do slot; o insert
	// abaixo devolve slot_taken se dois pedidos passarem daqui juntos.
	existing, err := uc.repo.FindConflicting(ctx, in.BarberID, in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	ap := &models.Appointment{
		BarberID:   in.BarberID,
		ClientID:   in.ClientID,
		ServiceID:  in.ServiceID,
		ClientName: name,
		Date:       in.Date,
		Time:       in.Time,
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.logger.Info().
		Uint("appointment_id", ap.ID).
		Uint("barber_id", in.BarberID).
		Str("date", in.Date).
		Str("time", in.Time).
		Msg("appointment created")

	return ap, nil
}
