package appointment

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	domain "github.com/rodrigoquadros/barber-agenda/internal/domain/appointment"
	"github.com/rodrigoquadros/barber-agenda/internal/httperr"
	"github.com/rodrigoquadros/barber-agenda/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// Ponteiros nil = campo não enviado; só o que veio é alterado.
type UpdateAppointmentInput struct {
	AppointmentID uint
	BarberID      uint

	Status *string
	Notes  *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo   domain.Repository
	logger *zerolog.Logger
}

func NewUpdateAppointment(
	repo domain.Repository,
	logger *zerolog.Logger,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:   repo,
		logger: logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) error {

	if in.Status == nil && in.Notes == nil {
		return httperr.ErrBusiness("no_updates")
	}

	// id inexistente e id de outro barbeiro respondem igual:
	// não vazamos existência para quem não é dono
	ap, err := uc.repo.GetAppointmentForBarber(ctx, in.AppointmentID, in.BarberID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	fields := domain.UpdateFields{}

	if in.Status != nil {
		newStatus, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return err
		}

		current := domain.Status(ap.Status)
		if err := domain.CanTransition(current, newStatus); err != nil {
			return err
		}

		if newStatus != current {
			fields["status"] = string(newStatus)
		}
	}

	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}

	if len(fields) > 0 {
		affected, err := uc.repo.UpdateAppointment(ctx, in.AppointmentID, in.BarberID, fields)
		if err != nil {
			return err
		}
		if affected == 0 {
			return httperr.ErrBusiness("appointment_not_found")
		}
	}

	if in.Status != nil && *in.Status == string(domain.StatusCompleted) &&
		ap.Status != string(domain.StatusCompleted) {
		uc.recordPayment(ctx, ap)
	}

	uc.logger.Info().
		Uint("appointment_id", in.AppointmentID).
		Uint("barber_id", in.BarberID).
		Msg("appointment updated")

	return nil
}

// recordPayment lança a receita do atendimento concluído quando há
// serviço com preço. Falha aqui não desfaz a conclusão; só loga.
func (uc *UpdateAppointment) recordPayment(ctx context.Context, ap *models.Appointment) {
	if ap.ServiceID == nil {
		return
	}

	svc, err := uc.repo.GetService(ctx, *ap.ServiceID)
	if err != nil {
		uc.logger.Warn().
			Err(err).
			Uint("appointment_id", ap.ID).
			Msg("service lookup failed, skipping payment record")
		return
	}

	p := &models.Payment{
		AppointmentID: ap.ID,
		Amount:        svc.Price,
		PaidAt:        time.Now(),
	}

	if err := uc.repo.CreatePayment(ctx, p); err != nil {
		uc.logger.Error().
			Err(err).
			Uint("appointment_id", ap.ID).
			Msg("failed to record payment")
	}
}
