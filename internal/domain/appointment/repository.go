package appointment

import (
	"context"

	"github.com/rodrigoquadros/barber-agenda/internal/dto"
	"github.com/rodrigoquadros/barber-agenda/internal/models"
)

// ListFilter restringe a listagem de agendamentos do barbeiro.
// Campos vazios não filtram.
type ListFilter struct {
	Date   string
	Status Status
}

// UpdateFields carrega somente os campos que a operação de update
// realmente altera; chave = nome da coluna.
type UpdateFields map[string]any

type Repository interface {
	// -------- Appointment (create / conflict) --------
	FindConflicting(
		ctx context.Context,
		barberID uint,
		date string,
		timeOfDay string,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForBarber(
		ctx context.Context,
		appointmentID uint,
		barberID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		appointmentID uint,
		barberID uint,
		fields UpdateFields,
	) (int64, error)

	// -------- Listing --------
	ListForBarber(
		ctx context.Context,
		barberID uint,
		filter ListFilter,
	) ([]dto.AppointmentListDTO, error)

	// -------- Payment (on completion) --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error
}
