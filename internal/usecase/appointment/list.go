package appointment

import (
	"context"

	domain "github.com/rodrigoquadros/barber-agenda/internal/domain/appointment"
	"github.com/rodrigoquadros/barber-agenda/internal/dto"
	"github.com/rodrigoquadros/barber-agenda/internal/httperr"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

type ListAppointmentsInput struct {
	BarberID uint
	Date     string
	Status   string
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]dto.AppointmentListDTO, error) {

	filter := domain.ListFilter{Date: in.Date}

	if in.Status != "" {
		status, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		filter.Status = status
	}

	return uc.repo.ListForBarber(ctx, in.BarberID, filter)
}
