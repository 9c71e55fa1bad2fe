package appointment

import "github.com/rodrigoquadros/barber-agenda/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

func InitialStatus() Status {
	return StatusScheduled
}

// ===============================
// Transitions
// ===============================

// CanTransition valida a mudança de status. completed e cancelled são
// terminais; repetir o status atual é aceito como no-op para manter o
// cancelamento idempotente.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}
	if from != StatusScheduled {
		return httperr.ErrBusiness("invalid_status_change")
	}
	return nil
}
