package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	domain "github.com/rodrigoquadros/barber-agenda/internal/domain/appointment"
	"github.com/rodrigoquadros/barber-agenda/internal/dto"
	"github.com/rodrigoquadros/barber-agenda/internal/httperr"
	"github.com/rodrigoquadros/barber-agenda/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) FindConflicting(
	ctx context.Context,
	barberID uint,
	date string,
	timeOfDay string,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND date = ? AND time = ? AND status <> ?",
			barberID, date, timeOfDay, string(domain.StatusCancelled),
		).
		First(&ap).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness("slot_taken")
		}
		return err
	}
	return nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForBarber(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", appointmentID, barberID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
	fields domain.UpdateFields,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND barber_id = ?", appointmentID, barberID).
		Updates(map[string]any(fields))

	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForBarber(
	ctx context.Context,
	barberID uint,
	filter domain.ListFilter,
) ([]dto.AppointmentListDTO, error) {

	q := r.db.WithContext(ctx).
		Table("appointments AS a").
		Select(
			"a.id, a.client_id, a.service_id, a.client_name, a.date, a.time, " +
				"a.status, a.notes, a.created_at, " +
				"s.name AS service_name, s.price AS service_price, " +
				"c.phone AS client_phone",
		).
		Joins("LEFT JOIN services s ON s.id = a.service_id").
		Joins("LEFT JOIN clients c ON c.id = a.client_id").
		Where("a.barber_id = ?", barberID)

	if filter.Date != "" {
		q = q.Where("a.date = ?", filter.Date)
	}
	if filter.Status != "" {
		q = q.Where("a.status = ?", string(filter.Status))
	}

	rows := []dto.AppointmentListDTO{}
	if err := q.
		Order("a.date DESC, a.time ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, serviceID).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *AppointmentGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// --------------------------------------------------
// Error mapping
// --------------------------------------------------

// isUniqueViolation cobre o tradutor do gorm e os dois drivers usados
// (postgres em produção, sqlite nos testes).
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return true
	}

	return false
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
