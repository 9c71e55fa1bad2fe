package models

import "time"

// Appointment é a unidade agendável. O índice único parcial em
// (barber_id, date, time) garante no banco que um barbeiro nunca tem
// dois agendamentos ativos no mesmo horário; cancelar libera o slot.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `gorm:"not null;uniqueIndex:idx_appointments_slot,priority:1,where:status <> 'cancelled'" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientID *uint  `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ServiceID *uint   `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Nome denormalizado: obrigatório mesmo sem ClientID
	ClientName string `gorm:"size:100;not null" json:"client_name"`

	Date string `gorm:"size:10;not null;uniqueIndex:idx_appointments_slot,priority:2" json:"date"`
	Time string `gorm:"size:5;not null;uniqueIndex:idx_appointments_slot,priority:3" json:"time"`

	Status string `gorm:"size:20;default:'scheduled';index" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
