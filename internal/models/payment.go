package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Amount float64 `gorm:"not null" json:"amount"`
	Method string  `gorm:"size:20;default:'dinheiro'" json:"payment_method"`

	PaidAt time.Time `json:"paid_at"`
}

func (Payment) TableName() string {
	return "finances"
}
