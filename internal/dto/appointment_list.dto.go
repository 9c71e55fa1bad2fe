package dto

import "time"

// AppointmentListDTO é a linha de listagem já com o join de
// serviço e telefone do cliente, como a tela do barbeiro consome.
type AppointmentListDTO struct {
	ID         uint      `json:"id"`
	ClientID   *uint     `json:"client_id"`
	ServiceID  *uint     `json:"service_id"`
	ClientName string    `json:"client_name"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`

	ServiceName  *string  `json:"service_name"`
	ServicePrice *float64 `json:"service_price"`
	ClientPhone  *string  `json:"client_phone"`
}
