package events

import (
	"time"

	"oficinareserva/pkg/model"
)

const (
	TypeReservationCreated   = "reservation.created"
	TypeReservationCancelled = "reservation.cancelled"

	Source = "reservations"
)

type ReservationCreated struct {
	Reservation model.Reservation `json:"reservation"`
}

type ReservationCancelled struct {
	ReservationID string    `json:"reservationId"`
	CancelledAt   time.Time `json:"cancelledAt"`
}
