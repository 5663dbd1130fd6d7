package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "active"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID         uuid.UUID         `db:"id"`
	RoomID     uuid.UUID         `db:"room_id"`
	GuestEmail string            `db:"guest_email"`
	StartDate  time.Time         `db:"start_date"`
	EndDate    time.Time         `db:"end_date"`
	Status     ReservationStatus `db:"status"`
	CreatedAt  time.Time         `db:"created_at"`
}
