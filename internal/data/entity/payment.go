package entity

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID            uuid.UUID `db:"id"`
	ReservationID uuid.UUID `db:"reservation_id"`
	Amount        float64   `db:"amount"`
	CreatedAt     time.Time `db:"created_at"`
}
