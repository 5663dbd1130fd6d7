package entity

import (
	"github.com/google/uuid"
)

type Room struct {
	ID            uuid.UUID `db:"id"`
	Name          string    `db:"name"`
	PricePerNight float64   `db:"price_per_night"`
}
