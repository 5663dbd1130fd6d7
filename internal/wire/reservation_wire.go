package wire

import (
	"room-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReservation(r chi.Router, reservationHandler *adaptor.ReservationHandler) {
	r.Route("/reservations", func(r chi.Router) {
		// GET /reservations - all reservations across rooms
		r.Get("/", reservationHandler.ListReservations)

		// POST /reservations - guest submission with client-generated id
		r.Post("/", reservationHandler.CreateReservation)

		// POST /reservations/{id}/cancel - release the date range
		r.Post("/{id}/cancel", reservationHandler.CancelReservation)
	})
}
