package wire

import (
	"room-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRoom(r chi.Router, roomHandler *adaptor.RoomHandler, reservationHandler *adaptor.ReservationHandler) {
	r.Route("/rooms", func(r chi.Router) {
		// GET /rooms - room catalog
		r.Get("/", roomHandler.ListRooms)

		// GET /rooms/{id} - single room
		r.Get("/{id}", roomHandler.GetRoom)

		// GET /rooms/{id}/reservations - reservations for a room, all statuses
		r.Get("/{id}/reservations", reservationHandler.ListRoomReservations)
	})
}
