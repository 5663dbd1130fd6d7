package response

import (
	"room-booking/internal/booking"
	"room-booking/internal/data/entity"
)

type ReservationResponse struct {
	ID         string `json:"id"`
	RoomID     string `json:"room_id"`
	GuestEmail string `json:"guest_email"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
}

func ReservationToResponse(reservation *entity.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         reservation.ID.String(),
		RoomID:     reservation.RoomID.String(),
		GuestEmail: reservation.GuestEmail,
		StartDate:  reservation.StartDate.Format(booking.DateLayout),
		EndDate:    reservation.EndDate.Format(booking.DateLayout),
		Status:     string(reservation.Status),
	}
}
