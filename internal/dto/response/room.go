package response

import "room-booking/internal/data/entity"

type RoomResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PricePerNight float64 `json:"price_per_night"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:            room.ID.String(),
		Name:          room.Name,
		PricePerNight: room.PricePerNight,
	}
}
