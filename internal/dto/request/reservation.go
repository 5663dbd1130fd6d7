package request

type CreateReservationRequest struct {
	ID         string `json:"id" validate:"required,uuid"`
	RoomID     string `json:"room_id" validate:"required,uuid"`
	GuestEmail string `json:"guest_email" validate:"required,email"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
}
