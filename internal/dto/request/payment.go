package request

type CreatePaymentRequest struct {
	ID            string  `json:"id" validate:"required,uuid"`
	ReservationID string  `json:"reservation_id" validate:"required,uuid"`
	Amount        float64 `json:"amount" validate:"gte=0"`
}
