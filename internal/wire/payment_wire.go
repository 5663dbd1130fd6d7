package wire

import (
	"room-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	r.Route("/payments", func(r chi.Router) {
		// GET /payments - payment history
		r.Get("/", paymentHandler.ListPayments)

		// POST /payments - record a payment for an active reservation
		r.Post("/", paymentHandler.CreatePayment)
	})
}
