package workflow

import (
	"context"
	"errors"
	"fmt"

	"room-booking/internal/booking"
	"room-booking/internal/client"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrReservationNotFound reports that the target reservation is not among
// the room's reservations. Distinct from load failures: the fetches worked,
// the record is simply not there.
var ErrReservationNotFound = errors.New("reservation not found for this room")

// PaymentWorkflow drives paying one reservation: load the room and the
// reservation, quote the amount due, gate on payability, submit.
type PaymentWorkflow struct {
	client        *client.Client
	roomID        string
	reservationID string
	log           *zap.Logger

	room        *client.Room
	reservation *client.Reservation
}

func NewPaymentWorkflow(c *client.Client, roomID, reservationID string, log *zap.Logger) *PaymentWorkflow {
	return &PaymentWorkflow{
		client:        c,
		roomID:        roomID,
		reservationID: reservationID,
		log: log.With(
			zap.String("workflow", "payment"),
			zap.String("room_id", roomID),
			zap.String("reservation_id", reservationID),
		),
	}
}

// Load fetches the room and its reservations concurrently and joins the two
// before touching workflow state: a cancelled context abandons both fetches
// and leaves the workflow unloaded instead of applying a partial result.
func (w *PaymentWorkflow) Load(ctx context.Context) error {
	var (
		room         *client.Room
		reservations []client.Reservation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		room, err = w.client.GetRoom(gctx, w.roomID)
		return err
	})
	g.Go(func() error {
		var err error
		reservations, err = w.client.ListRoomReservations(gctx, w.roomID)
		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("load payment details: %w", err)
	}

	for i := range reservations {
		if reservations[i].ID == w.reservationID {
			w.room = room
			w.reservation = &reservations[i]
			return nil
		}
	}

	return ErrReservationNotFound
}

// Reservation returns the loaded reservation, nil before a successful Load.
func (w *PaymentWorkflow) Reservation() *client.Reservation {
	return w.reservation
}

// Room returns the loaded room, nil before a successful Load.
func (w *PaymentWorkflow) Room() *client.Room {
	return w.room
}

// Payability gates the pay action on the reservation status. Anything but an
// active reservation, unknown statuses included, blocks payment.
func (w *PaymentWorkflow) Payability() booking.Payability {
	if w.reservation == nil {
		return booking.Payability{Payable: false, Reason: "reservation not loaded"}
	}
	return booking.PayabilityOf(w.reservation.Status)
}

// Quote computes the stay length and amount due from the loaded reservation
// and room rate.
func (w *PaymentWorkflow) Quote() (nights int, total float64, err error) {
	if w.room == nil || w.reservation == nil {
		return 0, 0, fmt.Errorf("payment details not loaded")
	}

	stay, err := booking.ParseDateRange(w.reservation.StartDate, w.reservation.EndDate)
	if err != nil {
		return 0, 0, fmt.Errorf("reservation dates: %w", err)
	}

	nights = booking.Nights(stay)
	total = booking.Total(w.room.PricePerNight, nights)
	return nights, total, nil
}

// Pay submits the payment: payability gate, computed amount, fresh
// identifier. The service re-validates everything; its rejection detail is
// passed through untouched.
func (w *PaymentWorkflow) Pay(ctx context.Context) (*client.Payment, error) {
	if p := w.Payability(); !p.Payable {
		return nil, fmt.Errorf("payment disabled: %s", p.Reason)
	}

	_, total, err := w.Quote()
	if err != nil {
		return nil, err
	}

	payload := client.Payment{
		ID:            booking.GenerateID(),
		ReservationID: w.reservation.ID,
		Amount:        total,
	}

	created, err := w.client.CreatePayment(ctx, payload)
	if err != nil {
		w.log.Warn("Payment submission failed", zap.String("payment_id", payload.ID), zap.Error(err))
		return nil, err
	}

	w.log.Info("Payment completed",
		zap.String("payment_id", created.ID),
		zap.Float64("amount", created.Amount),
	)

	return created, nil
}
