// Package workflow orchestrates the guest-side booking and payment flows on
// top of the reservation service. The workflows hold only per-session state:
// nothing here survives beyond one browse-validate-submit cycle, and the
// service stays the authority on what is actually accepted.
package workflow

import (
	"context"
	"fmt"

	"room-booking/internal/booking"
	"room-booking/internal/client"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

// ActiveRanges projects a mixed-status reservation list onto the conflict
// set: only case-folded active reservations hold their dates, and a
// reservation with unparseable dates is skipped rather than treated as a
// blocker. Cancelled or expired reservations never block a new booking.
func ActiveRanges(reservations []client.Reservation) []booking.DateRange {
	var ranges []booking.DateRange
	for _, r := range reservations {
		if !booking.IsActiveStatus(r.Status) {
			continue
		}
		dr, err := booking.ParseDateRange(r.StartDate, r.EndDate)
		if err != nil {
			continue
		}
		ranges = append(ranges, dr)
	}
	return ranges
}

// BookingInput is the guest's candidate submission.
type BookingInput struct {
	GuestEmail string `validate:"required,email"`
	StartDate  string `validate:"required"`
	EndDate    string `validate:"required"`
}

// BookingWorkflow drives one room's booking session: load the active
// reservations, gate the candidate input, submit, refresh.
type BookingWorkflow struct {
	client       *client.Client
	roomID       string
	availability *booking.Availability
	log          *zap.Logger
}

func NewBookingWorkflow(c *client.Client, roomID string, log *zap.Logger) *BookingWorkflow {
	return &BookingWorkflow{
		client:       c,
		roomID:       roomID,
		availability: booking.NewAvailability(nil),
		log:          log.With(zap.String("workflow", "booking"), zap.String("room_id", roomID)),
	}
}

// Refresh re-derives the active conflict set from a fresh fetch. It must run
// before every submission attempt: the local overlap check is advisory and
// goes stale the moment someone else books.
func (w *BookingWorkflow) Refresh(ctx context.Context) error {
	reservations, err := w.client.ListRoomReservations(ctx, w.roomID)
	if err != nil {
		return fmt.Errorf("refresh reservations for room %s: %w", w.roomID, err)
	}

	w.availability = booking.NewAvailability(ActiveRanges(reservations))
	w.log.Debug("Active ranges refreshed", zap.Int("count", len(w.availability.ActiveRanges())))
	return nil
}

// Active returns the current conflict set, for display.
func (w *BookingWorkflow) Active() []booking.DateRange {
	return w.availability.ActiveRanges()
}

// CanSubmit combines the three local gates: both dates present and
// parseable, a plausible guest email, and no overlap with the active set.
// All three must hold; none of them reaches the network.
func (w *BookingWorkflow) CanSubmit(in BookingInput) bool {
	if errs := utils.ValidateStruct(in); len(errs) > 0 {
		return false
	}

	candidate, err := booking.ParseDateRange(in.StartDate, in.EndDate)
	if err != nil {
		return false
	}

	return w.availability.IsBookable(candidate)
}

// Submit generates a fresh identifier, hands the reservation to the service,
// and on success refreshes the active set so a follow-up booking in the same
// session cannot race our own stale snapshot. A rejection comes back as a
// *client.RejectedError with the service's detail intact.
func (w *BookingWorkflow) Submit(ctx context.Context, in BookingInput) (*client.Reservation, error) {
	if !w.CanSubmit(in) {
		return nil, fmt.Errorf("submission blocked: dates, email, or availability check failed")
	}

	payload := client.Reservation{
		ID:         booking.GenerateID(),
		RoomID:     w.roomID,
		GuestEmail: in.GuestEmail,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
	}

	created, err := w.client.CreateReservation(ctx, payload)
	if err != nil {
		w.log.Warn("Reservation submission failed", zap.String("reservation_id", payload.ID), zap.Error(err))
		return nil, err
	}

	w.log.Info("Reservation created",
		zap.String("reservation_id", created.ID),
		zap.String("start_date", created.StartDate),
		zap.String("end_date", created.EndDate),
	)

	if err := w.Refresh(ctx); err != nil {
		// The booking itself succeeded; a failed refresh only means the next
		// local pre-check would run on stale data.
		w.log.Warn("Refresh after submit failed", zap.Error(err))
	}

	return created, nil
}
