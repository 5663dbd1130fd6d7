package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"room-booking/internal/booking"
	"room-booking/internal/client"

	"go.uber.org/zap"
)

// reservationStub is an in-memory stand-in for the reservation service.
type reservationStub struct {
	mu           sync.Mutex
	reservations []client.Reservation
	rejectDetail string // when set, POST /reservations fails with this detail
}

func (s *reservationStub) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /rooms/{id}/reservations", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(s.reservations)
	})
	mux.HandleFunc("POST /reservations", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		if s.rejectDetail != "" {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"detail": s.rejectDetail})
			return
		}
		var payload client.Reservation
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"detail": "bad body"})
			return
		}
		payload.Status = "active"
		s.reservations = append(s.reservations, payload)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(payload)
	})
	return mux
}

func newBookingWorkflow(t *testing.T, stub *reservationStub) (*BookingWorkflow, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)
	c := client.New(srv.URL, zap.NewNop())
	return NewBookingWorkflow(c, "room-1", zap.NewNop()), srv
}

func TestActiveRangesFiltersNonActive(t *testing.T) {
	reservations := []client.Reservation{
		{ID: "a", Status: "active", StartDate: "2024-05-01", EndDate: "2024-05-03"},
		{ID: "b", Status: "cancelled", StartDate: "2024-05-04", EndDate: "2024-05-08"},
		{ID: "c", Status: "ACTIVE", StartDate: "2024-05-10", EndDate: "2024-05-12"},
		{ID: "d", Status: "expired", StartDate: "2024-05-01", EndDate: "2024-05-30"},
		{ID: "e", Status: "", StartDate: "2024-05-15", EndDate: "2024-05-16"},
		{ID: "f", Status: "active", StartDate: "bogus", EndDate: "2024-05-20"},
	}

	ranges := ActiveRanges(reservations)
	if len(ranges) != 2 {
		t.Fatalf("len(ActiveRanges) = %v, want 2 (got %v)", len(ranges), ranges)
	}

	// The cancelled reservation's dates would block 2024-05-05; they must not.
	a := booking.NewAvailability(ranges)
	candidate, _ := booking.ParseDateRange("2024-05-05", "2024-05-06")
	if !a.IsBookable(candidate) {
		t.Error("candidate overlapping only a cancelled reservation reported as not bookable")
	}
}

func TestCanSubmitGates(t *testing.T) {
	stub := &reservationStub{reservations: []client.Reservation{
		{ID: "a", Status: "active", StartDate: "2024-05-10", EndDate: "2024-05-15"},
	}}
	w, _ := newBookingWorkflow(t, stub)
	if err := w.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh error: %v", err)
	}

	tests := []struct {
		name string
		in   BookingInput
		want bool
	}{
		{"all valid", BookingInput{"guest@example.com", "2024-05-01", "2024-05-03"}, true},
		{"invalid email despite clear dates", BookingInput{"not-an-email", "2024-05-01", "2024-05-03"}, false},
		{"missing email", BookingInput{"", "2024-05-01", "2024-05-03"}, false},
		{"missing start", BookingInput{"guest@example.com", "", "2024-05-03"}, false},
		{"missing end", BookingInput{"guest@example.com", "2024-05-01", ""}, false},
		{"unparseable date", BookingInput{"guest@example.com", "05/01/2024", "2024-05-03"}, false},
		{"overlaps active", BookingInput{"guest@example.com", "2024-05-12", "2024-05-13"}, false},
		{"touches active boundary", BookingInput{"guest@example.com", "2024-05-15", "2024-05-18"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.CanSubmit(tt.in); got != tt.want {
				t.Errorf("CanSubmit(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSubmitRefreshesActiveSet(t *testing.T) {
	stub := &reservationStub{}
	w, _ := newBookingWorkflow(t, stub)
	if err := w.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh error: %v", err)
	}

	in := BookingInput{GuestEmail: "guest@example.com", StartDate: "2024-06-01", EndDate: "2024-06-04"}
	created, err := w.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if created.RoomID != "room-1" {
		t.Errorf("created.RoomID = %v, want room-1", created.RoomID)
	}
	if created.GuestEmail != "guest@example.com" {
		t.Errorf("created.GuestEmail = %v, want guest@example.com", created.GuestEmail)
	}

	// The active set was re-fetched, so the same dates are now blocked
	// locally without another explicit Refresh.
	if w.CanSubmit(in) {
		t.Error("CanSubmit = true for dates just booked in this session, want false")
	}
}

func TestSubmitSurfacesRejectionDetail(t *testing.T) {
	stub := &reservationStub{rejectDetail: "dates overlap an active reservation for this room"}
	w, _ := newBookingWorkflow(t, stub)
	if err := w.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh error: %v", err)
	}

	_, err := w.Submit(context.Background(), BookingInput{
		GuestEmail: "guest@example.com",
		StartDate:  "2024-06-01",
		EndDate:    "2024-06-04",
	})
	if err == nil {
		t.Fatal("Submit succeeded, want rejection")
	}

	var rejected *client.RejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("Submit error = %T(%v), want *client.RejectedError", err, err)
	}
	if rejected.Detail != stub.rejectDetail {
		t.Errorf("rejection detail = %q, want %q verbatim", rejected.Detail, stub.rejectDetail)
	}
}

func TestSubmitBlockedLocallyMakesNoRequest(t *testing.T) {
	stub := &reservationStub{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			t.Error("POST reached the service despite a failed local gate")
		}
		stub.handler().ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	w := NewBookingWorkflow(client.New(srv.URL, zap.NewNop()), "room-1", zap.NewNop())
	if err := w.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh error: %v", err)
	}

	_, err := w.Submit(context.Background(), BookingInput{
		GuestEmail: "not-an-email",
		StartDate:  "2024-06-01",
		EndDate:    "2024-06-04",
	})
	if err == nil {
		t.Fatal("Submit succeeded with an invalid email")
	}
}
