package booking

import "strings"

// StatusActive is the only reservation status that holds its date range
// against new bookings and allows payment. Every other status, including ones
// this client has never seen, is treated as inert.
const StatusActive = "active"

// IsActiveStatus compares a reservation status against StatusActive,
// case-insensitively.
func IsActiveStatus(status string) bool {
	return strings.EqualFold(status, StatusActive)
}

// Availability answers whether a candidate range can be booked against the
// set of currently active reservations for one room. It holds a snapshot:
// callers must rebuild it from a fresh fetch before each submission attempt,
// and the backend remains the authority on acceptance.
type Availability struct {
	active []DateRange
}

func NewAvailability(active []DateRange) *Availability {
	return &Availability{active: active}
}

// ActiveRanges returns a copy of the held conflict set.
func (a *Availability) ActiveRanges() []DateRange {
	out := make([]DateRange, len(a.active))
	copy(out, a.active)
	return out
}

// IsBookable returns false iff candidate overlaps any active range.
func (a *Availability) IsBookable(candidate DateRange) bool {
	for _, r := range a.active {
		if candidate.Overlaps(r) {
			return false
		}
	}
	return true
}
