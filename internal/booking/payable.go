package booking

import "fmt"

// Payability is the two-state capability gate for paying a reservation.
// Rather than comparing status strings at every call site, the status is
// folded once into Payable or NotPayable-with-reason, so a new backend status
// string can never be silently admitted as payable.
type Payability struct {
	Payable bool
	Reason  string
}

// PayabilityOf gates on the reservation status. Only a case-folded
// StatusActive is payable; cancelled, expired, and unrecognized statuses all
// block payment.
func PayabilityOf(status string) Payability {
	if IsActiveStatus(status) {
		return Payability{Payable: true}
	}
	return Payability{
		Payable: false,
		Reason:  fmt.Sprintf("reservation status is %q, not %s", status, StatusActive),
	}
}
