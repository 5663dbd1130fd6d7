package booking

import (
	"math"
)

// Nights derives the billable night count from a stay range: the rounded
// number of whole days between the endpoints, never less than 1. A degenerate
// same-day range is billed as one night; every booking incurs at least one
// night's charge.
func Nights(r DateRange) int {
	nights := int(math.Round(r.End.Sub(r.Start).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

// Total computes the amount due for a stay, rounded to 2 decimal places using
// round-half-away-from-zero. Rounding once at the end keeps the result
// deterministic for a given rate and night count and avoids accumulating
// float cent drift.
func Total(nightlyRate float64, nights int) float64 {
	return math.Round(nightlyRate*float64(nights)*100) / 100
}
