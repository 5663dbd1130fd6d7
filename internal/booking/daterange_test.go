package booking

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestToDay(t *testing.T) {
	in := time.Date(2024, time.May, 10, 23, 59, 58, 123, time.Local)
	got := ToDay(in)
	want := day(2024, time.May, 10)
	if !got.Equal(want) {
		t.Errorf("ToDay(%v) = %v, want %v", in, got, want)
	}
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("ToDay(%v) kept a time-of-day component: %v", in, got)
	}
}

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("2024-05-01", "2024-05-03")
	if err != nil {
		t.Fatalf("ParseDateRange returned error: %v", err)
	}
	if !r.Start.Equal(day(2024, time.May, 1)) {
		t.Errorf("Start = %v, want %v", r.Start, day(2024, time.May, 1))
	}
	if !r.End.Equal(day(2024, time.May, 3)) {
		t.Errorf("End = %v, want %v", r.End, day(2024, time.May, 3))
	}

	if _, err := ParseDateRange("not-a-date", "2024-05-03"); err == nil {
		t.Error("ParseDateRange accepted a malformed start date")
	}
	if _, err := ParseDateRange("2024-05-01", "03/05/2024"); err == nil {
		t.Error("ParseDateRange accepted a malformed end date")
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b DateRange
		want bool
	}{
		{
			name: "disjoint",
			a:    DateRange{day(2024, time.May, 1), day(2024, time.May, 3)},
			b:    DateRange{day(2024, time.May, 4), day(2024, time.May, 6)},
			want: false,
		},
		{
			name: "touching boundaries conflict",
			a:    DateRange{day(2024, time.May, 8), day(2024, time.May, 10)},
			b:    DateRange{day(2024, time.May, 10), day(2024, time.May, 12)},
			want: true,
		},
		{
			name: "contained",
			a:    DateRange{day(2024, time.May, 1), day(2024, time.May, 30)},
			b:    DateRange{day(2024, time.May, 10), day(2024, time.May, 12)},
			want: true,
		},
		{
			name: "partial overlap",
			a:    DateRange{day(2024, time.May, 1), day(2024, time.May, 5)},
			b:    DateRange{day(2024, time.May, 4), day(2024, time.May, 9)},
			want: true,
		},
		{
			name: "single-day range inside",
			a:    DateRange{day(2024, time.May, 5), day(2024, time.May, 5)},
			b:    DateRange{day(2024, time.May, 4), day(2024, time.May, 6)},
			want: true,
		},
		{
			name: "single-day ranges apart",
			a:    DateRange{day(2024, time.May, 5), day(2024, time.May, 5)},
			b:    DateRange{day(2024, time.May, 6), day(2024, time.May, 6)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Overlap must be symmetric.
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}
