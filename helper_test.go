package wealth

import (
	"math"
	"testing"
	"time"

	"github.com/etnz/wealth/date"
)

// day is a helper for tests to create 2025 dates.
func day(m time.Month, d int) date.Date { return date.New(2025, m, d) }

// monthly returns a series with one observation on the 5th of each month starting January 2025.
func monthly(amounts ...float64) Series {
	s := make(Series, len(amounts))
	for i, a := range amounts {
		s[i] = Point{Date: day(time.January, 5).AddMonths(i), Amount: a}
	}
	return s
}

// linear returns a monthly series of n observations starting at from, growing by step.
func linear(n int, from, step float64) Series {
	amounts := make([]float64, n)
	for i := range amounts {
		amounts[i] = from + float64(i)*step
	}
	return monthly(amounts...)
}

// assertValue fails if got is not want (Null included).
func assertValue(t *testing.T, name string, got, want Value) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
