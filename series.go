package wealth

import (
	"errors"
	"fmt"
	"slices"

	"github.com/etnz/wealth/date"
)

// ErrMalformedSeries is returned when a wealth series cannot be ordered unambiguously.
var ErrMalformedSeries = errors.New("malformed series")

// ErrEmptySeries is returned by operations that need at least one observation.
var ErrEmptySeries = errors.New("empty series")

// Point is a single wealth observation.
type Point struct {
	Date   date.Date `json:"date"`
	Amount float64   `json:"amount"`
}

// Series is a wealth series: total wealth per observation date.
type Series []Point

// Sorted returns a chronologically sorted copy of s.
//
// It fails with ErrMalformedSeries if a date appears more than once, because the previous
// observation of that date would be ambiguous.
func (s Series) Sorted() (Series, error) {
	sorted := slices.Clone(s)
	slices.SortStableFunc(sorted, func(a, b Point) int { return a.Date.Compare(b.Date) })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Date == sorted[i-1].Date {
			return nil, fmt.Errorf("%w: duplicate date %s", ErrMalformedSeries, sorted[i].Date)
		}
	}
	return sorted, nil
}

// History returns the series as a date indexed History.
func (s Series) History() *date.History[float64] {
	h := new(date.History[float64])
	for _, p := range s {
		h.Append(p.Date, p.Amount)
	}
	return h
}
