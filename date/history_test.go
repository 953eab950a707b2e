package date

import (
	"testing"
	"time"
)

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[1], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[0], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[1], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[0], v2)
	}

	h.Append(d1, "replaced")
	if h.Len() != 2 || h.values[1] != "replaced" {
		t.Errorf("Append(d1, replaced) = %v, want value replaced in place", h.values)
	}
}

func TestFloor(t *testing.T) {
	h := new(History[float64])
	h.Append(New(2025, time.January, 5), 1000)
	h.Append(New(2025, time.February, 5), 1100)
	h.Append(New(2025, time.March, 5), 1210)

	testCases := []struct {
		name    string
		on      Date
		wantDay Date
		want    float64
		wantOK  bool
		wantGet bool
	}{
		{"before first", New(2025, time.January, 4), Date{}, 0, false, false},
		{"exact first", New(2025, time.January, 5), New(2025, time.January, 5), 1000, true, true},
		{"between", New(2025, time.January, 20), New(2025, time.January, 5), 1000, true, false},
		{"day before next", New(2025, time.February, 4), New(2025, time.January, 5), 1000, true, false},
		{"exact middle", New(2025, time.February, 5), New(2025, time.February, 5), 1100, true, true},
		{"after last", New(2025, time.December, 31), New(2025, time.March, 5), 1210, true, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			day, got, ok := h.Floor(tc.on)
			if ok != tc.wantOK || got != tc.want || day != tc.wantDay {
				t.Errorf("Floor(%v) = %v, %v, %v want %v, %v, %v", tc.on, day, got, ok, tc.wantDay, tc.want, tc.wantOK)
			}
			if _, ok := h.Get(tc.on); ok != tc.wantGet {
				t.Errorf("Get(%v) found = %v want %v", tc.on, ok, tc.wantGet)
			}
		})
	}
}

func TestHistory_Range(t *testing.T) {
	h := new(History[float64])
	if r := h.Range(); r != (Range{}) {
		t.Errorf("empty Range() = %v, want zero", r)
	}
	h.Append(New(2025, time.March, 5), 3)
	h.Append(New(2025, time.January, 5), 1)
	want := Range{From: New(2025, time.January, 5), To: New(2025, time.March, 5)}
	if r := h.Range(); r != want {
		t.Errorf("Range() = %v, want %v", r, want)
	}
}
