package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-07-01", New(2025, time.July, 1), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{"2023-08-03T00:00:00", New(2023, time.August, 3), false},
		{"05/01/2025", New(2025, time.January, 5), false},
		{"5/1/2025", New(2025, time.January, 5), false},
		{" 31/12/2024 ", New(2024, time.December, 31), false},
		{"2025/01/05", Date{}, true},
		{"31-12-2024", Date{}, true},
		{"", Date{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestAddMonths(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		n    int
		want Date
	}{
		{"same day", New(2025, time.January, 5), 1, New(2025, time.February, 5)},
		{"zero", New(2025, time.January, 5), 0, New(2025, time.January, 5)},
		{"clamped", New(2025, time.January, 31), 1, New(2025, time.February, 28)},
		{"clamped leap year", New(2024, time.January, 31), 1, New(2024, time.February, 29)},
		{"not cumulative", New(2025, time.January, 31), 2, New(2025, time.March, 31)},
		{"next year", New(2025, time.January, 20), 12, New(2026, time.January, 20)},
		{"backward", New(2025, time.March, 31), -1, New(2025, time.February, 28)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.AddMonths(tc.n); got != tc.want {
				t.Errorf("%v.AddMonths(%d) = %v, want %v", tc.in, tc.n, got, tc.want)
			}
		})
	}
}

func TestDaysSince(t *testing.T) {
	a, b := New(2025, time.January, 5), New(2025, time.February, 5)
	if got := b.DaysSince(a); got != 31 {
		t.Errorf("DaysSince() = %d, want 31", got)
	}
	if got := a.DaysSince(b); got != -31 {
		t.Errorf("DaysSince() = %d, want -31", got)
	}
	// spans a DST change in most zones, UTC keeps it exact.
	c, d := New(2025, time.March, 1), New(2025, time.April, 1)
	if got := d.DaysSince(c); got != 31 {
		t.Errorf("DaysSince() = %d, want 31", got)
	}
}

func TestDateJSON(t *testing.T) {
	d := New(2025, time.January, 5)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `"2025-01-05"` {
		t.Errorf("json.Marshal() = %s, want %q", data, "2025-01-05")
	}
	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if got != d {
		t.Errorf("json.Unmarshal() = %v, want %v", got, d)
	}
}

func TestRange_Contains(t *testing.T) {
	r := Range{From: New(2025, time.January, 5), To: New(2025, time.March, 5)}
	testCases := []struct {
		in   Date
		want bool
	}{
		{New(2025, time.January, 4), false},
		{New(2025, time.January, 5), true},
		{New(2025, time.February, 1), true},
		{New(2025, time.March, 5), true},
		{New(2025, time.March, 6), false},
	}
	for _, tc := range testCases {
		if got := r.Contains(tc.in); got != tc.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", r, tc.in, got, tc.want)
		}
	}
}
