package wealth

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestComputeStats(t *testing.T) {
	p, err := ComputeStats(monthly(1000, 1100, 1210))
	if err != nil {
		t.Fatalf("ComputeStats() unexpected error: %v", err)
	}
	if p.Len() != 3 {
		t.Fatalf("ComputeStats() got %d rows, want 3", p.Len())
	}

	testCases := []struct {
		key  string
		want []Value
	}{
		{"abs_growth", []Value{Null, Some(100), Some(110)}},
		{"rel_growth", []Value{Null, Some(0.1), Some(0.1)}},
		{"cum_diff", []Value{Some(0), Some(100), Some(210)}},
		{"cum_rel_diff", []Value{Some(0), Some(0.1), Some(0.21)}},
		{"growth_ma_6", []Value{Null, Null, Null}},
		{"evolution_6", []Value{Null, Null, Null}},
		{"rel_evolution_24", []Value{Null, Null, Null}},
	}
	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			got, ok := p.Column(tc.key)
			if !ok {
				t.Fatalf("Column(%q) not found", tc.key)
			}
			for i := range tc.want {
				assertValue(t, fmt.Sprintf("%s[%d]", tc.key, i), got[i], tc.want[i])
			}
		})
	}
}

func TestComputeStats_DailyGain(t *testing.T) {
	p, err := ComputeStats(monthly(1000, 1100))
	if err != nil {
		t.Fatalf("ComputeStats() unexpected error: %v", err)
	}
	// 31 days between January 5th and February 5th.
	want := Some(100 / (22.0 / 30.0 * 31))
	assertValue(t, "DailyGain", p.Row(1).DailyGain, want)
	assertValue(t, "DailyGain[0]", p.Row(0).DailyGain, Null)
}

func TestComputeStats_Windows(t *testing.T) {
	const step = 10.0
	p, err := ComputeStats(linear(30, 100, step))
	if err != nil {
		t.Fatalf("ComputeStats() unexpected error: %v", err)
	}

	for _, n := range Windows {
		ma, _ := p.Column(fmt.Sprintf("growth_ma_%d", n))
		evo, _ := p.Column(fmt.Sprintf("evolution_%d", n))
		rel, _ := p.Column(fmt.Sprintf("rel_evolution_%d", n))
		for i := range p.Len() {
			// The mean growth needs n growths, so it starts one row after the evolution.
			if i < n {
				assertValue(t, fmt.Sprintf("growth_ma_%d[%d]", n, i), ma[i], Null)
			} else {
				assertValue(t, fmt.Sprintf("growth_ma_%d[%d]", n, i), ma[i], Some(step))
			}
			if i < n-1 {
				assertValue(t, fmt.Sprintf("evolution_%d[%d]", n, i), evo[i], Null)
				assertValue(t, fmt.Sprintf("rel_evolution_%d[%d]", n, i), rel[i], Null)
				continue
			}
			assertValue(t, fmt.Sprintf("evolution_%d[%d]", n, i), evo[i], Some(step*float64(n-1)))
			first := 100 + float64(i-n+1)*step
			assertValue(t, fmt.Sprintf("rel_evolution_%d[%d]", n, i), rel[i], Some((first+step*float64(n-1))/first-1))
		}
	}
}

func TestComputeStats_Sorts(t *testing.T) {
	s := Series{
		{Date: day(time.March, 5), Amount: 1210},
		{Date: day(time.January, 5), Amount: 1000},
		{Date: day(time.February, 5), Amount: 1100},
	}
	p, err := ComputeStats(s)
	if err != nil {
		t.Fatalf("ComputeStats() unexpected error: %v", err)
	}
	for i, want := range []float64{1000, 1100, 1210} {
		if got := p.Row(i).Wealth; got != want {
			t.Errorf("Row(%d).Wealth = %v, want %v", i, got, want)
		}
	}
	if got := p.Range().String(); got != "2025-01-05..2025-03-05" {
		t.Errorf("Range() = %q, want %q", got, "2025-01-05..2025-03-05")
	}
}

func TestComputeStats_DuplicateDate(t *testing.T) {
	s := Series{
		{Date: day(time.January, 5), Amount: 1000},
		{Date: day(time.January, 5), Amount: 1100},
	}
	_, err := ComputeStats(s)
	if !errors.Is(err, ErrMalformedSeries) {
		t.Errorf("ComputeStats() error = %v, want %v", err, ErrMalformedSeries)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	p, err := ComputeStats(nil)
	if err != nil {
		t.Fatalf("ComputeStats(nil) unexpected error: %v", err)
	}
	if p.Len() != 0 {
		t.Errorf("ComputeStats(nil) got %d rows, want 0", p.Len())
	}
}

func TestComputeStats_ZeroWealth(t *testing.T) {
	p, err := ComputeStats(monthly(0, 100, 200))
	if err != nil {
		t.Fatalf("ComputeStats() unexpected error: %v", err)
	}
	assertValue(t, "AbsGrowth[1]", p.Row(1).AbsGrowth, Some(100))
	assertValue(t, "RelGrowth[1]", p.Row(1).RelGrowth, Null)
	assertValue(t, "RelGrowth[2]", p.Row(2).RelGrowth, Some(1))
	assertValue(t, "CumDiff[2]", p.Row(2).CumDiff, Some(200))
	for i := range p.Len() {
		assertValue(t, fmt.Sprintf("CumRelDiff[%d]", i), p.Row(i).CumRelDiff, Null)
	}
}

func TestStatsPanel_Charts(t *testing.T) {
	p, err := ComputeStats(monthly(1000, 1100, 1210))
	if err != nil {
		t.Fatalf("ComputeStats() unexpected error: %v", err)
	}

	testCases := []struct {
		name string
		keys []string
	}{
		{ChartAbsolute, []string{"abs_growth", "growth_ma_6", "growth_ma_12", "growth_ma_24"}},
		{ChartRelative, []string{"rel_growth", "rel_evolution_6", "rel_evolution_12", "rel_evolution_24"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := p.Chart(tc.name)
			if err != nil {
				t.Fatalf("Chart(%q) unexpected error: %v", tc.name, err)
			}
			if len(c.Columns) != len(tc.keys) {
				t.Fatalf("Chart(%q) got %d columns, want %d", tc.name, len(c.Columns), len(tc.keys))
			}
			for i, k := range tc.keys {
				if c.Columns[i].Key != k {
					t.Errorf("Chart(%q).Columns[%d] = %q, want %q", tc.name, i, c.Columns[i].Key, k)
				}
			}
			if len(c.Points) != p.Len() {
				t.Errorf("Chart(%q) got %d points, want %d", tc.name, len(c.Points), p.Len())
			}
		})
	}

	if _, err := p.Chart("unknown"); err == nil {
		t.Errorf("Chart(\"unknown\") expected an error")
	}
}

func TestStatsRow_Cell(t *testing.T) {
	p, err := ComputeStats(monthly(1000, 1100))
	if err != nil {
		t.Fatalf("ComputeStats() unexpected error: %v", err)
	}
	testCases := []struct {
		row  int
		key  string
		want string
	}{
		{0, "abs_growth", "-"},
		{1, "abs_growth", "$100.00"},
		{1, "rel_growth", "10.00%"},
		{1, "wealth", "$1,100.00"},
		{1, "unknown", ""},
	}
	for _, tc := range testCases {
		if got := p.Row(tc.row).Cell(tc.key, "USD"); got != tc.want {
			t.Errorf("Row(%d).Cell(%q) = %q, want %q", tc.row, tc.key, got, tc.want)
		}
	}
}
