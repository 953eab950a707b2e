package wealth

import (
	"errors"
	"fmt"
	"math"

	"github.com/etnz/wealth/date"
)

// GoalMonths is the duration of a goal. A goal panel has GoalMonths+1 rows.
const GoalMonths = 12

// ErrStartOutOfRange is returned when a goal starts outside of the observed dates.
var ErrStartOutOfRange = errors.New("goal start date out of range")

// ErrInvalidGoal is returned for a goal increment that is not a finite number.
var ErrInvalidGoal = errors.New("invalid goal")

// GoalRow compares the linear target to the realized wealth for a month of the goal.
type GoalRow struct {
	Month int       `json:"month"`
	Date  date.Date `json:"date"`

	// Target is the linear trajectory from the anchor to the anchor plus the increment.
	Target float64 `json:"target"`
	// Realized is the wealth observed on Date exactly, Null if there is none.
	Realized   Value `json:"realized"`
	Difference Value `json:"difference"`
	// Reach is the part of the targeted increase since the anchor that was realized.
	Reach Value `json:"reach"`
	// Growth is the realized growth since the previous month.
	Growth Value `json:"growth"`

	// TargetFraction and ReachFraction are the targeted and realized increase since the anchor
	// as a fraction of the whole increment.
	TargetFraction Value `json:"target_fraction"`
	ReachFraction  Value `json:"reach_fraction"`
}

// GoalPanel tracks a goal month by month.
type GoalPanel struct {
	Start      date.Date `json:"start"`
	AnchorDate date.Date `json:"anchor_date"`
	Anchor     float64   `json:"anchor"`
	Increment  float64   `json:"increment"`
	Rows       []GoalRow `json:"rows"`
}

// TrackGoal tracks the goal of increasing wealth by increment in GoalMonths months from start.
//
// The anchor is the wealth observed on start, or the latest one before. The targets are evenly
// spaced between the anchor and anchor+increment, on the same day of each month (clamped to the
// end of shorter months). The realized wealth is only taken on those exact dates; it is not
// interpolated nor carried forward.
//
// start must lie within the observed dates, otherwise ErrStartOutOfRange is returned.
func TrackGoal(p *StatsPanel, start date.Date, increment float64) (*GoalPanel, error) {
	if math.IsNaN(increment) || math.IsInf(increment, 0) {
		return nil, fmt.Errorf("%w: increment %v is not a finite number", ErrInvalidGoal, increment)
	}
	anchorDate, anchor, err := p.Anchor(start)
	if err != nil {
		return nil, fmt.Errorf("cannot track a goal: %w", err)
	}
	wealth := p.Wealth()

	g := &GoalPanel{
		Start:      start,
		AnchorDate: anchorDate,
		Anchor:     anchor,
		Increment:  increment,
		Rows:       make([]GoalRow, GoalMonths+1),
	}

	step := increment / GoalMonths
	for i := range g.Rows {
		r := &g.Rows[i]
		r.Month = i
		r.Date = start.AddMonths(i)
		r.Target = anchor + float64(i)*step

		if v, ok := wealth.Get(r.Date); ok {
			r.Realized = Some(v)
		}
		r.Difference = r.Realized.Sub(Some(r.Target))

		progress := r.Realized.Sub(Some(anchor))
		r.Reach = progress.Div(Some(r.Target - anchor))
		r.TargetFraction = Some(r.Target - anchor).Div(Some(increment))
		r.ReachFraction = progress.Div(Some(increment))

		if i > 0 {
			r.Growth = r.Realized.Div(g.Rows[i-1].Realized).Sub(Some(1))
		}
	}
	return g, nil
}

// Anchor returns the wealth observed on start, or the latest one before, with its date.
//
// start must lie within the observed dates, otherwise ErrStartOutOfRange is returned.
func (p *StatsPanel) Anchor(start date.Date) (date.Date, float64, error) {
	if p == nil || p.Len() == 0 {
		return date.Date{}, 0, ErrEmptySeries
	}
	span := p.Range()
	if !span.Contains(start) {
		return date.Date{}, 0, fmt.Errorf("%w: %s is not within %s", ErrStartOutOfRange, start, span)
	}
	on, w, _ := p.wealth.Floor(start)
	return on, w, nil
}

// Final returns the target at the end of the goal.
func (g *GoalPanel) Final() float64 { return g.Rows[len(g.Rows)-1].Target }

var goalColumns = []column[GoalRow]{
	{Column{"target", "Target", KindAmount}, func(r GoalRow) Value { return Some(r.Target) }},
	{Column{"realized", "Realized", KindAmount}, func(r GoalRow) Value { return r.Realized }},
	{Column{"difference", "Difference", KindAmount}, func(r GoalRow) Value { return r.Difference }},
	{Column{"reach", "Reach", KindRatio}, func(r GoalRow) Value { return r.Reach }},
	{Column{"growth", "Growth", KindRatio}, func(r GoalRow) Value { return r.Growth }},
	{Column{"target_fraction", "Target %", KindRatio}, func(r GoalRow) Value { return r.TargetFraction }},
	{Column{"reach_fraction", "Reach %", KindRatio}, func(r GoalRow) Value { return r.ReachFraction }},
}

// Chart names of the goal panel.
const (
	ChartFractions = "fractions"
	ChartTargets   = "targets"
	ChartReach     = "reach"
)

var goalCharts = map[string][]string{
	ChartFractions: {"target_fraction", "reach_fraction"},
	ChartTargets:   {"target", "realized"},
	ChartReach:     {"reach"},
}

// Columns returns the goal panel columns.
func (g *GoalPanel) Columns() []Column {
	cols := make([]Column, len(goalColumns))
	for i, c := range goalColumns {
		cols[i] = c.Column
	}
	return cols
}

// Cell returns the formatted cell of row r for the column with key.
func (r GoalRow) Cell(key, currency string) string {
	c, ok := lookup(goalColumns, key)
	if !ok {
		return ""
	}
	return c.Format(c.get(r), currency)
}

// Chart returns the chart named name: "fractions" (target vs reach fractions), "targets"
// (target vs realized wealth) or "reach".
func (g *GoalPanel) Chart(name string) (Chart, error) {
	keys, ok := goalCharts[name]
	if !ok {
		return Chart{}, fmt.Errorf("unknown goal chart %q", name)
	}
	cols := make([]column[GoalRow], 0, len(keys))
	for _, k := range keys {
		c, _ := lookup(goalColumns, k)
		cols = append(cols, c)
	}
	return newChart(name, g.Rows, func(r GoalRow) date.Date { return r.Date }, cols...), nil
}

// Charts returns every chart of the goal panel.
func (g *GoalPanel) Charts() []Chart {
	charts := make([]Chart, 0, len(goalCharts))
	for _, name := range []string{ChartFractions, ChartTargets, ChartReach} {
		c, _ := g.Chart(name)
		charts = append(charts, c)
	}
	return charts
}
