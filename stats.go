package wealth

import (
	"fmt"

	"github.com/etnz/wealth/date"
)

// Windows are the trailing window sizes, in observations, of the rolling statistics.
var Windows = [3]int{6, 12, 24}

// businessDaysRatio normalizes calendar days to a 22 business days month.
const businessDaysRatio = 22.0 / 30.0

// StatsRow is a wealth observation enriched with its statistics.
//
// Windowed columns are suffixed by their window size. A window of size N ending at row i spans
// rows [i-N+1, i].
type StatsRow struct {
	Date   date.Date `json:"date"`
	Wealth float64   `json:"wealth"`

	// AbsGrowth is the change since the previous observation, RelGrowth the same as a fraction.
	AbsGrowth Value `json:"abs_growth"`
	RelGrowth Value `json:"rel_growth"`

	// GrowthMA is the mean AbsGrowth over the window.
	GrowthMA6  Value `json:"growth_ma_6"`
	GrowthMA12 Value `json:"growth_ma_12"`
	GrowthMA24 Value `json:"growth_ma_24"`

	// Evolution is the change between the first and the last wealth of the window.
	Evolution6  Value `json:"evolution_6"`
	Evolution12 Value `json:"evolution_12"`
	Evolution24 Value `json:"evolution_24"`

	RelEvolution6  Value `json:"rel_evolution_6"`
	RelEvolution12 Value `json:"rel_evolution_12"`
	RelEvolution24 Value `json:"rel_evolution_24"`

	// DailyGain is AbsGrowth per business day elapsed since the previous observation.
	DailyGain Value `json:"daily_gain"`

	// CumDiff is the change since the first observation, CumRelDiff the same as a fraction.
	CumDiff    Value `json:"cum_diff"`
	CumRelDiff Value `json:"cum_rel_diff"`
}

// StatsPanel is the statistics of a wealth series, one row per observation in chronological
// order.
type StatsPanel struct {
	rows   []StatsRow
	wealth *date.History[float64]
}

// ComputeStats computes the statistics of a wealth series.
//
// The series is sorted first, callers do not need to. Statistics that need more history than
// available are Null. ComputeStats only fails if the series is malformed.
func ComputeStats(s Series) (*StatsPanel, error) {
	sorted, err := s.Sorted()
	if err != nil {
		return nil, err
	}

	w := make([]float64, len(sorted))
	for i, p := range sorted {
		w[i] = p.Amount
	}

	rows := make([]StatsRow, len(sorted))
	for i, p := range sorted {
		r := &rows[i]
		r.Date, r.Wealth = p.Date, p.Amount

		if i > 0 {
			prev := Some(w[i-1])
			r.AbsGrowth = Some(w[i]).Sub(prev)
			r.RelGrowth = relative(w[i], w[i-1])
			days := p.Date.DaysSince(sorted[i-1].Date)
			r.DailyGain = r.AbsGrowth.Div(Some(businessDaysRatio * float64(days)))
		}

		r.GrowthMA6 = meanGrowth(rows, i, Windows[0])
		r.GrowthMA12 = meanGrowth(rows, i, Windows[1])
		r.GrowthMA24 = meanGrowth(rows, i, Windows[2])

		r.Evolution6, r.RelEvolution6 = evolution(w, i, Windows[0])
		r.Evolution12, r.RelEvolution12 = evolution(w, i, Windows[1])
		r.Evolution24, r.RelEvolution24 = evolution(w, i, Windows[2])

		r.CumDiff = Some(w[i] - w[0])
		r.CumRelDiff = relative(w[i], w[0])
	}

	return &StatsPanel{rows: rows, wealth: sorted.History()}, nil
}

// relative returns x/ref - 1, Null when ref is zero.
func relative(x, ref float64) Value {
	if ref == 0 {
		return Null
	}
	return Some(x/ref - 1)
}

// windowStart returns the first row of the window of size n ending at row i, and false if the
// window does not fit.
func windowStart(i, n int) (int, bool) {
	start := i - n + 1
	return start, start >= 0
}

// meanGrowth returns the mean AbsGrowth over the window of size n ending at row i.
// Every row of the window must have a defined AbsGrowth, so the first row never qualifies.
func meanGrowth(rows []StatsRow, i, n int) Value {
	start, ok := windowStart(i, n)
	if !ok {
		return Null
	}
	var sum float64
	for _, r := range rows[start : i+1] {
		g, ok := r.AbsGrowth.Float()
		if !ok {
			return Null
		}
		sum += g
	}
	return Some(sum / float64(n))
}

// evolution returns the absolute and relative change of wealth over the window of size n
// ending at row i.
func evolution(w []float64, i, n int) (abs, rel Value) {
	start, ok := windowStart(i, n)
	if !ok {
		return Null, Null
	}
	return Some(w[i] - w[start]), relative(w[i], w[start])
}

// Len returns the number of rows.
func (p *StatsPanel) Len() int { return len(p.rows) }

// Rows returns the rows in chronological order.
func (p *StatsPanel) Rows() []StatsRow { return append([]StatsRow(nil), p.rows...) }

// Row returns the i-th row.
func (p *StatsPanel) Row(i int) StatsRow { return p.rows[i] }

// Wealth returns the wealth column indexed by date.
func (p *StatsPanel) Wealth() *date.History[float64] { return p.wealth }

// Range returns the first and last observation dates.
func (p *StatsPanel) Range() date.Range { return p.wealth.Range() }

var statsColumns = []column[StatsRow]{
	{Column{"wealth", "Wealth", KindAmount}, func(r StatsRow) Value { return Some(r.Wealth) }},
	{Column{"abs_growth", "Growth", KindAmount}, func(r StatsRow) Value { return r.AbsGrowth }},
	{Column{"rel_growth", "Growth %", KindRatio}, func(r StatsRow) Value { return r.RelGrowth }},
	{Column{"growth_ma_6", "Growth MA.06", KindAmount}, func(r StatsRow) Value { return r.GrowthMA6 }},
	{Column{"growth_ma_12", "Growth MA.12", KindAmount}, func(r StatsRow) Value { return r.GrowthMA12 }},
	{Column{"growth_ma_24", "Growth MA.24", KindAmount}, func(r StatsRow) Value { return r.GrowthMA24 }},
	{Column{"evolution_6", "Evolution MA.06", KindAmount}, func(r StatsRow) Value { return r.Evolution6 }},
	{Column{"evolution_12", "Evolution MA.12", KindAmount}, func(r StatsRow) Value { return r.Evolution12 }},
	{Column{"evolution_24", "Evolution MA.24", KindAmount}, func(r StatsRow) Value { return r.Evolution24 }},
	{Column{"rel_evolution_6", "Evolution % MA.06", KindRatio}, func(r StatsRow) Value { return r.RelEvolution6 }},
	{Column{"rel_evolution_12", "Evolution % MA.12", KindRatio}, func(r StatsRow) Value { return r.RelEvolution12 }},
	{Column{"rel_evolution_24", "Evolution % MA.24", KindRatio}, func(r StatsRow) Value { return r.RelEvolution24 }},
	{Column{"daily_gain", "Daily Gain", KindAmount}, func(r StatsRow) Value { return r.DailyGain }},
	{Column{"cum_diff", "Total Diff.", KindAmount}, func(r StatsRow) Value { return r.CumDiff }},
	{Column{"cum_rel_diff", "Total Diff. %", KindRatio}, func(r StatsRow) Value { return r.CumRelDiff }},
}

// Chart names of the statistics panel.
const (
	ChartAbsolute = "absolute"
	ChartRelative = "relative"
)

var statsCharts = map[string][]string{
	ChartAbsolute: {"abs_growth", "growth_ma_6", "growth_ma_12", "growth_ma_24"},
	ChartRelative: {"rel_growth", "rel_evolution_6", "rel_evolution_12", "rel_evolution_24"},
}

// Columns returns the panel columns, wealth first.
func (p *StatsPanel) Columns() []Column {
	cols := make([]Column, len(statsColumns))
	for i, c := range statsColumns {
		cols[i] = c.Column
	}
	return cols
}

// Column returns the cells of the column with key, in chronological order.
func (p *StatsPanel) Column(key string) ([]Value, bool) {
	c, ok := lookup(statsColumns, key)
	if !ok {
		return nil, false
	}
	cells := make([]Value, len(p.rows))
	for i, r := range p.rows {
		cells[i] = c.get(r)
	}
	return cells, true
}

// Cell returns the formatted cell of row r for the column with key.
func (r StatsRow) Cell(key, currency string) string {
	c, ok := lookup(statsColumns, key)
	if !ok {
		return ""
	}
	return c.Format(c.get(r), currency)
}

// Chart returns the chart named name: "absolute" (growth and its moving averages) or "relative"
// (relative growth and rolling relative evolutions).
func (p *StatsPanel) Chart(name string) (Chart, error) {
	keys, ok := statsCharts[name]
	if !ok {
		return Chart{}, fmt.Errorf("unknown statistics chart %q", name)
	}
	cols := make([]column[StatsRow], 0, len(keys))
	for _, k := range keys {
		c, _ := lookup(statsColumns, k)
		cols = append(cols, c)
	}
	return newChart(name, p.rows, func(r StatsRow) date.Date { return r.Date }, cols...), nil
}

// Charts returns every chart of the panel.
func (p *StatsPanel) Charts() []Chart {
	charts := make([]Chart, 0, len(statsCharts))
	for _, name := range []string{ChartAbsolute, ChartRelative} {
		c, _ := p.Chart(name)
		charts = append(charts, c)
	}
	return charts
}
