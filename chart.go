package wealth

import "github.com/etnz/wealth/date"

// Kind tells how a column should be formatted.
type Kind string

const (
	KindAmount Kind = "amount" // a monetary amount
	KindRatio  Kind = "ratio"  // a fraction, displayed as a percent
)

// Column describes a column of a panel.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Kind  Kind   `json:"kind"`
}

// Format formats a cell of this column.
func (c Column) Format(v Value, currency string) string {
	if c.Kind == KindRatio {
		return FormatRatio(v)
	}
	return FormatValue(v, currency)
}

// Chart is a named group of columns meant to be plotted together against the date.
type Chart struct {
	Name    string       `json:"name"`
	Columns []Column     `json:"columns"`
	Points  []ChartPoint `json:"points"`
}

// ChartPoint holds the values of every chart column on a date, in column order.
type ChartPoint struct {
	Date   date.Date `json:"date"`
	Values []Value   `json:"values"`
}

// column binds a Column to the accessor extracting its cell from a row of type R.
type column[R any] struct {
	Column
	get func(R) Value
}

// newChart builds the chart named name out of rows for the given columns.
func newChart[R any](name string, rows []R, on func(R) date.Date, cols ...column[R]) Chart {
	c := Chart{Name: name, Points: make([]ChartPoint, 0, len(rows))}
	for _, col := range cols {
		c.Columns = append(c.Columns, col.Column)
	}
	for _, r := range rows {
		p := ChartPoint{Date: on(r), Values: make([]Value, len(cols))}
		for i, col := range cols {
			p.Values[i] = col.get(r)
		}
		c.Points = append(c.Points, p)
	}
	return c
}

// lookup returns the column with key in cols.
func lookup[R any](cols []column[R], key string) (column[R], bool) {
	for _, c := range cols {
		if c.Key == key {
			return c, true
		}
	}
	return column[R]{}, false
}
