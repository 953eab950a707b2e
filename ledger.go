package wealth

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/etnz/wealth/date"
	"github.com/shopspring/decimal"
)

// ErrMalformedLedger is returned when a ledger is rejected before any computation.
var ErrMalformedLedger = errors.New("malformed ledger")

// ErrUnknownDate is returned when a date is not one of the ledger's dates.
var ErrUnknownDate = errors.New("no balance recorded on that date")

// Entry is the balance of an account at an institution on a date.
type Entry struct {
	Date        date.Date `json:"date"`
	Institution string    `json:"institution"`
	Amount      Money     `json:"amount"`
}

type entryKey struct {
	on          date.Date
	institution string
}

// Ledger is the list of balances recorded by the user.
type Ledger struct {
	currency string
	entries  []Entry
	index    map[entryKey]int
}

// NewLedger returns an empty ledger in currency.
func NewLedger(currency string) *Ledger {
	return &Ledger{currency: currency, index: make(map[entryKey]int)}
}

// Currency returns the ledger currency.
func (l *Ledger) Currency() string { return l.currency }

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.entries) }

// Append adds an entry to the ledger.
//
// An institution has a single balance per date: appending the same balance again is a no-op
// and returns false, appending a different one fails with ErrMalformedLedger.
func (l *Ledger) Append(e Entry) (bool, error) {
	if e.Institution == "" {
		return false, fmt.Errorf("%w: missing institution on %s", ErrMalformedLedger, e.Date)
	}
	e.Amount.cur = l.currency
	k := entryKey{e.Date, e.Institution}
	if i, exists := l.index[k]; exists {
		if l.entries[i].Amount.Equal(e.Amount) {
			return false, nil
		}
		return false, fmt.Errorf("%w: conflicting balances for %q on %s: %s and %s",
			ErrMalformedLedger, e.Institution, e.Date, l.entries[i].Amount.Amount(), e.Amount.Amount())
	}
	l.index[k] = len(l.entries)
	l.entries = append(l.entries, e)
	return true, nil
}

// Entries returns the entries sorted by date then institution.
func (l *Ledger) Entries() []Entry {
	sorted := slices.Clone(l.entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.Institution, b.Institution)
	})
	return sorted
}

// Dates returns the distinct dates of the ledger, sorted.
func (l *Ledger) Dates() []date.Date {
	var days []date.Date
	for _, e := range l.entries {
		days = append(days, e.Date)
	}
	slices.SortFunc(days, date.Date.Compare)
	return slices.Compact(days)
}

// Institutions returns the distinct institutions of the ledger, sorted.
func (l *Ledger) Institutions() []string {
	var names []string
	for _, e := range l.entries {
		names = append(names, e.Institution)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Wealth returns the wealth series: the sum of all balances per date, in chronological order.
func (l *Ledger) Wealth() Series {
	sums := make(map[date.Date]decimal.Decimal)
	for _, e := range l.entries {
		sums[e.Date] = sums[e.Date].Add(e.Amount.value)
	}
	s := make(Series, 0, len(sums))
	for _, on := range l.Dates() {
		s = append(s, Point{Date: on, Amount: sums[on].InexactFloat64()})
	}
	return s
}

// Balance is the balance of an institution.
type Balance struct {
	Institution string `json:"institution"`
	Amount      Money  `json:"amount"`
}

// BalancesOn returns the balances recorded on a date exactly, sorted by institution.
func (l *Ledger) BalancesOn(on date.Date) ([]Balance, error) {
	var balances []Balance
	for _, e := range l.Entries() {
		if e.Date == on {
			balances = append(balances, Balance{Institution: e.Institution, Amount: e.Amount})
		}
	}
	if len(balances) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDate, on)
	}
	return balances, nil
}

// Pivot is the table of balances with one row per date and one column per institution.
type Pivot struct {
	Dates        []date.Date `json:"dates"`
	Institutions []string    `json:"institutions"`
	// Cells[i][j] is the balance on Dates[i] at Institutions[j], Null if none was recorded.
	Cells [][]Value `json:"cells"`
}

// Pivot returns the balances by date and institution.
func (l *Ledger) Pivot() Pivot {
	p := Pivot{Dates: l.Dates(), Institutions: l.Institutions()}
	p.Cells = make([][]Value, len(p.Dates))
	for i := range p.Cells {
		p.Cells[i] = make([]Value, len(p.Institutions))
	}
	for _, e := range l.entries {
		i, _ := slices.BinarySearchFunc(p.Dates, e.Date, date.Date.Compare)
		j, _ := slices.BinarySearch(p.Institutions, e.Institution)
		p.Cells[i][j] = Some(e.Amount.Float())
	}
	return p
}

// Chart returns the pivot as a chart with one column per institution.
func (p Pivot) Chart() Chart {
	c := Chart{Name: "institutions", Points: make([]ChartPoint, len(p.Dates))}
	for _, name := range p.Institutions {
		c.Columns = append(c.Columns, Column{Key: name, Label: name, Kind: KindAmount})
	}
	for i, on := range p.Dates {
		c.Points[i] = ChartPoint{Date: on, Values: p.Cells[i]}
	}
	return c
}
