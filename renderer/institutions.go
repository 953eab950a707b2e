package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/wealth"
	"github.com/etnz/wealth/date"
	md "github.com/nao1215/markdown"
)

// PivotMarkdown renders the balances with a row per date and a column per institution.
func PivotMarkdown(p wealth.Pivot, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Balances by Institution")
	table := md.TableSet{
		Alignment: alignments(len(p.Institutions) + 1),
		Header:    append(append([]string{"Date"}, p.Institutions...), md.Bold("Total")),
	}
	for i, on := range p.Dates {
		row := []string{on.String()}
		total := wealth.Some(0)
		for _, v := range p.Cells[i] {
			row = append(row, wealth.FormatValue(v, currency))
			if !v.IsNull() {
				total = total.Add(v)
			}
		}
		row = append(row, md.Bold(wealth.FormatValue(total, currency)))
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	return doc.String()
}

// BalancesMarkdown renders the balances of each institution on a date.
func BalancesMarkdown(on date.Date, balances []wealth.Balance, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Balances on %s", on))
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Institution", "Balance"},
	}
	total := wealth.M(0, currency)
	for _, b := range balances {
		table.Rows = append(table.Rows, []string{b.Institution, b.Amount.String()})
		total = total.Add(b.Amount)
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(total.String())})
	doc.Table(table)

	return doc.String()
}
