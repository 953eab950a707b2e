package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/wealth"
	md "github.com/nao1215/markdown"
)

// StatsMarkdown renders the statistics panel as a table, one row per observation.
func StatsMarkdown(p *wealth.StatsPanel, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Wealth Statistics")
	if p.Len() == 0 {
		doc.PlainText("No observation.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("%d observations from %s to %s.", p.Len(), p.Range().From, p.Range().To))

	cols := p.Columns()
	table := md.TableSet{
		Alignment: alignments(len(cols)),
		Header:    []string{"Date"},
	}
	for _, c := range cols {
		table.Header = append(table.Header, c.Label)
	}
	for _, r := range p.Rows() {
		row := []string{r.Date.String()}
		for _, c := range cols {
			row = append(row, r.Cell(c.Key, currency))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	return doc.String()
}

// ChartMarkdown renders a chart grouping as a table: the date and one column per series.
func ChartMarkdown(c wealth.Chart, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(fmt.Sprintf("Chart %q", c.Name))
	table := md.TableSet{
		Alignment: alignments(len(c.Columns)),
		Header:    []string{"Date"},
	}
	for _, col := range c.Columns {
		table.Header = append(table.Header, col.Label)
	}
	for _, p := range c.Points {
		row := []string{p.Date.String()}
		for i, col := range c.Columns {
			row = append(row, col.Format(p.Values[i], currency))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	return doc.String()
}

// alignments returns a left aligned date column followed by n right aligned columns.
func alignments(n int) []md.TableAlignment {
	a := []md.TableAlignment{md.AlignLeft}
	for range n {
		a = append(a, md.AlignRight)
	}
	return a
}
