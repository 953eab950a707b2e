package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/wealth"
	md "github.com/nao1215/markdown"
)

// GoalMarkdown renders the goal panel: the goal itself, then its month by month tracking.
func GoalMarkdown(g *wealth.GoalPanel, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Goal from %s", g.Start))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Target"), md.Bold(wealth.M(g.Final(), currency).String())},
		Rows: [][]string{
			{fmt.Sprintf("Anchor on %s", g.AnchorDate), wealth.M(g.Anchor, currency).String()},
			{"Increment", wealth.M(g.Increment, currency).SignedString()},
			{"Monthly Step", wealth.M(g.Increment/wealth.GoalMonths, currency).SignedString()},
		},
	})

	doc.H2("Tracking")
	cols := g.Columns()
	table := md.TableSet{
		Alignment: append([]md.TableAlignment{md.AlignRight}, alignments(len(cols))...),
		Header:    []string{"Month", "Date"},
	}
	for _, c := range cols {
		table.Header = append(table.Header, c.Label)
	}
	for _, r := range g.Rows {
		row := []string{fmt.Sprint(r.Month), r.Date.String()}
		for _, c := range cols {
			row = append(row, r.Cell(c.Key, currency))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	return doc.String()
}
