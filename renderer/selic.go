package renderer

import (
	"bytes"

	"github.com/etnz/wealth/selic"
	md "github.com/nao1215/markdown"
)

// ScheduleMarkdown renders the SELIC periods, latest first.
func ScheduleMarkdown(s selic.Schedule) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("SELIC History")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"From", "To", "Effective Rate"},
	}
	for i := len(s) - 1; i >= 0; i-- {
		table.Rows = append(table.Rows, []string{s[i].From.String(), s[i].To.String(), s[i].Rate.String()})
	}
	doc.Table(table)

	return doc.String()
}
