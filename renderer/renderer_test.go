package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/wealth"
	"github.com/etnz/wealth/date"
	"github.com/etnz/wealth/selic"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// parsed is the structure of a rendered markdown document.
type parsed struct {
	headings []string
	tables   [][][]string // tables, rows (header first), cells
}

// parse parses src as GitHub flavored markdown.
func parse(t *testing.T, src string) parsed {
	t.Helper()
	source := []byte(src)
	doc := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(source))

	var p parsed
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			p.headings = append(p.headings, content(n, source))
			return ast.WalkSkipChildren, nil
		case *east.Table:
			p.tables = append(p.tables, nil)
		case *east.TableHeader, *east.TableRow:
			var row []string
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				row = append(row, content(c, source))
			}
			last := len(p.tables) - 1
			p.tables[last] = append(p.tables[last], row)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("ast.Walk() unexpected error: %v", err)
	}
	return p
}

// content returns the text of the node, without markup.
func content(n ast.Node, source []byte) string {
	var b strings.Builder
	ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func monthly(amounts ...float64) wealth.Series {
	s := make(wealth.Series, len(amounts))
	for i, a := range amounts {
		s[i] = wealth.Point{Date: date.New(2025, time.January, 5).AddMonths(i), Amount: a}
	}
	return s
}

func TestStatsMarkdown(t *testing.T) {
	p, err := wealth.ComputeStats(monthly(1000, 1100, 1210))
	if err != nil {
		t.Fatalf("ComputeStats() unexpected error: %v", err)
	}

	got := parse(t, StatsMarkdown(p, "USD"))
	if len(got.headings) != 1 || got.headings[0] != "Wealth Statistics" {
		t.Errorf("StatsMarkdown() headings = %q, want [Wealth Statistics]", got.headings)
	}
	if len(got.tables) != 1 {
		t.Fatalf("StatsMarkdown() got %d tables, want 1", len(got.tables))
	}
	table := got.tables[0]
	if len(table) != 4 {
		t.Fatalf("StatsMarkdown() got %d rows, want header + 3", len(table))
	}
	if want := len(p.Columns()) + 1; len(table[0]) != want {
		t.Errorf("StatsMarkdown() got %d columns, want %d", len(table[0]), want)
	}
	if table[0][0] != "Date" || table[0][1] != "Wealth" || table[0][2] != "Growth" {
		t.Errorf("StatsMarkdown() header = %q", table[0])
	}
	want := []string{"2025-02-05", "$1,100.00", "$100.00", "10.00%"}
	for i, w := range want {
		if table[2][i] != w {
			t.Errorf("StatsMarkdown() row 2 cell %d = %q, want %q", i, table[2][i], w)
		}
	}
	if table[1][2] != "-" {
		t.Errorf("StatsMarkdown() first growth = %q, want %q", table[1][2], "-")
	}
}

func TestStatsMarkdown_Empty(t *testing.T) {
	p, err := wealth.ComputeStats(nil)
	if err != nil {
		t.Fatalf("ComputeStats() unexpected error: %v", err)
	}
	got := parse(t, StatsMarkdown(p, "USD"))
	if len(got.tables) != 0 {
		t.Errorf("StatsMarkdown() of an empty panel got %d tables, want 0", len(got.tables))
	}
}

func TestChartMarkdown(t *testing.T) {
	p, err := wealth.ComputeStats(monthly(1000, 1100, 1210))
	if err != nil {
		t.Fatalf("ComputeStats() unexpected error: %v", err)
	}
	c, err := p.Chart(wealth.ChartRelative)
	if err != nil {
		t.Fatalf("Chart() unexpected error: %v", err)
	}

	got := parse(t, ChartMarkdown(c, "USD"))
	if len(got.tables) != 1 || len(got.tables[0]) != 4 {
		t.Fatalf("ChartMarkdown() = %v, want a table of header + 3 rows", got.tables)
	}
	if header := got.tables[0][0]; len(header) != 5 || header[1] != "Growth %" {
		t.Errorf("ChartMarkdown() header = %q", header)
	}
	if cell := got.tables[0][3][1]; cell != "10.00%" {
		t.Errorf("ChartMarkdown() last growth = %q, want 10.00%%", cell)
	}
}

func TestGoalMarkdown(t *testing.T) {
	p, err := wealth.ComputeStats(monthly(1000, 1100, 1210))
	if err != nil {
		t.Fatalf("ComputeStats() unexpected error: %v", err)
	}
	g, err := wealth.TrackGoal(p, date.New(2025, time.January, 5), 1200)
	if err != nil {
		t.Fatalf("TrackGoal() unexpected error: %v", err)
	}

	got := parse(t, GoalMarkdown(g, "USD"))
	if len(got.tables) != 2 {
		t.Fatalf("GoalMarkdown() got %d tables, want 2", len(got.tables))
	}
	if cell := got.tables[0][0][1]; cell != "$2,200.00" {
		t.Errorf("GoalMarkdown() target = %q, want $2,200.00", cell)
	}
	tracking := got.tables[1]
	if len(tracking) != wealth.GoalMonths+2 {
		t.Errorf("GoalMarkdown() tracking got %d rows, want %d", len(tracking), wealth.GoalMonths+2)
	}
	// Month 1: target 1100, realized 1100.
	want := []string{"1", "2025-02-05", "$1,100.00", "$1,100.00"}
	for i, w := range want {
		if tracking[2][i] != w {
			t.Errorf("GoalMarkdown() month 1 cell %d = %q, want %q", i, tracking[2][i], w)
		}
	}
}

func TestPivotMarkdown(t *testing.T) {
	l := wealth.NewLedger("USD")
	for _, e := range []wealth.Entry{
		{Date: date.New(2025, time.January, 5), Institution: "Bank", Amount: wealth.M(600, "USD")},
		{Date: date.New(2025, time.January, 5), Institution: "Broker", Amount: wealth.M(400, "USD")},
		{Date: date.New(2025, time.February, 5), Institution: "Bank", Amount: wealth.M(700, "USD")},
	} {
		if _, err := l.Append(e); err != nil {
			t.Fatalf("Append() unexpected error: %v", err)
		}
	}

	got := parse(t, PivotMarkdown(l.Pivot(), "USD"))
	want := [][]string{
		{"Date", "Bank", "Broker", "Total"},
		{"2025-01-05", "$600.00", "$400.00", "$1,000.00"},
		{"2025-02-05", "$700.00", "-", "$700.00"},
	}
	if len(got.tables) != 1 {
		t.Fatalf("PivotMarkdown() got %d tables, want 1", len(got.tables))
	}
	for i := range want {
		if strings.Join(got.tables[0][i], "|") != strings.Join(want[i], "|") {
			t.Errorf("PivotMarkdown() row %d = %q, want %q", i, got.tables[0][i], want[i])
		}
	}

	balances, err := l.BalancesOn(date.New(2025, time.January, 5))
	if err != nil {
		t.Fatalf("BalancesOn() unexpected error: %v", err)
	}
	got = parse(t, BalancesMarkdown(date.New(2025, time.January, 5), balances, "USD"))
	if last := got.tables[0][len(got.tables[0])-1]; last[1] != "$1,000.00" {
		t.Errorf("BalancesMarkdown() total = %q, want $1,000.00", last[1])
	}
}

func TestScheduleMarkdown(t *testing.T) {
	s := selic.Schedule{
		{From: date.New(2025, 5, 8), To: date.New(2025, 6, 18), Rate: 14.65},
		{From: date.New(2025, 6, 19), To: date.New(2025, 7, 30), Rate: 14.9},
	}
	got := parse(t, ScheduleMarkdown(s))
	if len(got.tables) != 1 || len(got.tables[0]) != 3 {
		t.Fatalf("ScheduleMarkdown() = %v, want a table of header + 2 rows", got.tables)
	}
	if row := got.tables[0][1]; row[0] != "2025-06-19" || row[2] != "14.90%" {
		t.Errorf("ScheduleMarkdown() first row = %q, want the latest period", row)
	}
}

func TestRenderPlan(t *testing.T) {
	p := wealth.NewPlan(wealth.PlanInput{Salary: 10000, Expenses: 6000, Rate: 12, StartWealth: 100000, Goal: 70000})
	out := RenderPlan(p, "USD")

	got := parse(t, out)
	wantHeadings := []string{"Savings Plan", "Income", "Potential", "Goal"}
	if strings.Join(got.headings, ",") != strings.Join(wantHeadings, ",") {
		t.Errorf("RenderPlan() headings = %q, want %q", got.headings, wantHeadings)
	}
	if len(got.tables) != 3 {
		t.Fatalf("RenderPlan() got %d tables, want 3", len(got.tables))
	}
	if savings := got.tables[0][3]; savings[1] != "$4,000.00" || savings[2] != "$48,000.00" {
		t.Errorf("RenderPlan() savings = %q", savings)
	}
	if total := got.tables[1][3]; total[1] != "$60,000.00" {
		t.Errorf("RenderPlan() total potential = %q, want $60,000.00", total[1])
	}
	if !strings.Contains(out, "exceeds the potential by +$10,000.00") {
		t.Errorf("RenderPlan() does not say the goal exceeds the potential:\n%s", out)
	}
}
