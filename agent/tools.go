package agent

import (
	"context"
	"fmt"
	"math"

	"github.com/etnz/wealth"
	"github.com/etnz/wealth/date"
	"github.com/etnz/wealth/renderer"
	"github.com/etnz/wealth/selic"
	"google.golang.org/genai"
)

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, args map[string]any) (string, error)
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }

func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	out, err := f.Func(ctx, args)
	if err != nil {
		return failure(id, f.Decl.Name, err)
	}
	return success(id, f.Decl.Name, out)
}

// Parameter schemas shared by tools.
var (
	dateParam = &genai.Schema{
		Type:        genai.TypeString,
		Description: "A date, formatted as YYYY-MM-DD.",
	}
	amountParam = func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeNumber, Description: desc}
	}
	markdownResponse = &genai.Schema{Type: genai.TypeString, Description: "A markdown document."}
)

func statsTool(l *wealth.Ledger) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Statistics",
			Description: "Statistics returns a table of the wealth on each date of the ledger, with its growth and moving averages.",
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response:    markdownResponse,
		},
		Func: func(ctx context.Context, args map[string]any) (string, error) {
			p, err := wealth.ComputeStats(l.Wealth())
			if err != nil {
				return "", err
			}
			return renderer.StatsMarkdown(p, l.Currency()), nil
		},
	}
}

func goalTool(l *wealth.Ledger) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Goal",
			Description: "Goal tracks month by month the goal of increasing the wealth by an amount in the 12 months after a start date.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"start":  dateParam,
					"target": amountParam("The targeted increase of wealth."),
				},
				Required: []string{"start", "target"},
			},
			Response: markdownResponse,
		},
		Func: func(ctx context.Context, args map[string]any) (string, error) {
			start, err := dateArg(args, "start")
			if err != nil {
				return "", err
			}
			target, err := numberArg(args, "target")
			if err != nil {
				return "", err
			}
			p, err := wealth.ComputeStats(l.Wealth())
			if err != nil {
				return "", err
			}
			g, err := wealth.TrackGoal(p, start, target)
			if err != nil {
				return "", err
			}
			return renderer.GoalMarkdown(g, l.Currency()), nil
		},
	}
}

func institutionsTool(l *wealth.Ledger) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Institutions",
			Description: "Institutions returns the balance of each institution, on every date or on the given date only.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"date": dateParam},
			},
			Response: markdownResponse,
		},
		Func: func(ctx context.Context, args map[string]any) (string, error) {
			if _, ok := args["date"]; !ok {
				return renderer.PivotMarkdown(l.Pivot(), l.Currency()), nil
			}
			on, err := dateArg(args, "date")
			if err != nil {
				return "", err
			}
			balances, err := l.BalancesOn(on)
			if err != nil {
				return "", err
			}
			return renderer.BalancesMarkdown(on, balances, l.Currency()), nil
		},
	}
}

func planTool(l *wealth.Ledger, rates selic.Fetcher) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Plan",
			Description: `Plan estimates how much the wealth can grow in a year from the savings and the interests,
			and compares it to a target. The rate defaults to the SELIC rate on the start date.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"start":    dateParam,
					"target":   amountParam("The targeted increase of wealth in a year."),
					"salary":   amountParam("The net monthly salary."),
					"expenses": amountParam("The monthly expenses."),
					"rate":     amountParam("The yearly interest rate in percent, 13.5 is 13.5%."),
				},
				Required: []string{"start", "target", "salary", "expenses"},
			},
			Response: markdownResponse,
		},
		Func: func(ctx context.Context, args map[string]any) (string, error) {
			start, err := dateArg(args, "start")
			if err != nil {
				return "", err
			}
			var in wealth.PlanInput
			for name, v := range map[string]*float64{"target": &in.Goal, "salary": &in.Salary, "expenses": &in.Expenses} {
				if *v, err = numberArg(args, name); err != nil {
					return "", err
				}
			}
			if _, ok := args["rate"]; ok {
				r, err := numberArg(args, "rate")
				if err != nil {
					return "", err
				}
				in.Rate = wealth.Percent(r)
			} else {
				s, err := rates.Fetch(ctx)
				if err != nil {
					return "", err
				}
				if in.Rate, err = s.Rate(start); err != nil {
					return "", err
				}
			}
			p, err := wealth.ComputeStats(l.Wealth())
			if err != nil {
				return "", err
			}
			if _, in.StartWealth, err = p.Anchor(start); err != nil {
				return "", err
			}
			if err := in.Validate(); err != nil {
				return "", err
			}
			return renderer.RenderPlan(wealth.NewPlan(in), l.Currency()), nil
		},
	}
}

func dateArg(args map[string]any, name string) (date.Date, error) {
	s, ok := args[name].(string)
	if !ok {
		return date.Date{}, fmt.Errorf("argument %q is not a string as expected but %T", name, args[name])
	}
	return date.Parse(s)
}

func numberArg(args map[string]any, name string) (float64, error) {
	switch v := args[name].(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("argument %q is not a finite number: %v", name, v)
		}
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("argument %q is not a number as expected but %T", name, args[name])
	}
}
