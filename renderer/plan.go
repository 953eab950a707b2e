package renderer

import "github.com/etnz/wealth"

// planView is the plan with its figures formatted.
type planView struct {
	Salary, Expenses, StartWealth, Goal         string
	AnnualIncome, AnnualExpenses, AnnualSavings string
	MonthlySavings, MonthlyYield, AnnualYield   string
	Rate, MonthlyRate                           string
	TotalPotential, GoalGap                     string
	EstimatedWealth, EstimatedGrowth            string
	Reachable                                   bool
}

// RenderPlan renders a savings plan to a markdown string.
func RenderPlan(p wealth.Plan, currency string) string {
	m := func(v float64) string { return wealth.M(v, currency).String() }
	v := planView{
		Salary:          m(p.Salary),
		Expenses:        m(p.Expenses),
		StartWealth:     m(p.StartWealth),
		Goal:            m(p.Goal),
		AnnualIncome:    m(p.AnnualIncome),
		AnnualExpenses:  m(p.AnnualExpenses),
		AnnualSavings:   m(p.AnnualSavings),
		MonthlySavings:  m(p.MonthlySavings),
		MonthlyYield:    m(p.MonthlyYield),
		AnnualYield:     m(p.AnnualYield),
		Rate:            p.Rate.String(),
		MonthlyRate:     wealth.Ratio(p.MonthlyRate).String(),
		TotalPotential:  m(p.TotalPotential),
		GoalGap:         wealth.M(p.GoalGap, currency).SignedString(),
		EstimatedWealth: m(p.EstimatedWealth),
		EstimatedGrowth: wealth.FormatRatio(p.EstimatedGrowth),
		Reachable:       p.GoalGap <= 0,
	}
	partials := map[string]string{
		"plan_income":    "plan_income.md",
		"plan_potential": "plan_potential.md",
		"plan_goal":      "plan_goal.md",
	}
	return renderTemplate("plan", "plan.md", partials, v)
}
