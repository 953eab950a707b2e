package wealth

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPlan is returned for plan inputs that make no sense, like a negative salary.
var ErrInvalidPlan = errors.New("invalid plan")

// PlanInput holds the parameters of a savings plan.
type PlanInput struct {
	Salary      float64 `json:"salary"`       // net monthly salary
	Expenses    float64 `json:"expenses"`     // monthly expenses
	Rate        Percent `json:"rate"`         // annual interest rate
	StartWealth float64 `json:"start_wealth"` // wealth at the start of the plan, the goal anchor
	Goal        float64 `json:"goal"`         // targeted yearly increase
}

// Validate checks that amounts and rate are finite and not negative.
func (in PlanInput) Validate() error {
	var errs error
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"salary", in.Salary},
		{"expenses", in.Expenses},
		{"rate", float64(in.Rate)},
		{"start wealth", in.StartWealth},
		{"goal", in.Goal},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			errs = errors.Join(errs, fmt.Errorf("%w: %s %v is not a finite number", ErrInvalidPlan, f.name, f.value))
		}
	}
	if in.Salary < 0 {
		errs = errors.Join(errs, fmt.Errorf("%w: negative salary %v", ErrInvalidPlan, in.Salary))
	}
	if in.Expenses < 0 {
		errs = errors.Join(errs, fmt.Errorf("%w: negative expenses %v", ErrInvalidPlan, in.Expenses))
	}
	if in.Rate < 0 {
		errs = errors.Join(errs, fmt.Errorf("%w: negative rate %v", ErrInvalidPlan, in.Rate))
	}
	if in.Goal < 0 {
		errs = errors.Join(errs, fmt.Errorf("%w: negative goal %v", ErrInvalidPlan, in.Goal))
	}
	return errs
}

// Plan estimates how much wealth can grow in a year, from savings and from interests, and
// compares it to a goal.
type Plan struct {
	PlanInput

	AnnualIncome   float64 `json:"annual_income"`
	AnnualExpenses float64 `json:"annual_expenses"`
	AnnualSavings  float64 `json:"annual_savings"`
	MonthlySavings float64 `json:"monthly_savings"`

	// MonthlyRate is the compound monthly equivalent of the annual rate, as a fraction.
	MonthlyRate  float64 `json:"monthly_rate"`
	MonthlyYield float64 `json:"monthly_yield"`
	AnnualYield  float64 `json:"annual_yield"`

	// TotalPotential is the yearly increase that savings and yield make possible.
	TotalPotential float64 `json:"total_potential"`
	// GoalGap is how much the goal exceeds the potential; negative when the goal is within reach.
	GoalGap float64 `json:"goal_gap"`

	EstimatedWealth float64 `json:"estimated_wealth"`
	EstimatedGrowth Value   `json:"estimated_growth"`
}

// NewPlan computes a savings plan.
//
// Interests are computed on the start wealth only: the annual rate applies as is for the
// year, and its compound monthly equivalent gives the monthly yield.
func NewPlan(in PlanInput) Plan {
	p := Plan{PlanInput: in}
	p.AnnualIncome = in.Salary * 12
	p.AnnualExpenses = in.Expenses * 12
	p.AnnualSavings = p.AnnualIncome - p.AnnualExpenses
	p.MonthlySavings = p.AnnualSavings / 12

	rate := in.Rate.Fraction()
	p.MonthlyRate = math.Pow(1+rate, 1.0/12) - 1
	p.MonthlyYield = p.MonthlyRate * in.StartWealth
	p.AnnualYield = rate * in.StartWealth

	p.TotalPotential = p.AnnualSavings + p.AnnualYield
	p.GoalGap = in.Goal - p.TotalPotential

	p.EstimatedWealth = in.StartWealth + in.Goal
	p.EstimatedGrowth = relative(p.EstimatedWealth, in.StartWealth)
	return p
}
