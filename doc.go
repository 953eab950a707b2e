// Package wealth computes the evolution of a personal wealth over time and tracks it against a
// savings goal.
//
// The input is a ledger of account balances, one row per date and financial institution,
// usually exported from a spreadsheet as CSV. The package provides:
//   - Ledger Management: decoding and validating the balance ledger, summing balances by date
//     into a wealth Series, and pivoting balances by institution.
//   - Statistics: ComputeStats derives growth, moving averages, rolling window evolutions,
//     daily gains and cumulative differences from a wealth Series.
//   - Goal Tracking: TrackGoal projects a linear 12 months savings goal from an anchor and
//     compares it to the realized wealth, month by month.
//   - Planning: NewPlan estimates the yearly savings potential from income, expenses and an
//     interest rate.
//
// All computations are pure functions over immutable inputs. Undefined cells (not enough
// history, division by zero) are represented by a Null Value, never by an error.
//
// This package serves as the foundational logic for the `pft` command-line tool and its HTTP
// API.
package wealth
