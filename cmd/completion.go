package cmd

import (
	"github.com/etnz/wealth"
	"github.com/etnz/wealth/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of pft commands and flags.
func Completion() *complete.Command {
	dateFlag := predict.Something
	amountFlag := predict.Something
	topics := complete.PredictFunc(func(string) []string {
		names, _ := docs.GetAllTopics()
		return names
	})

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":      predict.Files("*.yaml"),
			"ledger-file": predict.Files("*.csv"),
			"currency":    predict.Set{"BRL", "EUR", "USD"},
			"raw":         predict.Nothing,
			"v":           predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"stats": {Flags: map[string]complete.Predictor{
				"chart": predict.Set{wealth.ChartAbsolute, wealth.ChartRelative},
			}},
			"goal": {Flags: map[string]complete.Predictor{
				"start":  dateFlag,
				"target": amountFlag,
				"chart":  predict.Set{wealth.ChartFractions, wealth.ChartTargets, wealth.ChartReach},
			}},
			"institutions": {Flags: map[string]complete.Predictor{"d": dateFlag}},
			"plan": {Flags: map[string]complete.Predictor{
				"start":    dateFlag,
				"target":   amountFlag,
				"salary":   amountFlag,
				"expenses": amountFlag,
				"rate":     amountFlag,
			}},
			"selic":    {Flags: map[string]complete.Predictor{"d": dateFlag}},
			"fmt":      {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
			"serve":    {Flags: map[string]complete.Predictor{"addr": predict.Something}},
			"assist":   {Flags: map[string]complete.Predictor{"model": predict.Something}},
			"topic":    {Args: topics},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}
