package server

import (
	"github.com/etnz/wealth"
	"github.com/etnz/wealth/date"
)

type statsResponse struct {
	Currency string            `json:"currency"`
	Columns  []wealth.Column   `json:"columns"`
	Rows     []wealth.StatsRow `json:"rows"`
	Charts   []wealth.Chart    `json:"charts"`
}

type goalResponse struct {
	Currency string `json:"currency"`
	*wealth.GoalPanel
	Columns []wealth.Column `json:"columns"`
	Charts  []wealth.Chart  `json:"charts"`
}

type balancesResponse struct {
	Date     date.Date        `json:"date"`
	Currency string           `json:"currency"`
	Balances []wealth.Balance `json:"balances"`
}

type rateResponse struct {
	Date date.Date      `json:"date"`
	Rate wealth.Percent `json:"rate"`
}

type errorResponse struct {
	Error string `json:"error"`
}
