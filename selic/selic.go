// Package selic fetches the history of the SELIC rate, the Brazilian central bank base rate.
//
// The rate is only used to suggest a default interest rate for savings plans.
package selic

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/wealth"
	"github.com/etnz/wealth/date"
	"github.com/rs/zerolog"
)

// DefaultURL is the central bank service listing every SELIC period.
const DefaultURL = "https://bcb.gov.br/api/servico/sitebcb/historicotaxasjuros"

// ErrNoRate is returned when no period covers a date.
var ErrNoRate = errors.New("no SELIC rate on that date")

// Period is a range of days during which the SELIC rate was constant.
type Period struct {
	From date.Date      `json:"from"`
	To   date.Date      `json:"to"`
	Rate wealth.Percent `json:"rate"` // effective annualized rate
}

// Schedule is the list of SELIC periods, sorted by start date.
type Schedule []Period

// RateOn returns the rate in effect on day.
func (s Schedule) RateOn(day date.Date) (wealth.Percent, bool) {
	// The first matching period wins: consecutive periods share their boundary day.
	for _, p := range s {
		if (date.Range{From: p.From, To: p.To}).Contains(day) {
			return p.Rate, true
		}
	}
	return 0, false
}

// Rate is like RateOn but returns ErrNoRate when there is no rate on day.
func (s Schedule) Rate(day date.Date) (wealth.Percent, error) {
	r, ok := s.RateOn(day)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoRate, day)
	}
	return r, nil
}

// Client retrieves the SELIC schedule.
type Client struct {
	HTTP *http.Client
	URL  string
}

// NewClient returns a client to the central bank service, with responses cached on disk for a day.
func NewClient() *Client {
	return &Client{HTTP: Daily(""), URL: DefaultURL}
}

// Fetch downloads and parses the SELIC schedule.
func (c *Client) Fetch(ctx context.Context) (Schedule, error) {
	client, addr := c.HTTP, c.URL
	if client == nil {
		client = http.DefaultClient
	}
	if addr == "" {
		addr = DefaultURL
	}
	zerolog.Ctx(ctx).Debug().Str("url", addr).Msg("fetching SELIC history")

	var jobj any
	if err := jwget(ctx, client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch SELIC history: %w", err)
	}
	return parseSchedule(jobj)
}

// parseSchedule extracts periods from the service response.
//
//	{
//	    "conteudo": [
//	        {
//	            "DataInicioVigencia": "2025-06-19T00:00:00",
//	            "DataFimVigencia": null,
//	            "TaxaSelicEfetivaAnualizada": 14.9,
//	            ...
//	        },
//	        ...
//	    ]
//	}
//
// The current period has no end date, it ends today.
func parseSchedule(jobj any) (Schedule, error) {
	const path = "$.conteudo"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing SELIC history %q: %w", path, err)
	}
	items, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("error parsing SELIC history %q: not a list %T", path, jval)
	}

	today := date.Today()
	var s Schedule
	var errs error
	for i, item := range items {
		p, err := parsePeriod(item, today)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("period %d: %w", i, err))
			continue
		}
		s = append(s, p)
	}
	if errs != nil {
		return nil, errs
	}
	slices.SortStableFunc(s, func(a, b Period) int { return a.From.Compare(b.From) })
	return s, nil
}

func parsePeriod(item any, today date.Date) (Period, error) {
	var p Period
	obj, ok := item.(map[string]any)
	if !ok {
		return p, fmt.Errorf("not an object %T", item)
	}

	from, ok := obj["DataInicioVigencia"].(string)
	if !ok {
		return p, fmt.Errorf("missing DataInicioVigencia")
	}
	var err error
	if p.From, err = date.Parse(from); err != nil {
		return p, err
	}

	switch to := obj["DataFimVigencia"].(type) {
	case nil:
		p.To = today
	case string:
		if p.To, err = date.Parse(to); err != nil {
			return p, err
		}
	default:
		return p, fmt.Errorf("invalid DataFimVigencia %v", to)
	}

	rate, ok := obj["TaxaSelicEfetivaAnualizada"].(float64)
	if !ok {
		return p, fmt.Errorf("invalid TaxaSelicEfetivaAnualizada %v", obj["TaxaSelicEfetivaAnualizada"])
	}
	p.Rate = wealth.Percent(rate)
	return p, nil
}
