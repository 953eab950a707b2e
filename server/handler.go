package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/etnz/wealth"
	"github.com/etnz/wealth/date"
	"github.com/etnz/wealth/selic"
	"github.com/rs/zerolog"
)

// maxBodySize limits the size of uploaded ledgers.
const maxBodySize = 8 << 20

// errBadQuery is returned for missing or invalid query parameters.
var errBadQuery = errors.New("invalid query")

// panels is what is computed once per ledger.
type panels struct {
	ledger *wealth.Ledger
	stats  *wealth.StatsPanel
}

// Handler serves the API endpoints.
type Handler struct {
	currency string
	rates    selic.Fetcher
	cache    *lruCache[*panels]
}

// NewHandler returns a handler for ledgers in currency, with up to cacheSize ledgers kept decoded.
func NewHandler(currency string, rates selic.Fetcher, cacheSize int) *Handler {
	return &Handler{currency: currency, rates: rates, cache: newLRUCache[*panels](cacheSize)}
}

// Health reports that the server is up.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok")
}

// Stats responds with the statistics of the ledger in the request body.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	p, err := h.load(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, statsResponse{
		Currency: h.currency,
		Columns:  p.stats.Columns(),
		Rows:     p.stats.Rows(),
		Charts:   p.stats.Charts(),
	})
}

// Goal responds with the goal panel of the ledger in the request body.
func (h *Handler) Goal(w http.ResponseWriter, r *http.Request) {
	start, err := queryDate(r, "start")
	if err != nil {
		writeError(w, r, err)
		return
	}
	target, err := queryFloat(r, "target")
	if err != nil {
		writeError(w, r, err)
		return
	}
	p, err := h.load(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	g, err := wealth.TrackGoal(p.stats, start, target)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, goalResponse{
		Currency:  h.currency,
		GoalPanel: g,
		Columns:   g.Columns(),
		Charts:    g.Charts(),
	})
}

// Institutions responds with the balances by institution, or on the date in the query.
func (h *Handler) Institutions(w http.ResponseWriter, r *http.Request) {
	p, err := h.load(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !r.URL.Query().Has("date") {
		writeJSON(w, r, http.StatusOK, p.ledger.Pivot())
		return
	}
	on, err := queryDate(r, "date")
	if err != nil {
		writeError(w, r, err)
		return
	}
	balances, err := p.ledger.BalancesOn(on)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, balancesResponse{Date: on, Currency: h.currency, Balances: balances})
}

// Plan responds with the savings plan starting from the wealth in the ledger.
func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	var in wealth.PlanInput
	start, err := queryDate(r, "start")
	if err != nil {
		writeError(w, r, err)
		return
	}
	for name, v := range map[string]*float64{"target": &in.Goal, "salary": &in.Salary, "expenses": &in.Expenses} {
		if *v, err = queryFloat(r, name); err != nil {
			writeError(w, r, err)
			return
		}
	}
	if r.URL.Query().Has("rate") {
		rate, err := queryFloat(r, "rate")
		if err != nil {
			writeError(w, r, err)
			return
		}
		in.Rate = wealth.Percent(rate)
	}

	p, err := h.load(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if _, in.StartWealth, err = p.stats.Anchor(start); err != nil {
		writeError(w, r, err)
		return
	}
	if !r.URL.Query().Has("rate") {
		if in.Rate, err = h.rateOn(r, start); err != nil {
			writeError(w, r, err)
			return
		}
	}
	if err := in.Validate(); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, wealth.NewPlan(in))
}

// Selic responds with the SELIC history, or the rate on the date in the query.
func (h *Handler) Selic(w http.ResponseWriter, r *http.Request) {
	if !r.URL.Query().Has("date") {
		s, err := h.rates.Fetch(r.Context())
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", errUpstream, err))
			return
		}
		writeJSON(w, r, http.StatusOK, s)
		return
	}
	on, err := queryDate(r, "date")
	if err != nil {
		writeError(w, r, err)
		return
	}
	rate, err := h.rateOn(r, on)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, rateResponse{Date: on, Rate: rate})
}

// errUpstream is returned when the SELIC rate cannot be fetched.
var errUpstream = errors.New("rate service unavailable")

func (h *Handler) rateOn(r *http.Request, on date.Date) (wealth.Percent, error) {
	s, err := h.rates.Fetch(r.Context())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errUpstream, err)
	}
	return s.Rate(on)
}

// load decodes the ledger in the request body and computes its statistics, or returns them
// from the cache.
func (h *Handler) load(r *http.Request) (*panels, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read body: %w", errBadQuery, err)
	}
	if len(body) > maxBodySize {
		return nil, fmt.Errorf("%w: ledger larger than %d bytes", errBadQuery, maxBodySize)
	}

	key := bodyKey(h.currency, body)
	if p, ok := h.cache.Get(key); ok {
		zerolog.Ctx(r.Context()).Debug().Str("key", key).Msg("ledger cache hit")
		return p, nil
	}

	l, err := wealth.DecodeLedger(bytes.NewReader(body), h.currency)
	if err != nil {
		return nil, err
	}
	stats, err := wealth.ComputeStats(l.Wealth())
	if err != nil {
		return nil, err
	}
	p := &panels{ledger: l, stats: stats}
	h.cache.Set(key, p)
	return p, nil
}

func queryDate(r *http.Request, name string) (date.Date, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return date.Date{}, fmt.Errorf("%w: missing %q", errBadQuery, name)
	}
	on, err := date.Parse(s)
	if err != nil {
		return date.Date{}, fmt.Errorf("%w: %w", errBadQuery, err)
	}
	return on, nil
}

func queryFloat(r *http.Request, name string) (float64, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, fmt.Errorf("%w: missing %q", errBadQuery, name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %q: %w", errBadQuery, name, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a finite number: %s", errBadQuery, name, s)
	}
	return v, nil
}

// statusOf maps errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, wealth.ErrMalformedLedger),
		errors.Is(err, wealth.ErrMalformedSeries),
		errors.Is(err, wealth.ErrEmptySeries):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errUpstream):
		return http.StatusBadGateway
	case errors.Is(err, errBadQuery),
		errors.Is(err, wealth.ErrStartOutOfRange),
		errors.Is(err, wealth.ErrUnknownDate),
		errors.Is(err, wealth.ErrInvalidGoal),
		errors.Is(err, wealth.ErrInvalidPlan),
		errors.Is(err, selic.ErrNoRate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	logger := zerolog.Ctx(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		logger.Debug().Err(err).Int("status", status).Msg("request rejected")
	}
	writeJSON(w, r, status, errorResponse{Error: err.Error()})
}

// writeJSON encodes v before sending status, so that an encoding failure is reported as an
// internal error instead of a truncated response.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
		status = http.StatusInternalServerError
		buf.Reset()
		json.NewEncoder(&buf).Encode(errorResponse{Error: "failed to encode response"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		zerolog.Ctx(r.Context()).Debug().Err(err).Msg("failed to write response")
	}
}
