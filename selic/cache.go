package selic

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Fetcher retrieves a SELIC schedule.
type Fetcher interface {
	Fetch(ctx context.Context) (Schedule, error)
}

// Cached memoizes the schedule of a Fetcher for the lifetime of the process.
//
// Concurrent calls share a single fetch. Failures are not memoized, the next call tries again.
type Cached struct {
	fetcher Fetcher
	group   singleflight.Group

	mu       sync.Mutex
	schedule Schedule
}

// NewCached returns a memo around f.
func NewCached(f Fetcher) *Cached { return &Cached{fetcher: f} }

// Fetch returns the memoized schedule, fetching it on first use.
//
// The shared fetch does not stop when ctx is cancelled, other callers may be waiting for it.
// Fetch itself returns ctx.Err() as soon as ctx is done.
func (c *Cached) Fetch(ctx context.Context) (Schedule, error) {
	c.mu.Lock()
	s := c.schedule
	c.mu.Unlock()
	if s != nil {
		return s, nil
	}

	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan("schedule", func() (any, error) {
		s, err := c.fetcher.Fetch(shared)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.schedule = s
		c.mu.Unlock()
		return s, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(Schedule), nil
	}
}
