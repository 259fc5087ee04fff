package session

import "time"

// TickSource delivers ticks until stopped.
type TickSource interface {
	C() <-chan time.Time
	Stop()
}

// IntervalTicker is a TickSource backed by time.Ticker.
type IntervalTicker struct {
	t *time.Ticker
}

func NewIntervalTicker(period time.Duration) TickSource {
	return &IntervalTicker{t: time.NewTicker(period)}
}

func (i *IntervalTicker) C() <-chan time.Time { return i.t.C }

func (i *IntervalTicker) Stop() { i.t.Stop() }
