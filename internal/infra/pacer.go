// Package infra provides shared infrastructure for the NCBI clients.
package infra

import (
	"context"
	"sync"
	"time"
)

// Pacer spaces outbound requests so the whole process honors the NCBI
// rate policy. All E-utilities calls share one instance: each Wait
// reserves the next departure slot under a mutex, so concurrent tool
// calls queue against one budget instead of sleeping independently.
type Pacer struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time
}

// NewPacer creates a pacer with the given spacing between requests.
// A zero or negative interval disables waiting.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval}
}

// Wait blocks until the caller's reserved departure slot arrives or the
// context is canceled.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.interval <= 0 {
		return nil
	}

	p.mu.Lock()
	now := time.Now()
	at := p.next
	if at.Before(now) {
		at = now
	}
	p.next = at.Add(p.interval)
	p.mu.Unlock()

	delay := time.Until(at)
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Interval reports the configured spacing between requests.
func (p *Pacer) Interval() time.Duration {
	if p == nil {
		return 0
	}
	return p.interval
}
