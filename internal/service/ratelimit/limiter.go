package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Clock abstracts time so the limiter and its callers can be tested with a
// fake. The wall clock is the production implementation.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// RealClock returns the wall clock.
func RealClock() Clock { return realClock{} }

// Limiter spaces outbound provider requests by a minimum interval. A single
// instance is shared by every in-flight fetch; Reserve advances the shared
// slot under the lock, so two concurrent callers can never read the same
// stale timestamp and bypass the spacing.
type Limiter struct {
	mu          sync.Mutex
	clock       Clock
	minInterval time.Duration
	next        time.Time // earliest time the next request may go out
}

// New creates a limiter. A nil clock selects the wall clock.
func New(minInterval time.Duration, clock Clock) *Limiter {
	if clock == nil {
		clock = realClock{}
	}
	return &Limiter{clock: clock, minInterval: minInterval}
}

// Reserve atomically claims the next send slot and returns how long the
// caller must wait before using it. Zero means the slot is immediately due.
func (l *Limiter) Reserve() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	target := l.next
	if target.Before(now) {
		target = now
	}
	l.next = target.Add(l.minInterval)
	return target.Sub(now)
}

// Wait reserves a slot and sleeps until it is due. The context is consulted
// before sleeping only; an abandoned caller simply lets its reservation
// stand.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d := l.Reserve(); d > 0 {
		l.clock.Sleep(d)
	}
	return nil
}

// Clock returns the limiter's time source so collaborators that back off
// between retries share it.
func (l *Limiter) Clock() Clock { return l.clock }
