// Package sim provides the pluggable latency and failure injection that
// makes the in-memory store behave like a remote backend.
package sim

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Policy decides how long each facade operation appears to take and whether
// a checkout hits a transient infrastructure failure. Swapping in a
// deterministic implementation removes all randomness from tests.
type Policy interface {
	// Wait blocks for the simulated round-trip time. It returns early with
	// the context error if the context is cancelled.
	Wait(ctx context.Context) error
	// CheckoutFailure reports whether the next checkout should fail with a
	// transient network error, independent of any balance check.
	CheckoutFailure() bool
}

// Network simulates a flaky remote API: uniformly random latency within
// [minDelay, maxDelay] and a fixed checkout failure probability.
type Network struct {
	minDelay    time.Duration
	maxDelay    time.Duration
	failureRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewNetwork returns a Network policy with its own seeded RNG.
func NewNetwork(minDelay, maxDelay time.Duration, failureRate float64) *Network {
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &Network{
		minDelay:    minDelay,
		maxDelay:    maxDelay,
		failureRate: failureRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (n *Network) delay() time.Duration {
	n.mu.Lock()
	defer n.mu.Unlock()
	spread := n.maxDelay - n.minDelay
	if spread <= 0 {
		return n.minDelay
	}
	return n.minDelay + time.Duration(n.rng.Int63n(int64(spread)))
}

func (n *Network) Wait(ctx context.Context) error {
	d := n.delay()
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *Network) CheckoutFailure() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.rng.Float64() < n.failureRate
}

// Instant resolves every operation immediately and never injects failures.
type Instant struct{}

func (Instant) Wait(ctx context.Context) error { return ctx.Err() }
func (Instant) CheckoutFailure() bool          { return false }
