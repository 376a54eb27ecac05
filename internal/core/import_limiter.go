package core

// import_limiter.go serializes import passes within one process.
//
// A pass wipes and reloads every table, so two passes interleaving would
// leave tables holding a mix of both workbooks. The limiter is a one-slot
// semaphore: a second pass waits up to maxWait for the first to finish
// before failing with ErrImportInProgress.

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrImportInProgress is returned when a pass is already running and the
// wait timeout expires.
var ErrImportInProgress = errors.New("another import is in progress")

// DefaultImportWait is how long a pass waits for the running one to finish.
const DefaultImportWait = 30 * time.Second

// ImportLimiter admits one import pass at a time.
type ImportLimiter struct {
	slot    chan struct{}
	maxWait time.Duration
	running atomic.Bool
}

// NewImportLimiter creates a limiter whose waiters give up after maxWait.
func NewImportLimiter(maxWait time.Duration) *ImportLimiter {
	if maxWait <= 0 {
		maxWait = DefaultImportWait
	}
	return &ImportLimiter{
		slot:    make(chan struct{}, 1),
		maxWait: maxWait,
	}
}

// Acquire takes the import slot, waiting up to maxWait.
// The caller MUST call Release when the pass completes (use defer).
func (l *ImportLimiter) Acquire(ctx context.Context) error {
	timer := time.NewTimer(l.maxWait)
	defer timer.Stop()

	select {
	case l.slot <- struct{}{}:
		l.running.Store(true)
		return nil
	case <-timer.C:
		return ErrImportInProgress
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryAcquire takes the slot without blocking and reports whether it did.
func (l *ImportLimiter) TryAcquire() bool {
	select {
	case l.slot <- struct{}{}:
		l.running.Store(true)
		return true
	default:
		return false
	}
}

// Release frees the slot. Must be called exactly once per successful acquire.
func (l *ImportLimiter) Release() {
	l.running.Store(false)
	<-l.slot
}

// Running reports whether a pass currently holds the slot.
func (l *ImportLimiter) Running() bool {
	return l.running.Load()
}
