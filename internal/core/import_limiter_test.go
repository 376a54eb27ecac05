package core

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestImportLimiter_AcquireRelease(t *testing.T) {
	limiter := NewImportLimiter(time.Second)
	ctx := context.Background()

	if limiter.Running() {
		t.Error("new limiter reports a running import")
	}

	if err := limiter.Acquire(ctx); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if !limiter.Running() {
		t.Error("Running = false after Acquire")
	}

	limiter.Release()
	if limiter.Running() {
		t.Error("Running = true after Release")
	}

	// The slot is reusable.
	if err := limiter.Acquire(ctx); err != nil {
		t.Fatalf("second Acquire failed: %v", err)
	}
	limiter.Release()
}

func TestImportLimiter_TimesOutWhenBusy(t *testing.T) {
	limiter := NewImportLimiter(100 * time.Millisecond)
	ctx := context.Background()

	if err := limiter.Acquire(ctx); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer limiter.Release()

	start := time.Now()
	err := limiter.Acquire(ctx)
	elapsed := time.Since(start)

	if !errors.Is(err, ErrImportInProgress) {
		t.Errorf("expected ErrImportInProgress, got %v", err)
	}
	if elapsed < 90*time.Millisecond {
		t.Errorf("timeout too fast: %v", elapsed)
	}
}

func TestImportLimiter_OneAtATime(t *testing.T) {
	limiter := NewImportLimiter(5 * time.Second)

	var (
		wg      sync.WaitGroup
		current atomic.Int32
		maxSeen atomic.Int32
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := limiter.Acquire(context.Background()); err != nil {
				t.Errorf("Acquire failed: %v", err)
				return
			}
			defer limiter.Release()

			n := current.Add(1)
			for {
				m := maxSeen.Load()
				if n <= m || maxSeen.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			current.Add(-1)
		}()
	}
	wg.Wait()

	if got := maxSeen.Load(); got != 1 {
		t.Errorf("max concurrent passes = %d, want 1", got)
	}
}

func TestImportLimiter_TryAcquire(t *testing.T) {
	limiter := NewImportLimiter(time.Second)

	if !limiter.TryAcquire() {
		t.Fatal("first TryAcquire should succeed")
	}
	if limiter.TryAcquire() {
		t.Error("second TryAcquire should fail")
	}
	limiter.Release()
	if !limiter.TryAcquire() {
		t.Error("TryAcquire after Release should succeed")
	}
	limiter.Release()
}

func TestImportLimiter_ContextCancellation(t *testing.T) {
	limiter := NewImportLimiter(5 * time.Second)
	if !limiter.TryAcquire() {
		t.Fatal("TryAcquire failed")
	}
	defer limiter.Release()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- limiter.Acquire(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Error("Acquire did not return after context cancellation")
	}
}

func TestImportLimiter_UnblocksWaiter(t *testing.T) {
	limiter := NewImportLimiter(time.Second)
	if !limiter.TryAcquire() {
		t.Fatal("TryAcquire failed")
	}

	acquired := make(chan struct{})
	go func() {
		if err := limiter.Acquire(context.Background()); err != nil {
			t.Errorf("waiting Acquire failed: %v", err)
			return
		}
		close(acquired)
		limiter.Release()
	}()

	time.Sleep(50 * time.Millisecond)
	limiter.Release()

	select {
	case <-acquired:
	case <-time.After(500 * time.Millisecond):
		t.Error("waiter did not acquire after release")
	}
}

func TestImportLimiter_DefaultWait(t *testing.T) {
	if got := NewImportLimiter(0).maxWait; got != DefaultImportWait {
		t.Errorf("maxWait = %v, want %v", got, DefaultImportWait)
	}
}
