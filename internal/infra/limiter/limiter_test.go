package limiter

import (
	"context"
	"testing"
	"time"
)

func TestAcquireRelease(t *testing.T) {
	l := New(1, 100)

	release, err := l.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	// Slot is taken, a second acquire must block until release.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := l.Acquire(ctx); err == nil {
		t.Fatal("second Acquire should block while the slot is held")
	}

	release()

	release2, err := l.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
	release2()
}

func TestTryAcquire(t *testing.T) {
	l := New(1, 100)

	release, ok := l.TryAcquire()
	if !ok {
		t.Fatal("TryAcquire on free limiter failed")
	}
	if _, ok := l.TryAcquire(); ok {
		t.Fatal("TryAcquire succeeded while slot was held")
	}
	release()

	release2, ok := l.TryAcquire()
	if !ok {
		t.Fatal("TryAcquire after release failed")
	}
	release2()
}

func TestAcquireCanceledContext(t *testing.T) {
	l := New(1, 0.001)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := l.Acquire(ctx); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
