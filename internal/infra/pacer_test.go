package infra

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestPacerSpacesSequentialCalls(t *testing.T) {
	interval := 30 * time.Millisecond
	p := NewPacer(interval)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := p.Wait(ctx); err != nil {
			t.Fatalf("Wait() error: %v", err)
		}
	}
	elapsed := time.Since(start)

	// First call departs immediately, the next two wait one interval each.
	if min := 2 * interval; elapsed < min {
		t.Errorf("three waits took %v, want >= %v", elapsed, min)
	}
}

func TestPacerSharesBudgetAcrossGoroutines(t *testing.T) {
	interval := 30 * time.Millisecond
	p := NewPacer(interval)
	ctx := context.Background()

	var wg sync.WaitGroup
	start := time.Now()
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := p.Wait(ctx); err != nil {
				t.Errorf("Wait() error: %v", err)
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	if min := 2 * interval; elapsed < min {
		t.Errorf("three concurrent waits took %v, want >= %v", elapsed, min)
	}
}

func TestPacerHonorsCancellation(t *testing.T) {
	p := NewPacer(time.Minute)
	ctx := context.Background()

	// Claim the immediate slot so the next wait must sleep.
	if err := p.Wait(ctx); err != nil {
		t.Fatalf("Wait() error: %v", err)
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()

	start := time.Now()
	err := p.Wait(canceled)
	if err == nil {
		t.Fatal("Wait() expected error after cancellation")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("canceled Wait() took %v, want immediate return", elapsed)
	}
}

func TestPacerZeroIntervalNeverWaits(t *testing.T) {
	p := NewPacer(0)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 100; i++ {
		if err := p.Wait(ctx); err != nil {
			t.Fatalf("Wait() error: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("100 zero-interval waits took %v", elapsed)
	}
}

func TestNilPacerIsSafe(t *testing.T) {
	var p *Pacer
	if err := p.Wait(context.Background()); err != nil {
		t.Errorf("nil pacer Wait() error: %v", err)
	}
	if p.Interval() != 0 {
		t.Errorf("nil pacer Interval() = %v, want 0", p.Interval())
	}
}
