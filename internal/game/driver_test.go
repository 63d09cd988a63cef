package game

import (
	"testing"
	"time"
)

// testDriver wires a driver to a fake clock: advance is fed fabricated
// times and sleeps are recorded instead of taken.
func testDriver(interval time.Duration) (*Driver, *int, *[]time.Duration) {
	steps := 0
	var slept []time.Duration
	d := &Driver{
		Interval: interval,
		Step:     func() { steps++ },
		sleep:    func(v time.Duration) { slept = append(slept, v) },
	}
	return d, &steps, &slept
}

func TestDriver_StepRunsWhenIntervalElapses(t *testing.T) {
	d, steps, _ := testDriver(10 * time.Millisecond)
	t0 := time.Unix(0, 0)
	d.last = t0
	d.advance(t0.Add(11 * time.Millisecond))
	if *steps != 1 {
		t.Fatalf("expected 1 step, got %d", *steps)
	}
}

func TestDriver_SleepsHalfIntervalWhenIdle(t *testing.T) {
	d, steps, slept := testDriver(10 * time.Millisecond)
	t0 := time.Unix(0, 0)
	d.last = t0
	d.advance(t0.Add(3 * time.Millisecond))
	if *steps != 0 {
		t.Fatalf("expected no step, got %d", *steps)
	}
	if len(*slept) != 1 || (*slept)[0] != 5*time.Millisecond {
		t.Fatalf("expected one half-interval sleep, got %v", *slept)
	}
}

// Surplus past one interval is kept, not discarded, so irregular wall-clock
// deltas still average out to the fixed rate.
func TestDriver_SurplusCarriesOver(t *testing.T) {
	d, steps, _ := testDriver(10 * time.Millisecond)
	t0 := time.Unix(0, 0)
	d.last = t0
	now := t0.Add(25 * time.Millisecond)
	d.advance(now) // pending 25 -> step, 15 left
	d.advance(now) // pending 15 -> step, 5 left
	if *steps != 2 {
		t.Fatalf("expected 2 steps from one large delta, got %d", *steps)
	}
	d.advance(now) // pending 5 -> idle
	if *steps != 2 {
		t.Fatalf("expected surplus below one interval to idle, got %d steps", *steps)
	}
	if d.pending != 5*time.Millisecond {
		t.Fatalf("expected 5ms left pending, got %v", d.pending)
	}
}

func TestDriver_OneStepPerCall(t *testing.T) {
	d, steps, _ := testDriver(10 * time.Millisecond)
	t0 := time.Unix(0, 0)
	d.last = t0
	d.advance(t0.Add(100 * time.Millisecond))
	if *steps != 1 {
		t.Fatalf("a single advance should step at most once, got %d", *steps)
	}
}

func TestNewDriver_UsesRealClock(t *testing.T) {
	d := NewDriver(TickInterval, func() {})
	if d.now == nil || d.sleep == nil {
		t.Fatal("real clock hooks not set")
	}
	if d.Interval != time.Second/30 {
		t.Fatalf("unexpected interval %v", d.Interval)
	}
}
