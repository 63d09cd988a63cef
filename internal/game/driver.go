package game

import "time"

// TickInterval is the stock simulation rate: 30 logical ticks per second.
const TickInterval = time.Second / 30

// Driver paces the physics at a fixed logical rate regardless of wall-clock
// jitter. Elapsed time folds into an accumulator; each time the accumulator
// exceeds one interval a step runs and the interval is subtracted (not
// zeroed), so surplus carries over instead of drifting. When no step is due
// the driver sleeps half an interval rather than spinning.
type Driver struct {
	Interval time.Duration
	Step     func()

	now   func() time.Time
	sleep func(time.Duration)

	last    time.Time
	pending time.Duration
}

// NewDriver builds a driver on the real clock.
func NewDriver(interval time.Duration, step func()) *Driver {
	return &Driver{
		Interval: interval,
		Step:     step,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Run drives steps forever. It never returns.
func (d *Driver) Run() {
	d.last = d.now()
	for {
		d.advance(d.now())
	}
}

// advance folds the time since the previous call into the accumulator, then
// either runs one step or sleeps. At most one step runs per call; a large
// gap catches up across consecutive calls.
func (d *Driver) advance(now time.Time) {
	d.pending += now.Sub(d.last)
	d.last = now
	if d.pending > d.Interval {
		d.Step()
		d.pending -= d.Interval
	} else {
		d.sleep(d.Interval / 2)
	}
}
