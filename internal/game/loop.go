package game

import "time"

// frameInterval paces the frame ticker, standing in for a display refresh.
const frameInterval = time.Second / 60

// Driver throttles simulation ticks to a fixed interval. It is a two-state
// machine: stopped frames never tick; running frames tick once at least
// the interval has passed since the last accepted tick.
type Driver struct {
	interval time.Duration
	last     time.Time
	running  bool
}

// NewDriver creates a stopped driver ticking every interval.
func NewDriver(interval time.Duration) *Driver {
	return &Driver{interval: interval}
}

// Start moves the driver to running. The next frame ticks immediately.
func (d *Driver) Start() {
	d.running = true
	d.last = time.Time{}
}

// Stop moves the driver to stopped.
func (d *Driver) Stop() {
	d.running = false
}

// Running reports whether the driver is running.
func (d *Driver) Running() bool {
	return d.running
}

// Interval returns the minimum time between ticks.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Frame is called once per frame with the frame timestamp and reports
// whether a tick is due. Frames arriving too early are skipped.
func (d *Driver) Frame(now time.Time) bool {
	if !d.running {
		return false
	}
	if !d.last.IsZero() && now.Sub(d.last) < d.interval {
		return false
	}
	d.last = now
	return true
}
