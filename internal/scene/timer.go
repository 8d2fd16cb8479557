package scene

import "time"

// Timer is an object that fires a callback once after an interval.
// It starts disabled; Start arms it and firing disarms it again.
type Timer struct {
	Base

	Interval time.Duration

	callback func(id ID)
	acc      time.Duration
}

// NewTimer creates a disarmed timer.
func NewTimer(interval time.Duration, callback func(id ID)) *Timer {
	t := &Timer{Interval: interval, callback: callback}
	t.disabled = true
	return t
}

// Start arms the timer from zero.
func (t *Timer) Start() {
	t.acc = 0
	t.Enable()
}

// Stop disarms the timer without firing.
func (t *Timer) Stop() {
	t.acc = 0
	t.Disable()
}

// Running reports whether the timer is armed.
func (t *Timer) Running() bool { return !t.disabled }

// Update accumulates time and fires once the interval is reached.
func (t *Timer) Update(elapsed time.Duration) {
	t.acc += elapsed
	if t.acc < t.Interval {
		return
	}
	t.acc = 0
	t.Disable()
	if t.callback != nil {
		t.callback(t.id)
	}
}
