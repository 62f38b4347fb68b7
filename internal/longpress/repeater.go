// Package longpress turns a held button into repeated invocations, the
// way quantity steppers behave when pressed and held.
package longpress

import (
	"sync"
	"time"
)

const (
	DefaultDelay    = 300 * time.Millisecond
	DefaultInterval = 80 * time.Millisecond
)

// Mode selects how a press is interpreted
type Mode int

const (
	// ModeRepeat fires OnRepeat on press, then repeatedly once Delay has passed
	ModeRepeat Mode = iota
	// ModeTapOrHold fires OnTap for a short tap released inside the
	// control, and OnRepeat repeatedly once the press outlasts Delay
	ModeTapOrHold
)

// Timer is a scheduled callback that can be cancelled
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks; tests swap in a manual clock
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealClock schedules on the runtime timer
func RealClock() Clock { return realClock{} }

// Options configures a Repeater. Zero durations take the defaults.
type Options struct {
	Delay    time.Duration
	Interval time.Duration
	Mode     Mode
	OnRepeat func()
	OnTap    func()
	Clock    Clock
}

// Repeater drives the callbacks for one pressable control.
//
// Callbacks run while the Repeater's lock is held, so once Release or
// Close returns no further invocation happens. Callbacks must not call
// back into the same Repeater.
type Repeater struct {
	mu   sync.Mutex
	opts Options

	pressed bool
	holding bool
	closed  bool
	gen     uint64

	delay Timer
	tick  Timer
}

// New creates a Repeater
func New(opts Options) *Repeater {
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Clock == nil {
		opts.Clock = RealClock()
	}
	return &Repeater{opts: opts}
}

// Press starts an interaction (pointer-down, touch-start)
func (r *Repeater) Press() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.pressed {
		return
	}
	r.stopLocked()
	r.pressed = true
	r.holding = false
	r.gen++
	gen := r.gen

	if r.opts.Mode == ModeRepeat {
		call(r.opts.OnRepeat)
	}
	r.delay = r.opts.Clock.AfterFunc(r.opts.Delay, func() { r.onDelay(gen) })
}

// Release ends the interaction (pointer-up, pointer-leave, touch-end).
// inside reports whether the pointer was still over the control.
func (r *Repeater) Release(inside bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.pressed {
		return
	}
	wasHolding := r.holding
	r.stopLocked()
	r.pressed = false
	r.holding = false
	r.gen++

	if r.opts.Mode == ModeTapOrHold && !wasHolding && inside {
		call(r.opts.OnTap)
	}
}

// Pressed reports whether an interaction is in progress
func (r *Repeater) Pressed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pressed
}

// Close cancels everything; later presses are ignored
func (r *Repeater) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()
	r.pressed = false
	r.holding = false
	r.closed = true
	r.gen++
}

func (r *Repeater) onDelay(gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen || !r.pressed {
		return
	}
	r.delay = nil
	r.holding = true

	if r.opts.Mode == ModeTapOrHold {
		call(r.opts.OnRepeat)
	}
	r.scheduleLocked(gen)
}

func (r *Repeater) onTick(gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen || !r.pressed {
		return
	}
	call(r.opts.OnRepeat)
	r.scheduleLocked(gen)
}

func (r *Repeater) scheduleLocked(gen uint64) {
	r.tick = r.opts.Clock.AfterFunc(r.opts.Interval, func() { r.onTick(gen) })
}

func (r *Repeater) stopLocked() {
	if r.delay != nil {
		r.delay.Stop()
		r.delay = nil
	}
	if r.tick != nil {
		r.tick.Stop()
		r.tick = nil
	}
}

func call(f func()) {
	if f != nil {
		f()
	}
}
