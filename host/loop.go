// Package host runs a fixed step simulation under a variable rate render
// callback and exposes the points where a render interpolator hooks in.
package host

import (
	"errors"
	"fmt"
	"time"
)

// ErrRenderPanic wraps a panic raised while drawing.
var ErrRenderPanic = errors.New("host: render panicked")

// Hooks is called by the loop around simulation and rendering.
type Hooks interface {
	// BeforeSimulationStep receives the accumulator before any step runs.
	BeforeSimulationStep(acc time.Duration)
	// AfterSimulationStep receives the accumulator left after stepping.
	AfterSimulationStep(acc time.Duration)
	// ShouldSuppressRender may override the loop's decision to skip drawing.
	ShouldSuppressRender(hostDefault bool) bool
	// BeforeRender returns false to defer the render pass.
	BeforeRender() bool
	// AfterRender runs after every render pass that BeforeRender allowed,
	// with its error, and returns the error to report.
	AfterRender(err error) error
}

// Config holds the loop's pacing.
type Config struct {
	Step             time.Duration
	MaxStepsPerFrame int
	MaxFrameTime     time.Duration
}

// Stats counts what the loop did, for the HUD.
type Stats struct {
	Steps      uint64
	Frames     uint64
	Suppressed uint64
	Deferred   uint64
	// Lagging is true when the last update left a full step unconsumed.
	Lagging     bool
	Accumulator time.Duration
}

// Loop is a fixed step accumulator driven once per host update.
type Loop struct {
	cfg   Config
	clock Clock
	hooks Hooks

	started bool
	last    time.Time
	acc     time.Duration
	stepped bool

	stats Stats
}

// NewLoop returns a loop reading time from clock.
func NewLoop(cfg Config, clock Clock) *Loop {
	if cfg.Step <= 0 {
		cfg.Step = time.Second / 60
	}
	if cfg.MaxStepsPerFrame <= 0 {
		cfg.MaxStepsPerFrame = 1
	}
	if cfg.MaxFrameTime <= 0 {
		cfg.MaxFrameTime = 250 * time.Millisecond
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{cfg: cfg, clock: clock}
}

// SetHooks installs h. A nil h removes the hooks.
func (l *Loop) SetHooks(h Hooks) {
	l.hooks = h
}

// Step returns the simulation step duration.
func (l *Loop) Step() time.Duration {
	return l.cfg.Step
}

// Stats returns the loop counters.
func (l *Loop) Stats() Stats {
	s := l.stats
	s.Accumulator = l.acc
	return s
}

// Reset drops accumulated time, as after loading a new session.
func (l *Loop) Reset() {
	l.started = false
	l.acc = 0
	l.stepped = false
	l.stats.Lagging = false
}

// Update advances the clock and runs as many steps as the accumulated time
// allows, up to MaxStepsPerFrame. A step error stops stepping for this update
// and is returned after the hooks have seen the accumulator.
func (l *Loop) Update(step func() error) error {
	now := l.clock.Now()
	if !l.started {
		l.started = true
		l.last = now
	}
	dt := now.Sub(l.last)
	l.last = now
	if dt < 0 {
		dt = 0
	}
	if dt > l.cfg.MaxFrameTime {
		dt = l.cfg.MaxFrameTime
	}
	l.acc += dt

	if l.hooks != nil {
		l.hooks.BeforeSimulationStep(l.acc)
	}

	var err error
	for n := 0; l.acc >= l.cfg.Step && n < l.cfg.MaxStepsPerFrame; n++ {
		if err = step(); err != nil {
			err = fmt.Errorf("simulation step: %w", err)
			break
		}
		l.acc -= l.cfg.Step
		l.stepped = true
		l.stats.Steps++
	}
	l.stats.Lagging = l.acc >= l.cfg.Step

	if l.hooks != nil {
		l.hooks.AfterSimulationStep(l.acc)
	}
	return err
}

// Draw runs render unless it is suppressed. Without hooks a render is
// suppressed when no step ran since the previous one, since it would show the
// same state again.
func (l *Loop) Draw(render func() error) error {
	suppress := !l.stepped
	if l.hooks != nil {
		suppress = l.hooks.ShouldSuppressRender(suppress)
	}
	if suppress {
		l.stats.Suppressed++
		return nil
	}
	if l.hooks != nil && !l.hooks.BeforeRender() {
		l.stats.Deferred++
		return nil
	}

	err := safeRender(render)
	if l.hooks != nil {
		err = l.hooks.AfterRender(err)
	}
	l.stepped = false
	l.stats.Frames++
	return err
}

func safeRender(render func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRenderPanic, r)
		}
	}()
	return render()
}
