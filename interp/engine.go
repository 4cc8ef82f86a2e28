package interp

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/time/rate"
)

// Stats is a snapshot of the engine for HUDs and debug overlays.
type Stats struct {
	Enabled             bool
	Frame               Frame
	Applied             int
	Skipped             int
	ConsecutiveFailures int
	Resets              int
}

// Engine wires the keyframe store, the scheduler and the interpolator to the
// host's frame callbacks. All methods must be called from the render thread.
type Engine struct {
	cfg Config

	binds  *Bindings
	store  *Store
	sched  *Scheduler
	interp *Interpolator

	enabled bool

	// DeviceReady, when set, gates rendering on host device state. A false
	// result defers the render pass and applies nothing.
	DeviceReady func() bool

	timing      Timing
	savedTiming TimingState
	timingHeld  bool

	frameFailed bool
	failures    int
	resets      int
	limiter     *rate.Limiter
}

// New returns an enabled engine for the given kinds. specs[i].Kind must be i.
// Accessors are attached with Bind and buffers sized with Allocate.
func New(cfg Config, specs []KindSpec) *Engine {
	def := DefaultConfig()
	if cfg.Step <= 0 {
		cfg.Step = def.Step
	}
	if cfg.TeleportDistSq <= 0 {
		cfg.TeleportDistSq = def.TeleportDistSq
	}
	if cfg.MaxConsecutiveFailures <= 0 {
		cfg.MaxConsecutiveFailures = def.MaxConsecutiveFailures
	}
	if cfg.FailureLogInterval <= 0 {
		cfg.FailureLogInterval = def.FailureLogInterval
	}

	binds := NewBindings(specs)
	store := NewStore(binds, cfg.TeleportDistSq)
	return &Engine{
		cfg:     cfg,
		binds:   binds,
		store:   store,
		sched:   NewScheduler(store, cfg.Step),
		interp:  NewInterpolator(store),
		enabled: true,
		limiter: rate.NewLimiter(rate.Every(cfg.FailureLogInterval), 1),
	}
}

// Bind attaches the accessor for kind k.
func (e *Engine) Bind(k Kind, acc Accessor) {
	e.restore()
	e.binds.Bind(k, acc)
	e.interp.Rebind()
}

// Allocate sizes every buffer. It runs once, at startup.
func (e *Engine) Allocate() {
	e.store.Allocate()
}

// Store exposes the keyframes for diagnostics.
func (e *Engine) Store() *Store {
	return e.store
}

// Delta returns the current interpolated offset of slot i of kind k.
func (e *Engine) Delta(k Kind, i int) (dx, dy float64) {
	return e.interp.Delta(k, i)
}

// Frame returns the scheduler state of the current callback.
func (e *Engine) Frame() Frame {
	return e.sched.Frame()
}

// Enabled reports whether interpolation is switched on.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// SetTeleportDistance changes the teleport threshold, in world units.
func (e *Engine) SetTeleportDistance(d float64) {
	if d <= 0 {
		return
	}
	e.cfg.TeleportDistSq = TeleportDistanceSquared(d)
	e.store.SetTeleportDistSq(e.cfg.TeleportDistSq)
}

// SetEnabled toggles interpolation at runtime. Turning it off restores any
// applied values, clears the buffers and hands frame pacing back to the host.
// Turning it on makes the next callback a first capture.
func (e *Engine) SetEnabled(on bool) {
	if on == e.enabled {
		return
	}
	e.restore()
	e.reset()
	e.enabled = on
	if on {
		e.holdTiming()
	} else {
		e.releaseTiming()
	}
	log.Printf("[interp] interpolation enabled=%v", on)
}

// LoadSession clears all keyframes when a world is loaded.
func (e *Engine) LoadSession() {
	e.restore()
	e.reset()
}

// UnloadSession clears all keyframes when a world is unloaded.
func (e *Engine) UnloadSession() {
	e.restore()
	e.reset()
}

// Activate lets the engine take over the host's frame pacing: variable
// timestep and no vsync, so render callbacks can outrun the simulation.
func (e *Engine) Activate(t Timing) {
	e.releaseTiming()
	e.timing = t
	if e.enabled {
		e.holdTiming()
	}
}

// Deactivate restores the host's original frame pacing verbatim.
func (e *Engine) Deactivate() {
	e.releaseTiming()
	e.timing = nil
}

func (e *Engine) holdTiming() {
	if e.timing == nil || e.timingHeld {
		return
	}
	e.savedTiming = e.timing.Current()
	e.timing.Apply(TimingState{FixedStep: false, TPS: e.savedTiming.TPS, Vsync: false})
	e.timingHeld = true
}

func (e *Engine) releaseTiming() {
	if e.timing == nil || !e.timingHeld {
		return
	}
	e.timing.Apply(e.savedTiming)
	e.timingHeld = false
}

func (e *Engine) active() bool {
	return e.enabled && e.store.allocated
}

// BeforeSimulationStep is called right before the host decides how many
// simulation steps to run, with its residual time accumulator.
func (e *Engine) BeforeSimulationStep(acc time.Duration) {
	if !e.active() {
		return
	}
	if e.interp.Pending() {
		// A render pass was never closed. Stepping on blended values would
		// feed them into the simulation.
		e.fail("simulation step with blended values still applied, restoring")
		e.restore()
	}
	e.sched.BeforeSimulationStep(acc)
}

// AfterSimulationStep is called right after the host ran its steps, with the
// accumulator left over. It performs tick detection and keyframe capture.
func (e *Engine) AfterSimulationStep(acc time.Duration) {
	if !e.active() {
		return
	}
	e.sched.AfterSimulationStep(acc)
}

// ShouldSuppressRender overrides the host's decision to skip this render
// callback. While tracking every callback renders, since each one is a chance
// to show a distinct partial tick.
func (e *Engine) ShouldSuppressRender(hostDefault bool) bool {
	if e.active() && e.sched.Frame().State == Tracking {
		return false
	}
	return hostDefault
}

// BeforeRender applies interpolated transforms for the coming render pass. It
// returns false when the render pass should be deferred.
func (e *Engine) BeforeRender() bool {
	if e.DeviceReady != nil && !e.DeviceReady() {
		return false
	}
	if !e.active() || e.sched.Frame().State != Tracking {
		return true
	}
	if err := e.interp.ApplyAll(e.sched.Frame().T); err != nil {
		e.fail("apply: %v", err)
	}
	return true
}

// AfterRender restores every real transform, whatever the outcome of the
// render pass. The render error is returned unchanged; restore failures are
// logged and counted but never raised.
func (e *Engine) AfterRender(renderErr error) error {
	if err := e.interp.RestoreAll(); err != nil {
		e.fail("restore: %v", err)
	}
	if renderErr != nil {
		e.fail("render: %v", renderErr)
	}
	e.account()
	return renderErr
}

// Render brackets fn with BeforeRender and AfterRender. Restore runs even
// when fn panics, after which the panic continues.
func (e *Engine) Render(fn func() error) (err error) {
	if !e.BeforeRender() {
		return nil
	}
	defer func() {
		r := recover()
		if r != nil {
			err = fmt.Errorf("%w: %v", ErrRenderPanic, r)
		}
		err = e.AfterRender(err)
		if r != nil {
			panic(r)
		}
	}()
	return fn()
}

// Stats returns a snapshot for display.
func (e *Engine) Stats() Stats {
	applied, skipped := e.interp.Counts()
	return Stats{
		Enabled:             e.enabled,
		Frame:               e.sched.Frame(),
		Applied:             applied,
		Skipped:             skipped,
		ConsecutiveFailures: e.failures,
		Resets:              e.resets,
	}
}

func (e *Engine) fail(format string, args ...any) {
	e.frameFailed = true
	if e.limiter.Allow() {
		log.Printf("[interp] "+format, args...)
	}
}

// account closes one render callback and trips the breaker after too many
// failing callbacks in a row.
func (e *Engine) account() {
	if !e.frameFailed {
		e.failures = 0
		return
	}
	e.frameFailed = false
	e.failures++
	if e.failures < e.cfg.MaxConsecutiveFailures {
		return
	}
	log.Printf("[interp] %d consecutive failing frames, dropping to no-keyframe", e.failures)
	e.interp.Discard()
	e.reset()
	e.resets++
	e.failures = 0
}

func (e *Engine) restore() {
	if err := e.interp.RestoreAll(); err != nil {
		e.fail("restore: %v", err)
	}
}

func (e *Engine) reset() {
	e.store.Clear()
	e.sched.Reset()
}
