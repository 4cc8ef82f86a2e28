package interp

import "time"

// State is the scheduler's tracking state.
type State uint8

const (
	// NoKeyframe means nothing has been captured; entities render as they are.
	NoKeyframe State = iota
	// Tracking means at least one step has been captured and blending is live.
	Tracking
)

func (s State) String() string {
	if s == Tracking {
		return "tracking"
	}
	return "no-keyframe"
}

// Frame is what the scheduler hands to the interpolator and the host after
// every simulation callback.
type Frame struct {
	State State
	// T is the blend fraction between Begin and End, in [0, 1].
	T float64
	// Partial is true when no simulation step completed this callback.
	Partial bool
	// TickCount counts full ticks observed since the last reset.
	TickCount uint64
}

// Scheduler detects, once per render callback, whether a simulation step ran
// and drives the store accordingly.
type Scheduler struct {
	store *Store
	step  time.Duration

	before time.Duration
	frame  Frame
}

// NewScheduler returns a scheduler in NoKeyframe state.
func NewScheduler(store *Store, step time.Duration) *Scheduler {
	if step <= 0 {
		step = time.Second / 60
	}
	return &Scheduler{store: store, step: step, frame: Frame{Partial: true}}
}

// Step returns the configured simulation step duration.
func (s *Scheduler) Step() time.Duration {
	return s.step
}

// BeforeSimulationStep records the host's residual accumulator just before it
// decides how many steps to run.
func (s *Scheduler) BeforeSimulationStep(acc time.Duration) {
	s.before = acc
}

// AfterSimulationStep re-reads the accumulator, decides between a full and a
// partial tick, captures a keyframe on full ticks and recomputes T.
func (s *Scheduler) AfterSimulationStep(acc time.Duration) Frame {
	full := acc < s.before || acc >= s.step
	if s.frame.State == NoKeyframe {
		// Nothing to blend from yet, so the first callback always captures.
		full = true
	}

	if full {
		if s.frame.State == NoKeyframe {
			s.store.CaptureEnd()
			s.store.CopyEndToBegin()
			s.frame.State = Tracking
		} else {
			s.store.ShiftToBegin()
			s.store.CaptureEnd()
		}
		s.frame.TickCount++
	}

	s.frame.Partial = !full
	s.frame.T = Clamp01(float64(acc) / float64(s.step))
	s.before = acc
	return s.frame
}

// Frame returns the state computed by the last AfterSimulationStep.
func (s *Scheduler) Frame() Frame {
	return s.frame
}

// Reset drops back to NoKeyframe. The next callback becomes a first capture.
func (s *Scheduler) Reset() {
	s.before = 0
	s.frame = Frame{Partial: true}
}
