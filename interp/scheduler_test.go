package interp

import (
	"testing"
	"time"
)

func newTestScheduler() (*Scheduler, *fakeKind) {
	specs := testSpecs()
	binds := NewBindings(specs)
	mob := newFakeKind(specs[kMob].Max, specs[kMob].Stride())
	binds.Bind(kMob, mob)
	store := NewStore(binds, 100*100)
	store.Allocate()
	return NewScheduler(store, 10*time.Millisecond), mob
}

func TestSchedulerFirstCallbackCaptures(t *testing.T) {
	s, mob := newTestScheduler()
	mob.spawn(0, 3, 4, 0)

	s.BeforeSimulationStep(2 * time.Millisecond)
	f := s.AfterSimulationStep(4 * time.Millisecond)

	if f.State != Tracking {
		t.Fatalf("state = %v, want tracking", f.State)
	}
	if f.Partial {
		t.Fatal("first callback reported as partial tick")
	}
	if f.TickCount != 1 {
		t.Fatalf("TickCount = %d, want 1", f.TickCount)
	}
	if got := s.store.Begin(kMob, 0, FieldX); got != 3 {
		t.Fatalf("Begin x = %v, want 3", got)
	}
}

func TestSchedulerTickDetection(t *testing.T) {
	tests := []struct {
		name        string
		before      time.Duration
		after       time.Duration
		wantPartial bool
		wantT       float64
	}{
		{"accumulator grew", 2 * time.Millisecond, 7 * time.Millisecond, true, 0.7},
		{"accumulator unchanged", 5 * time.Millisecond, 5 * time.Millisecond, true, 0.5},
		{"step consumed time", 12 * time.Millisecond, 2 * time.Millisecond, false, 0.2},
		{"loop lagging", 35 * time.Millisecond, 15 * time.Millisecond, false, 1},
		{"lagging without a step", 12 * time.Millisecond, 12 * time.Millisecond, false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestScheduler()
			s.BeforeSimulationStep(0)
			s.AfterSimulationStep(0)

			s.BeforeSimulationStep(tt.before)
			f := s.AfterSimulationStep(tt.after)
			if f.Partial != tt.wantPartial {
				t.Fatalf("Partial = %v, want %v", f.Partial, tt.wantPartial)
			}
			if !approx(f.T, tt.wantT) {
				t.Fatalf("T = %v, want %v", f.T, tt.wantT)
			}
		})
	}
}

func TestSchedulerPartialTickDoesNotTouchBuffers(t *testing.T) {
	s, mob := newTestScheduler()
	mob.spawn(0, 1, 1, 0)
	s.BeforeSimulationStep(0)
	s.AfterSimulationStep(0)

	// Host storage changes without a step being detected; End must not move.
	mob.move(0, 50, 50, 0)
	s.BeforeSimulationStep(3 * time.Millisecond)
	f := s.AfterSimulationStep(6 * time.Millisecond)
	if !f.Partial {
		t.Fatal("expected partial tick")
	}
	if got := s.store.End(kMob, 0, FieldX); got != 1 {
		t.Fatalf("End x = %v after partial tick, want 1", got)
	}
	if f.TickCount != 1 {
		t.Fatalf("TickCount = %d, want 1", f.TickCount)
	}
}

func TestSchedulerResetReturnsToNoKeyframe(t *testing.T) {
	s, _ := newTestScheduler()
	s.BeforeSimulationStep(0)
	s.AfterSimulationStep(0)
	s.Reset()
	if f := s.Frame(); f.State != NoKeyframe || f.TickCount != 0 {
		t.Fatalf("after Reset frame = %+v", f)
	}

	// Even a callback that looks partial becomes a capture after reset.
	s.BeforeSimulationStep(1 * time.Millisecond)
	if f := s.AfterSimulationStep(2 * time.Millisecond); f.Partial || f.State != Tracking {
		t.Fatalf("first callback after reset = %+v", f)
	}
}
