package interp

import "testing"

func TestStoreFirstCaptureCopiesEndToBegin(t *testing.T) {
	w := newWorld()
	w.mob.spawn(2, 10, 20, 0.5)

	w.step(0.1)

	s := w.e.Store()
	if got := s.End(kMob, 2, FieldX); got != 10 {
		t.Fatalf("End x = %v, want 10", got)
	}
	if got := s.Begin(kMob, 2, FieldY); got != 20 {
		t.Fatalf("Begin y = %v, want 20 (Begin := End on first capture)", got)
	}
	if !s.AliveBegin(kMob, 2) || !s.AliveEnd(kMob, 2) {
		t.Fatal("liveness not copied on first capture")
	}
}

func TestStoreShiftAndCapture(t *testing.T) {
	w := newWorld()
	w.mob.spawn(0, 0, 0, 0)
	w.step(0.1)

	w.mob.move(0, 5, 6, 1)
	w.step(0.1)

	s := w.e.Store()
	if s.Begin(kMob, 0, FieldX) != 0 || s.End(kMob, 0, FieldX) != 5 {
		t.Fatalf("Begin/End x = %v/%v, want 0/5", s.Begin(kMob, 0, FieldX), s.End(kMob, 0, FieldX))
	}
	if s.Skipped(kMob, 0) {
		t.Fatal("continuous motion flagged as skip")
	}
}

func TestStoreSpawnSkipsOneStep(t *testing.T) {
	w := newWorld()
	w.step(0.1)

	w.mob.spawn(3, 40, 40, 0)
	w.step(0.1)
	s := w.e.Store()
	if !s.Skipped(kMob, 3) {
		t.Fatal("fresh spawn not skipped")
	}

	w.mob.move(3, 42, 40, 0)
	w.step(0.1)
	if s.Skipped(kMob, 3) {
		t.Fatal("spawn skip lasted longer than one step")
	}
}

func TestStoreTeleportVelocityProjection(t *testing.T) {
	w := newWorld()
	a := &w.actor.slots[0]
	w.actor.spawn(0, 0, 0, 0)
	a.vx, a.vy = 1, 0
	w.step(0.1)
	w.actor.move(0, 1, 0, 0)
	w.step(0.1)

	// Begin is now (1,0) with velocity (1,0); a jump to (500,500) is a warp.
	w.actor.move(0, 500, 500, 0)
	w.step(0.1)
	if !w.e.Store().Skipped(kActor, 0) {
		t.Fatal("teleport not detected")
	}
}

func TestStoreVelocityProjectionAllowsFastMotion(t *testing.T) {
	w := newWorld()
	a := &w.actor.slots[1]
	w.actor.spawn(1, 0, 0, 0)
	a.vx = 150
	w.step(0.1)

	// Moving 150 units matches the velocity, even though it exceeds the
	// 100 unit threshold as a plain displacement.
	w.actor.move(1, 150, 0, 0)
	w.step(0.1)
	if w.e.Store().Skipped(kActor, 1) {
		t.Fatal("velocity-consistent motion flagged as teleport")
	}
}

func TestStoreDisplacementCoversSlotReuse(t *testing.T) {
	w := newWorld()
	w.mob.spawn(5, 0, 0, 0)
	w.step(0.1)

	// The occupant dies and a new one is born in the same slot elsewhere
	// within a single step: liveness alone cannot tell.
	w.mob.kill(5)
	w.mob.spawn(5, 300, 10, 0)
	w.step(0.1)
	if !w.e.Store().Skipped(kMob, 5) {
		t.Fatal("slot reuse at a distant location not skipped")
	}
}

func TestStoreGenerationCoversSlotReuse(t *testing.T) {
	w := newWorld()
	w.dust.spawn(0, 0, 0)
	w.step(0.1)

	// Dust has no teleport check. Its slot is recycled inside one callback
	// and the new occupant appears close enough to pass for motion.
	w.dust.kill(0)
	w.dust.spawn(0, 40, 30)
	w.step(0.5)
	if !w.e.Store().Skipped(kDust, 0) {
		t.Fatal("recycled slot not skipped")
	}

	w.e.BeforeRender()
	if got := w.dust.slots[0].fields; got[0] != 40 || got[1] != 30 {
		t.Fatalf("recycled dust drawn at %v, want its real position", got)
	}
	w.e.AfterRender(nil)

	w.dust.move(0, 44, 30)
	w.step(0.5)
	if w.e.Store().Skipped(kDust, 0) {
		t.Fatal("skip outlived the step after reuse")
	}
}

func TestStoreDespawnClearsLiveness(t *testing.T) {
	w := newWorld()
	w.mob.spawn(1, 0, 0, 0)
	w.step(0.1)
	w.mob.kill(1)
	w.step(0.1)

	s := w.e.Store()
	if s.AliveEnd(kMob, 1) {
		t.Fatal("dead slot still alive at End")
	}
	if !s.AliveBegin(kMob, 1) {
		t.Fatal("Begin liveness should still reflect the previous step")
	}
}

func TestStoreClear(t *testing.T) {
	w := newWorld()
	w.mob.spawn(0, 9, 9, 9)
	w.step(0.1)

	s := w.e.Store()
	s.Clear()
	if s.End(kMob, 0, FieldX) != 0 || s.AliveEnd(kMob, 0) || s.AliveBegin(kMob, 0) {
		t.Fatal("Clear left state behind")
	}
	if s.Captured(kMob) != 0 {
		t.Fatalf("Captured = %d after Clear", s.Captured(kMob))
	}
}

func TestStoreUnboundKindIsSkipped(t *testing.T) {
	specs := testSpecs()
	e := New(DefaultConfig(), specs)
	mob := newFakeKind(specs[kMob].Max, specs[kMob].Stride())
	e.Bind(kMob, mob)
	e.Allocate()

	mob.spawn(0, 1, 2, 3)
	e.BeforeSimulationStep(0)
	e.AfterSimulationStep(0)

	if !e.Store().AliveEnd(kMob, 0) {
		t.Fatal("bound kind not captured")
	}
	if e.Store().AliveEnd(kActor, 0) {
		t.Fatal("unbound kind captured")
	}
}
