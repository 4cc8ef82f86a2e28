package interp

import (
	"math"
	"time"
)

const (
	kActor Kind = iota
	kMob
	kShot
	kDust
)

func testSpecs() []KindSpec {
	return []KindSpec{
		{Kind: kActor, Name: "actor", Max: 4, Fields: PositionFields(Field{Name: "lean", Mode: Angular}), Teleport: TeleportVelocity},
		{Kind: kMob, Name: "mob", Max: 8, Fields: PositionFields(Field{Name: "heading", Mode: Angular}), Teleport: TeleportDisplacement},
		{Kind: kShot, Name: "shot", Max: 8, Fields: PositionFields(), Teleport: TeleportDisplacement},
		{Kind: kDust, Name: "dust", Max: 8, Fields: PositionFields(), Teleport: TeleportNone},
	}
}

type fakeSlot struct {
	alive  bool
	fields []float64

	// gen counts the occupants the slot has had.
	gen uint64

	vx, vy     float64
	oldX, oldY float64
	trail      [][2]float64

	parentKind Kind
	parent     int
	linked     bool
}

// fakeKind is a plain slice backed Accessor.
type fakeKind struct {
	slots []fakeSlot

	// panicOnSet makes Set panic for this slot index, when >= 0.
	panicOnSet int
}

func newFakeKind(n, stride int) *fakeKind {
	fk := &fakeKind{slots: make([]fakeSlot, n), panicOnSet: -1}
	for i := range fk.slots {
		fk.slots[i].fields = make([]float64, stride)
	}
	return fk
}

func (f *fakeKind) spawn(i int, vals ...float64) {
	s := &f.slots[i]
	s.alive = true
	s.gen++
	copy(s.fields, vals)
}

func (f *fakeKind) kill(i int) {
	f.slots[i].alive = false
}

func (f *fakeKind) move(i int, vals ...float64) {
	copy(f.slots[i].fields, vals)
}

func (f *fakeKind) Count() int { return len(f.slots) }
func (f *fakeKind) IsAlive(i int) bool { return f.slots[i].alive }
func (f *fakeKind) Get(i, fl int) float64 { return f.slots[i].fields[fl] }
func (f *fakeKind) Set(i, fl int, v float64) {
	if i == f.panicOnSet {
		panic("storage gone")
	}
	f.slots[i].fields[fl] = v
}

type fakeActor struct{ *fakeKind }

func (a fakeActor) Velocity(i int) (float64, float64) { return a.slots[i].vx, a.slots[i].vy }
func (a fakeActor) OldPosition(i int) (float64, float64) {
	return a.slots[i].oldX, a.slots[i].oldY
}
func (a fakeActor) SetOldPosition(i int, x, y float64) {
	a.slots[i].oldX, a.slots[i].oldY = x, y
}

type fakeTrailed struct{ *fakeKind }

func (t fakeTrailed) MaxTrail() int { return 4 }
func (t fakeTrailed) TrailLen(i int) int { return len(t.slots[i].trail) }
func (t fakeTrailed) TrailAt(i, j int) (float64, float64) { return t.slots[i].trail[j][0], t.slots[i].trail[j][1] }
func (t fakeTrailed) SetTrailAt(i, j int, x, y float64) { t.slots[i].trail[j] = [2]float64{x, y} }

type fakeLinked struct{ *fakeKind }

func (l fakeLinked) Parent(i int) (Kind, int, bool) {
	s := l.slots[i]
	return s.parentKind, s.parent, s.linked
}

func (l fakeLinked) Generation(i int) uint64 { return l.slots[i].gen }

type fakePartial struct {
	*fakeKind
	unbound int
}

func (p fakePartial) Bound(field int) bool { return field != p.unbound }

// world bundles one fake per test kind, bound to a fresh engine.
type world struct {
	actor *fakeKind
	mob   *fakeKind
	shot  *fakeKind
	dust  *fakeKind
	e     *Engine
}

func newWorld() *world {
	specs := testSpecs()
	w := &world{
		actor: newFakeKind(specs[kActor].Max, specs[kActor].Stride()),
		mob:   newFakeKind(specs[kMob].Max, specs[kMob].Stride()),
		shot:  newFakeKind(specs[kShot].Max, specs[kShot].Stride()),
		dust:  newFakeKind(specs[kDust].Max, specs[kDust].Stride()),
	}
	cfg := DefaultConfig()
	cfg.Step = 10 * time.Millisecond
	cfg.TeleportDistSq = 100 * 100
	cfg.MaxConsecutiveFailures = 3
	w.e = New(cfg, specs)
	w.e.Bind(kActor, fakeActor{w.actor})
	w.e.Bind(kMob, w.mob)
	w.e.Bind(kShot, fakeTrailed{w.shot})
	w.e.Bind(kDust, fakeLinked{w.dust})
	w.e.Allocate()
	return w
}

// step simulates one host callback in which exactly one simulation step ran,
// leaving acc in the accumulator.
func (w *world) step(acc float64) {
	stepDur := w.e.sched.Step()
	w.e.BeforeSimulationStep(stepDur + stepDur/2)
	w.e.AfterSimulationStep(fraction(stepDur, acc))
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// fraction returns f steps worth of accumulator.
func fraction(step time.Duration, f float64) time.Duration {
	return time.Duration(float64(step) * f)
}
