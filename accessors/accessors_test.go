package accessors

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/doomerang-interp/components"
	"github.com/automoto/doomerang-interp/config"
	"github.com/automoto/doomerang-interp/interp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type sandbox struct {
	world  donburi.World
	tables *components.SlotTablesData
	engine *interp.Engine
}

func newSandbox() *sandbox {
	s := &sandbox{
		world:  donburi.NewWorld(),
		tables: NewSlotTables(),
	}
	cfg := config.Interp.Engine(100)
	s.engine = interp.New(cfg, config.Kinds)
	Bind(s.engine, s.world, s.tables)
	s.engine.Allocate()
	return s
}

func (s *sandbox) occupy(k interp.Kind, e *donburi.Entry) {
	i, ok := s.tables.Table(k).Acquire(e.Entity())
	if !ok {
		panic("slot table full")
	}
	components.Slot.SetValue(e, components.SlotData{Kind: k, Index: i})
}

func (s *sandbox) player(x, y float64) *donburi.Entry {
	e := s.world.Entry(s.world.Create(components.Player, components.Object, components.Physics, components.Slot))
	components.Object.SetValue(e, components.ObjectData{Object: resolv.NewObject(x, y, 16, 24)})
	s.occupy(config.KindPlayer, e)
	return e
}

func (s *sandbox) projectile(x, y float64) *donburi.Entry {
	e := s.world.Entry(s.world.Create(components.Projectile, components.Object, components.Trail, components.Slot))
	components.Object.SetValue(e, components.ObjectData{Object: resolv.NewObject(x, y, 4, 4)})
	s.occupy(config.KindProjectile, e)
	return e
}

func (s *sandbox) dust(x, y float64, parent *donburi.Entry) *donburi.Entry {
	e := s.world.Entry(s.world.Create(components.Dust, components.Position, components.Slot))
	components.Position.SetValue(e, components.PositionData{X: x, Y: y})
	if parent != nil {
		e.AddComponent(components.ParentLink)
		components.ParentLink.SetValue(e, components.ParentLinkData{Parent: parent.Entity()})
	}
	s.occupy(config.KindDust, e)
	return e
}

// tick runs one host callback containing one simulation step and leaves f of
// a step in the accumulator.
func (s *sandbox) tick(f float64) {
	step := 10 * time.Millisecond
	s.engine.BeforeSimulationStep(step + step/2)
	s.engine.AfterSimulationStep(time.Duration(float64(step) * f))
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTableReadsAndWritesComponents(t *testing.T) {
	s := newSandbox()
	p := s.player(10, 20)
	components.Player.Get(p).ArmAngle = 1.5
	acc := NewPlayer(s.world, s.tables.Table(config.KindPlayer))

	if acc.Count() != 1 || !acc.IsAlive(0) {
		t.Fatalf("count=%d alive=%v", acc.Count(), acc.IsAlive(0))
	}
	if acc.Get(0, interp.FieldX) != 10 || acc.Get(0, interp.FieldY) != 20 || acc.Get(0, config.FieldPlayerArm) != 1.5 {
		t.Fatal("fields not read from components")
	}
	acc.Set(0, interp.FieldX, 99)
	acc.Set(0, config.FieldPlayerLean, -0.2)
	if components.Object.Get(p).X != 99 || components.Player.Get(p).Lean != -0.2 {
		t.Fatal("fields not written to components")
	}

	ph := components.Physics.Get(p)
	ph.SpeedX, ph.SpeedY = 3, -4
	if vx, vy := acc.Velocity(0); vx != 3 || vy != -4 {
		t.Fatalf("velocity = %v,%v", vx, vy)
	}
	acc.SetOldPosition(0, 1, 2)
	if x, y := acc.OldPosition(0); x != 1 || y != 2 {
		t.Fatalf("old position = %v,%v", x, y)
	}
}

func TestRemovedEntityIsNotAlive(t *testing.T) {
	s := newSandbox()
	p := s.player(0, 0)
	acc := NewPlayer(s.world, s.tables.Table(config.KindPlayer))

	s.world.Remove(p.Entity())
	if acc.IsAlive(0) {
		t.Fatal("removed entity still alive while its slot is held")
	}
	s.tables.Table(config.KindPlayer).Release(0)
	if acc.IsAlive(0) || acc.Count() != 0 {
		t.Fatal("released slot still reported")
	}
}

func TestRecycledSlotIsSkipped(t *testing.T) {
	s := newSandbox()
	d := s.dust(0, 0, nil)
	s.tick(0)

	// The mote expires and a new one takes its slot before the next capture.
	s.tables.Table(config.KindDust).Release(components.Slot.Get(d).Index)
	s.world.Remove(d.Entity())
	fresh := s.dust(20, 10, nil)
	if components.Slot.Get(fresh).Index != 0 {
		t.Fatalf("fresh dust got slot %d, want the recycled slot 0", components.Slot.Get(fresh).Index)
	}
	s.tick(0.5)

	if !s.engine.Store().Skipped(config.KindDust, 0) {
		t.Fatal("recycled dust slot blended across occupants")
	}
	pos := components.Position.Get(fresh)
	if err := s.engine.Render(func() error {
		if pos.X != 20 || pos.Y != 10 {
			t.Errorf("fresh dust drawn at %v,%v, want 20,10", pos.X, pos.Y)
		}
		return nil
	}); err != nil {
		t.Fatal(err)
	}
}

func TestTrailAccessorOrder(t *testing.T) {
	s := newSandbox()
	p := s.projectile(0, 0)
	tr := components.Trail.Get(p)
	for i := 1; i <= 3; i++ {
		tr.Push(components.Vector{X: float64(i)})
	}
	acc := NewProjectile(s.world, s.tables.Table(config.KindProjectile))

	if acc.TrailLen(0) != 3 {
		t.Fatalf("trail len = %d", acc.TrailLen(0))
	}
	if x, _ := acc.TrailAt(0, 0); x != 3 {
		t.Fatalf("newest sample x = %v, want 3", x)
	}
	acc.SetTrailAt(0, 2, 7, 8)
	if v := tr.At(2); v.X != 7 || v.Y != 8 {
		t.Fatalf("sample 2 = %+v", *v)
	}
}

func TestTrailRingDropsOldest(t *testing.T) {
	var tr components.TrailData
	for i := 0; i < config.TrailLength+3; i++ {
		tr.Push(components.Vector{X: float64(i)})
	}
	if tr.Len != config.TrailLength {
		t.Fatalf("len = %d", tr.Len)
	}
	newest := float64(config.TrailLength + 2)
	for j := 0; j < tr.Len; j++ {
		if got := tr.At(j).X; got != newest-float64(j) {
			t.Fatalf("sample %d = %v, want %v", j, got, newest-float64(j))
		}
	}
}

func TestDustParentResolution(t *testing.T) {
	s := newSandbox()
	s.player(0, 0)
	p := s.player(5, 5)
	linked := s.dust(1, 1, p)
	free := s.dust(2, 2, nil)
	acc := NewDust(s.world, s.tables.Table(config.KindDust))

	k, i, ok := acc.Parent(components.Slot.Get(linked).Index)
	if !ok || k != config.KindPlayer || i != 1 {
		t.Fatalf("parent = %v,%d,%v, want player slot 1", k, i, ok)
	}
	if _, _, ok := acc.Parent(components.Slot.Get(free).Index); ok {
		t.Fatal("free dust reported a parent")
	}

	s.world.Remove(p.Entity())
	if _, _, ok := acc.Parent(components.Slot.Get(linked).Index); ok {
		t.Fatal("dust still linked to a removed parent")
	}
}

func TestEngineBlendsAndRestoresEntities(t *testing.T) {
	s := newSandbox()
	p := s.player(0, 0)
	shot := s.projectile(0, 50)
	d := s.dust(3, -4, p)

	s.tick(0)
	obj := components.Object.Get(p)
	obj.X, obj.Y = 8, 0
	components.Player.Get(p).ArmAngle = math.Pi - 0.1
	so := components.Object.Get(shot)
	components.Trail.Get(shot).Push(components.Vector{X: so.X, Y: so.Y})
	so.X = 6
	dp := components.Position.Get(d)
	dp.X, dp.Y = 11, -4
	s.tick(0.5)

	err := s.engine.Render(func() error {
		if !approx(obj.X, 4) {
			t.Errorf("player x = %v, want 4", obj.X)
		}
		if arm := components.Player.Get(p).ArmAngle; !approx(arm, (math.Pi-0.1)/2) {
			t.Errorf("arm = %v", arm)
		}
		if !approx(so.X, 3) {
			t.Errorf("projectile x = %v, want 3", so.X)
		}
		if v := components.Trail.Get(shot).At(0); !approx(v.X, -3) {
			t.Errorf("trail x = %v, want -3", v.X)
		}
		if !approx(dp.X, 7) {
			t.Errorf("dust x = %v, want parent delta applied (7)", dp.X)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if obj.X != 8 || so.X != 6 || dp.X != 11 {
		t.Fatalf("not restored: player %v projectile %v dust %v", obj.X, so.X, dp.X)
	}
	if v := components.Trail.Get(shot).At(0); v.X != 0 {
		t.Fatalf("trail not restored: %v", v.X)
	}
	if arm := components.Player.Get(p).ArmAngle; arm != math.Pi-0.1 {
		t.Fatalf("arm not restored: %v", arm)
	}
}
