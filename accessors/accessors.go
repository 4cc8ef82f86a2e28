// Package accessors exposes the sandbox's donburi entities to the render
// interpolator. Each kind gets a table of field getters and setters over its
// components; capabilities are added per kind by the wrapper types.
package accessors

import (
	"github.com/automoto/doomerang-interp/components"
	"github.com/automoto/doomerang-interp/config"
	"github.com/automoto/doomerang-interp/interp"
	"github.com/automoto/doomerang-interp/slots"
	"github.com/yohamta/donburi"
)

type field struct {
	get func(e *donburi.Entry) float64
	set func(e *donburi.Entry, v float64)
}

// Resolv objects are written without Update: blended values only live for one
// render pass and the space cells still match the restored position.
var (
	objectX = field{
		get: func(e *donburi.Entry) float64 { return components.Object.Get(e).X },
		set: func(e *donburi.Entry, v float64) { components.Object.Get(e).X = v },
	}
	objectY = field{
		get: func(e *donburi.Entry) float64 { return components.Object.Get(e).Y },
		set: func(e *donburi.Entry, v float64) { components.Object.Get(e).Y = v },
	}
	positionX = field{
		get: func(e *donburi.Entry) float64 { return components.Position.Get(e).X },
		set: func(e *donburi.Entry, v float64) { components.Position.Get(e).X = v },
	}
	positionY = field{
		get: func(e *donburi.Entry) float64 { return components.Position.Get(e).Y },
		set: func(e *donburi.Entry, v float64) { components.Position.Get(e).Y = v },
	}
	playerLean = field{
		get: func(e *donburi.Entry) float64 { return components.Player.Get(e).Lean },
		set: func(e *donburi.Entry, v float64) { components.Player.Get(e).Lean = v },
	}
	playerArm = field{
		get: func(e *donburi.Entry) float64 { return components.Player.Get(e).ArmAngle },
		set: func(e *donburi.Entry, v float64) { components.Player.Get(e).ArmAngle = v },
	}
	creatureHeading = field{
		get: func(e *donburi.Entry) float64 { return components.Creature.Get(e).Heading },
		set: func(e *donburi.Entry, v float64) { components.Creature.Get(e).Heading = v },
	}
	projectileHeading = field{
		get: func(e *donburi.Entry) float64 { return components.Projectile.Get(e).Heading },
		set: func(e *donburi.Entry, v float64) { components.Projectile.Get(e).Heading = v },
	}
	dustSpin = field{
		get: func(e *donburi.Entry) float64 { return components.Dust.Get(e).Spin },
		set: func(e *donburi.Entry, v float64) { components.Dust.Get(e).Spin = v },
	}
)

// Table is the part every kind accessor shares: slot lookup and field access.
type Table struct {
	world  donburi.World
	slots  *slots.Table
	fields []field
}

func newTable(w donburi.World, tb *slots.Table, fields ...field) *Table {
	return &Table{world: w, slots: tb, fields: fields}
}

func NewCreature(w donburi.World, tb *slots.Table) *Table {
	return newTable(w, tb, objectX, objectY, creatureHeading)
}

func NewPickup(w donburi.World, tb *slots.Table) *Table {
	return newTable(w, tb, objectX, objectY)
}

func NewFloatingText(w donburi.World, tb *slots.Table) *Table {
	return newTable(w, tb, positionX, positionY)
}

func (t *Table) entry(i int) *donburi.Entry {
	e, _ := t.slots.Entity(i)
	return t.world.Entry(e)
}

func (t *Table) Count() int { return t.slots.Count() }

func (t *Table) IsAlive(i int) bool {
	e, ok := t.slots.Entity(i)
	return ok && t.world.Valid(e)
}

// Generation is the occupying entity itself: donburi bumps an entity's
// version when its id is reused, so a recycled slot never repeats a value.
func (t *Table) Generation(i int) uint64 {
	e, _ := t.slots.Entity(i)
	return uint64(e)
}

func (t *Table) Get(i, f int) float64 { return t.fields[f].get(t.entry(i)) }

func (t *Table) Set(i, f int, v float64) { t.fields[f].set(t.entry(i), v) }

// Player adds velocity and the old position to the player table.
type Player struct{ *Table }

func NewPlayer(w donburi.World, tb *slots.Table) *Player {
	return &Player{newTable(w, tb, objectX, objectY, playerLean, playerArm)}
}

func (p *Player) Velocity(i int) (float64, float64) {
	ph := components.Physics.Get(p.entry(i))
	return ph.SpeedX, ph.SpeedY
}

func (p *Player) OldPosition(i int) (float64, float64) {
	pd := components.Player.Get(p.entry(i))
	return pd.OldX, pd.OldY
}

func (p *Player) SetOldPosition(i int, x, y float64) {
	pd := components.Player.Get(p.entry(i))
	pd.OldX, pd.OldY = x, y
}

// Projectile adds the afterimage trail.
type Projectile struct{ *Table }

func NewProjectile(w donburi.World, tb *slots.Table) *Projectile {
	return &Projectile{newTable(w, tb, objectX, objectY, projectileHeading)}
}

func (p *Projectile) MaxTrail() int { return config.TrailLength }

func (p *Projectile) TrailLen(i int) int { return components.Trail.Get(p.entry(i)).Len }

func (p *Projectile) TrailAt(i, j int) (float64, float64) {
	v := components.Trail.Get(p.entry(i)).At(j)
	return v.X, v.Y
}

func (p *Projectile) SetTrailAt(i, j int, x, y float64) {
	v := components.Trail.Get(p.entry(i)).At(j)
	v.X, v.Y = x, y
}

// Dust resolves its parent link to the parent's kind and slot.
type Dust struct{ *Table }

func NewDust(w donburi.World, tb *slots.Table) *Dust {
	return &Dust{newTable(w, tb, positionX, positionY, dustSpin)}
}

func (d *Dust) Parent(i int) (interp.Kind, int, bool) {
	e := d.entry(i)
	if !e.HasComponent(components.ParentLink) {
		return 0, 0, false
	}
	parent := components.ParentLink.Get(e).Parent
	if !d.world.Valid(parent) {
		return 0, 0, false
	}
	pe := d.world.Entry(parent)
	if !pe.HasComponent(components.Slot) {
		return 0, 0, false
	}
	slot := components.Slot.Get(pe)
	return slot.Kind, slot.Index, true
}

// Bind attaches one accessor per kind to e.
func Bind(e *interp.Engine, w donburi.World, st *components.SlotTablesData) {
	e.Bind(config.KindPlayer, NewPlayer(w, st.Table(config.KindPlayer)))
	e.Bind(config.KindCreature, NewCreature(w, st.Table(config.KindCreature)))
	e.Bind(config.KindProjectile, NewProjectile(w, st.Table(config.KindProjectile)))
	e.Bind(config.KindPickup, NewPickup(w, st.Table(config.KindPickup)))
	e.Bind(config.KindFloatingText, NewFloatingText(w, st.Table(config.KindFloatingText)))
	e.Bind(config.KindDust, NewDust(w, st.Table(config.KindDust)))
}

// NewSlotTables sizes one slot table per configured kind.
func NewSlotTables() *components.SlotTablesData {
	st := &components.SlotTablesData{Tables: make([]*slots.Table, len(config.Kinds))}
	for _, spec := range config.Kinds {
		st.Tables[spec.Kind] = slots.New(spec.Max)
	}
	return st
}
