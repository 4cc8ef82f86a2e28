package archetypes

import (
	"github.com/automoto/doomerang-interp/components"
	"github.com/automoto/doomerang-interp/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the only render layer the sandbox draws.
const LayerDefault ecs.LayerID = 0

var (
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Slot,
	)
	Creature = newArchetype(
		tags.Creature,
		components.Creature,
		components.Object,
		components.Physics,
		components.Slot,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Physics,
		components.Trail,
		components.AutoDestroy,
		components.Slot,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
		components.Physics,
		components.AutoDestroy,
		components.Slot,
	)
	FloatingText = newArchetype(
		tags.FloatText,
		components.FloatingText,
		components.Position,
		components.Slot,
	)
	Dust = newArchetype(
		tags.Dust,
		components.Dust,
		components.Position,
		components.AutoDestroy,
		components.Slot,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
		components.SlotTables,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Session = newArchetype(
		components.Interp,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
