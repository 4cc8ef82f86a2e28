package factory

import (
	"math"

	"github.com/automoto/doomerang-interp/archetypes"
	"github.com/automoto/doomerang-interp/components"
	cfg "github.com/automoto/doomerang-interp/config"
	"github.com/automoto/doomerang-interp/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCreature spawns a wandering creature with its feet at (x, y).
func CreateCreature(ecs *ecs.ECS, x, y float64, facingLeft bool) *donburi.Entry {
	creature := archetypes.Creature.Spawn(ecs)
	if !claimSlot(ecs, creature, cfg.KindCreature) {
		return nil
	}

	size := cfg.Creature.Size
	obj := resolv.NewObject(x, y-size, size, size, tags.ResolvCreature)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = creature
	components.Object.SetValue(creature, components.ObjectData{Object: obj})

	speed := cfg.Creature.Speed
	heading := 0.0
	if facingLeft {
		speed = -speed
		heading = math.Pi
	}
	components.Creature.SetValue(creature, components.CreatureData{
		Heading: heading,
		Health:  cfg.Creature.Health,
	})
	components.Physics.SetValue(creature, components.PhysicsData{
		SpeedX:   speed,
		Gravity:  cfg.Creature.Gravity,
		MaxSpeed: cfg.Creature.Speed,
	})

	addToSpace(ecs, obj)
	return creature
}
