package factory

import (
	"github.com/automoto/doomerang-interp/archetypes"
	"github.com/automoto/doomerang-interp/components"
	cfg "github.com/automoto/doomerang-interp/config"
	"github.com/automoto/doomerang-interp/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePickup drops a pickup centered on (x, y) that pops upward first.
func CreatePickup(ecs *ecs.ECS, x, y float64, value int) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(ecs)
	if !claimSlot(ecs, pickup, cfg.KindPickup) {
		return nil
	}

	size := cfg.Pickup.Size
	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvPickup)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = pickup
	components.Object.SetValue(pickup, components.ObjectData{Object: obj})

	components.Pickup.SetValue(pickup, components.PickupData{Value: value})
	components.Physics.SetValue(pickup, components.PhysicsData{
		SpeedY:  -4,
		Gravity: cfg.Pickup.Gravity,
	})
	components.AutoDestroy.SetValue(pickup, components.AutoDestroyData{
		FramesRemaining: cfg.Pickup.Life,
	})

	addToSpace(ecs, obj)
	return pickup
}
