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

// CreateProjectile fires a shot from owner's center along heading.
func CreateProjectile(ecs *ecs.ECS, owner *donburi.Entry, heading float64) *donburi.Entry {
	shot := archetypes.Projectile.Spawn(ecs)
	if !claimSlot(ecs, shot, cfg.KindProjectile) {
		return nil
	}

	ownerObj := components.Object.Get(owner)
	size := cfg.Projectile.Size
	x := ownerObj.X + ownerObj.W/2 - size/2
	y := ownerObj.Y + ownerObj.H/3 - size/2

	obj := resolv.NewObject(x, y, size, size, tags.ResolvProjectile)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = shot
	components.Object.SetValue(shot, components.ObjectData{Object: obj})

	components.Projectile.SetValue(shot, components.ProjectileData{
		Heading: heading,
		Owner:   owner.Entity(),
		Damage:  cfg.Projectile.Damage,
	})
	components.Physics.SetValue(shot, components.PhysicsData{
		SpeedX: math.Cos(heading) * cfg.Projectile.Speed,
		SpeedY: math.Sin(heading) * cfg.Projectile.Speed,
	})
	components.AutoDestroy.SetValue(shot, components.AutoDestroyData{
		FramesRemaining: cfg.Projectile.Life,
	})
	// Trail starts empty; samples are pushed before each move.

	addToSpace(ecs, obj)
	return shot
}
