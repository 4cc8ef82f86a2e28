package systems

import (
	"github.com/automoto/doomerang-interp/components"
	"github.com/automoto/doomerang-interp/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		// Projectiles fly straight and move themselves
		if e.HasComponent(components.Projectile) {
			return
		}

		physics := components.Physics.Get(e)

		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.Friction)
		physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, physics.MaxSpeed)

		// Apply gravity
		physics.SpeedY += physics.Gravity
	})
}
