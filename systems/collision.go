package systems

import (
	"math"

	"github.com/automoto/doomerang-interp/components"
	"github.com/automoto/doomerang-interp/shared/gamemath"
	"github.com/automoto/doomerang-interp/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// maxFallSpeed keeps a falling object from skipping through a one tile floor.
const maxFallSpeed = 12.0

func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveObjectHorizontalCollision(physics, obj.Object)
		resolveObjectVerticalCollision(physics, obj.Object)
	})

	tags.Creature.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		// Creatures turn around on walls instead of stopping
		speed := physics.SpeedX
		if resolveObjectHorizontalCollision(physics, obj.Object) {
			physics.SpeedX = -speed
		}
		resolveObjectVerticalCollision(physics, obj.Object)
	})

	tags.Pickup.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)
		resolveObjectVerticalCollision(physics, obj.Object)
	})
}

// resolveObjectHorizontalCollision moves object by its horizontal speed and
// stops it flush against a solid. It reports whether a solid was hit.
func resolveObjectHorizontalCollision(physics *components.PhysicsData, object *resolv.Object) bool {
	dx := physics.SpeedX
	if dx == 0 {
		return false
	}

	solid := firstSolid(object, dx, 0)
	if solid == nil {
		object.X += dx
		return false
	}

	object.X += contactX(object, solid, dx)
	physics.SpeedX = 0
	return true
}

// resolveObjectVerticalCollision handles falling, landing and ceiling bumps.
func resolveObjectVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := gamemath.Clamp(physics.SpeedY, -maxFallSpeed, maxFallSpeed)

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	solid := firstSolid(object, 0, checkDistance)
	if solid == nil {
		object.Y += dy
		return
	}

	if dy >= 0 {
		physics.OnGround = solid
	}
	physics.SpeedY = 0
	object.Y += contactY(object, solid, checkDistance)
}

// firstSolid returns the nearest solid object overlaps after moving by
// (dx, dy), or nil.
func firstSolid(object *resolv.Object, dx, dy float64) *resolv.Object {
	check := object.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	var nearest *resolv.Object
	best := math.MaxFloat64
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlaps(object, o, dx, dy) {
			continue
		}
		d := math.Abs(o.X-object.X) + math.Abs(o.Y-object.Y)
		if d < best {
			best, nearest = d, o
		}
	}
	return nearest
}

// contactX is how far object can move along dx before touching solid.
func contactX(object, solid *resolv.Object, dx float64) float64 {
	if dx > 0 {
		return math.Max(0, solid.X-(object.X+object.W))
	}
	return math.Min(0, solid.X+solid.W-object.X)
}

func contactY(object, solid *resolv.Object, dy float64) float64 {
	if dy > 0 {
		return math.Max(0, solid.Y-(object.Y+object.H))
	}
	return math.Min(0, solid.Y+solid.H-object.Y)
}

// overlaps tests the bounding boxes of a, moved by (dx, dy), and b. Space
// checks only report shared cells.
func overlaps(a, b *resolv.Object, dx, dy float64) bool {
	ax, ay := a.X+dx, a.Y+dy
	return ax < b.X+b.W && ax+a.W > b.X && ay < b.Y+b.H && ay+a.H > b.Y
}
