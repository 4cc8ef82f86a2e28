package systems

import (
	"math"
	"strconv"

	"github.com/automoto/doomerang-interp/components"
	cfg "github.com/automoto/doomerang-interp/config"
	"github.com/automoto/doomerang-interp/systems/factory"
	"github.com/automoto/doomerang-interp/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles records trails, moves shots with wall bounces and applies
// hits on creatures.
func UpdateProjectiles(ecs *ecs.ECS) {
	level := levelData(ecs)
	var spent, killed []*donburi.Entry

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		physics := components.Physics.Get(e)
		shot := components.Projectile.Get(e)

		components.Trail.Get(e).Push(components.Vector{X: obj.X, Y: obj.Y})

		if solid := firstSolid(obj.Object, physics.SpeedX, 0); solid != nil {
			obj.X += contactX(obj.Object, solid, physics.SpeedX)
			physics.SpeedX = -physics.SpeedX
			physics.Bounces++
		} else {
			obj.X += physics.SpeedX
		}
		if solid := firstSolid(obj.Object, 0, physics.SpeedY); solid != nil {
			obj.Y += contactY(obj.Object, solid, physics.SpeedY)
			physics.SpeedY = -physics.SpeedY
			physics.Bounces++
		} else {
			obj.Y += physics.SpeedY
		}
		shot.Heading = math.Atan2(physics.SpeedY, physics.SpeedX)

		if physics.Bounces > cfg.Projectile.Bounces {
			spent = append(spent, e)
			return
		}

		if target := hitCreature(obj.Object); target != nil {
			if damageCreature(ecs, e, target) {
				killed = append(killed, target)
			}
			spent = append(spent, e)
		}
	})

	for _, e := range spent {
		if level != nil {
			obj := components.Object.Get(e)
			burstDust(ecs, obj.X, obj.Y, level.Rand)
		}
		factory.Destroy(ecs, e)
	}
	for _, e := range killed {
		obj := components.Object.Get(e)
		factory.CreatePickup(ecs, obj.X+obj.W/2, obj.Y+obj.H/2, 10)
		factory.Destroy(ecs, e)
	}
}

func hitCreature(object *resolv.Object) *donburi.Entry {
	check := object.Check(0, 0, tags.ResolvCreature)
	if check == nil {
		return nil
	}
	for _, o := range check.ObjectsByTags(tags.ResolvCreature) {
		if !overlaps(object, o, 0, 0) {
			continue
		}
		target, ok := o.Data.(*donburi.Entry)
		if ok && target.Valid() && components.Creature.Get(target).Health > 0 {
			return target
		}
	}
	return nil
}

// damageCreature applies a shot's damage and credits its owner with kills. It
// reports whether the creature died.
func damageCreature(ecs *ecs.ECS, shot, target *donburi.Entry) bool {
	damage := components.Projectile.Get(shot).Damage
	creature := components.Creature.Get(target)
	obj := components.Object.Get(target)
	cx, cy := obj.X+obj.W/2, obj.Y

	creature.Health -= damage
	factory.CreateFloatingText(ecs, cx, cy, "-"+strconv.Itoa(damage))
	if creature.Health > 0 {
		return false
	}

	owner := components.Projectile.Get(shot).Owner
	if ecs.World.Valid(owner) {
		if ownerEntry := ecs.World.Entry(owner); ownerEntry.HasComponent(components.Player) {
			components.Player.Get(ownerEntry).Score++
		}
	}
	return true
}
