package systems

import (
	"math"

	"github.com/automoto/doomerang-interp/components"
	cfg "github.com/automoto/doomerang-interp/config"
	"github.com/automoto/doomerang-interp/shared/gamemath"
	"github.com/automoto/doomerang-interp/shared/leveldata"
	"github.com/automoto/doomerang-interp/systems/factory"
	"github.com/automoto/doomerang-interp/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCreatures keeps creatures walking, turns them at ledges and refills
// the arena after kills.
func UpdateCreatures(ecs *ecs.ECS) {
	count := 0
	tags.Creature.Each(ecs.World, func(e *donburi.Entry) {
		count++
		creature := components.Creature.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		dir := gamemath.Sign(math.Cos(creature.Heading))
		// Stopped by something other than a wall bounce
		if physics.SpeedX == 0 {
			physics.SpeedX = -dir * cfg.Creature.Speed
		}
		if physics.OnGround != nil && firstSolid(obj.Object, math.Copysign(obj.W, physics.SpeedX), 2) == nil {
			physics.SpeedX = -physics.SpeedX
		}

		creature.Heading = math.Atan2(physics.SpeedY, physics.SpeedX)
	})

	level := levelData(ecs)
	if level == nil || count >= cfg.Creature.Count || level.Step%uint64(cfg.Creature.Respawn) != 0 {
		return
	}
	spawns := level.Arena.Spawns(leveldata.SpawnCreature)
	if len(spawns) == 0 {
		return
	}
	sp := spawns[level.Rand.Intn(len(spawns))]
	factory.CreateCreature(ecs, sp.X, sp.Y, level.Rand.Float64() < 0.5)
}
