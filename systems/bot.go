package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/doomerang-interp/components"
	cfg "github.com/automoto/doomerang-interp/config"
	"github.com/automoto/doomerang-interp/shared/gamemath"
	"github.com/automoto/doomerang-interp/shared/leveldata"
	"github.com/automoto/doomerang-interp/systems/factory"
	"github.com/automoto/doomerang-interp/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBots drives every player. Bots run back and forth, jump on a timer,
// swing their arm in a full circle, shoot along it and now and then warp to
// another spawn point.
func UpdateBots(e *ecs.ECS) {
	level := levelData(e)
	if level == nil {
		return
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		updateBot(e, entry, level)
	})
}

func updateBot(e *ecs.ECS, entry *donburi.Entry, level *components.LevelData) {
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry)
	rng := level.Rand

	// Position before this step, drawn as the motion smear
	player.OldX, player.OldY = obj.X, obj.Y

	player.TurnTimer--
	if player.TurnTimer <= 0 || firstSolid(obj.Object, player.Direction*2, 0) != nil {
		player.Direction = -player.Direction
		player.TurnTimer = cfg.Player.TurnInterval/2 + rng.Intn(cfg.Player.TurnInterval)
	}
	physics.SpeedX += player.Direction * cfg.Player.Acceleration

	player.JumpTimer--
	if player.JumpTimer <= 0 && physics.OnGround != nil {
		physics.SpeedY = -cfg.Player.JumpSpeed
		player.JumpTimer = cfg.Player.JumpInterval/2 + rng.Intn(cfg.Player.JumpInterval)
	}

	player.WarpTimer--
	if player.WarpTimer <= 0 {
		warpBot(e, entry, level)
		player.WarpTimer = cfg.Player.WarpInterval/2 + rng.Intn(cfg.Player.WarpInterval)
	}

	player.ArmAngle = gamemath.WrapAngle(player.ArmAngle + player.Direction*cfg.Player.ArmSpeed)
	player.Lean = gamemath.Clamp(physics.SpeedX*cfg.Player.LeanFactor, -cfg.Player.MaxLean, cfg.Player.MaxLean)

	player.FireTimer--
	if player.FireTimer <= 0 {
		factory.CreateProjectile(e, entry, player.ArmAngle)
		player.FireTimer = cfg.Player.FireInterval
	}

	player.DustTimer--
	if player.DustTimer <= 0 && physics.OnGround != nil && math.Abs(physics.SpeedX) > 1 {
		emitFootDust(e, entry, rng)
		player.DustTimer = cfg.Player.DustInterval
	}
}

// warpBot moves a bot to a different player spawn point, keeping its
// velocity. The jump is far larger than anything the velocity explains.
func warpBot(e *ecs.ECS, entry *donburi.Entry, level *components.LevelData) {
	spawns := level.Arena.Spawns(leveldata.SpawnPlayer)
	if len(spawns) < 2 {
		return
	}
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)

	sp := spawns[level.Rand.Intn(len(spawns))]
	if math.Abs(sp.X-obj.X) < obj.W*2 {
		sp = spawns[(sp.Index+1)%len(spawns)]
	}
	burstDust(e, obj.X+obj.W/2, obj.Y+obj.H/2, level.Rand)

	obj.X = sp.X
	obj.Y = sp.Y - obj.H
	player.OldX, player.OldY = obj.X, obj.Y
}

func emitFootDust(e *ecs.ECS, entry *donburi.Entry, rng *rand.Rand) {
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)
	x := obj.X + obj.W/2 - player.Direction*obj.W/2
	y := obj.Y + obj.H - 2

	if rng.Float64() < cfg.Effects.LinkedDustRatio {
		factory.CreateDust(e, x, y, 0, 0, entry)
		return
	}
	factory.CreateDust(e, x, y, -player.Direction*(0.3+rng.Float64()*0.5), -0.2-rng.Float64()*0.4, nil)
}

// burstDust throws free particles outward from (x, y).
func burstDust(e *ecs.ECS, x, y float64, rng *rand.Rand) {
	for i := 0; i < cfg.Effects.FreeDustBurst; i++ {
		a := rng.Float64() * 2 * math.Pi
		speed := 0.5 + rng.Float64()
		factory.CreateDust(e, x, y, math.Cos(a)*speed, math.Sin(a)*speed, nil)
	}
}
