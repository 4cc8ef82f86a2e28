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

// CreatePlayer spawns bot number index standing at (x, y). Timers are
// staggered by index so the bots do not jump and warp in lockstep.
func CreatePlayer(ecs *ecs.ECS, index int, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	if !claimSlot(ecs, player, cfg.KindPlayer) {
		return nil
	}

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x, y-h, w, h)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player

	direction := 1.0
	if index%2 == 1 {
		direction = -1
	}
	stagger := index * 17
	components.Player.SetValue(player, components.PlayerData{
		Index:     index,
		Direction: direction,
		OldX:      obj.X,
		OldY:      obj.Y,
		JumpTimer: cfg.Player.JumpInterval - stagger%cfg.Player.JumpInterval,
		TurnTimer: cfg.Player.TurnInterval - stagger%cfg.Player.TurnInterval,
		WarpTimer: cfg.Player.WarpInterval + stagger*5,
		FireTimer: cfg.Player.FireInterval + index*3,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  cfg.Player.Gravity,
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
	})

	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, obj)

	return player
}
