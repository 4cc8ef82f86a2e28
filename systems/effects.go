package systems

import (
	"github.com/automoto/doomerang-interp/components"
	cfg "github.com/automoto/doomerang-interp/config"
	"github.com/automoto/doomerang-interp/shared/gamemath"
	"github.com/automoto/doomerang-interp/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// dustGravity pulls free dust down, per step.
const dustGravity = 0.02

// UpdateEffects processes decorations: dust, floating text and auto-destroy.
func UpdateEffects(ecs *ecs.ECS) {
	updateDust(ecs)
	updateFloatingText(ecs)
	updateAutoDestroy(ecs)
}

// updateDust moves linked dust with its parent and free dust along its own
// velocity. Dust whose parent is gone is released to drift.
func updateDust(ecs *ecs.ECS) {
	var orphaned []*donburi.Entry

	components.Dust.Each(ecs.World, func(e *donburi.Entry) {
		dust := components.Dust.Get(e)
		pos := components.Position.Get(e)
		dust.Spin = gamemath.WrapAngle(dust.Spin + dust.SpinRate)

		if e.HasComponent(components.ParentLink) {
			link := components.ParentLink.Get(e)
			if ecs.World.Valid(link.Parent) {
				parent := components.Object.Get(ecs.World.Entry(link.Parent))
				pos.X = parent.X + link.OffsetX
				pos.Y = parent.Y + link.OffsetY
				return
			}
			orphaned = append(orphaned, e)
		}

		dust.VY += dustGravity
		pos.X += dust.VX
		pos.Y += dust.VY
	})

	for _, e := range orphaned {
		e.RemoveComponent(components.ParentLink)
	}
}

func updateFloatingText(ecs *ecs.ECS) {
	var done []*donburi.Entry
	dt := float32(1) / float32(cfg.Loop.TPS)

	components.FloatingText.Each(ecs.World, func(e *donburi.Entry) {
		ft := components.FloatingText.Get(e)
		rise, finished := ft.Rise.Update(dt)
		components.Position.Get(e).Y = ft.BaseY - float64(rise)
		if finished {
			ft.Done = true
			done = append(done, e)
		}
	})

	for _, e := range done {
		factory.Destroy(ecs, e)
	}
}

// updateAutoDestroy removes entities whose countdown ran out
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		if ad.FramesRemaining > 0 {
			ad.FramesRemaining--
			if ad.FramesRemaining <= 0 {
				toDestroy = append(toDestroy, e)
			}
		}
	})

	for _, e := range toDestroy {
		factory.Destroy(ecs, e)
	}
}
