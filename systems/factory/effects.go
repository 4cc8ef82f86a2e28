package factory

import (
	"github.com/automoto/doomerang-interp/archetypes"
	"github.com/automoto/doomerang-interp/components"
	cfg "github.com/automoto/doomerang-interp/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFloatingText spawns a label at (x, y) that rises and then expires.
func CreateFloatingText(ecs *ecs.ECS, x, y float64, text string) *donburi.Entry {
	label := archetypes.FloatingText.Spawn(ecs)
	if !claimSlot(ecs, label, cfg.KindFloatingText) {
		return nil
	}

	components.Position.SetValue(label, components.PositionData{X: x, Y: y})
	components.FloatingText.SetValue(label, components.FloatingTextData{
		Text:  text,
		BaseY: y,
		Rise:  gween.New(0, float32(cfg.Effects.FloatTextRise), cfg.Effects.FloatTextDuration, ease.OutCubic),
	})
	return label
}

// CreateDust spawns a particle at (x, y). With a non-nil parent the particle
// is linked: it keeps its offset from the parent and is drawn with the
// parent's interpolation delta. Without one it drifts with (vx, vy).
func CreateDust(ecs *ecs.ECS, x, y, vx, vy float64, parent *donburi.Entry) *donburi.Entry {
	dust := archetypes.Dust.Spawn(ecs)
	if !claimSlot(ecs, dust, cfg.KindDust) {
		return nil
	}

	components.Position.SetValue(dust, components.PositionData{X: x, Y: y})
	spinRate := cfg.Effects.DustSpinRate
	if vx < 0 {
		spinRate = -spinRate
	}
	components.Dust.SetValue(dust, components.DustData{
		VX:       vx,
		VY:       vy,
		SpinRate: spinRate,
	})
	components.AutoDestroy.SetValue(dust, components.AutoDestroyData{
		FramesRemaining: cfg.Effects.DustLife,
	})

	if parent != nil && parent.HasComponent(components.Object) {
		pobj := components.Object.Get(parent)
		dust.AddComponent(components.ParentLink)
		components.ParentLink.SetValue(dust, components.ParentLinkData{
			Parent:  parent.Entity(),
			OffsetX: x - pobj.X,
			OffsetY: y - pobj.Y,
		})
	}
	return dust
}
