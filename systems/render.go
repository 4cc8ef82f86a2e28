package systems

import (
	"image/color"
	"math"

	"github.com/automoto/doomerang-interp/components"
	cfg "github.com/automoto/doomerang-interp/config"
	"github.com/automoto/doomerang-interp/fonts"
	"github.com/automoto/doomerang-interp/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Everything below draws straight from the live components. While a frame is
// being rendered those hold blended values, so none of these renderers know
// about interpolation.

// viewport is the visible world rectangle plus the world to screen offset.
type viewport struct {
	camX, camY             float64
	minX, maxX, minY, maxY float64
}

// cullPadding keeps shapes from popping at the screen edges.
const cullPadding = 32.0

func newViewport(ecs *ecs.ECS, screen *ebiten.Image) viewport {
	camX, camY := cameraOffset(ecs, screen)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return viewport{
		camX: camX,
		camY: camY,
		minX: -camX - cullPadding,
		maxX: -camX + width + cullPadding,
		minY: -camY - cullPadding,
		maxY: -camY + height + cullPadding,
	}
}

func (v viewport) visible(x, y, w, h float64) bool {
	return x+w >= v.minX && x <= v.maxX && y+h >= v.minY && y <= v.maxY
}

func (v viewport) at(x, y float64) (float32, float32) {
	return float32(x + v.camX), float32(y + v.camY)
}

// fade scales c to alpha a, keeping it premultiplied.
func fade(c color.RGBA, a uint8) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(a) / 255),
		G: uint8(uint16(c.G) * uint16(a) / 255),
		B: uint8(uint16(c.B) * uint16(a) / 255),
		A: a,
	}
}

// DrawLevel clears the screen and draws the arena solids.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)
	v := newViewport(ecs, screen)

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !v.visible(o.X, o.Y, o.W, o.H) {
			return
		}
		x, y := v.at(o.X, o.Y)
		vector.FillRect(screen, x, y, float32(o.W), float32(o.H), cfg.Grey, false)
	})
}

// DrawEntities draws every interpolated kind, back to front.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	v := newViewport(ecs, screen)
	drawPickups(ecs, screen, v)
	drawCreatures(ecs, screen, v)
	drawProjectiles(ecs, screen, v)
	drawPlayers(ecs, screen, v)
	drawDust(ecs, screen, v)
	drawFloatingText(ecs, screen, v)
}

func drawPickups(ecs *ecs.ECS, screen *ebiten.Image, v viewport) {
	tags.Pickup.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !v.visible(o.X, o.Y, o.W, o.H) {
			return
		}
		x, y := v.at(o.X+o.W/2, o.Y+o.H/2)
		vector.FillCircle(screen, x, y, float32(o.W/2), cfg.Yellow, true)
	})
}

func drawCreatures(ecs *ecs.ECS, screen *ebiten.Image, v viewport) {
	tags.Creature.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !v.visible(o.X, o.Y, o.W, o.H) {
			return
		}
		creature := components.Creature.Get(e)
		x, y := v.at(o.X, o.Y)
		vector.FillRect(screen, x, y, float32(o.W), float32(o.H), cfg.Purple, false)

		// Heading whisker
		cx, cy := o.X+o.W/2, o.Y+o.H/2
		x0, y0 := v.at(cx, cy)
		x1, y1 := v.at(cx+math.Cos(creature.Heading)*o.W, cy+math.Sin(creature.Heading)*o.W)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, cfg.White, true)
	})
}

func drawProjectiles(ecs *ecs.ECS, screen *ebiten.Image, v viewport) {
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !v.visible(o.X, o.Y, o.W, o.H) {
			return
		}
		r := float32(o.W / 2)

		// Afterimages, oldest first
		trail := components.Trail.Get(e)
		for j := trail.Len - 1; j >= 0; j-- {
			p := trail.At(j)
			a := uint8(160 * (trail.Len - j) / (trail.Len + 1))
			x, y := v.at(p.X+o.W/2, p.Y+o.H/2)
			vector.FillCircle(screen, x, y, r*0.8, fade(cfg.Orange, a), true)
		}

		x, y := v.at(o.X+o.W/2, o.Y+o.H/2)
		vector.FillCircle(screen, x, y, r, cfg.Orange, true)
	})
}

func drawPlayers(ecs *ecs.ECS, screen *ebiten.Image, v viewport) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !v.visible(o.X, o.Y, o.W, o.H) {
			return
		}
		player := components.Player.Get(e)
		c := cfg.PlayerColors[player.Index%len(cfg.PlayerColors)]

		// Motion smear from the previous position
		sx, sy := v.at(player.OldX, player.OldY)
		vector.FillRect(screen, sx, sy, float32(o.W), float32(o.H), fade(c, 60), false)

		// Body leans about the feet
		fx, fy := o.X+o.W/2, o.Y+o.H
		hx := fx + math.Sin(player.Lean)*o.H
		hy := fy - math.Cos(player.Lean)*o.H
		x0, y0 := v.at(fx, fy)
		x1, y1 := v.at(hx, hy)
		vector.StrokeLine(screen, x0, y0, x1, y1, float32(o.W), c, true)

		// Arm from the shoulder
		shx := fx + (hx-fx)*0.7
		shy := fy + (hy-fy)*0.7
		ax0, ay0 := v.at(shx, shy)
		ax1, ay1 := v.at(shx+math.Cos(player.ArmAngle)*o.W, shy+math.Sin(player.ArmAngle)*o.W)
		vector.StrokeLine(screen, ax0, ay0, ax1, ay1, 2, cfg.White, true)
	})
}

func drawDust(ecs *ecs.ECS, screen *ebiten.Image, v viewport) {
	size := cfg.Effects.DustSize
	components.Dust.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		if !v.visible(pos.X-size, pos.Y-size, size*2, size*2) {
			return
		}
		dust := components.Dust.Get(e)
		dx, dy := math.Cos(dust.Spin)*size, math.Sin(dust.Spin)*size
		x0, y0 := v.at(pos.X-dx, pos.Y-dy)
		x1, y1 := v.at(pos.X+dx, pos.Y+dy)
		c := cfg.LightBlue
		if e.HasComponent(components.ParentLink) {
			c = cfg.White
		}
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, fade(c, 180), true)
	})
}

func drawFloatingText(ecs *ecs.ECS, screen *ebiten.Image, v viewport) {
	face := fonts.Float.Get()
	components.FloatingText.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		if !v.visible(pos.X, pos.Y, 0, 0) {
			return
		}
		ft := components.FloatingText.Get(e)
		bounds := text.BoundString(face, ft.Text)
		x, y := v.at(pos.X, pos.Y)
		text.Draw(screen, ft.Text, face, int(x)-bounds.Dx()/2, int(y), cfg.White)
	})
}
