package systems

import (
	"github.com/automoto/doomerang-interp/components"
	cfg "github.com/automoto/doomerang-interp/config"
	"github.com/automoto/doomerang-interp/interp"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// ghostSize is the side of the keyframe markers, in pixels.
const ghostSize = 4

// DrawDebug overlays the keyframes of every tracked slot: a cyan mark at the
// Begin position, a magenta one at End and a yellow ring on slots drawn at
// their real position this frame.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsDebugEnabled(ecs) {
		return
	}
	interpEntry, ok := components.Interp.First(ecs.World)
	if !ok {
		return
	}
	engine := components.Interp.Get(interpEntry).Engine
	if !engine.Enabled() || engine.Frame().State != interp.Tracking {
		return
	}

	store := engine.Store()
	v := newViewport(ecs, screen)
	for k := range cfg.Kinds {
		kind := interp.Kind(k)
		// Dust is too dense to read
		if kind == cfg.KindDust {
			continue
		}
		for i := 0; i < store.Captured(kind); i++ {
			drawGhosts(screen, v, store, kind, i)
		}
	}
}

func drawGhosts(screen *ebiten.Image, v viewport, store *interp.Store, kind interp.Kind, i int) {
	if !store.AliveEnd(kind, i) {
		return
	}
	ex, ey := store.End(kind, i, interp.FieldX), store.End(kind, i, interp.FieldY)
	if !v.visible(ex, ey, 0, 0) {
		return
	}
	x, y := v.at(ex, ey)
	vector.FillRect(screen, x-ghostSize/2, y-ghostSize/2, ghostSize, ghostSize, cfg.GhostEnd, false)

	if store.AliveBegin(kind, i) {
		bx, by := v.at(store.Begin(kind, i, interp.FieldX), store.Begin(kind, i, interp.FieldY))
		vector.FillRect(screen, bx-ghostSize/2, by-ghostSize/2, ghostSize, ghostSize, cfg.GhostBegin, false)
		vector.StrokeLine(screen, bx, by, x, y, 1, cfg.GhostBegin, false)
	}
	if store.Skipped(kind, i) {
		vector.StrokeCircle(screen, x, y, ghostSize*2, 1, cfg.SkipMarker, true)
	}
}
