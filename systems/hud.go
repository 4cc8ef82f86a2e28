package systems

import (
	"fmt"

	"github.com/automoto/doomerang-interp/components"
	cfg "github.com/automoto/doomerang-interp/config"
	"github.com/automoto/doomerang-interp/fonts"
	"github.com/automoto/doomerang-interp/tags"
	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 6
	hudLineHeight = 14
	hudWidth      = 230
)

// DrawHUD renders engine and loop counters in the top-left corner and bot
// scores in the top-right one.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	interpEntry, ok := components.Interp.First(ecs.World)
	if !ok {
		return
	}
	data := components.Interp.Get(interpEntry)
	face := fonts.HUD.Get()

	lines := hudLines(ecs, data)
	vector.FillRect(screen, hudMargin-2, hudMargin-2, hudWidth, float32(len(lines)*hudLineHeight+6), cfg.BlackOverlay, false)
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*hudLineHeight-3, cfg.White)
	}

	drawScores(ecs, screen)
}

func hudLines(ecs *ecs.ECS, data *components.InterpData) []string {
	st := data.Engine.Stats()
	loop := data.Loop.Stats()
	settings := GetOrCreateSettings(ecs)

	mode := "off"
	if st.Enabled {
		mode = fmt.Sprintf("%s t=%.2f", st.Frame.State, st.Frame.T)
	}
	lag := ""
	if loop.Lagging {
		lag = " LAG"
	}

	return []string{
		fmt.Sprintf("interp %s  [F1]", mode),
		fmt.Sprintf("blended %s  snapped %s", humanize.Comma(int64(st.Applied)), humanize.Comma(int64(st.Skipped))),
		fmt.Sprintf("teleport %.0fpx  [F3/F4]", settings.TeleportDistance),
		fmt.Sprintf("steps %s  frames %s%s", humanize.Comma(int64(loop.Steps)), humanize.Comma(int64(loop.Frames)), lag),
		fmt.Sprintf("suppressed %s  resets %d", humanize.Comma(int64(loop.Suppressed)), st.Resets),
		fmt.Sprintf("entities %s  tps %.0f fps %.0f", humanize.Comma(int64(liveSlots(ecs))), ebiten.ActualTPS(), ebiten.ActualFPS()),
	}
}

// liveSlots counts occupied interpolation slots across kinds.
func liveSlots(ecs *ecs.ECS) int {
	tablesEntry, ok := components.SlotTables.First(ecs.World)
	if !ok {
		return 0
	}
	n := 0
	for _, t := range components.SlotTables.Get(tablesEntry).Tables {
		n += t.Live()
	}
	return n
}

func drawScores(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Small.Get()
	row := 0
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		c := cfg.PlayerColors[player.Index%len(cfg.PlayerColors)]
		s := fmt.Sprintf("P%d %s", player.Index+1, humanize.Comma(int64(player.Score)))
		x := screen.Bounds().Dx() - 70
		text.Draw(screen, s, face, x, hudMargin+(row+1)*12, c)
		row++
	})
}
