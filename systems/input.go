package systems

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput reads the debug keys. The scene calls it once per host update,
// outside the simulation steps, so a press toggles exactly once however many
// steps the update runs.
//
//	F1  interpolation on/off
//	F2  debug overlay
//	F3  lower the teleport threshold
//	F4  raise the teleport threshold
//	F5  reload the session
func UpdateInput(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	changed := false

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		settings.Interpolate = !settings.Interpolate
		log.Printf("[sandbox] interpolation %v", settings.Interpolate)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		settings.Debug = !settings.Debug
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		AdjustTeleportDistance(settings, -1)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		AdjustTeleportDistance(settings, 1)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		settings.ReloadRequested = true
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}
