package systems

import (
	"github.com/automoto/doomerang-interp/components"
	cfg "github.com/automoto/doomerang-interp/config"
	"github.com/yohamta/donburi/ecs"
)

// teleportStep is how far F3 and F4 move the teleport threshold.
const teleportStep = 16.0

// GetOrCreateSettings returns the singleton Settings component, creating it
// from the current configuration if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Interpolate:      cfg.Interp.Enabled,
			Debug:            cfg.Debug.Overlay,
			TeleportDistance: cfg.Interp.TeleportDistance,
		})
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}

// IsDebugEnabled reports whether the debug overlay is on.
func IsDebugEnabled(e *ecs.ECS) bool {
	return GetOrCreateSettings(e).Debug
}

// AdjustTeleportDistance moves the threshold by steps notches, never below one
// notch.
func AdjustTeleportDistance(s *components.SettingsData, steps int) {
	s.TeleportDistance += float64(steps) * teleportStep
	if s.TeleportDistance < teleportStep {
		s.TeleportDistance = teleportStep
	}
}
