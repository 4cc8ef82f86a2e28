package components

import "github.com/yohamta/donburi"

// SettingsData is the singleton holding runtime toggles.
type SettingsData struct {
	Interpolate      bool
	Debug            bool
	TeleportDistance float64
	// ReloadRequested asks the scene to unload and reload the session.
	ReloadRequested bool
}

var Settings = donburi.NewComponentType[SettingsData]()
