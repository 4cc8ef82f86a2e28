package components

import (
	"github.com/automoto/doomerang-interp/host"
	"github.com/automoto/doomerang-interp/interp"
	"github.com/yohamta/donburi"
)

// InterpData lets renderers reach the session's interpolation engine and host
// loop for stats and the debug overlay.
type InterpData struct {
	Engine *interp.Engine
	Loop   *host.Loop
}

var Interp = donburi.NewComponentType[InterpData]()
