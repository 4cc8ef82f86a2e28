package scenes

import (
	"github.com/automoto/doomerang-interp/interp"
	"github.com/hajimehoshi/ebiten/v2"
)

// ebitenTiming hands ebiten's frame pacing to the interpolation engine. A
// fixed step host has Update and Draw tied to the TPS; with SyncWithFPS one
// Update runs per frame and the host loop decides how many steps it holds.
type ebitenTiming struct{}

func (ebitenTiming) Current() interp.TimingState {
	tps := ebiten.TPS()
	return interp.TimingState{
		FixedStep: tps != ebiten.SyncWithFPS,
		TPS:       tps,
		Vsync:     ebiten.IsVsyncEnabled(),
	}
}

func (ebitenTiming) Apply(s interp.TimingState) {
	ebiten.SetVsyncEnabled(s.Vsync)
	if s.FixedStep && s.TPS > 0 {
		ebiten.SetTPS(s.TPS)
		return
	}
	ebiten.SetTPS(ebiten.SyncWithFPS)
}

// deviceReady holds rendering while the window is minimized.
func deviceReady() bool {
	return !ebiten.IsWindowMinimized()
}
