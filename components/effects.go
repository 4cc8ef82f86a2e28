package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int // steps until destruction
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// PositionData places entities that have no collision object.
type PositionData struct {
	X, Y float64
}

var Position = donburi.NewComponentType[PositionData]()

// DustData is a short lived spinning particle.
type DustData struct {
	VX, VY   float64
	Spin     float64
	SpinRate float64
}

var Dust = donburi.NewComponentType[DustData]()

// FloatingTextData is a label that rises and fades above where it spawned.
type FloatingTextData struct {
	Text  string
	BaseY float64
	Rise  *gween.Tween
	Done  bool
}

var FloatingText = donburi.NewComponentType[FloatingTextData]()
