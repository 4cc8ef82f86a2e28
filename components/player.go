package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Index     int
	Direction float64 // -1 left, 1 right
	Lean      float64 // radians
	ArmAngle  float64 // radians, kept in (-π, π]

	// OldX/OldY is the position before the last step, drawn as a motion smear.
	OldX, OldY float64

	JumpTimer int
	TurnTimer int
	WarpTimer int
	FireTimer int
	DustTimer int

	Score int
}

var Player = donburi.NewComponentType[PlayerData]()
