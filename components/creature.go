package components

import "github.com/yohamta/donburi"

type CreatureData struct {
	Heading float64 // radians, direction of travel
	Health  int
}

var Creature = donburi.NewComponentType[CreatureData]()
