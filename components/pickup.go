package components

import "github.com/yohamta/donburi"

type PickupData struct {
	Value int
}

var Pickup = donburi.NewComponentType[PickupData]()
