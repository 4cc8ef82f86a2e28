package systems

import (
	"github.com/automoto/doomerang-interp/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes the space cells of everything that moves. Walls are
// static and never need it.
func UpdateObjects(ecs *ecs.ECS) {
	components.Slot.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		components.Object.Get(e).Update()
	})
}
