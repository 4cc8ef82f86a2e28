package factory

import (
	"log"

	"github.com/automoto/doomerang-interp/components"
	cfg "github.com/automoto/doomerang-interp/config"
	"github.com/automoto/doomerang-interp/interp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fullWarned remembers which kinds already logged running out of slots.
var fullWarned [cfg.KindCount]bool

// claimSlot gives e an interpolation slot of kind k. It returns false when the
// kind is at capacity, in which case the caller discards e.
func claimSlot(ecs *ecs.ECS, e *donburi.Entry, k interp.Kind) bool {
	tablesEntry, ok := components.SlotTables.First(ecs.World)
	if !ok {
		return false
	}
	i, ok := components.SlotTables.Get(tablesEntry).Table(k).Acquire(e.Entity())
	if !ok {
		if !fullWarned[k] {
			fullWarned[k] = true
			log.Printf("[sandbox] %s slots full (%d), dropping spawns", cfg.Kinds[k].Name, cfg.Kinds[k].Max)
		}
		e.Remove()
		return false
	}
	components.Slot.SetValue(e, components.SlotData{Kind: k, Index: i})
	return true
}

// Destroy releases e's slot, takes it out of the collision space and removes
// it from the world.
func Destroy(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Slot) {
		if tablesEntry, ok := components.SlotTables.First(ecs.World); ok {
			slot := components.Slot.Get(e)
			components.SlotTables.Get(tablesEntry).Table(slot.Kind).Release(slot.Index)
		}
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	e.Remove()
}
