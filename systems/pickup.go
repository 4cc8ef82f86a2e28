package systems

import (
	"strconv"

	"github.com/automoto/doomerang-interp/components"
	"github.com/automoto/doomerang-interp/systems/factory"
	"github.com/automoto/doomerang-interp/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups hands pickups to the first player touching them.
func UpdatePickups(ecs *ecs.ECS) {
	var collected []*donburi.Entry

	tags.Pickup.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		check := obj.Check(0, 0, tags.ResolvPlayer)
		if check == nil {
			return
		}
		for _, o := range check.ObjectsByTags(tags.ResolvPlayer) {
			player, ok := o.Data.(*donburi.Entry)
			if !ok || !overlaps(obj.Object, o, 0, 0) {
				continue
			}
			value := components.Pickup.Get(e).Value
			components.Player.Get(player).Score += value
			factory.CreateFloatingText(ecs, obj.X+obj.W/2, obj.Y, "+"+strconv.Itoa(value))
			collected = append(collected, e)
			return
		}
	})

	for _, e := range collected {
		factory.Destroy(ecs, e)
	}
}
