package systems

import (
	"github.com/automoto/doomerang-interp/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevel advances the session step counter. It runs first in every step.
func UpdateLevel(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	components.Level.Get(levelEntry).Step++
}

func levelData(ecs *ecs.ECS) *components.LevelData {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(levelEntry)
}
