package factory

import (
	"github.com/automoto/doomerang-interp/archetypes"
	"github.com/automoto/doomerang-interp/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	data := &components.CameraData{}
	data.Position.X, data.Position.Y = x, y
	components.Camera.Set(camera, data)
}
