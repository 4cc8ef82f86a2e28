package systems

import (
	"math"

	"github.com/automoto/doomerang-interp/components"
	"github.com/automoto/doomerang-interp/config"
	"github.com/automoto/doomerang-interp/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// FollowCamera centers the camera on the first bot. It is the first renderer
// so it reads the blended position, and the view moves as smoothly as the
// bot does.
func FollowCamera(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	level := levelData(ecs)
	if level == nil {
		return
	}
	obj := components.Object.Get(playerEntry)

	targetX := obj.X + obj.W/2
	targetY := obj.Y + obj.H/2

	// Camera bounds: ensure the level always fills the screen
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	minCameraX := screenWidth / 2
	maxCameraX := math.Max(minCameraX, float64(level.Arena.MapWidth)-screenWidth/2)
	minCameraY := screenHeight / 2
	maxCameraY := math.Max(minCameraY, float64(level.Arena.MapHeight)-screenHeight/2)

	camera.Position.X = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	camera.Position.Y = math.Max(minCameraY, math.Min(maxCameraY, targetY))
}

// cameraOffset returns the translation from world to screen space.
func cameraOffset(ecs *ecs.ECS, screen *ebiten.Image) (float64, float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y
}
