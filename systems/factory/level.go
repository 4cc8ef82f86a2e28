package factory

import (
	"math/rand"

	"github.com/automoto/doomerang-interp/archetypes"
	"github.com/automoto/doomerang-interp/components"
	cfg "github.com/automoto/doomerang-interp/config"
	"github.com/automoto/doomerang-interp/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds a session around arena: the level singleton holding the
// slot tables, the collision space, one wall per solid rect, the camera, the
// bots and the starting creatures.
func CreateLevel(ecs *ecs.ECS, arena *leveldata.CollisionData, tables *components.SlotTablesData) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Arena: arena,
		Rand:  rand.New(rand.NewSource(cfg.Debug.Seed)),
	})
	for _, t := range tables.Tables {
		t.Reset()
	}
	components.SlotTables.Set(level, tables)

	CreateSpace(ecs, arena.MapWidth, arena.MapHeight, arena.TileSize, arena.TileSize)
	for _, r := range arena.SolidRects {
		CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}

	players := arena.Spawns(leveldata.SpawnPlayer)
	for i := 0; i < cfg.Player.Count && i < len(players); i++ {
		CreatePlayer(ecs, i, players[i].X, players[i].Y)
	}

	if creatures := arena.Spawns(leveldata.SpawnCreature); len(creatures) > 0 {
		rng := components.Level.Get(level).Rand
		for i := 0; i < cfg.Creature.Count; i++ {
			sp := creatures[i%len(creatures)]
			CreateCreature(ecs, sp.X+rng.Float64()*32-16, sp.Y, rng.Float64() < 0.5)
		}
	}

	camX, camY := float64(arena.MapWidth)/2, float64(arena.MapHeight)/2
	if len(players) > 0 {
		camX, camY = players[0].X, players[0].Y
	}
	CreateCamera(ecs, camX, camY)

	return level
}
