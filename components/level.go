package components

import (
	"math/rand"

	"github.com/automoto/doomerang-interp/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Arena *leveldata.CollisionData
	// Step counts simulation steps since the session was loaded.
	Step uint64
	// Rand drives every random choice of the session, seeded from the config
	// so a reload replays the same arena.
	Rand *rand.Rand
}

var Level = donburi.NewComponentType[LevelData]()
