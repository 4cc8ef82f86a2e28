// Package leveldata provides TMX arena parsing.
// It has no dependencies on ebitengine, donburi or resolv, pure data only.
package leveldata

// Spawn kinds recognised in the Spawns object group.
const (
	SpawnPlayer   = "player"
	SpawnCreature = "creature"
)

// CollisionData holds all collision-relevant data parsed from a TMX level file.
type CollisionData struct {
	Name        string
	SolidRects  []SolidRect
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
	TileSize    int
}

// SolidRect represents a solid collision tile.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint represents a spawn location for one entity kind.
type SpawnPoint struct {
	X, Y  float64
	Kind  string
	Index int
}

// Spawns returns the spawn points of the given kind, in map order.
func (d *CollisionData) Spawns(kind string) []SpawnPoint {
	var out []SpawnPoint
	for _, s := range d.SpawnPoints {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}
