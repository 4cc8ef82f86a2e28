package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from the arena map.
const (
	SolidLayer = "solid"
	SpawnGroup = "Spawns"
)

// LoadCollisionData parses a TMX file and returns collision data (solid tiles
// and spawn points). It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CollisionData{
		Name:      strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
		TileSize:  levelMap.TileWidth,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		found = true
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				data.SolidRects = append(data.SolidRects, SolidRect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("TMX %s: no %q layer", tmxPath, SolidLayer)
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			kind := o.Properties.GetString("kind")
			if kind == "" {
				continue
			}
			data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
				X:     o.X,
				Y:     o.Y,
				Kind:  kind,
				Index: o.Properties.GetInt("spawnIndex"),
			})
		}
	}

	// Stable order per kind regardless of object ids in the file
	sort.SliceStable(data.SpawnPoints, func(i, j int) bool {
		a, b := data.SpawnPoints[i], data.SpawnPoints[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Index < b.Index
	})

	if len(data.Spawns(SpawnPlayer)) == 0 {
		return nil, fmt.Errorf("TMX %s: no player spawn points", tmxPath)
	}
	return data, nil
}
