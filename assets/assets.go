package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/doomerang-interp/config"
	"github.com/automoto/doomerang-interp/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS exposes the embedded asset tree.
func FS() fs.FS {
	return assetFS
}

// LoadArena parses the configured arena map.
func LoadArena() (*leveldata.CollisionData, error) {
	data, err := leveldata.LoadCollisionData(assetFS, config.LevelPath)
	if err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}
	return data, nil
}
