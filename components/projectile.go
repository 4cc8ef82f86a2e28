package components

import (
	"github.com/automoto/doomerang-interp/config"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Heading float64
	Owner   donburi.Entity
	Damage  int
}

var Projectile = donburi.NewComponentType[ProjectileData]()

// TrailData is a ring of past positions drawn as afterimages. Sample 0 is the
// most recent.
type TrailData struct {
	Points [config.TrailLength]Vector
	Len    int
	head   int
}

// Push records p as the newest sample, dropping the oldest when full.
func (t *TrailData) Push(p Vector) {
	t.head = (t.head + len(t.Points) - 1) % len(t.Points)
	t.Points[t.head] = p
	if t.Len < len(t.Points) {
		t.Len++
	}
}

// At returns sample j, 0 being the newest.
func (t *TrailData) At(j int) *Vector {
	return &t.Points[(t.head+j)%len(t.Points)]
}

var Trail = donburi.NewComponentType[TrailData]()
