package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Wall       = donburi.NewTag().SetName("Wall")
	Creature   = donburi.NewTag().SetName("Creature")
	Projectile = donburi.NewTag().SetName("Projectile")
	Pickup     = donburi.NewTag().SetName("Pickup")
	Dust       = donburi.NewTag().SetName("Dust")
	FloatText  = donburi.NewTag().SetName("FloatText")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "Player"
	ResolvCreature   = "Creature"
	ResolvProjectile = "Projectile"
	ResolvPickup     = "Pickup"
)
