package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Crate     = donburi.NewTag().SetName("Crate")
	Robber    = donburi.NewTag().SetName("Robber")
	Killer    = donburi.NewTag().SetName("Killer")
	Bullet    = donburi.NewTag().SetName("Bullet")
	Explosion = donburi.NewTag().SetName("Explosion")
)

// Resolv tags for broadphase queries
const (
	ResolvPlayer = "player"
	ResolvCrate  = "crate"
	ResolvRobber = "robber"
	ResolvKiller = "killer"
	ResolvSweep  = "sweep"
)
