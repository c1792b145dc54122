package factory

import (
	"github.com/automoto/ripoff/archetypes"
	"github.com/automoto/ripoff/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBulletPool allocates a machine's bullets. They stay dormant
// (Life == 0) until fired.
func CreateBulletPool(ecs *ecs.ECS, owner *donburi.Entry, count int, speed, lifespan float64) []*donburi.Entry {
	pool := make([]*donburi.Entry, 0, count)
	for i := 0; i < count; i++ {
		b := archetypes.Bullet.Spawn(ecs)
		components.Bullet.SetValue(b, components.BulletData{
			Owner:    owner,
			Speed:    speed,
			Lifespan: lifespan,
		})
		pool = append(pool, b)
	}
	return pool
}
