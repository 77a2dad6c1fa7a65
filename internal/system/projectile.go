// internal/system/projectile.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
)

// MissileSystem двигает перехватчики. Долетевший перехватчик
// взрывается в точке прицеливания; сам по себе он никому не вредит.
type MissileSystem struct {
	world *entity.World
}

func NewMissileSystem(world *entity.World) *MissileSystem {
	return &MissileSystem{world: world}
}

func (s *MissileSystem) Update() {
	missiles := s.world.Missiles
	survivors := make([]*component.Projectile, 0, len(missiles))
	for _, m := range missiles {
		if StepProjectile(m) {
			s.world.Explosions = append(s.world.Explosions,
				s.world.NewExplosion(m.Target, config.ExplosionMaxRadius, component.ExplosionInterceptor))
			continue
		}
		survivors = append(survivors, m)
	}
	s.world.Missiles = survivors
}
