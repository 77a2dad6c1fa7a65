// internal/system/rocket.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/utils"
)

// RocketSystem двигает вражеские ракеты и обрабатывает их падение.
type RocketSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewRocketSystem(world *entity.World, eventDispatcher *event.Dispatcher) *RocketSystem {
	return &RocketSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

func (s *RocketSystem) Update() {
	rockets := s.world.Rockets
	survivors := make([]*component.Projectile, 0, len(rockets))
	for _, r := range rockets {
		if StepProjectile(r) {
			s.impact(r)
			continue
		}
		survivors = append(survivors, r)
	}
	s.world.Rockets = survivors
}

// impact — ракета упала: взрыв в точке цели и разрушение всего,
// что попало в зону поражения. Одна ракета может задеть и город, и батарею.
func (s *RocketSystem) impact(r *component.Projectile) {
	s.world.Explosions = append(s.world.Explosions,
		s.world.NewExplosion(r.Target, config.ExplosionMaxRadius, component.ExplosionImpact))
	s.eventDispatcher.Dispatch(event.Event{Type: event.RocketImpact, Data: r.ID})

	for i, city := range s.world.Cities {
		if city.Destroyed {
			continue
		}
		if utils.WithinBox(city.Pos.X, city.Pos.Y, r.Target.X, r.Target.Y, config.CityHitHalfSize) {
			city.Destroyed = true
			s.eventDispatcher.Dispatch(event.Event{Type: event.CityDestroyed, Data: i})
		}
	}
	for i, turret := range s.world.Turrets {
		if turret.Destroyed {
			continue
		}
		if utils.WithinBox(turret.Pos.X, turret.Pos.Y, r.Target.X, r.Target.Y, config.TurretHitHalfSize) {
			turret.Destroyed = true
			s.eventDispatcher.Dispatch(event.Event{Type: event.TurretDestroyed, Data: i})
		}
	}
}
