// internal/system/explosion.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/utils"
)

// ExplosionSystem ведёт жизненный цикл взрывов и сбивает ракеты,
// оказавшиеся внутри радиуса.
type ExplosionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewExplosionSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ExplosionSystem {
	return &ExplosionSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ExplosionSystem) Update() {
	explosions := s.world.Explosions
	live := make([]*component.Explosion, 0, len(explosions))
	// Вторичные взрывы добавляются после прохода и начинают расти со следующего кадра
	var secondary []*component.Explosion

	for _, e := range explosions {
		StepExplosion(e)
		if e.Finished {
			continue
		}
		live = append(live, e)
		secondary = append(secondary, s.destroyRocketsInside(e)...)
	}

	s.world.Explosions = append(live, secondary...)
}

// destroyRocketsInside удаляет все ракеты строго внутри радиуса взрыва.
func (s *ExplosionSystem) destroyRocketsInside(e *component.Explosion) []*component.Explosion {
	var spawned []*component.Explosion
	rockets := s.world.Rockets
	remaining := make([]*component.Projectile, 0, len(rockets))
	for _, r := range rockets {
		if utils.Distance(e.Pos.X, e.Pos.Y, r.Pos.X, r.Pos.Y) < e.Radius {
			s.world.Score += config.RocketKillReward
			spawned = append(spawned, s.world.NewExplosion(r.Pos,
				config.ExplosionMaxRadius*config.SecondaryExplosionFactor, component.ExplosionSecondary))
			s.eventDispatcher.Dispatch(event.Event{Type: event.RocketIntercepted, Data: r.ID})
			continue
		}
		remaining = append(remaining, r)
	}
	s.world.Rockets = remaining
	return spawned
}

// StepExplosion меняет радиус на один кадр. Радиус остаётся в [0, MaxRadius].
func StepExplosion(e *component.Explosion) {
	if e.Finished {
		return
	}
	if e.Growing {
		e.Radius += config.ExplosionGrowthRate
		if e.Radius >= e.MaxRadius {
			e.Radius = e.MaxRadius
			e.Growing = false
		}
		return
	}
	e.Radius -= config.ExplosionGrowthRate
	if e.Radius <= 0 {
		e.Radius = 0
		e.Finished = true
	}
}
