package system

import (
	"math"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
)

// FireSystem выпускает перехватчики по клику игрока.
type FireSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewFireSystem(world *entity.World, eventDispatcher *event.Dispatcher) *FireSystem {
	return &FireSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

// SelectTurret возвращает индекс ближайшей по горизонтали батареи, которая
// может стрелять, или -1. При равенстве побеждает первая в списке.
func (s *FireSystem) SelectTurret(x float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, t := range s.world.Turrets {
		if !t.CanFire() {
			continue
		}
		if d := math.Abs(t.Pos.X - x); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Fire выпускает перехватчик в точку target. Если стрелять некому,
// ничего не происходит и возвращается false.
func (s *FireSystem) Fire(target component.Position) bool {
	idx := s.SelectTurret(target.X)
	if idx < 0 {
		return false
	}
	turret := s.world.Turrets[idx]
	turret.Ammo--
	s.world.Missiles = append(s.world.Missiles,
		s.world.NewProjectile(turret.Pos, target, config.MissileSpeed, idx))

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.InterceptorFired,
		Data: event.FireData{
			Turret:        idx,
			TargetX:       target.X,
			TargetY:       target.Y,
			AmmoRemaining: turret.Ammo,
		},
	})
	return true
}
