// internal/system/state.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
)

// StateSystem проверяет исход кадра и переводит игру между раундами.
type StateSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(world *entity.World, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

// Update проверяет условия в порядке приоритета: поражение, победа, конец раунда.
func (s *StateSystem) Update() {
	if s.world.Status != component.StatusPlaying {
		return
	}
	switch {
	case s.world.AllTurretsDestroyed():
		s.world.Status = component.StatusLost
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameLost, Data: s.world.Score})
	case s.world.Score >= config.WinScore:
		s.world.Status = component.StatusWon
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameWon, Data: s.world.Score})
	case s.world.RoundCleared():
		s.world.Status = component.StatusRoundEnd
		s.eventDispatcher.Dispatch(event.Event{Type: event.RoundEnded, Data: s.world.Round})
	}
}

// NextRound начисляет бонус за оставшийся боезапас, перезаряжает
// уцелевшие батареи и запускает следующий раунд. Работает только
// в статусе ROUND_END; возвращает начисленный бонус.
func (s *StateSystem) NextRound() (int, bool) {
	if s.world.Status != component.StatusRoundEnd {
		return 0, false
	}

	bonus := 0
	for _, t := range s.world.Turrets {
		if t.Destroyed {
			continue
		}
		bonus += t.Ammo * config.AmmoBonusPerUnit
		t.Ammo = t.MaxAmmo
	}
	s.world.Score += bonus
	s.world.Round++
	s.world.RocketsToSpawn = defs.RocketsForRound(s.world.Round)
	s.world.Status = component.StatusPlaying

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.RoundStarted,
		Data: event.RoundData{Round: s.world.Round, Bonus: bonus},
	})
	return bonus, true
}

func (s *StateSystem) Current() component.GameStatus {
	return s.world.Status
}
