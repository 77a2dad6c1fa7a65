// internal/entity/world.go
package entity

import (
	"io"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/types"

	"github.com/google/uuid"
)

// World — единственный владелец всего изменяемого состояния симуляции.
// Системы получают на него указатель и меняют поля напрямую.
type World struct {
	Score          int
	Status         component.GameStatus
	Round          int
	RocketsToSpawn int
	Frame          uint64

	Rockets    []*component.Projectile
	Missiles   []*component.Projectile
	Explosions []*component.Explosion
	Turrets    []*component.Turret // Порядок задаёт приоритет при выборе батареи
	Cities     []*component.City

	ids io.Reader
}

// NewWorld создаёт пустой мир в статусе START. Идентификаторы берутся
// из ids, чтобы при фиксированном сиде они тоже повторялись.
func NewWorld(ids io.Reader) *World {
	return &World{
		Status: component.StatusStart,
		ids:    ids,
	}
}

func (w *World) NewEntity() types.EntityID {
	id, err := uuid.NewRandomFromReader(w.ids)
	if err != nil {
		// Источник исчерпан; переходим на системный генератор
		return uuid.New()
	}
	return id
}

// NewProjectile создаёт снаряд в начальной точке, не добавляя его в мир.
func (w *World) NewProjectile(start, target component.Position, speed float64, source int) *component.Projectile {
	return &component.Projectile{
		ID:           w.NewEntity(),
		Start:        start,
		Target:       target,
		Pos:          start,
		Speed:        speed,
		SourceTurret: source,
	}
}

// NewExplosion создаёт взрыв нулевого радиуса, не добавляя его в мир.
func (w *World) NewExplosion(pos component.Position, maxRadius float64, kind component.ExplosionKind) *component.Explosion {
	return &component.Explosion{
		ID:        w.NewEntity(),
		Kind:      kind,
		Pos:       pos,
		MaxRadius: maxRadius,
		Growing:   true,
	}
}

// AllTurretsDestroyed — проиграна ли игра.
func (w *World) AllTurretsDestroyed() bool {
	for _, t := range w.Turrets {
		if !t.Destroyed {
			return false
		}
	}
	return true
}

// LiveTargets возвращает позиции уцелевших городов, затем уцелевших батарей.
func (w *World) LiveTargets() []component.Position {
	targets := make([]component.Position, 0, len(w.Cities)+len(w.Turrets))
	for _, c := range w.Cities {
		if !c.Destroyed {
			targets = append(targets, c.Pos)
		}
	}
	for _, t := range w.Turrets {
		if !t.Destroyed {
			targets = append(targets, t.Pos)
		}
	}
	return targets
}

// RoundCleared — в раунде не осталось ни ракет, ни взрывов.
func (w *World) RoundCleared() bool {
	return w.RocketsToSpawn <= 0 && len(w.Rockets) == 0 && len(w.Explosions) == 0
}
