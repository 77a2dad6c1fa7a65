package entity

import "go-missile-defense/internal/component"

// Snapshot — копия мира для отрисовки. Изменения снимка не влияют на мир.
type Snapshot struct {
	Score          int
	BestScore      int
	Status         component.GameStatus
	Round          int
	RocketsToSpawn int
	Frame          uint64

	Rockets    []component.Projectile
	Missiles   []component.Projectile
	Explosions []component.Explosion
	Turrets    []component.Turret
	Cities     []component.City
}

// Snapshot копирует текущее состояние мира.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Score:          w.Score,
		Status:         w.Status,
		Round:          w.Round,
		RocketsToSpawn: w.RocketsToSpawn,
		Frame:          w.Frame,
		Rockets:        copyValues(w.Rockets),
		Missiles:       copyValues(w.Missiles),
		Explosions:     copyValues(w.Explosions),
		Turrets:        copyValues(w.Turrets),
		Cities:         copyValues(w.Cities),
	}
}

func copyValues[T any](src []*T) []T {
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = *v
	}
	return out
}

// TotalAmmo — суммарный боезапас уцелевших батарей.
func (s Snapshot) TotalAmmo() int {
	total := 0
	for _, t := range s.Turrets {
		if !t.Destroyed {
			total += t.Ammo
		}
	}
	return total
}

// CitiesLeft — число уцелевших городов.
func (s Snapshot) CitiesLeft() int {
	n := 0
	for _, c := range s.Cities {
		if !c.Destroyed {
			n++
		}
	}
	return n
}
