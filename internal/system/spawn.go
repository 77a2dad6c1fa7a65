// internal/system/spawn.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/utils"
)

// SpawnSystem выпускает вражеские ракеты, пока в раунде они не кончатся.
type SpawnSystem struct {
	world           *entity.World
	rng             utils.RandomSource
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(world *entity.World, rng utils.RandomSource, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Update делает одну попытку появления ракеты за кадр.
func (s *SpawnSystem) Update() {
	if s.world.Status != component.StatusPlaying || s.world.RocketsToSpawn <= 0 {
		return
	}
	if !utils.Chance(s.rng, defs.SpawnChance(s.world.Round)) {
		return
	}
	s.spawnRocket()
}

func (s *SpawnSystem) spawnRocket() {
	targets := s.world.LiveTargets()
	if len(targets) == 0 {
		// Целей нет — к этому моменту игра уже должна быть проиграна
		return
	}

	start := component.Position{X: utils.Range(s.rng, 0, config.ScreenWidth), Y: 0}
	target := targets[s.rng.Intn(len(targets))]
	speed := defs.RocketSpeed(s.world.Round, s.rng.Float64())

	rocket := s.world.NewProjectile(start, target, speed, -1)
	s.world.Rockets = append(s.world.Rockets, rocket)
	s.world.RocketsToSpawn--
	s.eventDispatcher.Dispatch(event.Event{Type: event.RocketSpawned, Data: rocket.ID})
}
