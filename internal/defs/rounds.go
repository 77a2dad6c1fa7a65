// internal/defs/rounds.go
package defs

import "go-missile-defense/internal/config"

// Сложность растёт только с номером раунда; другой настройки нет.

// RocketsForRound — сколько ракет выпускается в раунде round
// после перехода на него.
func RocketsForRound(round int) int {
	return config.RoundBaseRockets + round*config.RoundRocketIncrement
}

// SpawnChance — вероятность появления ракеты в одном кадре.
func SpawnChance(round int) float64 {
	return config.SpawnBaseChance + float64(round)*config.SpawnChancePerRound
}

// RocketSpeed — скорость ракеты; jitter в [0, 1) добавляет разброс.
func RocketSpeed(round int, jitter float64) float64 {
	return config.RocketBaseSpeed +
		float64(round-1)*config.RocketSpeedPerRound +
		jitter*config.RocketSpeedJitter
}
