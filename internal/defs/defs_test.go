package defs

import (
	"math"
	"testing"

	"go-missile-defense/internal/config"
)

func TestNewTurrets(t *testing.T) {
	turrets := NewTurrets()
	if len(turrets) != 3 {
		t.Fatalf("turrets = %d, want 3", len(turrets))
	}
	wantX := []float64{50, 400, 750}
	wantAmmo := []int{10, 20, 10}
	for i, tr := range turrets {
		if tr.Pos.X != wantX[i] {
			t.Errorf("turret %d X = %v, want %v", i, tr.Pos.X, wantX[i])
		}
		if tr.Ammo != wantAmmo[i] || tr.MaxAmmo != wantAmmo[i] {
			t.Errorf("turret %d ammo = %d/%d, want %d", i, tr.Ammo, tr.MaxAmmo, wantAmmo[i])
		}
		if tr.Destroyed {
			t.Errorf("turret %d starts destroyed", i)
		}
	}
}

func TestNewCities_EvenlySpaced(t *testing.T) {
	cities := NewCities()
	if len(cities) != config.CityCount {
		t.Fatalf("cities = %d, want %d", len(cities), config.CityCount)
	}
	step := cities[1].Pos.X - cities[0].Pos.X
	for i := 1; i < len(cities); i++ {
		if d := cities[i].Pos.X - cities[i-1].Pos.X; math.Abs(d-step) > 1e-9 {
			t.Errorf("gap %d = %v, want %v", i, d, step)
		}
		if cities[i].Pos.Y != config.GroundY {
			t.Errorf("city %d Y = %v, want %v", i, cities[i].Pos.Y, config.GroundY)
		}
	}
}

func TestCitiesClearOfTurretHitBoxes(t *testing.T) {
	for _, c := range NewCities() {
		for _, tr := range NewTurrets() {
			if math.Abs(c.Pos.X-tr.Pos.X) <= config.TurretHitHalfSize {
				t.Errorf("city at %v overlaps turret at %v", c.Pos.X, tr.Pos.X)
			}
		}
	}
}

func TestRocketsForRound(t *testing.T) {
	if got := RocketsForRound(2); got != 5 {
		t.Errorf("RocketsForRound(2) = %d, want 5", got)
	}
	if RocketsForRound(5)-RocketsForRound(4) != 1 {
		t.Error("rocket count should grow by one per round")
	}
}

func TestSpawnChance(t *testing.T) {
	if got := SpawnChance(1); math.Abs(got-0.009) > 1e-12 {
		t.Errorf("SpawnChance(1) = %v, want 0.009", got)
	}
	if SpawnChance(3) <= SpawnChance(2) {
		t.Error("spawn chance should grow with round")
	}
}

func TestRocketSpeed(t *testing.T) {
	if got := RocketSpeed(1, 0); got != config.RocketBaseSpeed {
		t.Errorf("RocketSpeed(1, 0) = %v, want %v", got, config.RocketBaseSpeed)
	}
	if RocketSpeed(4, 0) <= RocketSpeed(3, 0) {
		t.Error("later rounds should be faster")
	}
	if RocketSpeed(1, 0.5) <= RocketSpeed(1, 0) {
		t.Error("jitter should add speed")
	}
}
