// internal/defs/batteries.go
package defs

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
)

// BatteryDefinition — стартовые параметры одной батареи.
type BatteryDefinition struct {
	X       float64
	MaxAmmo int
}

// BatteryLayout — батареи слева направо. Порядок важен: при равном
// расстоянии до точки клика стреляет та, что раньше в списке.
var BatteryLayout = []BatteryDefinition{
	{X: config.TurretEdgeGap, MaxAmmo: 10},
	{X: config.ScreenWidth / 2, MaxAmmo: 20},
	{X: config.ScreenWidth - config.TurretEdgeGap, MaxAmmo: 10},
}

// NewTurrets создает батареи по BatteryLayout с полным боезапасом.
func NewTurrets() []*component.Turret {
	turrets := make([]*component.Turret, 0, len(BatteryLayout))
	for _, def := range BatteryLayout {
		turrets = append(turrets, &component.Turret{
			Pos:     component.Position{X: def.X, Y: config.TurretY},
			Ammo:    def.MaxAmmo,
			MaxAmmo: def.MaxAmmo,
		})
	}
	return turrets
}

// NewCities расставляет города равномерно вдоль линии земли.
func NewCities() []*component.City {
	cities := make([]*component.City, 0, config.CityCount)
	step := float64(config.ScreenWidth) / float64(config.CityCount+1)
	for i := 0; i < config.CityCount; i++ {
		cities = append(cities, &component.City{
			Pos: component.Position{X: step * float64(i+1), Y: config.GroundY},
		})
	}
	return cities
}
