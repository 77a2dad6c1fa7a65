// internal/component/projectile.go
package component

import "go-missile-defense/internal/types"

// Projectile — летящий снаряд: вражеская ракета или перехватчик.
// Pos всегда равна Start + (Target-Start)*Progress.
type Projectile struct {
	ID       types.EntityID
	Start    Position
	Target   Position
	Pos      Position
	Progress float64 // Доля пройденного пути, [0, 1]
	Speed    float64 // Прирост Progress за кадр
	// SourceTurret — индекс батареи, выпустившей перехватчик; -1 у ракет.
	SourceTurret int
}
