// internal/component/explosion.go
package component

import "go-missile-defense/internal/types"

// ExplosionKind влияет только на отрисовку и события.
type ExplosionKind int

const (
	ExplosionImpact      ExplosionKind = iota // Ракета упала на землю
	ExplosionInterceptor                      // Перехватчик долетел до точки
	ExplosionSecondary                        // Сбитая ракета
)

// Explosion — растущий, затем сжимающийся круг поражения.
type Explosion struct {
	ID        types.EntityID
	Kind      ExplosionKind
	Pos       Position
	Radius    float64
	MaxRadius float64
	Growing   bool
	Finished  bool
}
