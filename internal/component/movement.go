// component/movement.go
package component

// Position — точка в логических координатах экрана (800×600)
type Position struct {
	X, Y float64
}
