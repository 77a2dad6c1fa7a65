// internal/component/turret.go
package component

// Turret — наземная батарея перехватчиков.
type Turret struct {
	Pos       Position
	Ammo      int
	MaxAmmo   int
	Destroyed bool // Уничтожение необратимо
}

// CanFire сообщает, может ли батарея выпустить перехватчик.
func (t *Turret) CanFire() bool {
	return !t.Destroyed && t.Ammo > 0
}
