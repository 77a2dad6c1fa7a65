// internal/system/movement.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/utils"
)

// StepProjectile продвигает снаряд на один кадр по прямой Start→Target.
// Возвращает true в кадре, когда снаряд достиг цели.
func StepProjectile(p *component.Projectile) bool {
	p.Progress += p.Speed
	if p.Progress >= 1 {
		p.Progress = 1
		p.Pos = p.Target
		return true
	}
	p.Pos = component.Position{
		X: utils.Lerp(p.Start.X, p.Target.X, p.Progress),
		Y: utils.Lerp(p.Start.Y, p.Target.Y, p.Progress),
	}
	return false
}
