// internal/system/render.go
package system

import (
	"image/color"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности из снимка мира
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, snap *entity.Snapshot) {
	for _, c := range snap.Cities {
		clr := config.CityColor
		if c.Destroyed {
			clr = render.DarkenColor(clr)
		}
		drawBox(screen, c.Pos, config.CityWidth, config.CityHeight, clr)
	}

	for _, t := range snap.Turrets {
		clr := config.TurretColor
		if t.Destroyed {
			clr = render.DarkenColor(render.DarkenColor(clr))
		} else if t.Ammo == 0 {
			clr = render.DarkenColor(clr)
		}
		drawBox(screen, t.Pos, config.TurretWidth, config.TurretHeight, clr)
	}

	// Сначала взрывы, чтобы следы снарядов были поверх
	for _, e := range snap.Explosions {
		if e.Radius <= 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), float32(e.Radius), explosionColor(e), true)
	}

	for _, r := range snap.Rockets {
		drawTrail(screen, r, config.RocketTrailColor, config.RocketColor)
	}
	for _, m := range snap.Missiles {
		drawTrail(screen, m, config.MissileTrailColor, config.MissileColor)
		drawCross(screen, m.Target, config.MissileTrailColor)
	}
}

func drawBox(screen *ebiten.Image, center component.Position, w, h float32, clr color.Color) {
	vector.DrawFilledRect(screen, float32(center.X)-w/2, float32(center.Y)-h/2, w, h, clr, false)
}

func drawTrail(screen *ebiten.Image, p component.Projectile, trail, head color.Color) {
	vector.StrokeLine(screen, float32(p.Start.X), float32(p.Start.Y), float32(p.Pos.X), float32(p.Pos.Y), config.RocketTrailWidth, trail, true)
	vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), config.ProjectileRadius, head, true)
}

func drawCross(screen *ebiten.Image, at component.Position, clr color.Color) {
	const arm = 4
	x, y := float32(at.X), float32(at.Y)
	vector.StrokeLine(screen, x-arm, y-arm, x+arm, y+arm, 1, clr, true)
	vector.StrokeLine(screen, x-arm, y+arm, x+arm, y-arm, 1, clr, true)
}

// explosionColor — взрыв тускнеет по мере сжатия.
func explosionColor(e component.Explosion) color.RGBA {
	base := config.ExplosionColor
	if e.Kind == component.ExplosionSecondary {
		base = config.SecondaryColor
	}
	if e.Growing || e.MaxRadius <= 0 {
		return base
	}
	alpha := config.ExplosionAlphaMin + (255-config.ExplosionAlphaMin)*e.Radius/e.MaxRadius
	return render.WithAlpha(base, uint8(alpha))
}
