package system

import (
	"testing"

	"go-missile-defense/internal/component"
)

func TestMissileSystem_DetonatesHarmlessly(t *testing.T) {
	w := newTestWorld()
	s := NewMissileSystem(w)

	target := w.Cities[0].Pos
	m := w.NewProjectile(w.Turrets[0].Pos, target, 0.5, 0)
	m.Progress = 0.6
	w.Missiles = append(w.Missiles, m)

	s.Update()

	if len(w.Missiles) != 0 {
		t.Errorf("missiles = %d, want 0", len(w.Missiles))
	}
	if len(w.Explosions) != 1 || w.Explosions[0].Kind != component.ExplosionInterceptor {
		t.Fatalf("explosions = %v, want one interceptor explosion", w.Explosions)
	}
	if w.Explosions[0].Pos != target {
		t.Errorf("explosion at %v, want %v", w.Explosions[0].Pos, target)
	}
	if w.Cities[0].Destroyed {
		t.Error("interceptor impact must not destroy cities")
	}
}

func TestMissileSystem_KeepsFlyingMissilesInOrder(t *testing.T) {
	w := newTestWorld()
	s := NewMissileSystem(w)

	a := w.NewProjectile(w.Turrets[0].Pos, component.Position{X: 100, Y: 100}, 0.02, 0)
	b := w.NewProjectile(w.Turrets[1].Pos, component.Position{X: 400, Y: 100}, 0.5, 1)
	b.Progress = 0.9
	c := w.NewProjectile(w.Turrets[2].Pos, component.Position{X: 700, Y: 100}, 0.02, 2)
	w.Missiles = append(w.Missiles, a, b, c)

	s.Update()

	if len(w.Missiles) != 2 || w.Missiles[0] != a || w.Missiles[1] != c {
		t.Errorf("missiles = %v, want [a c]", w.Missiles)
	}
	if a.Progress != 0.02 || c.Progress != 0.02 {
		t.Error("each surviving missile should move exactly once")
	}
}
