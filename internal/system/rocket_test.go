package system

import (
	"testing"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/event"
)

func TestRocketSystem_ImpactDestroysExactCity(t *testing.T) {
	w := newTestWorld()
	d, log := newTestDispatcher()
	s := NewRocketSystem(w, d)

	target := w.Cities[2].Pos
	w.Rockets = append(w.Rockets, rocketAt(w, component.Position{X: target.X, Y: 0}, target, 0.995))

	s.Update()

	if len(w.Rockets) != 0 {
		t.Errorf("rockets = %d, want 0", len(w.Rockets))
	}
	for i, c := range w.Cities {
		if want := i == 2; c.Destroyed != want {
			t.Errorf("city %d destroyed = %v, want %v", i, c.Destroyed, want)
		}
	}
	for i, tr := range w.Turrets {
		if tr.Destroyed {
			t.Errorf("turret %d destroyed, want intact", i)
		}
	}
	if len(w.Explosions) != 1 {
		t.Fatalf("explosions = %d, want 1", len(w.Explosions))
	}
	e := w.Explosions[0]
	if e.Pos != target || e.Radius != 0 || !e.Growing || e.MaxRadius != config.ExplosionMaxRadius {
		t.Errorf("impact explosion = %+v", e)
	}
	if log.count(event.CityDestroyed) != 1 || log.count(event.RocketImpact) != 1 {
		t.Errorf("events = %+v", log.events)
	}
}

func TestRocketSystem_ImpactHitsCityAndTurretInRange(t *testing.T) {
	w := newTestWorld()
	d, _ := newTestDispatcher()
	s := NewRocketSystem(w, d)

	// Город вплотную к средней батарее: точка в пределах обеих зон
	w.Cities[0].Pos = component.Position{X: 410, Y: config.GroundY}
	target := component.Position{X: 405, Y: 575}
	w.Rockets = append(w.Rockets, rocketAt(w, component.Position{X: 405}, target, 0.999))

	s.Update()

	if !w.Cities[0].Destroyed {
		t.Error("city within 10 units should be destroyed")
	}
	if !w.Turrets[1].Destroyed {
		t.Error("turret within 20 units should be destroyed")
	}
	if w.Turrets[0].Destroyed || w.Turrets[2].Destroyed {
		t.Error("far turrets should survive")
	}
}

func TestRocketSystem_TurretBoxIsWiderThanCityBox(t *testing.T) {
	w := newTestWorld()
	d, _ := newTestDispatcher()
	s := NewRocketSystem(w, d)

	// 15 единиц в сторону: батарея задета, город — нет
	turretTarget := component.Position{X: w.Turrets[0].Pos.X + 15, Y: w.Turrets[0].Pos.Y}
	cityTarget := component.Position{X: w.Cities[1].Pos.X + 15, Y: w.Cities[1].Pos.Y}
	w.Rockets = append(w.Rockets,
		rocketAt(w, component.Position{}, turretTarget, 0.999),
		rocketAt(w, component.Position{}, cityTarget, 0.999),
	)

	s.Update()

	if !w.Turrets[0].Destroyed {
		t.Error("turret should be destroyed at 15 units")
	}
	if w.Cities[1].Destroyed {
		t.Error("city should survive at 15 units")
	}
}

func TestRocketSystem_MovesInFlightRockets(t *testing.T) {
	w := newTestWorld()
	d, _ := newTestDispatcher()
	s := NewRocketSystem(w, d)

	flying := rocketAt(w, component.Position{X: 0, Y: 0}, w.Cities[0].Pos, 0)
	landing := rocketAt(w, component.Position{X: 0, Y: 0}, w.Cities[5].Pos, 0.999)
	w.Rockets = append(w.Rockets, landing, flying)

	s.Update()

	if len(w.Rockets) != 1 || w.Rockets[0] != flying {
		t.Fatalf("rockets = %v, want only the flying one", w.Rockets)
	}
	if flying.Progress != 0.01 {
		t.Errorf("progress = %v, want 0.01", flying.Progress)
	}
}

func TestRocketSystem_DestroyedCityStaysDestroyed(t *testing.T) {
	w := newTestWorld()
	d, log := newTestDispatcher()
	s := NewRocketSystem(w, d)
	w.Cities[3].Destroyed = true

	w.Rockets = append(w.Rockets, rocketAt(w, component.Position{}, w.Cities[3].Pos, 0.999))
	s.Update()

	if !w.Cities[3].Destroyed {
		t.Error("city should remain destroyed")
	}
	if log.count(event.CityDestroyed) != 0 {
		t.Error("no event for an already destroyed city")
	}
}
