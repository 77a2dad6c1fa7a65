package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"go-missile-defense/internal/event"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector_CountsEvents(t *testing.T) {
	c := NewCollector()
	d := event.NewDispatcher()
	d.SubscribeAll(c)

	d.Dispatch(event.Event{Type: event.GameStarted})
	d.Dispatch(event.Event{Type: event.InterceptorFired, Data: event.FireData{Turret: 1}})
	d.Dispatch(event.Event{Type: event.InterceptorFired, Data: event.FireData{Turret: 0}})
	d.Dispatch(event.Event{Type: event.RocketSpawned})
	d.Dispatch(event.Event{Type: event.RocketIntercepted})
	d.Dispatch(event.Event{Type: event.CityDestroyed, Data: 3})
	d.Dispatch(event.Event{Type: event.RoundEnded, Data: 1})
	d.Dispatch(event.Event{Type: event.RoundStarted, Data: event.RoundData{Round: 2, Bonus: 50}})
	d.Dispatch(event.Event{Type: event.GameLost, Data: 120})

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"interceptors", testutil.ToFloat64(c.InterceptorsFired), 2},
		{"spawned", testutil.ToFloat64(c.RocketsSpawned), 1},
		{"intercepted", testutil.ToFloat64(c.RocketsIntercepted), 1},
		{"impacts", testutil.ToFloat64(c.RocketImpacts), 0},
		{"cities", testutil.ToFloat64(c.CitiesLost), 1},
		{"rounds", testutil.ToFloat64(c.RoundsCleared), 1},
		{"bonus", testutil.ToFloat64(c.AmmoBonus), 50},
		{"round", testutil.ToFloat64(c.CurrentRound), 2},
		{"lost", testutil.ToFloat64(c.GamesFinished.WithLabelValues("lost")), 1},
		{"won", testutil.ToFloat64(c.GamesFinished.WithLabelValues("won")), 0},
	}
	for _, ch := range checks {
		if ch.got != ch.want {
			t.Errorf("%s = %v, want %v", ch.name, ch.got, ch.want)
		}
	}
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector()
	c.OnEvent(event.Event{Type: event.RocketImpact})

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "missile_defense_rocket_impacts_total 1") {
		t.Errorf("body missing impact counter:\n%s", rec.Body.String())
	}
}
