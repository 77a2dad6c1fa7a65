package metrics

import (
	"net/http"

	"go-missile-defense/internal/event"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "missile_defense"

// Collector turns game events into Prometheus metrics.
type Collector struct {
	registry *prometheus.Registry

	InterceptorsFired  prometheus.Counter
	RocketsSpawned     prometheus.Counter
	RocketsIntercepted prometheus.Counter
	RocketImpacts      prometheus.Counter
	CitiesLost         prometheus.Counter
	TurretsLost        prometheus.Counter
	RoundsCleared      prometheus.Counter
	AmmoBonus          prometheus.Counter
	GamesFinished      *prometheus.CounterVec
	CurrentRound       prometheus.Gauge
}

// NewCollector registers all metrics on a fresh registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Collector{
		registry: reg,
		InterceptorsFired: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "interceptors_fired_total",
			Help: "Interceptor missiles launched by the player.",
		}),
		RocketsSpawned: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "rockets_spawned_total",
			Help: "Enemy rockets that entered the field.",
		}),
		RocketsIntercepted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "rockets_intercepted_total",
			Help: "Enemy rockets destroyed by explosions.",
		}),
		RocketImpacts: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "rocket_impacts_total",
			Help: "Enemy rockets that reached the ground.",
		}),
		CitiesLost: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "cities_lost_total",
			Help: "Cities destroyed.",
		}),
		TurretsLost: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "turrets_lost_total",
			Help: "Batteries destroyed.",
		}),
		RoundsCleared: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "rounds_cleared_total",
			Help: "Rounds survived.",
		}),
		AmmoBonus: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "ammo_bonus_points_total",
			Help: "Points awarded for unused ammo at round transitions.",
		}),
		GamesFinished: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "games_finished_total",
			Help: "Finished games by outcome.",
		}, []string{"outcome"}),
		CurrentRound: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "current_round",
			Help: "Round currently being played.",
		}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// OnEvent реализует интерфейс event.Listener.
func (c *Collector) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameStarted:
		c.CurrentRound.Set(1)
	case event.InterceptorFired:
		c.InterceptorsFired.Inc()
	case event.RocketSpawned:
		c.RocketsSpawned.Inc()
	case event.RocketIntercepted:
		c.RocketsIntercepted.Inc()
	case event.RocketImpact:
		c.RocketImpacts.Inc()
	case event.CityDestroyed:
		c.CitiesLost.Inc()
	case event.TurretDestroyed:
		c.TurretsLost.Inc()
	case event.RoundEnded:
		c.RoundsCleared.Inc()
	case event.RoundStarted:
		if rd, ok := e.Data.(event.RoundData); ok {
			c.CurrentRound.Set(float64(rd.Round))
			c.AmmoBonus.Add(float64(rd.Bonus))
		}
	case event.GameWon:
		c.GamesFinished.WithLabelValues("won").Inc()
	case event.GameLost:
		c.GamesFinished.WithLabelValues("lost").Inc()
	}
}
