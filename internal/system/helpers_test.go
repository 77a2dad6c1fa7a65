package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/utils"
)

func newTestWorld() *entity.World {
	w := entity.NewWorld(utils.NewPRNGService(1))
	w.Status = component.StatusPlaying
	w.Round = 1
	w.RocketsToSpawn = 3
	w.Turrets = defs.NewTurrets()
	w.Cities = defs.NewCities()
	return w
}

// eventLog собирает события по типам.
type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestDispatcher() (*event.Dispatcher, *eventLog) {
	d := event.NewDispatcher()
	log := &eventLog{}
	d.SubscribeAll(log)
	return d, log
}

// scriptedSource возвращает заранее заданные значения по кругу.
type scriptedSource struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)] % n
	s.ii++
	return v
}

func rocketAt(w *entity.World, pos, target component.Position, progress float64) *component.Projectile {
	r := w.NewProjectile(pos, target, 0.01, -1)
	r.Progress = progress
	return r
}
