// internal/app/game.go
package app

import (
	"log"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/system"
	"go-missile-defense/internal/utils"

	"github.com/segmentio/ksuid"
)

// Game holds the simulation state and the systems that advance it.
// All methods must be called from the same goroutine.
type Game struct {
	World           *entity.World
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher
	SessionID       string
	BestScore       int

	RocketSystem    *system.RocketSystem
	MissileSystem   *system.MissileSystem
	ExplosionSystem *system.ExplosionSystem
	SpawnSystem     *system.SpawnSystem
	FireSystem      *system.FireSystem
	StateSystem     *system.StateSystem
}

// NewGame creates a game in START status. Seed 0 picks a time-based seed.
func NewGame(seed int64) *Game {
	rng := utils.NewPRNGService(seed)
	world := entity.NewWorld(rng)
	eventDispatcher := event.NewDispatcher()

	g := &Game{
		World:           world,
		Rng:             rng,
		EventDispatcher: eventDispatcher,
		SessionID:       ksuid.New().String(),
		RocketSystem:    system.NewRocketSystem(world, eventDispatcher),
		MissileSystem:   system.NewMissileSystem(world),
		ExplosionSystem: system.NewExplosionSystem(world, eventDispatcher),
		SpawnSystem:     system.NewSpawnSystem(world, rng, eventDispatcher),
		FireSystem:      system.NewFireSystem(world, eventDispatcher),
		StateSystem:     system.NewStateSystem(world, eventDispatcher),
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener, event.GameStarted, event.RoundEnded, event.RoundStarted, event.GameWon, event.GameLost)

	return g
}

// AddListener subscribes l to every game event.
func (g *Game) AddListener(l event.Listener) {
	g.EventDispatcher.SubscribeAll(l)
}

// Initialize starts a new game on the existing world.
func (g *Game) Initialize() {
	w := g.World
	w.Score = 0
	w.Status = component.StatusPlaying
	w.Round = 1
	w.RocketsToSpawn = config.InitialRocketsToSpawn
	w.Frame = 0
	w.Rockets = nil
	w.Missiles = nil
	w.Explosions = nil
	w.Turrets = defs.NewTurrets()
	w.Cities = defs.NewCities()

	g.EventDispatcher.Dispatch(event.Event{Type: event.GameStarted})
}

// FireInterceptor launches an interceptor at target from the nearest
// battery that can fire. Returns false when nothing was fired.
func (g *Game) FireInterceptor(target component.Position) bool {
	if g.World.Status != component.StatusPlaying {
		return false
	}
	return g.FireSystem.Fire(target)
}

// AdvanceFrame runs one simulation step. Does nothing unless PLAYING.
func (g *Game) AdvanceFrame() {
	if g.World.Status != component.StatusPlaying {
		return
	}
	g.World.Frame++

	// Порядок важен: столкновения видят позиции после движения
	g.RocketSystem.Update()
	g.MissileSystem.Update()
	g.ExplosionSystem.Update()
	g.StateSystem.Update()
	g.SpawnSystem.Update()

	g.updateBestScore()
}

// NextRound acknowledges a cleared round. Only valid in ROUND_END.
func (g *Game) NextRound() bool {
	_, ok := g.StateSystem.NextRound()
	if ok {
		g.updateBestScore()
	}
	return ok
}

// Status returns the current game status.
func (g *Game) Status() component.GameStatus {
	return g.World.Status
}

// Snapshot returns a read-only copy of the world for rendering.
func (g *Game) Snapshot() entity.Snapshot {
	snap := g.World.Snapshot()
	snap.BestScore = g.BestScore
	return snap
}

func (g *Game) updateBestScore() {
	if g.World.Score > g.BestScore {
		g.BestScore = g.World.Score
	}
}

// GameEventListener logs the transitions that matter for a session.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameStarted:
		log.Printf("session %s: new game (seed %d)", l.game.SessionID, l.game.Rng.Seed())
	case event.RoundEnded:
		log.Printf("session %s: round %v cleared, score %d", l.game.SessionID, e.Data, l.game.World.Score)
	case event.RoundStarted:
		if rd, ok := e.Data.(event.RoundData); ok {
			log.Printf("session %s: round %d started, ammo bonus %d", l.game.SessionID, rd.Round, rd.Bonus)
		}
	case event.GameWon:
		log.Printf("session %s: won with score %v", l.game.SessionID, e.Data)
	case event.GameLost:
		log.Printf("session %s: lost with score %v in round %d", l.game.SessionID, e.Data, l.game.World.Round)
	}
}
