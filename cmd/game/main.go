// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-missile-defense/internal/audio"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/metrics"
	"go-missile-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settingsPath := flag.String("config", "settings.toml", "path to settings file")
	flag.Parse()

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		log.Printf("Settings not loaded, using defaults: %v", err)
		settings = config.DefaultSettings()
	}

	collector := metrics.NewCollector()
	listeners := []event.Listener{collector}

	if settings.DebugAddr != "" {
		http.Handle("/metrics", collector.Handler())
		go func() {
			log.Println(http.ListenAndServe(settings.DebugAddr, nil))
		}()
	}

	if settings.Audio {
		sounds := audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			log.Printf("Audio disabled: %v", err)
		} else {
			defer sounds.Cleanup()
			listeners = append(listeners, sounds)
		}
	}

	opts := state.Options{Seed: settings.Seed, Listeners: listeners}
	sm := state.NewStateMachine() // Создаём машину состояний
	if settings.StartFromMenu {
		sm.SetState(state.NewMenuState(sm, opts))
	} else {
		sm.SetState(state.NewGameState(sm, opts))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(int(config.ScreenWidth*settings.WindowScale), int(config.ScreenHeight*settings.WindowScale))
	ebiten.SetWindowTitle("Missile Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
