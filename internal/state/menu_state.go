// internal/state/menu_state.go
package state

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

// MenuState — стартовый экран
type MenuState struct {
	sm   *StateMachine
	opts Options
}

func NewMenuState(sm *StateMachine, opts Options) *MenuState {
	return &MenuState{sm: sm, opts: opts}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if _, _, ok := pointerJustPressed(); ok || confirmJustPressed() {
		m.sm.SetState(NewGameState(m.sm, m.opts))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	cx := config.ScreenWidth / 2
	ui.DrawCenteredText(screen, face, "MISSILE DEFENSE", cx, config.ScreenHeight/2-30, config.TextLightColor)
	ui.DrawCenteredText(screen, face, "Click to fire from the nearest battery", cx, config.ScreenHeight/2, config.TextLightColor)
	ui.DrawCenteredText(screen, face, "CLICK OR PRESS SPACE TO START", cx, config.ScreenHeight/2+40, config.TurretColor)
}

func (m *MenuState) Exit() {}
