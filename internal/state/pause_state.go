// internal/state/pause_state.go
package state

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/ui"
	"go-missile-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру: кадры симуляции не продвигаются,
// пока игрок не вернётся.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	_, _, clicked := pointerJustPressed()
	if clicked || pauseJustPressed() || confirmJustPressed() {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	render.Fade(screen, config.OverlayColor)
	ui.DrawCenteredText(screen, basicfont.Face7x13, "PAUSED", config.ScreenWidth/2, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
