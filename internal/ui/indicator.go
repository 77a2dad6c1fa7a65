// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator — кружок в углу экрана, цвет которого показывает статус игры.
// При смене статуса он коротко «вспыхивает».
type StateIndicator struct {
	X, Y       float32
	Radius     float32
	lastStatus component.GameStatus
	lastChange time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// StatusColor возвращает цвет индикатора для статуса.
func StatusColor(s component.GameStatus) color.RGBA {
	switch s {
	case component.StatusPlaying:
		return config.PlayingStateColor
	case component.StatusRoundEnd:
		return config.RoundEndStateColor
	case component.StatusWon:
		return config.WonStateColor
	case component.StatusLost:
		return config.LostStateColor
	}
	return config.IdleStateColor
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, status component.GameStatus) {
	if status != i.lastStatus {
		i.lastStatus = status
		i.lastChange = time.Now()
	}
	elapsed := time.Since(i.lastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, StatusColor(status), true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, config.IndicatorStroke, true)
}
