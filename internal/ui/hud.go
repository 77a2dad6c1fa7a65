package ui

import (
	"fmt"
	"strconv"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUD рисует счёт, рекорд, раунд и боезапас батарей.
type HUD struct {
	face      font.Face
	round     *RoundIndicator
	indicator *StateIndicator
}

func NewHUD(face font.Face) *HUD {
	return &HUD{
		face:  face,
		round: NewRoundIndicator(config.ScreenWidth/2, config.HUDLineHeight+4, face),
		indicator: NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, snap *entity.Snapshot) {
	y := config.HUDLineHeight + 4
	text.Draw(screen, ScoreLine(snap), h.face, config.HUDMarginX, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("INCOMING %d", snap.RocketsToSpawn+len(snap.Rockets)), h.face,
		config.HUDMarginX, y+config.HUDLineHeight, config.TextLightColor)

	h.round.Draw(screen, snap.Round)
	h.indicator.Draw(screen, snap.Status)

	for _, t := range snap.Turrets {
		if t.Destroyed {
			continue
		}
		label := strconv.Itoa(t.Ammo)
		bounds := text.BoundString(h.face, label)
		text.Draw(screen, label, h.face, int(t.Pos.X)-bounds.Dx()/2, int(t.Pos.Y)+config.AmmoLabelOffsetY, config.TextLightColor)
	}
}

// ScoreLine — верхняя строка HUD.
func ScoreLine(snap *entity.Snapshot) string {
	return fmt.Sprintf("SCORE %d  BEST %d", snap.Score, snap.BestScore)
}
