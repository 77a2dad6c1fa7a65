package ui

import (
	"testing"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"

	"golang.org/x/image/font/basicfont"
)

func TestToRoman(t *testing.T) {
	tests := map[int]string{
		0:  "",
		1:  "I",
		4:  "IV",
		9:  "IX",
		14: "XIV",
		40: "XL",
	}
	for n, want := range tests {
		if got := toRoman(n); got != want {
			t.Errorf("toRoman(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestButton_Contains(t *testing.T) {
	b := NewButton(400, 300, 180, 40, "NEXT ROUND", basicfont.Face7x13, config.ButtonColor, config.ButtonHoverColor, config.TextLightColor)

	if !b.Contains(400, 300) {
		t.Error("center should be inside")
	}
	if !b.Contains(310, 280) {
		t.Error("top-left corner should be inside")
	}
	if b.Contains(309, 300) || b.Contains(400, 321) {
		t.Error("points outside the rect should not be inside")
	}
}

func TestStatusColor(t *testing.T) {
	if StatusColor(component.StatusLost) != config.LostStateColor {
		t.Error("LOST should use LostStateColor")
	}
	if StatusColor(component.StatusStart) != config.IdleStateColor {
		t.Error("START should use IdleStateColor")
	}
}

func TestScoreLine(t *testing.T) {
	snap := &entity.Snapshot{Score: 120, BestScore: 400}
	if got := ScoreLine(snap); got != "SCORE 120  BEST 400" {
		t.Errorf("ScoreLine = %q", got)
	}
}
