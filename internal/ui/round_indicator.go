package ui

import (
	"strings"

	"go-missile-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// RoundIndicator отображает номер текущего раунда римскими цифрами.
type RoundIndicator struct {
	X, Y int
	Face font.Face
}

// NewRoundIndicator создает новый индикатор раунда.
func NewRoundIndicator(x, y int, face font.Face) *RoundIndicator {
	return &RoundIndicator{X: x, Y: y, Face: face}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw рисует номер раунда по центру относительно X.
func (i *RoundIndicator) Draw(screen *ebiten.Image, round int) {
	if round <= 0 {
		return
	}
	label := "ROUND " + toRoman(round)
	bounds := text.BoundString(i.Face, label)
	text.Draw(screen, label, i.Face, i.X-bounds.Dx()/2, i.Y, config.TextLightColor)
}
