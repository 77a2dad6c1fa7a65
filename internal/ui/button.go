// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, W, H float32
	Text       string
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
	Face       font.Face
}

// NewButton создает кнопку с центром в (cx, cy).
func NewButton(cx, cy, w, h float32, label string, face font.Face, bg, hover, fg color.Color) *Button {
	return &Button{
		X:          cx - w/2,
		Y:          cy - h/2,
		W:          w,
		H:          h,
		Text:       label,
		TextColor:  fg,
		BgColor:    bg,
		HoverColor: hover,
		Face:       face,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.W && fy >= b.Y && fy <= b.Y+b.H
}

// Draw отрисовывает кнопку; под курсором она подсвечивается.
func (b *Button) Draw(screen *ebiten.Image, mouseX, mouseY int) {
	bg := b.BgColor
	if b.Contains(mouseX, mouseY) {
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, false)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 2, b.TextColor, false)

	bounds := text.BoundString(b.Face, b.Text)
	tx := int(b.X+b.W/2) - bounds.Dx()/2
	ty := int(b.Y+b.H/2) + bounds.Dy()/2
	text.Draw(screen, b.Text, b.Face, tx, ty, b.TextColor)
}

// DrawCenteredText рисует строку, центрированную по cx, с базовой линией y.
func DrawCenteredText(screen *ebiten.Image, face font.Face, s string, cx, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-bounds.Dx()/2, y, clr)
}
