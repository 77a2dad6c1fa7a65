// pkg/render/color.go
package render

import "image/color"

// SceneColors holds the colors needed to render the static background.
type SceneColors struct {
	BackgroundColor color.RGBA
	GroundColor     color.RGBA
	HorizonColor    color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced, premultiplying the channels
// the way color.RGBA expects.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	scale := float64(a) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * scale),
		G: uint8(float64(c.G) * scale),
		B: uint8(float64(c.B) * scale),
		A: a,
	}
}
