package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SceneRenderer draws the static part of the scene: sky and ground.
// The background is rendered once into an offscreen image and reused every frame.
type SceneRenderer struct {
	screenWidth  int
	screenHeight int
	groundY      float32
	colors       SceneColors
	background   *ebiten.Image
}

func NewSceneRenderer(screenWidth, screenHeight int, groundY float64, colors SceneColors) *SceneRenderer {
	return &SceneRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		groundY:      float32(groundY),
		colors:       colors,
	}
}

// RenderBackground pre-renders the background image.
func (r *SceneRenderer) RenderBackground() {
	img := ebiten.NewImage(r.screenWidth, r.screenHeight)
	img.Fill(r.colors.BackgroundColor)

	w := float32(r.screenWidth)
	h := float32(r.screenHeight)
	// Ground strip starts a little above the city line so buildings stand on it
	top := r.groundY + 6
	vector.DrawFilledRect(img, 0, top, w, h-top, r.colors.GroundColor, false)
	vector.StrokeLine(img, 0, top, w, top, 1, r.colors.HorizonColor, true)
	r.background = img
}

// Draw copies the cached background onto screen.
func (r *SceneRenderer) Draw(screen *ebiten.Image) {
	if r.background == nil {
		r.RenderBackground()
	}
	screen.DrawImage(r.background, nil)
}

// Fade darkens the whole screen, used behind overlays.
func Fade(screen *ebiten.Image, c color.Color) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}
