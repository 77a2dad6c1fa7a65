// internal/state/game_state.go
package state

import (
	"fmt"
	"time"

	"go-missile-defense/internal/app"
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/system"
	"go-missile-defense/internal/ui"
	"go-missile-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Options — то, что игровое состояние получает от main.
type Options struct {
	Seed      int64
	Listeners []event.Listener
}

// GameState — экран игры: ввод, шаг симуляции и отрисовка снимка
type GameState struct {
	sm              *StateMachine
	game            *app.Game
	scene           *render.SceneRenderer
	renderSystem    *system.RenderSystem
	hud             *ui.HUD
	face            font.Face
	nextRoundButton *ui.Button
	newGameButton   *ui.Button
	lastClickTime   time.Time
}

func NewGameState(sm *StateMachine, opts Options) *GameState {
	game := app.NewGame(opts.Seed)
	for _, l := range opts.Listeners {
		game.AddListener(l)
	}

	face := basicfont.Face7x13
	cx := float32(config.ScreenWidth) / 2
	cy := float32(config.ScreenHeight)/2 + 40

	gs := &GameState{
		sm:   sm,
		game: game,
		scene: render.NewSceneRenderer(config.ScreenWidth, config.ScreenHeight, config.GroundY, render.SceneColors{
			BackgroundColor: config.BackgroundColor,
			GroundColor:     config.GroundColor,
			HorizonColor:    config.TextDarkColor,
		}),
		renderSystem:    system.NewRenderSystem(),
		hud:             ui.NewHUD(face),
		face:            face,
		nextRoundButton: ui.NewButton(cx, cy, config.OverlayButtonW, config.OverlayButtonH, "NEXT ROUND", face, config.ButtonColor, config.ButtonHoverColor, config.TextLightColor),
		newGameButton:   ui.NewButton(cx, cy, config.OverlayButtonW, config.OverlayButtonH, "NEW GAME", face, config.ButtonColor, config.ButtonHoverColor, config.TextLightColor),
	}
	gs.game.Initialize()
	return gs
}

func (g *GameState) Enter() {
	g.scene.RenderBackground()
}

func (g *GameState) Update(deltaTime float64) {
	status := g.game.Status()

	if status == component.StatusPlaying && pauseJustPressed() {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	if x, y, ok := pointerJustPressed(); ok {
		g.handleClick(x, y, status)
	} else if confirmJustPressed() {
		g.acknowledge(status)
	}

	g.game.AdvanceFrame()
}

func (g *GameState) handleClick(x, y int, status component.GameStatus) {
	switch status {
	case component.StatusPlaying:
		g.game.FireInterceptor(component.Position{X: float64(x), Y: float64(y)})
	case component.StatusRoundEnd:
		if g.nextRoundButton.Contains(x, y) && g.clickAllowed() {
			g.game.NextRound()
		}
	case component.StatusWon, component.StatusLost:
		if g.newGameButton.Contains(x, y) && g.clickAllowed() {
			g.game.Initialize()
		}
	}
}

// acknowledge — клавиатурный аналог кнопок оверлея
func (g *GameState) acknowledge(status component.GameStatus) {
	switch status {
	case component.StatusRoundEnd:
		g.game.NextRound()
	case component.StatusWon, component.StatusLost:
		g.game.Initialize()
	}
}

func (g *GameState) clickAllowed() bool {
	if time.Since(g.lastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return false
	}
	g.lastClickTime = time.Now()
	return true
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()

	g.scene.Draw(screen)
	g.renderSystem.Draw(screen, &snap)
	g.hud.Draw(screen, &snap)
	g.drawOverlay(screen, &snap)
}

func (g *GameState) drawOverlay(screen *ebiten.Image, snap *entity.Snapshot) {
	var title string
	var button *ui.Button
	switch snap.Status {
	case component.StatusRoundEnd:
		title = fmt.Sprintf("ROUND %d CLEARED  -  %d CITIES STANDING", snap.Round, snap.CitiesLeft())
		button = g.nextRoundButton
	case component.StatusWon:
		title = fmt.Sprintf("VICTORY  -  SCORE %d", snap.Score)
		button = g.newGameButton
	case component.StatusLost:
		title = fmt.Sprintf("ALL BATTERIES LOST  -  SCORE %d", snap.Score)
		button = g.newGameButton
	default:
		return
	}

	render.Fade(screen, config.OverlayColor)
	ui.DrawCenteredText(screen, g.face, title, config.ScreenWidth/2, config.ScreenHeight/2-20, config.TextLightColor)
	mx, my := ebiten.CursorPosition()
	button.Draw(screen, mx, my)
}

func (g *GameState) Exit() {}

// GetGame нужен паузе и тестам
func (g *GameState) GetGame() *app.Game {
	return g.game
}
