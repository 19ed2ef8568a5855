//go:build ebiten

package app

import (
	"image"

	"gridsnake/internal/core"
	"gridsnake/internal/input"
	"gridsnake/internal/render"
	"gridsnake/internal/session"
	"gridsnake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 180

type binding struct {
	key   ebiten.Key
	event input.Event
}

// bindings is scanned in order; the first key pressed this frame wins.
var bindings = []binding{
	{ebiten.KeyArrowUp, input.Up},
	{ebiten.KeyW, input.Up},
	{ebiten.KeyArrowDown, input.Down},
	{ebiten.KeyS, input.Down},
	{ebiten.KeyArrowLeft, input.Left},
	{ebiten.KeyA, input.Left},
	{ebiten.KeyArrowRight, input.Right},
	{ebiten.KeyD, input.Right},
	{ebiten.KeyQ, input.Quit},
	{ebiten.KeyEscape, input.Quit},
}

// Game adapts a snake session to the ebiten.Game interface.
type Game struct {
	session *session.Session
	board   core.Board
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale int
}

// Title is the window title.
func (g *Game) Title() string { return g.board.Name() }

// New constructs a Game for the provided session. The session is started by
// the caller.
func New(s *session.Session, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	board := s.Engine()
	size := board.Size()
	view := image.Rect(0, 0, size.W*scale, size.H*scale)
	return &Game{
		session: s,
		board:   board,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(s.Engine(), board.Name(), hudWidth),
		overlay: ui.NewOverlay(view),
		scale:   scale,
	}
}

// Update handles per-frame input. Game time advances on the session timer,
// not on ebiten ticks.
func (g *Game) Update() error {
	for _, b := range bindings {
		if !inpututil.IsKeyJustPressed(b.key) {
			continue
		}
		if b.event == input.Quit {
			return ebiten.Termination
		}
		g.session.Handle(b.event)
		break
	}

	g.overlay.SetVisible(!g.session.Snapshot().Running())
	if g.overlay.Update() {
		g.session.Handle(input.Restart)
		g.overlay.SetVisible(false)
	}
	g.hud.Update()
	return nil
}

// Draw renders the current board state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.board.Cells(), g.board.Palette(), g.scale)
	s := g.board.Size()
	g.hud.Draw(screen, s.W*g.scale, s.H*g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.board.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
