//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay is the Game Over modal drawn over the board.
type Overlay struct {
	view    image.Rectangle
	visible bool
	hover   bool
	pixel   *ebiten.Image
}

// NewOverlay constructs a hidden overlay covering view.
func NewOverlay(view image.Rectangle) *Overlay {
	o := &Overlay{view: view}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetVisible shows or hides the modal.
func (o *Overlay) SetVisible(v bool) { o.visible = v }

// Update handles the restart button and reports whether it was activated
// this frame. Enter and R also activate it.
func (o *Overlay) Update() bool {
	if !o.visible {
		return false
	}
	_, button := noticeLayout(o.view)
	mx, my := ebiten.CursorPosition()
	o.hover = pointInRect(mx, my, button)
	if o.hover && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR)
}

// Draw renders the modal onto screen when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	o.fillRect(screen, o.view, color.RGBA{A: 120})

	box, button := noticeLayout(o.view)
	o.fillRect(screen, box, color.RGBA{R: 32, G: 34, B: 40, A: 240})

	face := basicfont.Face7x13
	y := box.Min.Y + buttonMarginY + glyphHeight
	for i, line := range noticeLines {
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			col = color.RGBA{R: 255, G: 96, B: 96, A: 255}
		}
		drawCentred(screen, line, box, y, col)
		y += lineSpacing
	}

	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	if o.hover {
		bg = color.RGBA{R: 80, G: 84, B: 96, A: 255}
	}
	o.fillRect(screen, button, bg)
	bounds := text.BoundString(face, restartLabel)
	x := button.Min.X + (button.Dx()-bounds.Dx())/2
	by := button.Min.Y + (button.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, restartLabel, face, x, by, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

func drawCentred(screen *ebiten.Image, s string, box image.Rectangle, y int, col color.RGBA) {
	bounds := text.BoundString(basicfont.Face7x13, s)
	x := box.Min.X + (box.Dx()-bounds.Dx())/2
	text.Draw(screen, s, basicfont.Face7x13, x, y, col)
}

func (o *Overlay) fillRect(screen *ebiten.Image, rect image.Rectangle, col color.RGBA) {
	if o.pixel == nil || rect.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
