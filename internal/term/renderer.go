// Package term is the tcell front end.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/core"
	"gridsnake/internal/engine"
)

const (
	boardX = 0
	boardY = 2
	// cellWidth is the number of terminal columns per board cell, which keeps
	// cells roughly square in most fonts.
	cellWidth = 2

	glyphHead = '@'
	glyphBody = 'o'
	glyphFood = '*'
)

var (
	styleDefault = tcell.StyleDefault
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBoard   = tcell.StyleDefault.Background(tcell.NewRGBColor(240, 240, 240))
	styleBody    = styleBoard.Foreground(tcell.NewRGBColor(0, 0, 255)).Bold(true)
	styleHead    = styleBoard.Foreground(tcell.NewRGBColor(0, 0, 160)).Bold(true)
	styleFood    = styleBoard.Foreground(tcell.NewRGBColor(255, 0, 0)).Bold(true)
	styleNotice  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed)
	styleButton  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// Renderer draws snapshots onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	title  string
	grid   *core.ByteGrid
}

// NewRenderer binds a renderer to screen; title heads every frame.
func NewRenderer(screen tcell.Screen, title string) *Renderer {
	return &Renderer{screen: screen, title: title}
}

// Draw renders one full frame and shows it.
func (r *Renderer) Draw(snap engine.Snapshot) {
	size := snap.Size
	if size <= 0 {
		return
	}
	if r.grid == nil || r.grid.W != size {
		r.grid = core.NewByteGrid(size, size)
	}
	snap.Paint(r.grid)

	r.screen.Clear()
	r.drawText(boardX, 0, r.title, styleDefault.Bold(true))
	r.drawBorder(boardX, boardY-1, size*cellWidth+2, size+2)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			glyph, style := cellGlyph(r.grid.At(x, y))
			sx := boardX + 1 + x*cellWidth
			sy := boardY + y
			r.screen.SetContent(sx, sy, glyph, nil, style)
			r.screen.SetContent(sx+1, sy, ' ', nil, styleBoard)
		}
	}

	status := fmt.Sprintf("Score: %d  Length: %d", snap.Score, snap.Len())
	r.drawText(boardX, boardY+size+1, status, styleDefault)
	r.drawText(boardX, boardY+size+2, "arrows/wasd move, q quits", styleBorder)

	if snap.Status == engine.GameOver {
		r.drawNotice(size)
	}
	r.screen.Show()
}

func cellGlyph(v uint8) (rune, tcell.Style) {
	switch v {
	case engine.CellHead:
		return glyphHead, styleHead
	case engine.CellBody:
		return glyphBody, styleBody
	case engine.CellFood:
		return glyphFood, styleFood
	}
	return ' ', styleBoard
}

// noticeLines is the Game Over prompt; its only action is Restart.
var noticeLines = []string{
	"Game Over",
	"Better luck next time!",
	"[ Restart ]",
}

func (r *Renderer) drawNotice(size int) {
	inner := 0
	for _, l := range noticeLines {
		if len(l) > inner {
			inner = len(l)
		}
	}
	inner += 2
	w := inner + 2
	h := len(noticeLines) + 2
	boardW := size*cellWidth + 2
	x0 := boardX + (boardW-w)/2
	if x0 < 0 {
		x0 = 0
	}
	y0 := boardY + (size-h)/2
	if y0 < boardY {
		y0 = boardY
	}

	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			r.screen.SetContent(x, y, ' ', nil, styleNotice)
		}
	}
	r.drawBorderStyled(x0, y0, w, h, styleNotice)
	for i, l := range noticeLines {
		style := styleNotice
		if i == len(noticeLines)-1 {
			style = styleButton
		}
		r.drawText(x0+1+(inner-len(l))/2, y0+1+i, l, style)
	}
}

func (r *Renderer) drawBorder(x, y, w, h int) {
	r.drawBorderStyled(x, y, w, h, styleBorder)
}

func (r *Renderer) drawBorderStyled(x, y, w, h int, style tcell.Style) {
	right := x + w - 1
	bottom := y + h - 1
	for i := x + 1; i < right; i++ {
		r.screen.SetContent(i, y, tcell.RuneHLine, nil, style)
		r.screen.SetContent(i, bottom, tcell.RuneHLine, nil, style)
	}
	for j := y + 1; j < bottom; j++ {
		r.screen.SetContent(x, j, tcell.RuneVLine, nil, style)
		r.screen.SetContent(right, j, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(right, y, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(x, bottom, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
