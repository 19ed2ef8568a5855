package ui

import (
	"fmt"
	"image"

	"gridsnake/internal/core"
)

// Text shown by the Game Over modal. Restart is its only action.
var noticeLines = []string{"Game Over", "Better luck next time!"}

const restartLabel = "Restart"

const (
	noticeWidth   = 200
	noticeHeight  = 110
	buttonWidth   = 96
	buttonHeight  = 26
	buttonMarginY = 14
	glyphHeight   = 13
	lineSpacing   = 20
)

// noticeLayout centres the modal inside view and places the restart button
// along its bottom edge. The modal shrinks to fit small views.
func noticeLayout(view image.Rectangle) (box, button image.Rectangle) {
	w := min(noticeWidth, view.Dx())
	h := min(noticeHeight, view.Dy())
	x0 := view.Min.X + (view.Dx()-w)/2
	y0 := view.Min.Y + (view.Dy()-h)/2
	box = image.Rect(x0, y0, x0+w, y0+h)

	bw := min(buttonWidth, w)
	bx := x0 + (w-bw)/2
	by := box.Max.Y - buttonMarginY - buttonHeight
	if by < y0 {
		by = y0
	}
	button = image.Rect(bx, by, bx+bw, min(by+buttonHeight, box.Max.Y))
	return box, button
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

// hudLines flattens a parameter snapshot into panel text, one group header
// followed by its "label: value" rows.
func hudLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for _, group := range snap.Groups {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, group.Name)
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, formatParam(p)))
		}
		if group.Summary != "" {
			lines = append(lines, "  "+group.Summary)
		}
	}
	return lines
}

func formatParam(p core.Parameter) string {
	if p.Type == core.ParamTypeBool {
		if p.Value == "true" {
			return "on"
		}
		return "off"
	}
	if p.Value == "" {
		return "--"
	}
	return p.Value
}
