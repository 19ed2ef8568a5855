package engine

import (
	"image/color"
	"strconv"

	"gridsnake/internal/core"
)

var snakePalette = []color.RGBA{
	CellEmpty: {R: 240, G: 240, B: 240, A: 255},
	CellBody:  {R: 0, G: 0, B: 255, A: 255},
	CellHead:  {R: 0, G: 0, B: 160, A: 255},
	CellFood:  {R: 255, G: 0, B: 0, A: 255},
}

// Name identifies the board for window titles.
func (e *Engine) Name() string { return "Snake Game" }

// Size returns the board dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.size, H: e.size} }

// Cells paints the current state into a fresh display buffer.
func (e *Engine) Cells() []uint8 {
	g := core.NewByteGrid(e.size, e.size)
	e.Snapshot().Paint(g)
	return g.Cells()
}

// Palette maps display buffer values to colors.
func (e *Engine) Palette() []color.RGBA { return snakePalette }

// Parameters exposes the current game figures for the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	return snapshotParameters(e.Snapshot())
}

func snapshotParameters(s Snapshot) core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Game",
			Params: []core.Parameter{
				stringParam("status", "Status", s.Status.String()),
				intParam("score", "Score", s.Score),
				intParam("length", "Length", s.Len()),
				intParam("ticks", "Ticks", int(s.Tick)),
			},
		},
		{
			Name: "Snake",
			Params: []core.Parameter{
				stringParam("head", "Head", s.Head().String()),
				stringParam("direction", "Direction", s.Direction.String()),
			},
		},
	}
	if s.Status == GameOver {
		groups[0].Summary = "ended by " + s.Cause.String()
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
