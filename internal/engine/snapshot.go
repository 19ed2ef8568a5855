package engine

import (
	"gridsnake/internal/core"
	"gridsnake/internal/geom"
)

// Status is the game's run state.
type Status int

const (
	// Running accepts input and advances on Tick.
	Running Status = iota
	// GameOver is terminal until Reset.
	GameOver
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// Cause records why a game ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
	CauseBoardFull
	// CauseSpawnFailed means the food source failed for a reason other than
	// a full board.
	CauseSpawnFailed
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBoardFull:
		return "board full"
	case CauseSpawnFailed:
		return "spawn failed"
	}
	return "unknown"
}

// Display buffer values written by Snapshot.Paint.
const (
	CellEmpty uint8 = iota
	CellBody
	CellHead
	CellFood
)

// Snapshot is an immutable copy of the engine state at one instant. Consumers
// may retain it; the engine never writes to a published snapshot.
type Snapshot struct {
	Tick      uint64
	Size      int
	Snake     []geom.Cell
	Food      geom.Cell
	Direction geom.Direction
	Status    Status
	Cause     Cause
	Score     int
	// Ate is set when the tick that produced this snapshot was a growth move.
	Ate bool
}

// Head returns the first snake cell.
func (s Snapshot) Head() geom.Cell {
	if len(s.Snake) == 0 {
		return geom.Cell{}
	}
	return s.Snake[0]
}

// Len returns the snake length.
func (s Snapshot) Len() int { return len(s.Snake) }

// Running reports whether the game is still in progress.
func (s Snapshot) Running() bool { return s.Status == Running }

// Paint writes the snapshot into g. Food is drawn first so a head that ended
// the game on a full board still shows.
func (s Snapshot) Paint(g *core.ByteGrid) {
	g.Clear()
	g.Set(s.Food.X, s.Food.Y, CellFood)
	for i := len(s.Snake) - 1; i >= 1; i-- {
		g.Set(s.Snake[i].X, s.Snake[i].Y, CellBody)
	}
	if len(s.Snake) > 0 {
		head := s.Snake[0]
		g.Set(head.X, head.Y, CellHead)
	}
}
