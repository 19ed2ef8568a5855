// Package food places food on free board cells.
package food

import (
	"errors"

	"gridsnake/internal/core"
	"gridsnake/internal/geom"
)

// DefaultMaxAttempts bounds rejection sampling before the spawner falls back
// to scanning every free cell.
const DefaultMaxAttempts = 64

// ErrBoardFull is returned when no free cell remains. With a 15×15 board the
// snake grows by at most one cell per tick and dies long before covering the
// board under normal play, so the engine treats this as a fatal game end.
var ErrBoardFull = errors.New("food: no free cell on board")

// Spawner picks food cells uniformly from the cells not occupied by the snake.
type Spawner struct {
	size int
	rng  *core.RNG

	// MaxAttempts caps random draws per Spawn call.
	MaxAttempts int
}

// New constructs a spawner for a size×size board.
func New(size int, rng *core.RNG) *Spawner {
	if rng == nil {
		rng = core.NewRNG(1)
	}
	return &Spawner{size: size, rng: rng, MaxAttempts: DefaultMaxAttempts}
}

// Spawn returns a random in-bounds cell absent from occupied.
func (s *Spawner) Spawn(occupied []geom.Cell) (geom.Cell, error) {
	if s.size <= 0 {
		return geom.Cell{}, ErrBoardFull
	}
	taken := make(map[geom.Cell]struct{}, len(occupied))
	for _, c := range occupied {
		if geom.InBounds(c, s.size) {
			taken[c] = struct{}{}
		}
	}
	if len(taken) >= s.size*s.size {
		return geom.Cell{}, ErrBoardFull
	}

	// Each draw is uniform over the board, so an accepted draw is uniform
	// over the free cells.
	for attempt := 0; attempt < s.MaxAttempts; attempt++ {
		c := geom.Cell{X: s.rng.Intn(s.size), Y: s.rng.Intn(s.size)}
		if _, ok := taken[c]; !ok {
			return c, nil
		}
	}

	free := s.freeCells(taken)
	if len(free) == 0 {
		return geom.Cell{}, ErrBoardFull
	}
	return free[s.rng.Intn(len(free))], nil
}

func (s *Spawner) freeCells(taken map[geom.Cell]struct{}) []geom.Cell {
	free := make([]geom.Cell, 0, s.size*s.size-len(taken))
	for y := 0; y < s.size; y++ {
		for x := 0; x < s.size; x++ {
			c := geom.Cell{X: x, Y: y}
			if _, ok := taken[c]; !ok {
				free = append(free, c)
			}
		}
	}
	return free
}
