// Package engine implements the snake game state machine.
package engine

import (
	"errors"
	"slices"
	"sync"
	"time"

	"gridsnake/internal/core"
	"gridsnake/internal/food"
	"gridsnake/internal/geom"
)

const (
	// BoardSize is the edge length of the square board.
	BoardSize = 15
	// TickPeriod is the interval between simulation steps.
	TickPeriod = 200 * time.Millisecond

	minBoardSize = 3
)

// InitialDirection is the heading of a fresh game.
var InitialDirection = geom.Right

// InitialSnake returns the starting body, head first.
func InitialSnake() []geom.Cell {
	return []geom.Cell{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}}
}

// Engine owns the authoritative game state. All methods are safe for
// concurrent use; each runs as a single critical section.
type Engine struct {
	mu sync.Mutex

	size    int
	spawner FoodSource

	snake      []geom.Cell
	food       geom.Cell
	direction  geom.Direction
	pending    geom.Direction
	hasPending bool
	status     Status
	cause      Cause
	score      int
	ticks      uint64
	ate        bool
}

// Option customizes engine construction.
type Option func(*Engine)

// WithSeed seeds the food spawner deterministically.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.spawner = food.New(e.size, core.NewRNG(seed))
	}
}

// FoodSource places food on free cells. *food.Spawner is the standard one.
type FoodSource interface {
	Spawn(occupied []geom.Cell) (geom.Cell, error)
}

// WithSpawner replaces the food spawner.
func WithSpawner(s FoodSource) Option {
	return func(e *Engine) {
		if s != nil {
			e.spawner = s
		}
	}
}

// New creates an engine on a boardSize×boardSize board in the initial state.
// Boards smaller than the initial snake are raised to fit it.
func New(boardSize int, opts ...Option) *Engine {
	if boardSize < minBoardSize {
		boardSize = minBoardSize
	}
	e := &Engine{size: boardSize}
	for _, opt := range opts {
		opt(e)
	}
	if e.spawner == nil {
		e.spawner = food.New(boardSize, core.NewRNG(time.Now().UnixNano()))
	}
	e.resetLocked()
	return e
}

// Reset reinitializes the game exactly as New does. Valid in either state.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetLocked()
}

func (e *Engine) resetLocked() {
	e.snake = InitialSnake()
	e.direction = InitialDirection
	e.pending = geom.Direction{}
	e.hasPending = false
	e.status = Running
	e.cause = CauseNone
	e.score = 0
	e.ticks = 0
	e.ate = false

	f, err := e.spawner.Spawn(e.snake)
	if err != nil {
		e.endLocked(spawnCause(err))
		return
	}
	e.food = f
}

// SetDirection buffers d for the next tick. Input along the axis of the
// active direction is dropped, which rules out reversals; later calls before
// a tick overwrite earlier ones. Ignored once the game is over.
func (e *Engine) SetDirection(d geom.Direction) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status == GameOver || !d.Valid() {
		return
	}
	if d.SameAxis(e.direction) {
		return
	}
	e.pending = d
	e.hasPending = true
}

// Tick advances the game by one step and returns the resulting snapshot.
// After GameOver it returns the final state unchanged.
func (e *Engine) Tick() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status == GameOver {
		return e.snapshotLocked()
	}
	e.ticks++
	e.ate = false

	if e.hasPending {
		e.direction = e.pending
		e.hasPending = false
	}

	newHead := geom.Add(e.snake[0], e.direction)

	if geom.Equals(newHead, e.food) {
		grown := make([]geom.Cell, 0, len(e.snake)+1)
		grown = append(grown, newHead)
		grown = append(grown, e.snake...)
		e.snake = grown
		e.score++
		e.ate = true

		f, err := e.spawner.Spawn(grown)
		if err != nil {
			e.endLocked(spawnCause(err))
			return e.snapshotLocked()
		}
		e.food = f
		return e.snapshotLocked()
	}

	// The tail cell is vacated this tick, so only the remaining segments
	// can be hit.
	remaining := e.snake[:len(e.snake)-1]
	switch {
	case !geom.InBounds(newHead, e.size):
		e.endLocked(CauseWall)
	case geom.OccupiedBy(remaining, newHead):
		e.endLocked(CauseSelf)
	default:
		moved := make([]geom.Cell, 0, len(e.snake))
		moved = append(moved, newHead)
		moved = append(moved, remaining...)
		e.snake = moved
	}
	return e.snapshotLocked()
}

func spawnCause(err error) Cause {
	if errors.Is(err, food.ErrBoardFull) {
		return CauseBoardFull
	}
	return CauseSpawnFailed
}

// endLocked freezes the snake at its last valid position.
func (e *Engine) endLocked(cause Cause) {
	e.status = GameOver
	e.cause = cause
	e.hasPending = false
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Tick:      e.ticks,
		Size:      e.size,
		Snake:     slices.Clone(e.snake),
		Food:      e.food,
		Direction: e.direction,
		Status:    e.status,
		Cause:     e.cause,
		Score:     e.score,
		Ate:       e.ate,
	}
}
