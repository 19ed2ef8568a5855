package engine

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"

	"gridsnake/internal/core"
	"gridsnake/internal/food"
	"gridsnake/internal/geom"
)

// load replaces the engine state with a hand-built position.
func load(e *Engine, snake []geom.Cell, dir geom.Direction, food geom.Cell) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.snake = snake
	e.direction = dir
	e.food = food
	e.hasPending = false
	e.status = Running
	e.cause = CauseNone
}

func TestNewInitialState(t *testing.T) {
	e := New(BoardSize, WithSeed(1))
	s := e.Snapshot()

	if !slices.Equal(s.Snake, InitialSnake()) {
		t.Fatalf("initial snake = %v", s.Snake)
	}
	if s.Direction != geom.Right {
		t.Fatalf("initial direction = %v, expected right", s.Direction)
	}
	if s.Status != Running {
		t.Fatalf("initial status = %v", s.Status)
	}
	if !geom.InBounds(s.Food, BoardSize) || geom.OccupiedBy(s.Snake, s.Food) {
		t.Fatalf("initial food %v must be a free in-bounds cell", s.Food)
	}
}

func TestFirstTickMovesHead(t *testing.T) {
	e := New(BoardSize, WithSeed(1))
	load(e, InitialSnake(), geom.Right, geom.Cell{X: 10, Y: 10})

	s := e.Tick()

	want := []geom.Cell{{X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 2}}
	if !slices.Equal(s.Snake, want) {
		t.Fatalf("snake after one tick = %v, expected %v", s.Snake, want)
	}
	if s.Status != Running || s.Ate {
		t.Fatalf("unexpected status=%v ate=%v", s.Status, s.Ate)
	}
}

func TestGrowthKeepsTailAndRespawnsFood(t *testing.T) {
	e := New(BoardSize, WithSeed(2))
	load(e, InitialSnake(), geom.Right, geom.Cell{X: 3, Y: 2})

	s := e.Tick()

	want := []geom.Cell{{X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}}
	if !slices.Equal(s.Snake, want) {
		t.Fatalf("grown snake = %v, expected %v", s.Snake, want)
	}
	if !s.Ate || s.Score != 1 {
		t.Fatalf("growth not reported: ate=%v score=%d", s.Ate, s.Score)
	}
	if geom.OccupiedBy(s.Snake, s.Food) {
		t.Fatalf("new food %v placed inside the snake", s.Food)
	}
}

func TestBoundaryTermination(t *testing.T) {
	e := New(BoardSize, WithSeed(3))
	snake := []geom.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	load(e, snake, geom.Left, geom.Cell{X: 9, Y: 9})

	s := e.Tick()

	if s.Status != GameOver || s.Cause != CauseWall {
		t.Fatalf("expected wall game over, got status=%v cause=%v", s.Status, s.Cause)
	}
	if !slices.Equal(s.Snake, snake) {
		t.Fatalf("snake must freeze at last valid position, got %v", s.Snake)
	}
}

func TestSelfCollisionTermination(t *testing.T) {
	e := New(BoardSize, WithSeed(4))
	// Heading left at (2,2); turning up lands on (2,1), a non-tail segment.
	snake := []geom.Cell{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}}
	load(e, snake, geom.Left, geom.Cell{X: 9, Y: 9})

	e.SetDirection(geom.Up)
	s := e.Tick()

	if s.Status != GameOver || s.Cause != CauseSelf {
		t.Fatalf("expected self collision, got status=%v cause=%v", s.Status, s.Cause)
	}
	if !slices.Equal(s.Snake, snake) {
		t.Fatalf("snake must not commit the colliding head, got %v", s.Snake)
	}
}

func TestHeadMayEnterVacatedTail(t *testing.T) {
	e := New(BoardSize, WithSeed(5))
	snake := []geom.Cell{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}}
	load(e, snake, geom.Left, geom.Cell{X: 9, Y: 9})

	e.SetDirection(geom.Down)
	s := e.Tick()

	if s.Status != Running {
		t.Fatalf("chasing the tail must be safe, got cause=%v", s.Cause)
	}
	want := []geom.Cell{{X: 1, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}}
	if !slices.Equal(s.Snake, want) {
		t.Fatalf("snake = %v, expected %v", s.Snake, want)
	}
}

func TestAntiReversal(t *testing.T) {
	e := New(BoardSize, WithSeed(6))
	load(e, InitialSnake(), geom.Right, geom.Cell{X: 12, Y: 12})

	e.SetDirection(geom.Left)
	if s := e.Tick(); s.Direction != geom.Right {
		t.Fatalf("reversal accepted: direction = %v", s.Direction)
	}

	e.SetDirection(geom.Right)
	if s := e.Tick(); s.Direction != geom.Right {
		t.Fatalf("same-axis input changed direction to %v", s.Direction)
	}

	e.SetDirection(geom.Down)
	if s := e.Tick(); s.Direction != geom.Down {
		t.Fatalf("perpendicular turn ignored: direction = %v", s.Direction)
	}
}

func TestInputCoalescing(t *testing.T) {
	e := New(BoardSize, WithSeed(7))
	load(e, InitialSnake(), geom.Right, geom.Cell{X: 12, Y: 12})

	e.SetDirection(geom.Up)
	e.SetDirection(geom.Down)
	s := e.Tick()

	if s.Direction != geom.Down {
		t.Fatalf("last input should win, direction = %v", s.Direction)
	}
	if s.Head() != (geom.Cell{X: 2, Y: 3}) {
		t.Fatalf("head = %v, expected (2,3)", s.Head())
	}
}

func TestPendingAppliesOnlyOnce(t *testing.T) {
	e := New(BoardSize, WithSeed(8))
	load(e, InitialSnake(), geom.Right, geom.Cell{X: 12, Y: 12})

	e.SetDirection(geom.Down)
	e.Tick()
	// Left is perpendicular to the now-active down heading.
	e.SetDirection(geom.Left)
	s := e.Tick()
	if s.Direction != geom.Left {
		t.Fatalf("direction = %v, expected left", s.Direction)
	}
	s = e.Tick()
	if s.Direction != geom.Left || s.Status != Running {
		t.Fatalf("unexpected state after plain tick: dir=%v status=%v", s.Direction, s.Status)
	}
}

func TestInvalidDirectionIgnored(t *testing.T) {
	e := New(BoardSize, WithSeed(9))
	load(e, InitialSnake(), geom.Right, geom.Cell{X: 12, Y: 12})

	e.SetDirection(geom.Direction{})
	e.SetDirection(geom.Direction{DX: 1, DY: 1})
	if s := e.Tick(); s.Direction != geom.Right {
		t.Fatalf("invalid input changed direction to %v", s.Direction)
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	e := New(BoardSize, WithSeed(10))
	load(e, []geom.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, geom.Left, geom.Cell{X: 9, Y: 9})
	over := e.Tick()

	e.SetDirection(geom.Down)
	again := e.Tick()

	if again.Tick != over.Tick || !slices.Equal(again.Snake, over.Snake) || again.Status != GameOver {
		t.Fatalf("tick after game over changed state: %+v -> %+v", over, again)
	}
	e.mu.Lock()
	pending := e.hasPending
	e.mu.Unlock()
	if pending {
		t.Fatal("input accepted after game over")
	}
}

func TestResetDeterminism(t *testing.T) {
	e := New(BoardSize, WithSeed(11))
	load(e, []geom.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, geom.Left, geom.Cell{X: 9, Y: 9})
	e.Tick()

	for i := 0; i < 5; i++ {
		e.Reset()
		s := e.Snapshot()
		if !slices.Equal(s.Snake, InitialSnake()) {
			t.Fatalf("reset snake = %v", s.Snake)
		}
		if s.Direction != geom.Right || s.Status != Running || s.Cause != CauseNone {
			t.Fatalf("reset state dir=%v status=%v cause=%v", s.Direction, s.Status, s.Cause)
		}
		if s.Score != 0 || s.Tick != 0 {
			t.Fatalf("reset counters score=%d tick=%d", s.Score, s.Tick)
		}
		if geom.OccupiedBy(s.Snake, s.Food) {
			t.Fatalf("reset food %v inside snake", s.Food)
		}
	}
}

func TestBoardFullEndsGame(t *testing.T) {
	e := New(3, WithSeed(12))
	snake := []geom.Cell{
		{X: 1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1},
		{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2},
	}
	load(e, snake, geom.Right, geom.Cell{X: 2, Y: 0})

	s := e.Tick()

	if s.Status != GameOver || s.Cause != CauseBoardFull {
		t.Fatalf("expected board-full game over, got status=%v cause=%v", s.Status, s.Cause)
	}
	if s.Len() != 9 {
		t.Fatalf("final growth should be kept, len = %d", s.Len())
	}
}

// scriptedFood hands out cells in order, then fails with err.
type scriptedFood struct {
	cells []geom.Cell
	err   error
}

func (f *scriptedFood) Spawn([]geom.Cell) (geom.Cell, error) {
	if len(f.cells) == 0 {
		return geom.Cell{}, f.err
	}
	c := f.cells[0]
	f.cells = f.cells[1:]
	return c, nil
}

func TestSpawnErrorCause(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Cause
	}{
		{"board full", food.ErrBoardFull, CauseBoardFull},
		{"wrapped board full", fmt.Errorf("respawn: %w", food.ErrBoardFull), CauseBoardFull},
		{"other failure", errors.New("no source"), CauseSpawnFailed},
	}
	for _, tc := range cases {
		src := &scriptedFood{cells: []geom.Cell{{X: 3, Y: 2}}, err: tc.err}
		e := New(BoardSize, WithSpawner(src))

		s := e.Tick()

		if !s.Ate {
			t.Fatalf("%s: first tick should eat the food ahead", tc.name)
		}
		if s.Status != GameOver || s.Cause != tc.want {
			t.Fatalf("%s: got status=%v cause=%v, want cause %v", tc.name, s.Status, s.Cause, tc.want)
		}
	}
}

func TestSpawnFailureOnReset(t *testing.T) {
	e := New(BoardSize, WithSpawner(&scriptedFood{err: errors.New("no source")}))
	s := e.Snapshot()
	if s.Status != GameOver || s.Cause != CauseSpawnFailed {
		t.Fatalf("got status=%v cause=%v", s.Status, s.Cause)
	}
	if s.Cause.String() != "spawn failed" {
		t.Fatalf("cause string = %q", s.Cause.String())
	}
}

func TestSnapshotsAreIndependent(t *testing.T) {
	e := New(BoardSize, WithSeed(13))
	load(e, InitialSnake(), geom.Right, geom.Cell{X: 12, Y: 12})

	before := e.Snapshot()
	before.Snake[0] = geom.Cell{X: 99, Y: 99}
	if e.Snapshot().Head() != (geom.Cell{X: 2, Y: 2}) {
		t.Fatal("mutating a snapshot leaked into the engine")
	}

	retained := e.Snapshot()
	e.Tick()
	if !slices.Equal(retained.Snake, InitialSnake()) {
		t.Fatalf("retained snapshot changed after tick: %v", retained.Snake)
	}
}

func TestLengthInvariantsUnderRandomPlay(t *testing.T) {
	turns := []geom.Direction{geom.Up, geom.Down, geom.Left, geom.Right}
	for seed := int64(1); seed <= 25; seed++ {
		e := New(BoardSize, WithSeed(seed))
		rng := core.NewRNG(seed * 31)
		prev := e.Snapshot()
		for step := 0; step < 2000 && prev.Running(); step++ {
			if rng.Intn(4) == 0 {
				e.SetDirection(turns[rng.Intn(len(turns))])
			}
			next := e.Tick()
			if !next.Running() {
				break
			}
			switch {
			case next.Ate && next.Len() != prev.Len()+1:
				t.Fatalf("seed %d: growth changed length %d -> %d", seed, prev.Len(), next.Len())
			case !next.Ate && next.Len() != prev.Len():
				t.Fatalf("seed %d: plain move changed length %d -> %d", seed, prev.Len(), next.Len())
			}
			if geom.OccupiedBy(next.Snake, next.Food) {
				t.Fatalf("seed %d: food %v inside snake", seed, next.Food)
			}
			seen := map[geom.Cell]bool{}
			for _, c := range next.Snake {
				if seen[c] {
					t.Fatalf("seed %d: duplicate cell %v while running", seed, c)
				}
				seen[c] = true
			}
			prev = next
		}
	}
}

func TestConcurrentInputAndTicks(t *testing.T) {
	e := New(BoardSize, WithSeed(14))
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			e.SetDirection([]geom.Direction{geom.Up, geom.Left, geom.Down, geom.Right}[i%4])
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			if !e.Tick().Running() {
				e.Reset()
			}
		}
	}()
	wg.Wait()
}

func TestPaintMarksCells(t *testing.T) {
	e := New(BoardSize, WithSeed(15))
	load(e, InitialSnake(), geom.Right, geom.Cell{X: 5, Y: 6})

	cells := e.Cells()
	g := core.NewByteGrid(BoardSize, BoardSize)
	expects := map[geom.Cell]uint8{
		{X: 2, Y: 2}: CellHead,
		{X: 1, Y: 2}: CellBody,
		{X: 0, Y: 2}: CellBody,
		{X: 5, Y: 6}: CellFood,
	}
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			want, ok := expects[geom.Cell{X: x, Y: y}]
			if !ok {
				want = CellEmpty
			}
			if got := cells[g.Index(x, y)]; got != want {
				t.Fatalf("cell (%d,%d) = %d, expected %d", x, y, got, want)
			}
		}
	}
	if len(e.Palette()) != int(CellFood)+1 {
		t.Fatalf("palette has %d entries", len(e.Palette()))
	}
}

func TestParametersReflectState(t *testing.T) {
	e := New(BoardSize, WithSeed(16))
	load(e, InitialSnake(), geom.Right, geom.Cell{X: 3, Y: 2})
	e.Tick()

	values := map[string]string{}
	for _, g := range e.Parameters().Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	if values["score"] != "1" || values["length"] != "4" || values["status"] != "running" {
		t.Fatalf("unexpected parameters: %v", values)
	}
	if values["head"] != "(3,2)" || values["direction"] != "right" {
		t.Fatalf("unexpected snake parameters: %v", values)
	}
}
