// Package soak plays many headless games and checks the engine's
// bookkeeping after every tick.
package soak

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"gridsnake/internal/core"
	"gridsnake/internal/engine"
	"gridsnake/internal/geom"
)

// Options controls a soak run.
type Options struct {
	Games    int
	Workers  int
	MaxTicks int
	Seed     int64
	// TurnOdds is the chance, one in TurnOdds, that the driver turns on a tick.
	TurnOdds int
}

// DefaultOptions returns a modest run sized for a laptop.
func DefaultOptions() Options {
	return Options{Games: 1000, Workers: runtime.NumCPU(), MaxTicks: 2000, Seed: 1, TurnOdds: 4}
}

// Result summarizes one game.
type Result struct {
	Seed   int64
	Ticks  int
	Length int
	Score  int
	Status engine.Status
	Cause  engine.Cause
}

// Report aggregates a run.
type Report struct {
	Games      int
	TotalTicks int
	MaxLength  int
	MeanLength float64
	Causes     map[engine.Cause]int
	// Unfinished counts games still running when MaxTicks was reached.
	Unfinished int
}

func (r Report) String() string {
	return fmt.Sprintf("games=%d ticks=%d mean_length=%.2f max_length=%d wall=%d self=%d board_full=%d unfinished=%d",
		r.Games, r.TotalTicks, r.MeanLength, r.MaxLength,
		r.Causes[engine.CauseWall], r.Causes[engine.CauseSelf], r.Causes[engine.CauseBoardFull], r.Unfinished)
}

// Run plays opts.Games games across opts.Workers goroutines. Game i uses seed
// opts.Seed+i. The first invariant violation cancels the run.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Games <= 0 {
		return Report{Causes: map[engine.Cause]int{}}, nil
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.TurnOdds <= 0 {
		opts.TurnOdds = 4
	}

	results := make([]Result, opts.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := 0; i < opts.Games; i++ {
		if ctx.Err() != nil {
			break
		}
		i := i // per-iteration copy (go1.22+ loopvar semantics on go1.21 toolchain)
		g.Go(func() error {
			res, err := Play(ctx, opts.Seed+int64(i), opts.MaxTicks, opts.TurnOdds)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	return summarize(results), nil
}

func summarize(results []Result) Report {
	rep := Report{Games: len(results), Causes: map[engine.Cause]int{}}
	total := 0
	for _, r := range results {
		rep.TotalTicks += r.Ticks
		total += r.Length
		if r.Length > rep.MaxLength {
			rep.MaxLength = r.Length
		}
		if r.Status == engine.Running {
			rep.Unfinished++
			continue
		}
		rep.Causes[r.Cause]++
	}
	if len(results) > 0 {
		rep.MeanLength = float64(total) / float64(len(results))
	}
	return rep
}

// Play drives one game with random perpendicular turns until it ends or
// maxTicks ticks have run.
func Play(ctx context.Context, seed int64, maxTicks, turnOdds int) (Result, error) {
	eng := engine.New(engine.BoardSize, engine.WithSeed(seed))
	driver := core.NewRNG(seed*31 + 7)
	prev := eng.Snapshot()
	ticks := 0
	for prev.Running() && (maxTicks <= 0 || ticks < maxTicks) {
		if ticks%64 == 0 && ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		if turnOdds > 0 && driver.Intn(turnOdds) == 0 {
			eng.SetDirection(turn(prev.Direction, driver))
		}
		next := eng.Tick()
		ticks++
		if err := Check(prev, next); err != nil {
			return Result{}, fmt.Errorf("seed %d tick %d: %w", seed, next.Tick, err)
		}
		prev = next
	}
	return Result{
		Seed:   seed,
		Ticks:  ticks,
		Length: prev.Len(),
		Score:  prev.Score,
		Status: prev.Status,
		Cause:  prev.Cause,
	}, nil
}

func turn(d geom.Direction, rng *core.RNG) geom.Direction {
	if d.DX != 0 {
		if rng.Bool() {
			return geom.Up
		}
		return geom.Down
	}
	if rng.Bool() {
		return geom.Left
	}
	return geom.Right
}

// Check verifies the bookkeeping between two consecutive snapshots.
func Check(prev, next engine.Snapshot) error {
	if next.Tick != prev.Tick+1 {
		return fmt.Errorf("tick jumped from %d to %d", prev.Tick, next.Tick)
	}
	want := prev.Len()
	wantScore := prev.Score
	if next.Ate {
		want++
		wantScore++
	}
	if next.Len() != want {
		return fmt.Errorf("length %d, want %d (ate=%t)", next.Len(), want, next.Ate)
	}
	if next.Score != wantScore {
		return fmt.Errorf("score %d, want %d", next.Score, wantScore)
	}
	if next.Score != next.Len()-len(engine.InitialSnake()) {
		return fmt.Errorf("score %d does not match length %d", next.Score, next.Len())
	}
	if !next.Running() {
		return nil
	}
	seen := make(map[geom.Cell]struct{}, next.Len())
	for _, c := range next.Snake {
		if !geom.InBounds(c, next.Size) {
			return fmt.Errorf("segment %v out of bounds", c)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("segment %v repeated", c)
		}
		seen[c] = struct{}{}
	}
	if _, hit := seen[next.Food]; hit {
		return fmt.Errorf("food %v under the snake", next.Food)
	}
	if !geom.InBounds(next.Food, next.Size) {
		return fmt.Errorf("food %v out of bounds", next.Food)
	}
	return nil
}
