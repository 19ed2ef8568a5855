package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"gridsnake/internal/soak"
)

func main() {
	opts := soak.DefaultOptions()
	flag.IntVar(&opts.Games, "games", opts.Games, "games to play")
	flag.IntVar(&opts.Workers, "workers", opts.Workers, "number of worker goroutines")
	flag.IntVar(&opts.MaxTicks, "max-ticks", opts.MaxTicks, "tick limit per game (0 = until game over)")
	flag.Int64Var(&opts.Seed, "seed", opts.Seed, "seed of the first game; game i uses seed+i")
	flag.IntVar(&opts.TurnOdds, "turn-odds", opts.TurnOdds, "turn on roughly one tick in N")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Playing %d games (%d workers, %d max ticks)\n", opts.Games, opts.Workers, opts.MaxTicks)
	start := time.Now()
	rep, err := soak.Run(ctx, opts)
	if err != nil {
		log.Fatalf("soak failed: %v", err)
	}
	fmt.Println(rep)
	fmt.Printf("Completed in %s\n", time.Since(start).Round(time.Millisecond))
}
