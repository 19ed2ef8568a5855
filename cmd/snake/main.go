//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"gridsnake/internal/app"
	"gridsnake/internal/audio"
	"gridsnake/internal/engine"
	"gridsnake/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.New(os.Stderr, "snake: ", log.LstdFlags)
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	eng := engine.New(engine.BoardSize, engine.WithSeed(cfg.ResolveSeed()))
	sess := session.New(eng, session.WithLogger(logger))

	if cfg.Sound {
		cues := audio.NewCues()
		if err := cues.Init(); err != nil {
			logger.Printf("sound disabled: %v", err)
		} else {
			defer cues.Close()
			sess.Subscribe(cues.Observe)
		}
	}

	game := app.New(sess, cfg.Scale)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	sess.Start()
	defer sess.Stop()
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Print(err)
	}
}
