package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/app"
	"gridsnake/internal/audio"
	"gridsnake/internal/engine"
	"gridsnake/internal/session"
	"gridsnake/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	// The screen owns the terminal, so logs go to a file or nowhere.
	logger := log.New(io.Discard, "snake: ", log.LstdFlags)
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.HideCursor()

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := term.Run(ctx, screen, sess); err != nil {
		logger.Print(err)
	}
}
