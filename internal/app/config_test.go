package app

import (
	"flag"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Scale != 20 || cfg.TPS != 60 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Sound || cfg.LogPath != "" || cfg.Seed != 0 {
		t.Fatalf("optional settings should be off: %+v", cfg)
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-scale", "8", "-tps", "30", "-seed", "7", "-sound", "-log", "snake.log"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := Config{Scale: 8, TPS: 30, Seed: 7, Sound: true, LogPath: "snake.log"}
	if *cfg != want {
		t.Fatalf("got %+v, want %+v", *cfg, want)
	}
	if cfg.ResolveSeed() != 7 {
		t.Fatalf("explicit seed not kept")
	}
}

func TestResolveSeedFromClock(t *testing.T) {
	cfg := NewConfig()
	if cfg.ResolveSeed() == 0 {
		t.Fatal("clock seed should be non-zero")
	}
}
