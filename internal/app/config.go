package app

import (
	"flag"
	"time"
)

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Scale   int
	TPS     int
	Seed    int64
	Sound   bool
	LogPath string
}

// NewConfig returns a Config populated with sensible defaults. A zero Seed
// means a time based seed.
func NewConfig() *Config {
	return &Config{Scale: 20, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for food placement (0 picks one from the clock)")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play sound cues")
	fs.StringVar(&c.LogPath, "log", c.LogPath, "append log output to this file")
}

// ResolveSeed returns Seed, or a clock derived seed when Seed is zero.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
