// Package audio plays short sound cues for game events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"gridsnake/internal/engine"
)

const sampleRate = beep.SampleRate(44100)

// Cues turns snapshots into sound effects. The zero value is not usable; call
// NewCues.
type Cues struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	play        func(beep.Streamer)
	initialized bool
	wasRunning  bool
}

// NewCues returns silent cues; Init opens the speaker.
func NewCues() *Cues {
	c := &Cues{rate: sampleRate, mixer: &beep.Mixer{}}
	c.play = c.enqueue
	return c
}

// Init opens the default audio device and starts the mixer.
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return nil
	}
	if err := speaker.Init(c.rate, c.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Observe is a session observer.
func (c *Cues) Observe(snap engine.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if snap.Ate {
		c.play(EatSound(c.rate))
	}
	if c.wasRunning && !snap.Running() {
		c.play(CrashSound(c.rate))
	}
	c.wasRunning = snap.Running()
}

// Close silences anything still playing.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// enqueue must be called with c.mu held.
func (c *Cues) enqueue(s beep.Streamer) {
	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}
