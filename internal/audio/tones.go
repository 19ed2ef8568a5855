package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// tone is a sine voice with optional harmonics and a linear fade out over
// its whole length.
type tone struct {
	rate      beep.SampleRate
	freq      float64
	harmonics []float64
	pos       int
	total     int
}

func newTone(rate beep.SampleRate, freq float64, d time.Duration, harmonics ...float64) *tone {
	return &tone{rate: rate, freq: freq, harmonics: harmonics, total: rate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		at := float64(t.pos) / float64(t.rate)
		v := math.Sin(2 * math.Pi * t.freq * at)
		for k, amp := range t.harmonics {
			v += amp * math.Sin(2*math.Pi*t.freq*float64(k+2)*at)
		}
		v /= 1 + sum(t.harmonics)

		// short attack avoids a click at the start
		env := math.Min(at/0.005, 1) * (1 - float64(t.pos)/float64(t.total))
		v *= env

		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func sum(xs []float64) float64 {
	s := 0.0
	for _, x := range xs {
		s += math.Abs(x)
	}
	return s
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// EatSound is a quick rising two note chirp.
func EatSound(rate beep.SampleRate) beep.Streamer {
	return withVolume(beep.Seq(
		newTone(rate, 660, 40*time.Millisecond),
		newTone(rate, 990, 60*time.Millisecond),
	), 0.4)
}

// CrashSound is a low buzz played when a game ends.
func CrashSound(rate beep.SampleRate) beep.Streamer {
	return withVolume(newTone(rate, 110, 300*time.Millisecond, 0.5, 0.25), 0.5)
}
