// Package session drives an engine with a tick scheduler and fans snapshots
// out to front ends.
package session

import (
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"gridsnake/internal/core"
	"gridsnake/internal/engine"
	"gridsnake/internal/input"
)

// Observer receives every published snapshot, in order. Observers run on the
// scheduler goroutine and must not call Restart, Start or Stop.
type Observer func(engine.Snapshot)

// Session owns one engine and the timer that advances it.
type Session struct {
	eng    *engine.Engine
	sched  *core.TickScheduler
	logger *log.Logger
	period time.Duration

	mu        sync.Mutex
	observers []Observer
	id        string

	// control serializes Start, Stop and Restart.
	control sync.Mutex
}

// Option customizes a Session.
type Option func(*Session)

// WithPeriod overrides the tick interval.
func WithPeriod(d time.Duration) Option {
	return func(s *Session) { s.period = d }
}

// WithLogger routes lifecycle messages to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New wraps eng in a stopped session.
func New(eng *engine.Engine, opts ...Option) *Session {
	s := &Session{
		eng:    eng,
		period: engine.TickPeriod,
		logger: log.New(io.Discard, "", 0),
		id:     uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.sched = core.NewTickScheduler(s.period, s.step)
	return s
}

// ID identifies the current game; it changes on every restart.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// Engine exposes the underlying engine for read-only front end hooks.
func (s *Session) Engine() *engine.Engine { return s.eng }

// Snapshot returns the current engine state.
func (s *Session) Snapshot() engine.Snapshot { return s.eng.Snapshot() }

// Running reports whether the tick timer is armed.
func (s *Session) Running() bool { return s.sched.Running() }

// Subscribe registers fn for future snapshots.
func (s *Session) Subscribe(fn Observer) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Start publishes the current snapshot and arms the timer. A finished game
// is not restarted; use Restart for that.
func (s *Session) Start() {
	s.control.Lock()
	defer s.control.Unlock()
	if s.sched.Running() {
		return
	}
	snap := s.eng.Snapshot()
	s.logger.Printf("game %s started: board=%d period=%s", s.ID(), snap.Size, s.period)
	s.publish(snap)
	if snap.Running() {
		s.sched.Start()
	}
}

// Stop disarms the timer. No tick runs after Stop returns.
func (s *Session) Stop() {
	s.control.Lock()
	defer s.control.Unlock()
	s.sched.Stop()
}

// Restart tears the timer down, resets the engine and re-arms the timer.
func (s *Session) Restart() {
	s.control.Lock()
	defer s.control.Unlock()

	s.sched.Stop()
	s.eng.Reset()

	s.mu.Lock()
	s.id = uuid.NewString()
	id := s.id
	s.mu.Unlock()

	s.logger.Printf("game %s restarted", id)
	s.publish(s.eng.Snapshot())
	s.sched.Start()
}

// Handle applies one input event.
func (s *Session) Handle(ev input.Event) {
	if d, ok := ev.Direction(); ok {
		s.eng.SetDirection(d)
		return
	}
	if ev == input.Restart {
		s.Restart()
	}
}

func (s *Session) step() bool {
	snap := s.eng.Tick()
	s.publish(snap)
	if snap.Running() {
		return true
	}
	s.logger.Printf("game %s over: cause=%s score=%d length=%d ticks=%d",
		s.ID(), snap.Cause, snap.Score, snap.Len(), snap.Tick)
	return false
}

func (s *Session) publish(snap engine.Snapshot) {
	s.mu.Lock()
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()
	for _, fn := range observers {
		fn(snap)
	}
}
