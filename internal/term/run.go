package term

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"gridsnake/internal/engine"
	"gridsnake/internal/input"
	"gridsnake/internal/session"
)

// frameEvent wakes the event loop after the session published a snapshot.
type frameEvent struct {
	tcell.EventTime
}

// stopEvent wakes the event loop so it can observe cancellation.
type stopEvent struct {
	tcell.EventTime
}

// mailbox keeps only the newest snapshot so a slow terminal never queues
// stale frames.
type mailbox struct {
	mu    sync.Mutex
	snap  engine.Snapshot
	fresh bool
}

func (m *mailbox) put(s engine.Snapshot) {
	m.mu.Lock()
	m.snap = s
	m.fresh = true
	m.mu.Unlock()
}

func (m *mailbox) take() (engine.Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ok := m.fresh
	m.fresh = false
	return m.snap, ok
}

// Run drives s on screen until the player quits or ctx is cancelled. The
// caller owns screen and must have initialised it; Run stops the session
// before returning.
func Run(ctx context.Context, screen tcell.Screen, s *session.Session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r := NewRenderer(screen, s.Engine().Name())
	box := &mailbox{}
	s.Subscribe(func(snap engine.Snapshot) {
		box.put(snap)
		ev := &frameEvent{}
		ev.SetEventNow()
		// A full queue already holds a wakeup that will pick up this frame.
		_ = screen.PostEvent(ev)
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		ev := &stopEvent{}
		ev.SetEventNow()
		_ = screen.PostEvent(ev)
		return nil
	})
	g.Go(func() error {
		defer cancel()
		defer s.Stop()
		// Start publishes the current snapshot, which draws the first frame.
		// It runs here so the deferred Stop always follows it.
		s.Start()
		return loop(ctx, screen, r, box, s)
	})
	return g.Wait()
}

func loop(ctx context.Context, screen tcell.Screen, r *Renderer, box *mailbox, s *session.Session) error {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			e := MapKey(ev)
			if e == input.Quit {
				return nil
			}
			// the restart button only exists on the Game Over notice
			if e == input.Restart && s.Snapshot().Running() {
				continue
			}
			s.Handle(e)
		case *tcell.EventResize:
			screen.Sync()
			r.Draw(s.Snapshot())
		case *frameEvent:
			if snap, ok := box.take(); ok {
				r.Draw(snap)
			}
		case *stopEvent:
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}
