package core

import (
	"sync"
	"time"
)

// TickScheduler invokes a step function at a steady period on its own
// goroutine. The step reports whether ticking should continue; returning false
// halts the scheduler and releases its timer until the next Start.
type TickScheduler struct {
	period time.Duration
	step   func() bool

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewTickScheduler constructs a stopped scheduler. A non-positive period
// falls back to one tick per 200ms.
func NewTickScheduler(period time.Duration, step func() bool) *TickScheduler {
	if period <= 0 {
		period = 200 * time.Millisecond
	}
	return &TickScheduler{period: period, step: step}
}

// Period returns the tick interval.
func (s *TickScheduler) Period() time.Duration { return s.period }

// Start arms the timer. Calling Start on a running scheduler is a no-op.
func (s *TickScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return
	}
	stop := make(chan struct{})
	done := make(chan struct{})
	s.stop = stop
	s.done = done
	go s.loop(stop, done)
}

// Stop disarms the timer and waits for the loop to exit. Once Stop returns the
// step function is not called again until the next Start. Stop must not be
// called from inside the step function.
func (s *TickScheduler) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Running reports whether a timer is armed.
func (s *TickScheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil
}

func (s *TickScheduler) loop(stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		// A tick may be ready at the same moment Stop closes the channel;
		// select picks randomly, so check again before stepping.
		select {
		case <-stop:
			return
		default:
		}

		if !s.step() {
			s.halt(stop)
			return
		}
	}
}

// halt clears the running state if it still belongs to this loop generation.
func (s *TickScheduler) halt(stop chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop == stop {
		s.stop, s.done = nil, nil
	}
}
