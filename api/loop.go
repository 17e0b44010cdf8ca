/*
loop.go - Background game loop

PURPOSE:
  Drives the session clock when the server hosts the game itself. Each pass
  measures real elapsed time since the previous pass and feeds it to the
  session as a tick; the engine never reads the wall clock.

DESIGN:
  - Runs a background goroutine with a configurable tick interval
  - Elapsed time is measured, not assumed, so a stalled host catches up
    in one large tick instead of drifting
  - Headless hosts that POST /api/tick themselves should not start the loop

CONFIGURATION:
  - Interval: Time between ticks (default: 1 second)

USAGE:
  loop := NewLoop(session)
  loop.Start()
  // ... later
  loop.Stop()

SEE ALSO:
  - session.go: Tick entry point
  - handlers.go: Manual tick endpoint
*/
package api

import (
	"log"
	"sync"
	"time"
)

// Loop ticks a session on a fixed interval.
type Loop struct {
	Session  *Session
	Interval time.Duration

	ticker *time.Ticker
	stop   chan bool
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewLoop creates a loop with the default one-second interval.
func NewLoop(session *Session) *Loop {
	return &Loop{
		Session:  session,
		Interval: 1 * time.Second,
		stop:     make(chan bool),
	}
}

// Start begins ticking.
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ticker = time.NewTicker(l.Interval)
	l.wg.Add(1)

	go l.run(time.Now())

	log.Printf("[Loop] Started with tick interval: %v", l.Interval)
}

// Stop halts the loop and waits for the goroutine to exit.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.ticker != nil {
		l.ticker.Stop()
		close(l.stop)
		l.wg.Wait()
		log.Println("[Loop] Stopped")
	}
}

// run owns the last-tick timestamp; nothing else touches it, so no lock is
// needed and Stop can safely wait while a tick is in flight.
func (l *Loop) run(started time.Time) {
	defer l.wg.Done()

	last := started
	for {
		select {
		case now := <-l.ticker.C:
			elapsed := now.Sub(last)
			last = now
			if elapsed > 0 {
				l.Session.Tick(elapsed.Milliseconds(), now)
			}
		case <-l.stop:
			return
		}
	}
}
