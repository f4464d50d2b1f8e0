package live

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/vango-dev/vangoui/pkg/toast"
)

const (
	timerPending int32 = iota
	timerFired
	timerStopped
)

// loopScheduler implements toast.Scheduler for a session. Callbacks are
// dispatched onto the session loop, never run on the timer goroutine. A
// timer that fires while the queue is full waits for room.
type loopScheduler struct {
	s *Session

	mu     sync.Mutex
	timers map[*loopTimer]struct{}
}

type loopTimer struct {
	sched *loopScheduler
	timer *time.Timer
	state atomic.Int32
}

func newLoopScheduler(s *Session) *loopScheduler {
	return &loopScheduler{s: s, timers: make(map[*loopTimer]struct{})}
}

// AfterFunc implements toast.Scheduler.
func (l *loopScheduler) AfterFunc(d time.Duration, f func()) toast.Timer {
	t := &loopTimer{sched: l}
	l.mu.Lock()
	l.timers[t] = struct{}{}
	l.mu.Unlock()

	t.timer = time.AfterFunc(d, func() {
		l.s.enqueue(func() {
			if !t.state.CompareAndSwap(timerPending, timerFired) {
				return
			}
			l.forget(t)
			f()
		})
	})
	return t
}

// Stop implements toast.Timer.
func (t *loopTimer) Stop() bool {
	if !t.state.CompareAndSwap(timerPending, timerStopped) {
		return false
	}
	t.timer.Stop()
	t.sched.forget(t)
	return true
}

func (l *loopScheduler) forget(t *loopTimer) {
	l.mu.Lock()
	delete(l.timers, t)
	l.mu.Unlock()
}

// pending returns the number of timers that have neither fired nor been
// stopped.
func (l *loopScheduler) pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.timers)
}

// stopAll cancels every pending timer.
func (l *loopScheduler) stopAll() {
	l.mu.Lock()
	timers := make([]*loopTimer, 0, len(l.timers))
	for t := range l.timers {
		timers = append(timers, t)
	}
	l.mu.Unlock()

	for _, t := range timers {
		t.Stop()
	}
}
