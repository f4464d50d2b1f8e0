package dom

import "sync"

// Subscription is a handle on an acquired resource: a listener, a scroll
// lock, or anything else with a release function. Release is idempotent.
type Subscription struct {
	once    sync.Once
	release func()
}

func newSubscription(release func()) *Subscription {
	return &Subscription{release: release}
}

// OnRelease wraps an arbitrary cleanup function in a Subscription.
func OnRelease(fn func()) *Subscription {
	return newSubscription(fn)
}

// Release frees the resource. Calls after the first do nothing.
func (s *Subscription) Release() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if s.release != nil {
			s.release()
		}
	})
}

// Scope groups subscriptions that share a lifetime, such as everything a
// popover holds while open. Releasing the scope releases its members in
// reverse acquisition order.
type Scope struct {
	host *Host

	mu       sync.Mutex
	subs     []*Subscription
	released bool
}

// NewScope creates an empty scope bound to host.
func NewScope(host *Host) *Scope {
	return &Scope{host: host}
}

// Listen registers a listener owned by the scope.
func (s *Scope) Listen(target Target, kind EventKind, fn Listener) {
	s.Add(s.host.Listen(target, kind, fn))
}

// LockScroll acquires a scroll lock owned by the scope.
func (s *Scope) LockScroll() {
	s.Add(s.host.LockScroll())
}

// Add transfers ownership of sub to the scope. Adding to a released
// scope releases sub immediately.
func (s *Scope) Add(sub *Subscription) {
	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		sub.Release()
		return
	}
	s.subs = append(s.subs, sub)
	s.mu.Unlock()
}

// Release frees every member. It is safe to call more than once.
func (s *Scope) Release() {
	if s == nil {
		return
	}
	s.mu.Lock()
	subs := s.subs
	s.subs = nil
	s.released = true
	s.mu.Unlock()

	for i := len(subs) - 1; i >= 0; i-- {
		subs[i].Release()
	}
}

// Released reports whether Release has been called.
func (s *Scope) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released
}
