package live

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/vangoui/internal/errors"
)

// Lookup resolves a component name to its mount function.
type Lookup func(name string) (MountFunc, bool)

// Server upgrades HTTP requests to live sessions and tracks them until
// they end.
type Server struct {
	cfg      Config
	lookup   Lookup
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
	closed   bool
	wg       sync.WaitGroup
}

// NewServer creates a live server. Zero Config fields take their
// defaults.
func NewServer(lookup Lookup, cfg Config) *Server {
	cfg = cfg.withDefaults()
	return &Server{
		cfg:    cfg,
		lookup: lookup,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     cfg.CheckOrigin,
		},
		logger:   cfg.Logger,
		sessions: make(map[string]*Session),
	}
}

// ServeComponent upgrades the request and runs a session for the named
// component. It returns when the session ends.
func (s *Server) ServeComponent(w http.ResponseWriter, r *http.Request, name string) {
	mount, ok := s.lookup(name)
	if !ok {
		http.Error(w, errors.New("E010").WithDetail(name).FormatCompact(), http.StatusNotFound)
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		http.Error(w, errors.New("E011").FormatCompact(), http.StatusServiceUnavailable)
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()
	defer s.wg.Done()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("upgrade failed", "component", name, "error", err)
		return
	}

	sess := newSession(conn, name, mount, s.cfg)
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	closed := s.closed
	s.mu.Unlock()
	if closed {
		sess.Close()
	}

	sess.Run()

	s.mu.Lock()
	delete(s.sessions, sess.ID)
	s.mu.Unlock()
}

// SessionCount returns the number of running sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close ends every session and waits for them to finish. New upgrade
// requests are refused afterwards.
func (s *Server) Close() {
	s.mu.Lock()
	s.closed = true
	sessions := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.Close()
	}
	s.wg.Wait()
}
