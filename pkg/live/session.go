package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/pkg/dom"
	"github.com/vango-dev/vangoui/pkg/render"
	"github.com/vango-dev/vangoui/pkg/toast"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// MountFunc builds the root component of a session. It runs on the
// session loop, so it may create host-bound components directly.
type MountFunc func(s *Session) vdom.Component

// Session is one browser connection. All component code (mounting,
// handlers, document and window listeners, timer callbacks and
// dispatched functions) runs on a single loop goroutine; after each unit
// of work the root is rendered and the HTML pushed if it changed.
type Session struct {
	// ID is a random identifier used in logs and traces.
	ID string

	// Component is the name the session was opened for.
	Component string

	conn   *websocket.Conn
	cfg    Config
	logger *slog.Logger
	host   *dom.Host
	sched  *loopScheduler
	mount  MountFunc

	// Loop-owned state.
	root     vdom.Component
	handlers map[string]any
	lastHTML string

	events     chan clientMessage
	dispatchCh chan func()
	done       chan struct{}
	closeOnce  sync.Once
	closed     atomic.Bool
	writeMu    sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc

	eventCount atomic.Uint64
	pushCount  atomic.Uint64
}

func newSession(conn *websocket.Conn, component string, mount MountFunc, cfg Config) *Session {
	id := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		ID:         id,
		Component:  component,
		conn:       conn,
		cfg:        cfg,
		logger:     cfg.Logger.With("session_id", id, "component", component),
		mount:      mount,
		handlers:   make(map[string]any),
		events:     make(chan clientMessage, cfg.MaxEventQueue),
		dispatchCh: make(chan func(), cfg.MaxEventQueue),
		done:       make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
	}
	s.sched = newLoopScheduler(s)
	s.host = dom.NewHost(dom.WithScrollLockFunc(s.sendScrollLock))
	return s
}

// Host is the session's browser mirror. Geometry-aware components bind
// to it.
func (s *Session) Host() *dom.Host { return s.host }

// Scheduler returns a toast.Scheduler whose callbacks run on the loop.
func (s *Session) Scheduler() toast.Scheduler { return s.sched }

// Logger returns the session logger.
func (s *Session) Logger() *slog.Logger { return s.logger }

// Context is cancelled when the session closes.
func (s *Session) Context() context.Context { return s.ctx }

// ToastOptions returns the provider options a session-owned toast queue
// needs: the loop scheduler, the session logger and the configured
// observer.
func (s *Session) ToastOptions() []toast.Option {
	opts := []toast.Option{
		toast.WithScheduler(s.sched),
		toast.WithLogger(s.logger),
	}
	if s.cfg.ToastObserver != nil {
		opts = append(opts, toast.WithObserver(s.cfg.ToastObserver))
	}
	return opts
}

// Done returns a channel that's closed when the session is done.
func (s *Session) Done() <-chan struct{} { return s.done }

// IsClosed returns whether the session is closed.
func (s *Session) IsClosed() bool { return s.closed.Load() }

// Close stops the session. The loop disposes the root, stops pending
// timers and closes the socket before Run returns. Safe to call more
// than once and from any goroutine.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.done)
	})
}

// Dispatch queues fn to run on the session loop. It is the only safe way
// to touch component state from another goroutine. Calls after Close are
// discarded.
func (s *Session) Dispatch(fn func()) {
	if s.closed.Load() {
		return
	}
	select {
	case s.dispatchCh <- fn:
	case <-s.done:
	default:
		s.logger.Warn("dispatch queue full, discarding callback")
	}
}

// enqueue waits for room in the dispatch queue instead of dropping fn.
// Only goroutines the loop never waits on may call it.
func (s *Session) enqueue(fn func()) {
	select {
	case s.dispatchCh <- fn:
	case <-s.done:
	}
}

// Run mounts the root and processes messages until the session closes
// or the connection drops. It blocks until every goroutine it started
// has exited.
func (s *Session) Run() {
	started := time.Now()
	if obs := s.cfg.Observer; obs != nil {
		obs.SessionOpened(s.Component)
		defer func() { obs.SessionClosed(s.Component, time.Since(started)) }()
	}
	s.logger.Info("session opened")

	s.conn.SetReadLimit(s.cfg.MaxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	})

	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		s.readLoop()
	}()

	s.process(EventInfo{Kind: "mount"}, func() error {
		s.root = s.mount(s)
		return nil
	})
	s.flush()
	s.loop()
	s.shutdown()
	<-readerDone
}

func (s *Session) loop() {
	heartbeat := time.NewTicker(s.cfg.HeartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-s.done:
			return
		case msg := <-s.events:
			s.handleMessage(msg)
		case fn := <-s.dispatchCh:
			s.process(EventInfo{Kind: "dispatch"}, func() error {
				fn()
				return nil
			})
			s.flush()
		case <-heartbeat.C:
			if err := s.ping(); err != nil {
				s.logger.Debug("ping failed", "error", err)
				s.Close()
			}
		}
	}
}

// readLoop decodes browser frames and queues them for the loop.
func (s *Session) readLoop() {
	defer s.Close()

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if !s.closed.Load() && websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}
		s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))

		msg, err := decodeMessage(data)
		if err != nil {
			s.sendError(errors.New("E020").Wrap(err))
			continue
		}
		select {
		case s.events <- msg:
		case <-s.done:
			return
		}
	}
}

func (s *Session) handleMessage(msg clientMessage) {
	info := EventInfo{Kind: msg.T, Type: msg.Type, HID: msg.HID}

	switch msg.T {
	case msgEvent:
		s.process(info, func() error { return s.invoke(msg) })
	case msgDoc:
		ev := msg.Data.event(msg.Type)
		s.process(info, func() error {
			s.host.Dispatch(dom.Document, ev)
			return nil
		})
	case msgWin:
		ev := msg.Data.event(msg.Type)
		s.process(info, func() error {
			if vp := msg.Data.viewport(); vp != (dom.Size{}) {
				s.host.SetViewport(vp)
			}
			s.host.Dispatch(dom.Window, ev)
			return nil
		})
	case msgMeasure:
		s.process(info, func() error {
			s.host.UpdateGeometry(msg.Data.viewport(), msg.Data.rects())
			return nil
		})
	default:
		s.sendError(errors.New("E020").WithDetailf("unknown message type %q", msg.T))
		return
	}
	s.flush()
}

// invoke calls the element handler registered by the last render.
func (s *Session) invoke(msg clientMessage) error {
	key := msg.HID + "_on" + strings.ToLower(msg.Type)
	h, ok := s.handlers[key]
	if !ok {
		s.logger.Warn("handler not found", "hid", msg.HID, "type", msg.Type)
		return errors.New("E009").WithDetail(key)
	}
	if !dom.Invoke(h, msg.Data.event(msg.Type)) {
		return errors.New("E009").WithDetailf("%s has unsupported handler type %T", key, h)
	}
	return nil
}

// process runs fn through the middleware chain with panic recovery.
// Errors are reported to the browser; the session keeps running.
func (s *Session) process(info EventInfo, fn func() error) {
	info.SessionID = s.ID
	info.Component = s.Component
	s.eventCount.Add(1)

	run := chain(s.cfg.Middleware, info, func(context.Context) error {
		return s.safeCall(info, fn)
	})
	if err := run(s.ctx); err != nil {
		s.sendError(err)
	}
}

func (s *Session) safeCall(info EventInfo, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("handler panic",
				"panic", r,
				"event", info.Name(),
				"hid", info.HID,
				"stack", string(debug.Stack()))
			err = errors.New("E012").WithDetailf("%v", r)
		}
	}()
	return fn()
}

// flush renders the root and pushes the HTML when it changed. The
// handler table is replaced on every successful render.
func (s *Session) flush() {
	if s.root == nil || s.closed.Load() {
		return
	}

	var html string
	var handlers map[string]any
	err := s.safeCall(EventInfo{Kind: "render"}, func() error {
		r := render.NewRenderer(render.RendererConfig{})
		out, err := r.RenderToString(s.root.Render())
		if err != nil {
			return err
		}
		html, handlers = out, r.GetHandlers()
		return nil
	})
	if err != nil {
		s.logger.Error("render failed", "error", err)
		s.sendError(err)
		return
	}

	s.handlers = handlers
	if html == s.lastHTML {
		return
	}
	s.lastHTML = html
	if err := s.send(serverMessage{T: msgHTML, HTML: html}); err != nil {
		s.logger.Debug("push failed", "error", err)
		return
	}
	s.pushCount.Add(1)
	if obs := s.cfg.Observer; obs != nil {
		obs.HTMLPushed(s.Component, len(html))
	}
}

func (s *Session) sendScrollLock(locked bool) {
	if err := s.send(serverMessage{T: msgScrollLock, Locked: &locked}); err != nil {
		s.logger.Debug("scroll lock not sent", "error", err)
	}
}

func (s *Session) sendError(err error) {
	ve := errors.FromError(err, "E012")
	s.logger.Warn("event failed", "code", ve.Code, "error", err)
	if sendErr := s.send(serverMessage{T: msgError, Code: ve.Code, Message: ve.Message}); sendErr != nil {
		s.logger.Debug("error not sent", "error", sendErr)
	}
}

func (s *Session) send(msg serverMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.closed.Load() {
		return errors.New("E011")
	}
	s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

func (s *Session) ping() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.closed.Load() {
		return errors.New("E011")
	}
	return s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(s.cfg.WriteTimeout))
}

// shutdown runs on the loop after Close.
func (s *Session) shutdown() {
	s.cancel()
	s.sched.stopAll()

	if d, ok := s.root.(interface{ Dispose() }); ok {
		if err := s.safeCall(EventInfo{Kind: "dispose"}, func() error {
			d.Dispose()
			return nil
		}); err != nil {
			s.logger.Error("dispose failed", "error", err)
		}
	}
	s.handlers = nil

	s.writeMu.Lock()
	s.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
	s.conn.Close()
	s.writeMu.Unlock()

	s.logger.Info("session closed",
		"events", s.eventCount.Load(),
		"pushes", s.pushCount.Load(),
		"listeners_left", s.host.Listeners(),
		"timers_left", s.sched.pending())
}
