package live

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/websocket"
	"go.uber.org/goleak"

	"github.com/vango-dev/vangoui/pkg/toast"
	"github.com/vango-dev/vangoui/pkg/ui"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type counter struct{ n int }

func (c *counter) Render() *vdom.VNode {
	return vdom.Div(
		vdom.Button(vdom.ID("inc"), vdom.OnClick(func() { c.n++ }), vdom.Text(fmt.Sprintf("count %d", c.n))),
		vdom.Button(vdom.ID("boom"), vdom.OnClick(func() { panic("boom") }), vdom.Text("boom")),
	)
}

func startServer(t *testing.T, cfg Config, mounts map[string]MountFunc) (*Server, string) {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = quietLogger()
	}
	srv := NewServer(func(name string) (MountFunc, bool) {
		m, ok := mounts[name]
		return m, ok
	}, cfg)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.ServeComponent(w, r, strings.TrimPrefix(r.URL.Path, "/_live/"))
	}))
	t.Cleanup(func() {
		srv.Close()
		ts.Close()
	})
	return srv, "ws" + strings.TrimPrefix(ts.URL, "http") + "/_live/"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func readUntil(t *testing.T, c *websocket.Conn, match func(serverMessage) bool) serverMessage {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for {
		c.SetReadDeadline(deadline)
		var msg serverMessage
		if err := c.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		if match(msg) {
			return msg
		}
	}
}

func htmlContaining(s string) func(serverMessage) bool {
	return func(m serverMessage) bool { return m.T == msgHTML && strings.Contains(m.HTML, s) }
}

func errorCode(code string) func(serverMessage) bool {
	return func(m serverMessage) bool { return m.T == msgError && m.Code == code }
}

func hidOf(t *testing.T, html, attrs string) string {
	t.Helper()
	m := regexp.MustCompile(regexp.QuoteMeta(attrs) + ` data-hid="(h\d+)"`).FindStringSubmatch(html)
	if m == nil {
		t.Fatalf("no element with %s in %s", attrs, html)
	}
	return m[1]
}

func send(t *testing.T, c *websocket.Conn, v any) {
	t.Helper()
	if err := c.WriteJSON(v); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestSessionEventRoundTrip(t *testing.T) {
	_, url := startServer(t, Config{}, map[string]MountFunc{
		"counter": func(*Session) vdom.Component { return &counter{} },
	})
	c := dial(t, url+"counter")

	first := readUntil(t, c, htmlContaining("count 0"))
	hid := hidOf(t, first.HTML, `id="inc"`)

	send(t, c, clientMessage{T: msgEvent, HID: hid, Type: "click"})
	readUntil(t, c, htmlContaining("count 1"))

	send(t, c, clientMessage{T: msgEvent, HID: "h999", Type: "click"})
	readUntil(t, c, errorCode("E009"))

	if err := c.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	readUntil(t, c, errorCode("E020"))

	send(t, c, clientMessage{T: "bogus"})
	readUntil(t, c, errorCode("E020"))

	send(t, c, clientMessage{T: msgEvent, HID: hid, Type: "click"})
	readUntil(t, c, htmlContaining("count 2"))
}

func TestSessionRecoversFromPanic(t *testing.T) {
	_, url := startServer(t, Config{}, map[string]MountFunc{
		"counter": func(*Session) vdom.Component { return &counter{} },
	})
	c := dial(t, url+"counter")

	html := readUntil(t, c, htmlContaining("count 0")).HTML
	boom := hidOf(t, html, `id="boom"`)
	inc := hidOf(t, html, `id="inc"`)

	send(t, c, clientMessage{T: msgEvent, HID: boom, Type: "click"})
	msg := readUntil(t, c, errorCode("E012"))
	if msg.Message != "Handler panicked" {
		t.Errorf("Message = %q", msg.Message)
	}

	send(t, c, clientMessage{T: msgEvent, HID: inc, Type: "click"})
	readUntil(t, c, htmlContaining("count 1"))
}

func TestSessionDispatchFromOtherGoroutine(t *testing.T) {
	sessions := make(chan *Session, 1)
	root := &counter{}
	_, url := startServer(t, Config{}, map[string]MountFunc{
		"counter": func(s *Session) vdom.Component {
			sessions <- s
			return root
		},
	})
	c := dial(t, url+"counter")
	readUntil(t, c, htmlContaining("count 0"))

	sess := <-sessions
	go sess.Dispatch(func() { root.n = 42 })
	readUntil(t, c, htmlContaining("count 42"))
}

type toaster struct{ p *toast.Provider }

func (t *toaster) Render() *vdom.VNode {
	return vdom.Div(
		vdom.Button(vdom.ID("add"), vdom.OnClick(func() {
			t.p.Add(toast.Toast{Title: "Saved", Duration: 20 * time.Millisecond})
		})),
		ui.ToastViewport(t.p),
	)
}

type toastRecorder struct {
	mu      sync.Mutex
	added   int
	reasons []toast.Reason
}

func (r *toastRecorder) ToastAdded(toast.Toast) {
	r.mu.Lock()
	r.added++
	r.mu.Unlock()
}

func (r *toastRecorder) ToastRemoved(_ toast.Toast, reason toast.Reason) {
	r.mu.Lock()
	r.reasons = append(r.reasons, reason)
	r.mu.Unlock()
}

func TestSessionToastTimersRunOnLoop(t *testing.T) {
	rec := &toastRecorder{}
	_, url := startServer(t, Config{ToastObserver: rec}, map[string]MountFunc{
		"toast": func(s *Session) vdom.Component {
			return &toaster{p: toast.NewProvider(s.ToastOptions()...)}
		},
	})
	c := dial(t, url+"toast")

	html := readUntil(t, c, func(m serverMessage) bool { return m.T == msgHTML }).HTML
	send(t, c, clientMessage{T: msgEvent, HID: hidOf(t, html, `id="add"`), Type: "click"})

	readUntil(t, c, htmlContaining(`data-state="visible"`))
	readUntil(t, c, htmlContaining(`data-state="dismissing"`))
	readUntil(t, c, func(m serverMessage) bool { return m.T == msgHTML && !strings.Contains(m.HTML, "Saved") })

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.added != 1 {
		t.Errorf("added = %d, want 1", rec.added)
	}
	if diff := cmp.Diff([]toast.Reason{toast.ReasonDismissed}, rec.reasons); diff != "" {
		t.Errorf("removal reasons (-want +got):\n%s", diff)
	}
}

func TestSessionPopoverGeometryAndScrollLock(t *testing.T) {
	_, url := startServer(t, Config{}, map[string]MountFunc{
		"popover": func(s *Session) vdom.Component {
			return ui.NewPopover(s.Host(),
				ui.PopoverID("menu"),
				ui.PopoverModal(true),
				ui.PopoverTrigger(vdom.Text("Open")),
				ui.PopoverBody(vdom.Text("panel")),
			)
		},
	})
	c := dial(t, url+"popover")

	html := readUntil(t, c, func(m serverMessage) bool { return m.T == msgHTML }).HTML
	trigger := hidOf(t, html, `data-measure="menu-trigger"`)

	send(t, c, clientMessage{T: msgEvent, HID: trigger, Type: "click"})
	lock := readUntil(t, c, func(m serverMessage) bool { return m.T == msgScrollLock })
	if lock.Locked == nil || !*lock.Locked {
		t.Fatalf("expected scroll lock, got %+v", lock)
	}
	readUntil(t, c, htmlContaining("visibility: hidden;"))

	send(t, c, clientMessage{T: msgMeasure, Data: eventData{
		VW: 1024, VH: 768,
		Rects: map[string]rectData{
			"menu-trigger": {X: 980, Y: 700, W: 40, H: 30},
			"menu-content": {W: 200, H: 100},
		},
	}})
	readUntil(t, c, htmlContaining("left: 816px; top: 660px;"))

	send(t, c, clientMessage{T: msgDoc, Type: "keydown", Data: eventData{Key: "Escape"}})
	unlock := readUntil(t, c, func(m serverMessage) bool { return m.T == msgScrollLock })
	if unlock.Locked == nil || *unlock.Locked {
		t.Fatalf("expected scroll unlock, got %+v", unlock)
	}
	readUntil(t, c, func(m serverMessage) bool { return m.T == msgHTML && !strings.Contains(m.HTML, "panel") })
}

type recordingObserver struct {
	mu     sync.Mutex
	opened int
	closed int
	pushes int
}

func (o *recordingObserver) SessionOpened(string) {
	o.mu.Lock()
	o.opened++
	o.mu.Unlock()
}

func (o *recordingObserver) SessionClosed(string, time.Duration) {
	o.mu.Lock()
	o.closed++
	o.mu.Unlock()
}

func (o *recordingObserver) HTMLPushed(string, int) {
	o.mu.Lock()
	o.pushes++
	o.mu.Unlock()
}

func TestSessionMiddlewareAndObserver(t *testing.T) {
	var mu sync.Mutex
	var trail []string
	record := func(name string) Middleware {
		return func(ctx context.Context, ev EventInfo, next func(context.Context) error) error {
			mu.Lock()
			trail = append(trail, name+">"+ev.Name())
			mu.Unlock()
			err := next(ctx)
			mu.Lock()
			trail = append(trail, name+"<"+ev.Name())
			mu.Unlock()
			return err
		}
	}
	obs := &recordingObserver{}
	srv, url := startServer(t, Config{Middleware: []Middleware{record("outer"), record("inner")}, Observer: obs},
		map[string]MountFunc{"counter": func(*Session) vdom.Component { return &counter{} }})

	c := dial(t, url+"counter")
	html := readUntil(t, c, htmlContaining("count 0")).HTML
	send(t, c, clientMessage{T: msgEvent, HID: hidOf(t, html, `id="inc"`), Type: "click"})
	readUntil(t, c, htmlContaining("count 1"))

	c.Close()
	srv.Close()

	want := []string{
		"outer>mount", "inner>mount", "inner<mount", "outer<mount",
		"outer>event.click", "inner>event.click", "inner<event.click", "outer<event.click",
	}
	mu.Lock()
	got := trail
	mu.Unlock()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("middleware trail (-want +got):\n%s", diff)
	}

	obs.mu.Lock()
	defer obs.mu.Unlock()
	if obs.opened != 1 || obs.closed != 1 || obs.pushes != 2 {
		t.Errorf("observer opened=%d closed=%d pushes=%d, want 1 1 2", obs.opened, obs.closed, obs.pushes)
	}
	if n := srv.SessionCount(); n != 0 {
		t.Errorf("SessionCount = %d after close", n)
	}
}

func TestServerUnknownComponent(t *testing.T) {
	_, url := startServer(t, Config{}, nil)

	_, resp, err := websocket.DefaultDialer.Dial(url+"missing", nil)
	if err == nil {
		t.Fatal("expected handshake failure")
	}
	if resp == nil {
		t.Fatalf("no response: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "E010") {
		t.Errorf("body = %q", body)
	}
}

func TestServerCloseEndsSessions(t *testing.T) {
	disposed := make(chan struct{})
	srv, url := startServer(t, Config{}, map[string]MountFunc{
		"counter": func(*Session) vdom.Component { return &disposable{done: disposed} },
	})
	c := dial(t, url+"counter")
	readUntil(t, c, func(m serverMessage) bool { return m.T == msgHTML })

	srv.Close()
	select {
	case <-disposed:
	default:
		t.Fatal("root not disposed before Close returned")
	}

	c.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := c.ReadMessage(); !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("expected normal close, got %v", err)
	}

	if _, resp, err := websocket.DefaultDialer.Dial(url+"counter", nil); err == nil {
		t.Error("closed server accepted a session")
	} else if resp != nil {
		resp.Body.Close()
		if resp.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", resp.StatusCode)
		}
	}
}

type disposable struct {
	done chan struct{}
}

func (d *disposable) Render() *vdom.VNode { return vdom.Div(vdom.Text("alive")) }
func (d *disposable) Dispose()            { close(d.done) }

func TestLoopSchedulerStop(t *testing.T) {
	s := newSession(nil, "test", nil, Config{Logger: quietLogger()}.withDefaults())

	ran := false
	timer := s.sched.AfterFunc(time.Hour, func() { ran = true })
	if s.sched.pending() != 1 {
		t.Fatalf("pending = %d, want 1", s.sched.pending())
	}
	if !timer.Stop() {
		t.Error("first Stop should report a pending timer")
	}
	if timer.Stop() {
		t.Error("second Stop should report false")
	}
	if s.sched.pending() != 0 || ran {
		t.Error("stopped timer still tracked or ran")
	}

	fired := s.sched.AfterFunc(0, func() { ran = true })
	select {
	case fn := <-s.dispatchCh:
		if ran {
			t.Fatal("callback ran off the loop")
		}
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("timer never dispatched")
	}
	if !ran {
		t.Error("dispatched callback did not run")
	}
	if fired.Stop() {
		t.Error("Stop after firing should report false")
	}

	stale := s.sched.AfterFunc(0, func() { t.Error("stopped timer ran") })
	fn := <-s.dispatchCh
	stale.Stop()
	fn()
	s.Close()
}

func TestLoopSchedulerWaitsForFullQueue(t *testing.T) {
	s := newSession(nil, "test", nil, Config{Logger: quietLogger(), MaxEventQueue: 1}.withDefaults())
	defer s.Close()

	s.Dispatch(func() {})
	fired := false
	s.sched.AfterFunc(time.Millisecond, func() { fired = true })

	// Let the timer fire against the full queue.
	time.Sleep(20 * time.Millisecond)
	(<-s.dispatchCh)()

	select {
	case fn := <-s.dispatchCh:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("timer callback was dropped")
	}
	if !fired {
		t.Error("timer callback did not run")
	}
	if n := s.sched.pending(); n != 0 {
		t.Errorf("pending = %d, want 0", n)
	}
}

func TestLoopSchedulerReleasedOnClose(t *testing.T) {
	s := newSession(nil, "test", nil, Config{Logger: quietLogger(), MaxEventQueue: 1}.withDefaults())

	s.Dispatch(func() {})
	s.sched.AfterFunc(time.Millisecond, func() { t.Error("callback ran after close") })
	time.Sleep(20 * time.Millisecond)
	s.Close()
	s.sched.stopAll()
	if n := s.sched.pending(); n != 0 {
		t.Errorf("pending = %d, want 0", n)
	}
}
