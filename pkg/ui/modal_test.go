package ui_test

import (
	"testing"

	"github.com/vango-dev/vangoui/pkg/dom"
	"github.com/vango-dev/vangoui/pkg/ui"
	"github.com/vango-dev/vangoui/pkg/vdom"
	"github.com/vango-dev/vangoui/pkg/vtest"
)

func newModal(host *dom.Host, opts ...ui.ModalOption) *ui.Modal {
	base := []ui.ModalOption{
		ui.ModalID("confirm"),
		ui.ModalTitle("Delete project"),
		ui.ModalDescription("This cannot be undone."),
		ui.ModalBody(vdom.Text("All deployments stop.")),
	}
	return ui.NewModal(host, append(base, opts...)...)
}

func isOverlay(n *vdom.VNode) bool {
	hidden, _ := n.Props["aria-hidden"].(bool)
	return hidden
}

func TestModalOpenLocksScroll(t *testing.T) {
	var locks []bool
	host := dom.NewHost(dom.WithViewport(viewport), dom.WithScrollLockFunc(func(v bool) { locks = append(locks, v) }))
	m := newModal(host)

	if m.Render() != nil || host.ScrollLocked() {
		t.Fatal("closed modal should render nothing and hold no lock")
	}
	m.Open()
	if !host.ScrollLocked() || host.ListenerCount(dom.Document, dom.KeyDown) != 1 {
		t.Fatal("open modal should lock scroll and listen for Escape")
	}

	node := render(m)
	vtest.ExpectAttribute(t, node, "role", "dialog")
	vtest.ExpectAttribute(t, node, "aria-modal", "true")
	vtest.ExpectAttribute(t, node, "aria-labelledby", "confirm-title")
	vtest.ExpectAttribute(t, node, "aria-describedby", "confirm-description")
	vtest.ExpectAttribute(t, node, "data-state", "open")
	vtest.ExpectContains(t, node, "max-w-md")
	vtest.ExpectContains(t, node, "All deployments stop.")

	m.Close()
	if host.ScrollLocked() || host.Listeners() != 0 || m.IsVisible() {
		t.Error("closing without a scheduler should release everything at once")
	}
	if len(locks) != 2 || !locks[0] || locks[1] {
		t.Errorf("lock transitions = %v, want [true false]", locks)
	}
}

func TestModalExitKeepsLock(t *testing.T) {
	host := dom.NewHost(dom.WithViewport(viewport))
	sched := vtest.NewManualScheduler()
	m := newModal(host, ui.ModalScheduler(sched), ui.ModalDefaultOpen(true))

	m.Close()
	if !m.IsVisible() || !host.ScrollLocked() {
		t.Fatal("modal should stay rendered and locked during the exit")
	}
	if n := host.Listeners(); n != 0 {
		t.Errorf("listeners during exit = %d, want 0", n)
	}
	vtest.ExpectAttribute(t, render(m), "data-state", "closed")

	// Reopening mid-exit keeps the same lock.
	m.Open()
	sched.Advance(ui.ModalExitDelay)
	if !m.IsVisible() || !host.ScrollLocked() {
		t.Fatal("reopened modal was removed by the stale exit")
	}

	m.Close()
	sched.Advance(ui.ModalExitDelay)
	if m.IsVisible() || host.ScrollLocked() {
		t.Error("exit should end with the modal removed and scroll unlocked")
	}
}

func TestModalDismissal(t *testing.T) {
	t.Run("escape", func(t *testing.T) {
		host := dom.NewHost()
		m := newModal(host, ui.ModalDefaultOpen(true))
		vtest.PressKey(host, "Enter")
		if !m.IsOpen() {
			t.Fatal("only Escape should close")
		}
		vtest.PressKey(host, "Escape")
		if m.IsOpen() {
			t.Error("Escape should close")
		}
	})

	t.Run("overlay", func(t *testing.T) {
		host := dom.NewHost()
		m := newModal(host, ui.ModalDefaultOpen(true))
		vtest.Fire(t, render(m), vtest.All(isOverlay, vtest.HasHandler("click")), "click", dom.Event{})
		if m.IsOpen() {
			t.Error("overlay click should close")
		}
	})

	t.Run("close button", func(t *testing.T) {
		host := dom.NewHost()
		m := newModal(host, ui.ModalDefaultOpen(true))
		vtest.Fire(t, render(m), vtest.ByAttr("aria-label", "Close modal"), "click", dom.Event{})
		if m.IsOpen() {
			t.Error("close button should close")
		}
	})

	t.Run("disabled", func(t *testing.T) {
		host := dom.NewHost()
		m := newModal(host,
			ui.ModalDefaultOpen(true),
			ui.ModalCloseOnEscape(false),
			ui.ModalCloseOnOverlayClick(false),
			ui.ModalShowCloseButton(false),
		)
		if host.ListenerCount(dom.Document, dom.KeyDown) != 0 {
			t.Fatal("escape disabled should not listen")
		}
		node := render(m)
		if vtest.Find(node, vtest.All(isOverlay, vtest.HasHandler("click"))) != nil {
			t.Error("overlay should carry no click handler")
		}
		vtest.ExpectNotContains(t, node, "Close modal")
	})
}

func TestModalControlled(t *testing.T) {
	host := dom.NewHost()
	var asked []bool
	m := newModal(host, ui.ModalOpen(true), ui.ModalOnOpenChange(func(v bool) { asked = append(asked, v) }))

	vtest.PressKey(host, "Escape")
	if !m.IsOpen() {
		t.Fatal("controlled modal must wait for the parent")
	}
	if len(asked) != 1 || asked[0] {
		t.Errorf("asked = %v, want [false]", asked)
	}
	m.SetOpen(false)
	if host.ScrollLocked() || host.Listeners() != 0 {
		t.Error("SetOpen(false) should release")
	}
	if len(asked) != 1 {
		t.Error("SetOpen must not report")
	}
}

func TestModalDispose(t *testing.T) {
	host := dom.NewHost()
	sched := vtest.NewManualScheduler()
	m := newModal(host, ui.ModalScheduler(sched), ui.ModalDefaultOpen(true))

	m.Dispose()
	if m.IsVisible() || host.ScrollLocked() || host.Listeners() != 0 || sched.Pending() != 0 {
		t.Errorf("Dispose: visible %v, locked %v, listeners %d, timers %d",
			m.IsVisible(), host.ScrollLocked(), host.Listeners(), sched.Pending())
	}
}

func TestModalSizes(t *testing.T) {
	host := dom.NewHost()
	cases := map[ui.Size]string{
		ui.SizeSm:   "max-w-sm",
		ui.SizeXL:   "max-w-xl",
		ui.SizeFull: "max-w-full mx-4",
		"huge":      "max-w-md",
	}
	for size, want := range cases {
		m := ui.NewModal(host, ui.ModalDefaultOpen(true), ui.ModalSize(size))
		vtest.ExpectContains(t, render(m), want)
		m.Dispose()
	}
}

func TestModalBodyOnly(t *testing.T) {
	host := dom.NewHost()
	m := ui.NewModal(host,
		ui.ModalDefaultOpen(true),
		ui.ModalShowCloseButton(false),
		ui.ModalBody(ui.ModalHeader(ui.ModalHeading("Invite"), ui.ModalText("Send a link")), ui.ModalFooter()),
	)
	node := render(m)
	vtest.ExpectNotContains(t, node, "aria-labelledby")
	vtest.ExpectContains(t, node, "px-6 py-6")
	vtest.ExpectContains(t, node, "Invite")
	vtest.ExpectContains(t, node, "sm:justify-end")
}
