package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ItsNotGoodName/x-howm/internal/bus"
	"github.com/ItsNotGoodName/x-howm/internal/input"
	"github.com/ItsNotGoodName/x-howm/internal/wm"
	"github.com/ItsNotGoodName/x-howm/internal/xwm"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/thejerf/suture/v4"
)

var (
	ErrRestart = errors.New("restart requested")
	ErrClosed  = errors.New("app closed")
)

// X is the part of the display server connection the loop drives directly.
type X interface {
	Translate(ev xgb.Event) any
	Manage(win wm.Window)
	GrabKeys(grabs []input.KeyEvent)
	GrabButtons(buttons []input.ButtonBinding)
	RefreshKeyboard() error
	ApplyConfigure(ev xproto.ConfigureRequestEvent)
	SendConfigureNotify(win wm.Window, r wm.Rect, border int)
	SetDesktops(count, active int)
}

// App is the single goroutine allowed to touch the window manager state.
type App struct {
	x       X
	manager *wm.Manager
	machine *input.Machine

	events chan xgb.Event
	queue  chan func()

	doneC    chan struct{}
	doneOnce sync.Once

	info    wm.Info
	hasInfo bool
	desktop int
}

func New(x X, manager *wm.Manager, machine *input.Machine) *App {
	return &App{
		x:       x,
		manager: manager,
		machine: machine,
		events:  make(chan xgb.Event),
		queue:   make(chan func()),
		doneC:   make(chan struct{}),
	}
}

// Events is where raw X events are delivered.
func (a *App) Events() chan<- xgb.Event {
	return a.events
}

// Done is closed once quit or restart has been processed.
func (a *App) Done() <-chan struct{} {
	return a.doneC
}

// Err reports ErrRestart when the loop stopped because of a restart.
func (a *App) Err() error {
	if a.manager.Restart() {
		return ErrRestart
	}
	return nil
}

func (a *App) ExitCode() int {
	return a.manager.ExitCode()
}

func (a *App) String() string {
	return "app.Loop"
}

func (a *App) Serve(ctx context.Context) error {
	a.grab()
	a.publish()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.doneC:
			return suture.ErrDoNotRestart
		case ev := <-a.events:
			a.handle(a.x.Translate(ev))
		case fn := <-a.queue:
			fn()
		}

		a.publish()

		if !a.manager.Running() {
			slog.Info("Stopping", "package", "app", "restart", a.manager.Restart(), "code", a.manager.ExitCode())
			a.doneOnce.Do(func() { close(a.doneC) })
			return suture.ErrDoNotRestart
		}
	}
}

// Do runs fn on the loop goroutine and waits for it to finish.
func (a *App) Do(ctx context.Context, fn func(m *wm.Manager, machine *input.Machine)) error {
	done := make(chan struct{})
	job := func() {
		defer close(done)
		fn(a.manager, a.machine)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-a.doneC:
		return ErrClosed
	case a.queue <- job:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// Reload applies new settings and bindings.
func (a *App) Reload(ctx context.Context, settings wm.Settings, bindings input.Bindings) error {
	return a.Do(ctx, func(m *wm.Manager, machine *input.Machine) {
		m.ApplySettings(settings)
		machine.SetBindings(bindings)
		a.grab()
	})
}

func (a *App) grab() {
	b := a.machine.Bindings()
	a.x.GrabKeys(b.Grabs())
	a.x.GrabButtons(b.Buttons)
}

func (a *App) handle(ev any) {
	m := a.manager

	switch ev := ev.(type) {
	case nil:
	case wm.MapRequest:
		if c, _ := m.FindByHandle(ev.Win); c == nil && !ev.OverrideRedirect {
			a.x.Manage(ev.Win)
		}
		m.HandleMapRequest(ev)
	case xwm.Destroy:
		m.HandleDestroy(ev.Win)
	case xwm.Enter:
		m.HandleEnter(ev.Win)
	case xwm.ButtonPress:
		m.HandleButtonPress(ev.Win, ev.Button.Button)
		a.machine.HandleButton(ev.Button)
	case xwm.KeyPress:
		a.machine.HandleKey(ev.Key)
	case xwm.ScreenChange:
		m.HandleScreenChange(ev.Screen)
	case xwm.FullscreenRequest:
		m.HandleFullscreenRequest(ev.Win, ev.Action)
	case xwm.ActivateRequest:
		if c, ws := m.FindByHandle(ev.Win); c != nil {
			m.ChangeWS(ws)
			m.UpdateFocus(c)
		}
	case xwm.Urgency:
		m.HandleUrgency(ev.Win, ev.Urgent)
	case xwm.ConfigureRequest:
		a.configure(ev)
	case xwm.KeyboardChange:
		if err := a.x.RefreshKeyboard(); err != nil {
			slog.Error("Failed to refresh keyboard mapping", "package", "app", "error", err)
			return
		}
		a.grab()
	default:
		slog.Debug("Unhandled event", "package", "app", "event", ev)
	}
}

// configure lets unmanaged and floating windows place themselves. Windows
// positioned by the layout are told their current geometry instead.
func (a *App) configure(ev xwm.ConfigureRequest) {
	c, _ := a.manager.FindByHandle(ev.Win)
	if c == nil || (c.Floating && !c.Fullscreen) {
		a.x.ApplyConfigure(ev.Values)
		if c != nil {
			c.X, c.Y, c.W, c.H = int(ev.Values.X), int(ev.Values.Y), int(ev.Values.Width), int(ev.Values.Height)
		}
		return
	}
	a.x.SendConfigureNotify(c.Win, wm.Rect{X: c.X, Y: c.Y, W: c.W, H: c.H}, a.manager.BorderWidth(c))
}

// publish announces the status line when it changed.
func (a *App) publish() {
	info := a.manager.Info(int(a.machine.State().Phase))
	if a.hasInfo && info == a.info {
		return
	}
	a.info, a.hasInfo = info, true

	if a.desktop != info.Workspace {
		a.desktop = info.Workspace
		a.x.SetDesktops(a.manager.Count(), info.Workspace)
	}

	bus.Publish(info)
}
