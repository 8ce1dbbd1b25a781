package xwm

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/ItsNotGoodName/x-howm/internal/input"
	"github.com/ItsNotGoodName/x-howm/internal/wm"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

const urgencyHint = 1 << 8

// Events produced by Translate in addition to wm.MapRequest.
type (
	Destroy struct {
		Win wm.Window
	}
	Enter struct {
		Win wm.Window
	}
	ButtonPress struct {
		Win    wm.Window
		Button input.ButtonEvent
	}
	KeyPress struct {
		Key input.KeyEvent
	}
	ScreenChange struct {
		Screen wm.Screen
	}
	FullscreenRequest struct {
		Win    wm.Window
		Action int
	}
	ActivateRequest struct {
		Win wm.Window
	}
	Urgency struct {
		Win    wm.Window
		Urgent bool
	}
	ConfigureRequest struct {
		Win    wm.Window
		Values xproto.ConfigureRequestEvent
	}
	KeyboardChange struct{}
)

// Translate converts a raw X event into one of the events above. It returns
// nil for events the window manager does not act on.
func (c *Conn) Translate(ev xgb.Event) any {
	switch ev := ev.(type) {
	case xproto.MapRequestEvent:
		return c.mapRequest(ev.Window)
	case xproto.DestroyNotifyEvent:
		return Destroy{Win: wm.Window(ev.Window)}
	case xproto.EnterNotifyEvent:
		if ev.Mode != xproto.NotifyModeNormal || ev.Detail == xproto.NotifyDetailInferior {
			return nil
		}
		return Enter{Win: wm.Window(ev.Event)}
	case xproto.ButtonPressEvent:
		win := ev.Event
		if win == c.Root {
			win = ev.Child
		} else {
			xproto.AllowEvents(c.X, xproto.AllowReplayPointer, ev.Time)
		}
		return ButtonPress{
			Win: wm.Window(win),
			Button: input.ButtonEvent{
				Mod:    input.Mod(ev.State).Clean(c.numlock),
				Button: int(ev.Detail),
				Win:    wm.Window(win),
			},
		}
	case xproto.KeyPressEvent:
		return KeyPress{Key: c.key(ev)}
	case xproto.ConfigureNotifyEvent:
		if ev.Window != c.Root {
			return nil
		}
		c.screen.WidthInPixels, c.screen.HeightInPixels = ev.Width, ev.Height
		return ScreenChange{Screen: c.Screen()}
	case xproto.ConfigureRequestEvent:
		return ConfigureRequest{Win: wm.Window(ev.Window), Values: ev}
	case xproto.ClientMessageEvent:
		return c.clientMessage(ev)
	case xproto.PropertyNotifyEvent:
		if ev.Atom != xproto.AtomWmHints || ev.State == xproto.PropertyDelete {
			return nil
		}
		return Urgency{Win: wm.Window(ev.Window), Urgent: c.urgent(ev.Window)}
	case xproto.MappingNotifyEvent:
		if ev.Request == xproto.MappingPointer {
			return nil
		}
		return KeyboardChange{}
	default:
		return nil
	}
}

func (c *Conn) mapRequest(win xproto.Window) wm.MapRequest {
	req := wm.MapRequest{Win: wm.Window(win)}

	if attrs, err := xproto.GetWindowAttributes(c.X, win).Reply(); err == nil {
		req.OverrideRedirect = attrs.OverrideRedirect
	} else {
		slog.Debug("Failed to get window attributes", "package", "xwm", "window", win, "error", err)
	}

	if geom, err := xproto.GetGeometry(c.X, xproto.Drawable(win)).Reply(); err == nil {
		req.Geometry = wm.Rect{X: int(geom.X), Y: int(geom.Y), W: int(geom.Width), H: int(geom.Height)}
	}

	if reply, err := xproto.GetProperty(c.X, false, win, xproto.AtomWmTransientFor, xproto.AtomWindow, 0, 1).Reply(); err == nil {
		transient := atoms32(reply)
		req.Transient = len(transient) > 0 && transient[0] != 0
	}

	req.Class = c.class(win)
	return req
}

// class returns WM_CLASS as "instance.class".
func (c *Conn) class(win xproto.Window) string {
	reply, err := xproto.GetProperty(c.X, false, win, xproto.AtomWmClass, xproto.AtomString, 0, 64).Reply()
	if err != nil || reply.Format != 8 {
		return ""
	}
	parts := bytes.Split(bytes.TrimRight(reply.Value, "\x00"), []byte{0})
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		names = append(names, string(p))
	}
	return strings.Join(names, ".")
}

func (c *Conn) urgent(win xproto.Window) bool {
	reply, err := xproto.GetProperty(c.X, false, win, xproto.AtomWmHints, xproto.AtomWmHints, 0, 9).Reply()
	if err != nil {
		return false
	}
	hints := atoms32(reply)
	return len(hints) > 0 && hints[0]&urgencyHint != 0
}

func (c *Conn) clientMessage(ev xproto.ClientMessageEvent) any {
	if ev.Format != 32 {
		return nil
	}
	data := ev.Data.Data32

	switch ev.Type {
	case c.atoms.NetWMState:
		if len(data) < 3 {
			return nil
		}
		full := uint32(c.atoms.NetWMStateFull)
		if data[1] != full && data[2] != full {
			return nil
		}
		return FullscreenRequest{Win: wm.Window(ev.Window), Action: int(data[0])}
	case c.atoms.NetActiveWindow:
		return ActivateRequest{Win: wm.Window(ev.Window)}
	default:
		return nil
	}
}

// ApplyConfigure honours a configure request unchanged. Used for windows the
// layout does not position.
func (c *Conn) ApplyConfigure(ev xproto.ConfigureRequestEvent) {
	var values []uint32
	var mask uint16
	add := func(bit uint16, v uint32) {
		if ev.ValueMask&bit != 0 {
			mask |= bit
			values = append(values, v)
		}
	}
	add(xproto.ConfigWindowX, uint32(ev.X))
	add(xproto.ConfigWindowY, uint32(ev.Y))
	add(xproto.ConfigWindowWidth, uint32(ev.Width))
	add(xproto.ConfigWindowHeight, uint32(ev.Height))
	add(xproto.ConfigWindowBorderWidth, uint32(ev.BorderWidth))
	add(xproto.ConfigWindowSibling, uint32(ev.Sibling))
	add(xproto.ConfigWindowStackMode, uint32(ev.StackMode))
	xproto.ConfigureWindow(c.X, ev.Window, mask, values)
}
