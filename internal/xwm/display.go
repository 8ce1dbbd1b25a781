package xwm

import (
	"log/slog"

	"github.com/ItsNotGoodName/x-howm/internal/wm"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var _ wm.Display = (*Conn)(nil)

func (c *Conn) Map(win wm.Window) {
	xproto.MapWindow(c.X, xproto.Window(win))
}

func (c *Conn) Unmap(win wm.Window) {
	xproto.UnmapWindow(c.X, xproto.Window(win))
}

func (c *Conn) SetBorderWidth(win wm.Window, width int) {
	xproto.ConfigureWindow(c.X, xproto.Window(win), xproto.ConfigWindowBorderWidth, []uint32{uint32(width)})
}

func (c *Conn) SetBorderColor(win wm.Window, pixel uint32) {
	xproto.ChangeWindowAttributes(c.X, xproto.Window(win), xproto.CwBorderPixel, []uint32{pixel})
}

func (c *Conn) MoveResize(win wm.Window, x, y, w, h int) {
	xproto.ConfigureWindow(c.X, xproto.Window(win),
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(x), uint32(y), uint32(w), uint32(h)})
}

func (c *Conn) Raise(win wm.Window) {
	xproto.ConfigureWindow(c.X, xproto.Window(win), xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove})
}

func (c *Conn) Focus(win wm.Window) {
	xproto.SetInputFocus(c.X, xproto.InputFocusPointerRoot, xproto.Window(win), xproto.TimeCurrentTime)
}

func (c *Conn) SetActiveWindow(win wm.Window) {
	c.setAtoms(c.Root, c.atoms.NetActiveWindow, xproto.AtomWindow, []uint32{uint32(win)})
}

func (c *Conn) ClearActiveWindow() {
	xproto.DeleteProperty(c.X, c.Root, c.atoms.NetActiveWindow)
}

func (c *Conn) SetFullscreen(win wm.Window, fullscreen bool) {
	var state []uint32
	if fullscreen {
		state = []uint32{uint32(c.atoms.NetWMStateFull)}
	}
	c.setAtoms(xproto.Window(win), c.atoms.NetWMState, xproto.AtomAtom, state)
}

// Close asks the client to close through WM_DELETE_WINDOW when it supports
// the protocol and kills its connection otherwise.
func (c *Conn) Close(win wm.Window) {
	if !c.supportsDelete(xproto.Window(win)) {
		xproto.KillClient(c.X, uint32(win))
		return
	}

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: xproto.Window(win),
		Type:   c.atoms.WMProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(c.atoms.WMDeleteWindow),
			xproto.TimeCurrentTime,
			0, 0, 0,
		}),
	}
	xproto.SendEvent(c.X, false, xproto.Window(win), xproto.EventMaskNoEvent, string(ev.Bytes()))
}

func (c *Conn) supportsDelete(win xproto.Window) bool {
	reply, err := xproto.GetProperty(c.X, false, win, c.atoms.WMProtocols, xproto.AtomAtom, 0, 32).Reply()
	if err != nil {
		slog.Debug("Failed to read WM_PROTOCOLS", "package", "xwm", "window", win, "error", err)
		return false
	}
	for _, atom := range atoms32(reply) {
		if xproto.Atom(atom) == c.atoms.WMDeleteWindow {
			return true
		}
	}
	return false
}

// SendConfigureNotify tells a client its current geometry after a configure
// request that was not honoured.
func (c *Conn) SendConfigureNotify(win wm.Window, r wm.Rect, border int) {
	ev := xproto.ConfigureNotifyEvent{
		Event:       xproto.Window(win),
		Window:      xproto.Window(win),
		X:           int16(r.X),
		Y:           int16(r.Y),
		Width:       uint16(r.W),
		Height:      uint16(r.H),
		BorderWidth: uint16(border),
	}
	xproto.SendEvent(c.X, false, xproto.Window(win), xproto.EventMaskStructureNotify, string(ev.Bytes()))
}

// atoms32 decodes a format 32 property value.
func atoms32(reply *xproto.GetPropertyReply) []uint32 {
	if reply == nil || reply.Format != 32 {
		return nil
	}
	values := make([]uint32, 0, len(reply.Value)/4)
	for i := 0; i+4 <= len(reply.Value); i += 4 {
		values = append(values, xgb.Get32(reply.Value[i:]))
	}
	return values
}
