package xwm

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ItsNotGoodName/x-howm/internal/input"
	"github.com/ItsNotGoodName/x-howm/internal/wm"
	"github.com/ItsNotGoodName/x-howm/internal/xcursor"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var ErrOtherWM = errors.New("another window manager is running")

const wmName = "x-howm"

const rootEventMask = xproto.EventMaskSubstructureRedirect |
	xproto.EventMaskSubstructureNotify |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskButtonPress |
	xproto.EventMaskPropertyChange

const clientEventMask = xproto.EventMaskEnterWindow |
	xproto.EventMaskPropertyChange

type atoms struct {
	WMProtocols         xproto.Atom
	WMDeleteWindow      xproto.Atom
	NetSupported        xproto.Atom
	NetSupportingCheck  xproto.Atom
	NetWMName           xproto.Atom
	NetWMState          xproto.Atom
	NetWMStateFull      xproto.Atom
	NetActiveWindow     xproto.Atom
	NetNumberOfDesktops xproto.Atom
	NetCurrentDesktop   xproto.Atom
	UTF8String          xproto.Atom
}

// Conn is an X connection that owns the root window as its window manager.
type Conn struct {
	X      *xgb.Conn
	Root   xproto.Window
	screen *xproto.ScreenInfo
	atoms  atoms
	check  xproto.Window

	keymap  keymap
	numlock input.Mod

	closeOnce sync.Once
}

// Open connects to display and takes over window management of its default
// screen. It returns ErrOtherWM when the root window is already managed.
func Open(display string) (*Conn, error) {
	x, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, err
	}

	c := &Conn{X: x}
	if err := c.setup(); err != nil {
		x.Close()
		return nil, err
	}
	return c, nil
}

func (c *Conn) setup() error {
	c.screen = xproto.Setup(c.X).DefaultScreen(c.X)
	c.Root = c.screen.Root

	if err := xproto.ChangeWindowAttributesChecked(c.X, c.Root,
		xproto.CwEventMask, []uint32{rootEventMask}).Check(); err != nil {
		return fmt.Errorf("%w: %v", ErrOtherWM, err)
	}

	cursor, err := xcursor.CreateCursor(c.X, xcursor.LeftPtr)
	if err != nil {
		return fmt.Errorf("create cursor: %w", err)
	}
	xproto.ChangeWindowAttributes(c.X, c.Root, xproto.CwCursor, []uint32{uint32(cursor)})

	if err := c.internAtoms(); err != nil {
		return fmt.Errorf("intern atoms: %w", err)
	}
	if err := c.advertise(); err != nil {
		return fmt.Errorf("advertise: %w", err)
	}
	if err := c.RefreshKeyboard(); err != nil {
		return fmt.Errorf("keyboard mapping: %w", err)
	}

	return nil
}

func (c *Conn) intern(name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(c.X, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return reply.Atom, nil
}

func (c *Conn) internAtoms() error {
	for _, a := range []struct {
		name string
		atom *xproto.Atom
	}{
		{"WM_PROTOCOLS", &c.atoms.WMProtocols},
		{"WM_DELETE_WINDOW", &c.atoms.WMDeleteWindow},
		{"_NET_SUPPORTED", &c.atoms.NetSupported},
		{"_NET_SUPPORTING_WM_CHECK", &c.atoms.NetSupportingCheck},
		{"_NET_WM_NAME", &c.atoms.NetWMName},
		{"_NET_WM_STATE", &c.atoms.NetWMState},
		{"_NET_WM_STATE_FULLSCREEN", &c.atoms.NetWMStateFull},
		{"_NET_ACTIVE_WINDOW", &c.atoms.NetActiveWindow},
		{"_NET_NUMBER_OF_DESKTOPS", &c.atoms.NetNumberOfDesktops},
		{"_NET_CURRENT_DESKTOP", &c.atoms.NetCurrentDesktop},
		{"UTF8_STRING", &c.atoms.UTF8String},
	} {
		atom, err := c.intern(a.name)
		if err != nil {
			return err
		}
		*a.atom = atom
	}
	return nil
}

// advertise publishes the supported EWMH hints and the supporting window
// check.
func (c *Conn) advertise() error {
	supported := []uint32{
		uint32(c.atoms.NetSupported),
		uint32(c.atoms.NetSupportingCheck),
		uint32(c.atoms.NetWMName),
		uint32(c.atoms.NetWMState),
		uint32(c.atoms.NetWMStateFull),
		uint32(c.atoms.NetActiveWindow),
		uint32(c.atoms.NetNumberOfDesktops),
		uint32(c.atoms.NetCurrentDesktop),
	}
	c.setAtoms(c.Root, c.atoms.NetSupported, xproto.AtomAtom, supported)

	check, err := xproto.NewWindowId(c.X)
	if err != nil {
		return err
	}
	if err := xproto.CreateWindowChecked(c.X, c.screen.RootDepth,
		check, c.Root,
		-1, -1, 1, 1, 0,
		xproto.WindowClassInputOutput, c.screen.RootVisual,
		0, []uint32{}).Check(); err != nil {
		return err
	}
	c.check = check

	for _, win := range []xproto.Window{c.Root, check} {
		c.setAtoms(win, c.atoms.NetSupportingCheck, xproto.AtomWindow, []uint32{uint32(check)})
	}
	xproto.ChangeProperty(c.X, xproto.PropModeReplace, check, c.atoms.NetWMName, c.atoms.UTF8String,
		8, uint32(len(wmName)), []byte(wmName))

	return nil
}

func (c *Conn) setAtoms(win xproto.Window, prop, typ xproto.Atom, values []uint32) {
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		xgb.Put32(buf[i*4:], v)
	}
	xproto.ChangeProperty(c.X, xproto.PropModeReplace, win, prop, typ, 32, uint32(len(values)), buf)
}

// Screen is the current size of the default screen.
func (c *Conn) Screen() wm.Screen {
	return wm.Screen{Width: int(c.screen.WidthInPixels), Height: int(c.screen.HeightInPixels)}
}

// SetDesktops publishes the workspace count and the active workspace.
func (c *Conn) SetDesktops(count, active int) {
	c.setAtoms(c.Root, c.atoms.NetNumberOfDesktops, xproto.AtomCardinal, []uint32{uint32(count)})
	c.setAtoms(c.Root, c.atoms.NetCurrentDesktop, xproto.AtomCardinal, []uint32{uint32(active - 1)})
}

// Manage subscribes to the events of a client window and grabs the primary
// button for click-to-focus.
func (c *Conn) Manage(win wm.Window) {
	xproto.ChangeWindowAttributes(c.X, xproto.Window(win), xproto.CwEventMask, []uint32{clientEventMask})
	xproto.GrabButton(c.X, false, xproto.Window(win), uint16(xproto.EventMaskButtonPress),
		xproto.GrabModeSync, xproto.GrabModeAsync, xproto.WindowNone, xproto.CursorNone,
		xproto.ButtonIndex1, xproto.ModMaskAny)
}

// Disconnect releases the root window and closes the connection.
func (c *Conn) Disconnect() error {
	c.closeOnce.Do(c.disconnect)
	return nil
}

func (c *Conn) disconnect() {
	xproto.UngrabKey(c.X, xproto.GrabAny, c.Root, xproto.ModMaskAny)
	if c.check != 0 {
		xproto.DestroyWindow(c.X, c.check)
	}
	xproto.DeleteProperty(c.X, c.Root, c.atoms.NetActiveWindow)
	xproto.SetInputFocus(c.X, xproto.InputFocusPointerRoot, xproto.InputFocusPointerRoot, xproto.TimeCurrentTime)
	xproto.GetInputFocus(c.X).Reply()
	c.X.Close()
	slog.Debug("Closed X connection", "package", "xwm")
}
