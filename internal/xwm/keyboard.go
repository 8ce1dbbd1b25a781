package xwm

import (
	"slices"

	"github.com/ItsNotGoodName/x-howm/internal/input"
	"github.com/jezek/xgb/xproto"
)

const keysymNumLock = 0xff7f

type keymap struct {
	min     xproto.Keycode
	perCode int
	syms    []xproto.Keysym
}

// keysym returns the unshifted keysym of code.
func (k keymap) keysym(code xproto.Keycode) input.Keysym {
	idx := (int(code) - int(k.min)) * k.perCode
	if code < k.min || idx < 0 || idx >= len(k.syms) {
		return 0
	}
	return input.Keysym(k.syms[idx])
}

// keycodes returns every keycode whose unshifted keysym is sym.
func (k keymap) keycodes(sym input.Keysym) []xproto.Keycode {
	var codes []xproto.Keycode
	if k.perCode == 0 {
		return codes
	}
	for i := 0; i < len(k.syms); i += k.perCode {
		if input.Keysym(k.syms[i]) == sym {
			codes = append(codes, k.min+xproto.Keycode(i/k.perCode))
		}
	}
	return codes
}

// RefreshKeyboard reloads the keyboard mapping and the num lock modifier.
func (c *Conn) RefreshKeyboard() error {
	setup := xproto.Setup(c.X)
	count := byte(setup.MaxKeycode - setup.MinKeycode + 1)

	mapping, err := xproto.GetKeyboardMapping(c.X, setup.MinKeycode, count).Reply()
	if err != nil {
		return err
	}
	c.keymap = keymap{
		min:     setup.MinKeycode,
		perCode: int(mapping.KeysymsPerKeycode),
		syms:    mapping.Keysyms,
	}

	modifiers, err := xproto.GetModifierMapping(c.X).Reply()
	if err != nil {
		return err
	}
	numlockCodes := c.keymap.keycodes(keysymNumLock)
	c.numlock = 0
	per := int(modifiers.KeycodesPerModifier)
	for i := 0; i < 8 && per > 0; i++ {
		for _, code := range modifiers.Keycodes[i*per : (i+1)*per] {
			if code != 0 && slices.Contains(numlockCodes, code) {
				c.numlock = input.Mod(1 << i)
			}
		}
	}

	return nil
}

// lockCombos are the lock states a binding must be grabbed under so that it
// fires regardless of caps lock and num lock.
func (c *Conn) lockCombos() []input.Mod {
	return []input.Mod{0, input.ModLock, c.numlock, c.numlock | input.ModLock}
}

// GrabKeys replaces every key grab on the root window with grabs.
func (c *Conn) GrabKeys(grabs []input.KeyEvent) {
	xproto.UngrabKey(c.X, xproto.GrabAny, c.Root, xproto.ModMaskAny)
	for _, g := range grabs {
		for _, code := range c.keymap.keycodes(g.Sym) {
			for _, lock := range c.lockCombos() {
				xproto.GrabKey(c.X, true, c.Root, uint16(g.Mod|lock), code,
					xproto.GrabModeAsync, xproto.GrabModeAsync)
			}
		}
	}
}

// GrabButtons grabs the pointer button bindings on the root window.
func (c *Conn) GrabButtons(buttons []input.ButtonBinding) {
	for _, b := range buttons {
		for _, lock := range c.lockCombos() {
			xproto.GrabButton(c.X, false, c.Root, uint16(xproto.EventMaskButtonPress),
				xproto.GrabModeAsync, xproto.GrabModeAsync, xproto.WindowNone, xproto.CursorNone,
				byte(b.Button), uint16(b.Mod|lock))
		}
	}
}

func (c *Conn) key(ev xproto.KeyPressEvent) input.KeyEvent {
	return input.KeyEvent{
		Mod: input.Mod(ev.State).Clean(c.numlock),
		Sym: c.keymap.keysym(ev.Detail),
	}
}
