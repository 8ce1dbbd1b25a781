package input

// Mod is an X modifier mask.
type Mod uint16

const (
	ModShift   Mod = 1 << 0
	ModLock    Mod = 1 << 1
	ModControl Mod = 1 << 2
	Mod1       Mod = 1 << 3
	Mod2       Mod = 1 << 4
	Mod3       Mod = 1 << 5
	Mod4       Mod = 1 << 6
	Mod5       Mod = 1 << 7

	modAll = ModShift | ModLock | ModControl | Mod1 | Mod2 | Mod3 | Mod4 | Mod5
)

// Clean strips caps lock, num lock and pointer button bits so that two masks
// can be compared for equality.
func (m Mod) Clean(numlock Mod) Mod {
	return m & modAll &^ (numlock | ModLock)
}

// Keysym is an X keysym.
type Keysym uint32

const (
	KeySpace  Keysym = 0x0020
	KeyComma  Keysym = 0x002c
	KeyMinus  Keysym = 0x002d
	KeyPeriod Keysym = 0x002e
	Key0      Keysym = 0x0030
	Key1      Keysym = 0x0031
	Key2      Keysym = 0x0032
	Key3      Keysym = 0x0033
	Key4      Keysym = 0x0034
	Key5      Keysym = 0x0035
	Key6      Keysym = 0x0036
	Key7      Keysym = 0x0037
	Key8      Keysym = 0x0038
	Key9      Keysym = 0x0039
	KeyA      Keysym = 0x0061
	KeyB      Keysym = 0x0062
	KeyC      Keysym = 0x0063
	KeyD      Keysym = 0x0064
	KeyE      Keysym = 0x0065
	KeyF      Keysym = 0x0066
	KeyG      Keysym = 0x0067
	KeyH      Keysym = 0x0068
	KeyI      Keysym = 0x0069
	KeyJ      Keysym = 0x006a
	KeyK      Keysym = 0x006b
	KeyL      Keysym = 0x006c
	KeyM      Keysym = 0x006d
	KeyN      Keysym = 0x006e
	KeyO      Keysym = 0x006f
	KeyP      Keysym = 0x0070
	KeyQ      Keysym = 0x0071
	KeyR      Keysym = 0x0072
	KeyS      Keysym = 0x0073
	KeyT      Keysym = 0x0074
	KeyU      Keysym = 0x0075
	KeyV      Keysym = 0x0076
	KeyW      Keysym = 0x0077
	KeyX      Keysym = 0x0078
	KeyY      Keysym = 0x0079
	KeyZ      Keysym = 0x007a
	KeyTab    Keysym = 0xff09
	KeyReturn Keysym = 0xff0d
	KeyEscape Keysym = 0xff1b
	KeyLeft   Keysym = 0xff51
	KeyUp     Keysym = 0xff52
	KeyRight  Keysym = 0xff53
	KeyDown   Keysym = 0xff54
)

// digit returns the count carried by a 1-9 keysym.
func digit(sym Keysym) (int, bool) {
	if sym < Key1 || sym > Key9 {
		return 0, false
	}
	return int(sym - Key0), true
}
