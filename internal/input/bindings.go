package input

import "github.com/ItsNotGoodName/x-howm/internal/wm"

type KeyEvent struct {
	Mod Mod
	Sym Keysym
}

type ButtonEvent struct {
	Mod    Mod
	Button int
	Win    wm.Window
}

type OperatorBinding struct {
	Mod      Mod
	Sym      Keysym
	Mode     wm.Mode
	Operator wm.Operator
}

type MotionBinding struct {
	Mod    Mod
	Sym    Keysym
	Motion wm.Motion
}

type KeyBinding struct {
	Mod     Mod
	Sym     Keysym
	Mode    wm.Mode
	Command wm.Command
	Arg     wm.Arg
}

type ButtonBinding struct {
	Mod     Mod
	Button  int
	Command wm.Command
	Arg     wm.Arg
}

// Bindings are the static tables interpreted by the state machine.
type Bindings struct {
	CountMod  Mod
	Operators []OperatorBinding
	Motions   []MotionBinding
	Keys      []KeyBinding
	Buttons   []ButtonBinding
}

// Grabs lists every key combination the display server must deliver.
func (b *Bindings) Grabs() []KeyEvent {
	var grabs []KeyEvent
	seen := make(map[KeyEvent]struct{})
	add := func(ev KeyEvent) {
		if _, ok := seen[ev]; ok {
			return
		}
		seen[ev] = struct{}{}
		grabs = append(grabs, ev)
	}

	for _, o := range b.Operators {
		add(KeyEvent{Mod: o.Mod, Sym: o.Sym})
	}
	for sym := Key1; sym <= Key9; sym++ {
		add(KeyEvent{Mod: b.CountMod, Sym: sym})
	}
	for _, m := range b.Motions {
		add(KeyEvent{Mod: m.Mod, Sym: m.Sym})
	}
	for _, k := range b.Keys {
		add(KeyEvent{Mod: k.Mod, Sym: k.Sym})
	}
	return grabs
}

const modKey = Mod4

// DefaultBindings returns the built-in binding tables. terminal is the argv
// launched by the spawn binding.
func DefaultBindings(terminal []string, workspaces int) Bindings {
	b := Bindings{
		CountMod: modKey,
		Operators: []OperatorBinding{
			{modKey, KeyQ, wm.ModeNormal, wm.OpKill},
			{modKey, KeyJ, wm.ModeNormal, wm.OpMoveDown},
			{modKey, KeyK, wm.ModeNormal, wm.OpMoveUp},
			{modKey, KeyJ, wm.ModeFocus, wm.OpFocusDown},
			{modKey, KeyK, wm.ModeFocus, wm.OpFocusUp},
			{modKey, KeyS, wm.ModeNormal, wm.OpShrinkGaps},
			{modKey, KeyG, wm.ModeNormal, wm.OpGrowGaps},
			{modKey, KeyD, wm.ModeNormal, wm.OpCut},
		},
		Motions: []MotionBinding{
			{modKey, KeyC, wm.MotionClient},
			{modKey, KeyW, wm.MotionWorkspace},
		},
		Keys: []KeyBinding{
			{Mod: modKey, Sym: KeyReturn, Mode: wm.ModeNormal, Command: wm.CmdSpawn, Arg: wm.Arg{Argv: terminal}},
			{Mod: modKey, Sym: KeySpace, Mode: wm.ModeNormal, Command: wm.CmdNextLayout},
			{Mod: modKey | ModShift, Sym: KeySpace, Mode: wm.ModeNormal, Command: wm.CmdPrevLayout},
			{Mod: modKey, Sym: KeyTab, Mode: wm.ModeNormal, Command: wm.CmdLastLayout},
			{Mod: modKey, Sym: KeyF, Mode: wm.ModeNormal, Command: wm.CmdToggleFloat},
			{Mod: modKey | ModShift, Sym: KeyF, Mode: wm.ModeNormal, Command: wm.CmdToggleFullscreen},
			{Mod: modKey, Sym: KeyM, Mode: wm.ModeNormal, Command: wm.CmdMakeMaster},
			{Mod: modKey, Sym: KeyB, Mode: wm.ModeNormal, Command: wm.CmdToggleBar},
			{Mod: modKey, Sym: KeyU, Mode: wm.ModeNormal, Command: wm.CmdFocusUrgent},
			{Mod: modKey, Sym: KeyP, Mode: wm.ModeNormal, Command: wm.CmdPaste},
			{Mod: modKey, Sym: KeyPeriod, Mode: wm.ModeNormal, Command: wm.CmdReplay},
			{Mod: modKey, Sym: KeyH, Mode: wm.ModeNormal, Command: wm.CmdResizeMaster, Arg: wm.Arg{Int: -5}},
			{Mod: modKey, Sym: KeyL, Mode: wm.ModeNormal, Command: wm.CmdResizeMaster, Arg: wm.Arg{Int: 5}},
			{Mod: modKey, Sym: KeyMinus, Mode: wm.ModeNormal, Command: wm.CmdSendToScratchpad},
			{Mod: modKey | ModShift, Sym: KeyMinus, Mode: wm.ModeNormal, Command: wm.CmdGetFromScratchpad},
			{Mod: modKey, Sym: KeyRight, Mode: wm.ModeNormal, Command: wm.CmdFocusNextWS},
			{Mod: modKey, Sym: KeyLeft, Mode: wm.ModeNormal, Command: wm.CmdFocusPrevWS},
			{Mod: modKey, Sym: KeyComma, Mode: wm.ModeNormal, Command: wm.CmdFocusLastWS},
			{Mod: modKey | ModShift, Sym: KeyJ, Mode: wm.ModeNormal, Command: wm.CmdMoveCurrentDown},
			{Mod: modKey | ModShift, Sym: KeyK, Mode: wm.ModeNormal, Command: wm.CmdMoveCurrentUp},
			{Mod: modKey | ModShift, Sym: KeyE, Mode: wm.ModeNormal, Command: wm.CmdQuit},
			{Mod: modKey | ModShift, Sym: KeyR, Mode: wm.ModeNormal, Command: wm.CmdRestart},
			{Mod: modKey, Sym: KeyEscape, Mode: wm.ModeNormal, Command: wm.CmdResetInput},

			{Mod: modKey | ModControl, Sym: KeyN, Mode: wm.ModeNormal, Command: wm.CmdChangeMode, Arg: wm.Arg{Int: int(wm.ModeNormal)}},
			{Mod: modKey | ModControl, Sym: KeyN, Mode: wm.ModeFocus, Command: wm.CmdChangeMode, Arg: wm.Arg{Int: int(wm.ModeNormal)}},
			{Mod: modKey | ModControl, Sym: KeyN, Mode: wm.ModeFloating, Command: wm.CmdChangeMode, Arg: wm.Arg{Int: int(wm.ModeNormal)}},
			{Mod: modKey | ModControl, Sym: KeyI, Mode: wm.ModeNormal, Command: wm.CmdChangeMode, Arg: wm.Arg{Int: int(wm.ModeFocus)}},
			{Mod: modKey | ModControl, Sym: KeyO, Mode: wm.ModeNormal, Command: wm.CmdChangeMode, Arg: wm.Arg{Int: int(wm.ModeFloating)}},

			{Mod: modKey, Sym: KeyTab, Mode: wm.ModeFocus, Command: wm.CmdFocusNextClient},
			{Mod: modKey | ModShift, Sym: KeyTab, Mode: wm.ModeFocus, Command: wm.CmdFocusPrevClient},

			{Mod: modKey, Sym: KeyH, Mode: wm.ModeFloating, Command: wm.CmdMoveFloatX, Arg: wm.Arg{Int: -10}},
			{Mod: modKey, Sym: KeyL, Mode: wm.ModeFloating, Command: wm.CmdMoveFloatX, Arg: wm.Arg{Int: 10}},
			{Mod: modKey, Sym: KeyK, Mode: wm.ModeFloating, Command: wm.CmdMoveFloatY, Arg: wm.Arg{Int: -10}},
			{Mod: modKey, Sym: KeyJ, Mode: wm.ModeFloating, Command: wm.CmdMoveFloatY, Arg: wm.Arg{Int: 10}},
			{Mod: modKey | ModShift, Sym: KeyH, Mode: wm.ModeFloating, Command: wm.CmdResizeFloatWidth, Arg: wm.Arg{Int: -10}},
			{Mod: modKey | ModShift, Sym: KeyL, Mode: wm.ModeFloating, Command: wm.CmdResizeFloatWidth, Arg: wm.Arg{Int: 10}},
			{Mod: modKey | ModShift, Sym: KeyK, Mode: wm.ModeFloating, Command: wm.CmdResizeFloatHeight, Arg: wm.Arg{Int: -10}},
			{Mod: modKey | ModShift, Sym: KeyJ, Mode: wm.ModeFloating, Command: wm.CmdResizeFloatHeight, Arg: wm.Arg{Int: 10}},
			{Mod: modKey, Sym: KeyY, Mode: wm.ModeFloating, Command: wm.CmdTeleportClient, Arg: wm.Arg{Int: wm.TopLeft}},
			{Mod: modKey, Sym: KeyU, Mode: wm.ModeFloating, Command: wm.CmdTeleportClient, Arg: wm.Arg{Int: wm.TopCenter}},
			{Mod: modKey, Sym: KeyI, Mode: wm.ModeFloating, Command: wm.CmdTeleportClient, Arg: wm.Arg{Int: wm.TopRight}},
			{Mod: modKey, Sym: KeySpace, Mode: wm.ModeFloating, Command: wm.CmdTeleportClient, Arg: wm.Arg{Int: wm.Center}},
			{Mod: modKey, Sym: KeyB, Mode: wm.ModeFloating, Command: wm.CmdTeleportClient, Arg: wm.Arg{Int: wm.BottomLeft}},
			{Mod: modKey, Sym: KeyN, Mode: wm.ModeFloating, Command: wm.CmdTeleportClient, Arg: wm.Arg{Int: wm.BottomCenter}},
			{Mod: modKey, Sym: KeyM, Mode: wm.ModeFloating, Command: wm.CmdTeleportClient, Arg: wm.Arg{Int: wm.BottomRight}},
		},
		Buttons: []ButtonBinding{
			{Mod: modKey, Button: 2, Command: wm.CmdToggleFloat},
		},
	}

	for i := 1; i <= min(workspaces, 9); i++ {
		b.Keys = append(b.Keys,
			KeyBinding{Mod: modKey | ModControl, Sym: Key0 + Keysym(i), Mode: wm.ModeNormal, Command: wm.CmdChangeWS, Arg: wm.Arg{Int: i}},
			KeyBinding{Mod: modKey | ModShift, Sym: Key0 + Keysym(i), Mode: wm.ModeNormal, Command: wm.CmdCurrentToWS, Arg: wm.Arg{Int: i}},
		)
	}

	return b
}
