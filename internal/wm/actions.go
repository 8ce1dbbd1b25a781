package wm

import "slices"

// Mode is the process-wide UI mode that selects which bindings are live.
type Mode int

const (
	ModeNormal Mode = iota
	ModeFocus
	ModeFloating
	modeEnd
)

var modeNames = [...]string{
	ModeNormal:   "normal",
	ModeFocus:    "focus",
	ModeFloating: "floating",
}

func (m Mode) String() string {
	if m < 0 || m >= modeEnd {
		return "unknown"
	}
	return modeNames[m]
}

func (m Mode) Valid() bool {
	return m >= 0 && m < modeEnd
}

func ParseMode(s string) (Mode, bool) {
	idx := slices.Index(modeNames[:], s)
	if idx == -1 {
		return 0, false
	}
	return Mode(idx), true
}

// Motion identifies the target domain of an operator.
type Motion int

const (
	MotionClient Motion = iota
	MotionWorkspace
)

func (m Motion) String() string {
	switch m {
	case MotionClient:
		return "client"
	case MotionWorkspace:
		return "workspace"
	default:
		return "unknown"
	}
}

func ParseMotion(s string) (Motion, bool) {
	switch s {
	case "client":
		return MotionClient, true
	case "workspace":
		return MotionWorkspace, true
	default:
		return 0, false
	}
}

// MotionSet is a set of accepted motions.
type MotionSet uint8

func Motions(motions ...Motion) MotionSet {
	var set MotionSet
	for _, m := range motions {
		set |= 1 << m
	}
	return set
}

func (s MotionSet) Has(m Motion) bool {
	return m >= 0 && s&(1<<m) != 0
}

// Operator acts on count targets selected by a motion.
type Operator int

const (
	OpKill Operator = iota
	OpMoveUp
	OpMoveDown
	OpFocusUp
	OpFocusDown
	OpShrinkGaps
	OpGrowGaps
	OpCut
	operatorEnd
)

var operatorSpecs = [...]struct {
	name    string
	motions MotionSet
}{
	OpKill:       {"kill", Motions(MotionClient, MotionWorkspace)},
	OpMoveUp:     {"move_up", Motions(MotionClient, MotionWorkspace)},
	OpMoveDown:   {"move_down", Motions(MotionClient, MotionWorkspace)},
	OpFocusUp:    {"focus_up", Motions(MotionClient, MotionWorkspace)},
	OpFocusDown:  {"focus_down", Motions(MotionClient, MotionWorkspace)},
	OpShrinkGaps: {"shrink_gaps", Motions(MotionClient, MotionWorkspace)},
	OpGrowGaps:   {"grow_gaps", Motions(MotionClient, MotionWorkspace)},
	OpCut:        {"cut", Motions(MotionClient, MotionWorkspace)},
}

func (o Operator) Valid() bool {
	return o >= 0 && o < operatorEnd
}

func (o Operator) String() string {
	if !o.Valid() {
		return "unknown"
	}
	return operatorSpecs[o].name
}

// Accepts reports whether the operator can be applied with motion m.
func (o Operator) Accepts(m Motion) bool {
	return o.Valid() && operatorSpecs[o].motions.Has(m)
}

func ParseOperator(s string) (Operator, bool) {
	for i, spec := range operatorSpecs {
		if spec.name == s {
			return Operator(i), true
		}
	}
	return 0, false
}

// Command is a directly bound action.
type Command int

const (
	CmdSpawn Command = iota
	CmdChangeWS
	CmdFocusNextWS
	CmdFocusPrevWS
	CmdFocusLastWS
	CmdCurrentToWS
	CmdMoveCurrentUp
	CmdMoveCurrentDown
	CmdFocusNextClient
	CmdFocusPrevClient
	CmdChangeLayout
	CmdNextLayout
	CmdPrevLayout
	CmdLastLayout
	CmdToggleFloat
	CmdToggleFullscreen
	CmdResizeFloatWidth
	CmdResizeFloatHeight
	CmdMoveFloatX
	CmdMoveFloatY
	CmdTeleportClient
	CmdMakeMaster
	CmdResizeMaster
	CmdToggleBar
	CmdFocusUrgent
	CmdSendToScratchpad
	CmdGetFromScratchpad
	CmdChangeMode
	CmdReplay
	CmdPaste
	CmdResetInput
	CmdQuit
	CmdRestart
	commandEnd
)

var commandNames = [...]string{
	CmdSpawn:             "spawn",
	CmdChangeWS:          "change_ws",
	CmdFocusNextWS:       "focus_next_ws",
	CmdFocusPrevWS:       "focus_prev_ws",
	CmdFocusLastWS:       "focus_last_ws",
	CmdCurrentToWS:       "current_to_ws",
	CmdMoveCurrentUp:     "move_current_up",
	CmdMoveCurrentDown:   "move_current_down",
	CmdFocusNextClient:   "focus_next_client",
	CmdFocusPrevClient:   "focus_prev_client",
	CmdChangeLayout:      "change_layout",
	CmdNextLayout:        "next_layout",
	CmdPrevLayout:        "previous_layout",
	CmdLastLayout:        "last_layout",
	CmdToggleFloat:       "toggle_float",
	CmdToggleFullscreen:  "toggle_fullscreen",
	CmdResizeFloatWidth:  "resize_float_width",
	CmdResizeFloatHeight: "resize_float_height",
	CmdMoveFloatX:        "move_float_x",
	CmdMoveFloatY:        "move_float_y",
	CmdTeleportClient:    "teleport_client",
	CmdMakeMaster:        "make_master",
	CmdResizeMaster:      "resize_master",
	CmdToggleBar:         "toggle_bar",
	CmdFocusUrgent:       "focus_urgent",
	CmdSendToScratchpad:  "send_to_scratchpad",
	CmdGetFromScratchpad: "get_from_scratchpad",
	CmdChangeMode:        "change_mode",
	CmdReplay:            "replay",
	CmdPaste:             "paste",
	CmdResetInput:        "reset_input",
	CmdQuit:              "quit",
	CmdRestart:           "restart",
}

func (c Command) Valid() bool {
	return c >= 0 && c < commandEnd
}

func (c Command) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return commandNames[c]
}

func ParseCommand(s string) (Command, bool) {
	idx := slices.Index(commandNames[:], s)
	if idx == -1 {
		return 0, false
	}
	return Command(idx), true
}

// Arg is the argument bound alongside a command.
type Arg struct {
	Int  int
	Argv []string
}

// Teleport locations for CmdTeleportClient.
const (
	TopLeft = iota
	TopCenter
	TopRight
	Center
	BottomLeft
	BottomCenter
	BottomRight
)
