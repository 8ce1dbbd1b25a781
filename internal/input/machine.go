package input

import (
	"log/slog"

	"github.com/ItsNotGoodName/x-howm/internal/wm"
)

// Executor carries out parsed input.
type Executor interface {
	Operate(op wm.Operator, motion wm.Motion, cnt int)
	Run(cmd wm.Command, arg wm.Arg)
	Mode() wm.Mode
}

// Machine turns key and button presses into window manager actions.
type Machine struct {
	exec     Executor
	bindings Bindings
	state    State
	replay   Replay
}

func NewMachine(exec Executor, bindings Bindings) *Machine {
	return &Machine{
		exec:     exec,
		bindings: bindings,
		state:    Initial(),
	}
}

func (m *Machine) State() State {
	return m.state
}

func (m *Machine) Bindings() *Bindings {
	return &m.bindings
}

// SetBindings replaces the binding tables and abandons any partial sequence.
func (m *Machine) SetBindings(bindings Bindings) {
	m.bindings = bindings
	m.state = Initial()
}

// HandleKey feeds a key press to the operator parser and then runs every
// direct binding that matches it in the current mode.
func (m *Machine) HandleKey(ev KeyEvent) {
	mode := m.exec.Mode()

	next, inv := Step(m.state, ev, &m.bindings, mode)
	if next != m.state {
		slog.Debug("Input state", "from", m.state.Phase, "to", next.Phase, "operator", next.Operator, "count", next.Count)
	}
	m.state = next
	if inv != nil {
		m.Operate(*inv)
	}

	for _, k := range m.bindings.Keys {
		if k.Mod == ev.Mod && k.Sym == ev.Sym && k.Mode == mode {
			m.Command(k.Command, k.Arg)
		}
	}
}

func (m *Machine) HandleButton(ev ButtonEvent) {
	for _, b := range m.bindings.Buttons {
		if b.Mod == ev.Mod && b.Button == ev.Button {
			m.Command(b.Command, b.Arg)
		}
	}
}

// Operate executes an invocation and remembers it for replay.
func (m *Machine) Operate(inv Invocation) {
	m.exec.Operate(inv.Operator, inv.Motion, inv.Count)
	m.replay.recordInvocation(inv)
}

// Command executes a command. Replay and input reset are handled here since
// they act on the parser rather than on the window manager.
func (m *Machine) Command(cmd wm.Command, arg wm.Arg) {
	switch cmd {
	case wm.CmdReplay:
		if !m.replay.run(m.exec) {
			slog.Debug("Nothing to replay")
		}
	case wm.CmdResetInput:
		m.Reset()
	default:
		m.exec.Run(cmd, arg)
		m.replay.recordCommand(cmd, arg)
	}
}

// Reset abandons a partially typed operator sequence.
func (m *Machine) Reset() {
	m.state = Initial()
}
