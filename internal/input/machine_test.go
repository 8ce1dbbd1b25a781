package input

import (
	"testing"

	"github.com/ItsNotGoodName/x-howm/internal/wm"
)

type call struct {
	op     wm.Operator
	motion wm.Motion
	cnt    int
	cmd    wm.Command
	argInt int
	isOp   bool
}

type recorder struct {
	mode  wm.Mode
	calls []call
}

func (r *recorder) Operate(op wm.Operator, motion wm.Motion, cnt int) {
	r.calls = append(r.calls, call{op: op, motion: motion, cnt: cnt, isOp: true})
}

func (r *recorder) Run(cmd wm.Command, arg wm.Arg) {
	if cmd == wm.CmdChangeMode {
		r.mode = wm.Mode(arg.Int)
	}
	r.calls = append(r.calls, call{cmd: cmd, argInt: arg.Int})
}

func (r *recorder) Mode() wm.Mode {
	return r.mode
}

func press(m *Machine, keys ...KeyEvent) {
	for _, k := range keys {
		m.HandleKey(k)
	}
}

func key(sym Keysym) KeyEvent {
	return KeyEvent{Mod: Mod4, Sym: sym}
}

func TestStepOperatorCountMotion(t *testing.T) {
	b := DefaultBindings(nil, 5)
	s := Initial()

	s, inv := Step(s, key(KeyQ), &b, wm.ModeNormal)
	if inv != nil || s.Phase != PhaseCount || s.Operator != wm.OpKill {
		t.Fatalf("expected count phase after operator, got %+v", s)
	}
	s, inv = Step(s, key(Key3), &b, wm.ModeNormal)
	if inv != nil || s.Phase != PhaseMotion || s.Count != 3 {
		t.Fatalf("expected motion phase with count 3, got %+v", s)
	}
	s, inv = Step(s, key(KeyC), &b, wm.ModeNormal)
	if inv == nil {
		t.Fatalf("expected invocation after motion")
	}
	if *inv != (Invocation{Operator: wm.OpKill, Motion: wm.MotionClient, Count: 3}) {
		t.Fatalf("unexpected invocation %+v", *inv)
	}
	if s != Initial() {
		t.Fatalf("expected initial state after invocation, got %+v", s)
	}
}

func TestStepCountDefaultsToOne(t *testing.T) {
	b := DefaultBindings(nil, 5)
	s, _ := Step(Initial(), key(KeyD), &b, wm.ModeNormal)
	s, inv := Step(s, key(KeyW), &b, wm.ModeNormal)
	if inv == nil {
		t.Fatalf("expected motion in count phase to complete the sequence")
	}
	if inv.Count != 1 || inv.Motion != wm.MotionWorkspace || inv.Operator != wm.OpCut {
		t.Fatalf("unexpected invocation %+v", *inv)
	}
	if s.Phase != PhaseOperator {
		t.Fatalf("expected operator phase, got %v", s.Phase)
	}
}

func TestStepIgnoresUnboundKeys(t *testing.T) {
	b := DefaultBindings(nil, 5)

	s, inv := Step(Initial(), key(KeyZ), &b, wm.ModeNormal)
	if inv != nil || s != Initial() {
		t.Fatalf("expected unbound key to be ignored, got %+v", s)
	}

	s, _ = Step(Initial(), key(KeyQ), &b, wm.ModeNormal)
	s, _ = Step(s, key(Key2), &b, wm.ModeNormal)
	stuck, inv := Step(s, key(KeyZ), &b, wm.ModeNormal)
	if inv != nil || stuck != s {
		t.Fatalf("expected motion phase to wait for a motion, got %+v", stuck)
	}
}

func TestStepZeroIsNotACount(t *testing.T) {
	b := DefaultBindings(nil, 5)
	s, _ := Step(Initial(), key(KeyQ), &b, wm.ModeNormal)
	next, _ := Step(s, key(Key0), &b, wm.ModeNormal)
	if next.Phase != PhaseCount || next.Count != 1 {
		t.Fatalf("expected 0 to be ignored, got %+v", next)
	}
}

func TestStepOperatorMatchesMode(t *testing.T) {
	b := DefaultBindings(nil, 5)

	s, _ := Step(Initial(), key(KeyJ), &b, wm.ModeFocus)
	if s.Operator != wm.OpFocusDown {
		t.Fatalf("expected focus operator in focus mode, got %v", s.Operator)
	}
	s, _ = Step(Initial(), key(KeyJ), &b, wm.ModeNormal)
	if s.Operator != wm.OpMoveDown {
		t.Fatalf("expected move operator in normal mode, got %v", s.Operator)
	}
	s, _ = Step(Initial(), key(KeyJ), &b, wm.ModeFloating)
	if s.Phase != PhaseOperator {
		t.Fatalf("expected no operator in floating mode, got %+v", s)
	}
}

func TestMachineRunsInvocation(t *testing.T) {
	r := &recorder{}
	m := NewMachine(r, DefaultBindings(nil, 5))

	press(m, key(KeyQ), key(Key3), key(KeyC))

	if len(r.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(r.calls))
	}
	c := r.calls[0]
	if !c.isOp || c.op != wm.OpKill || c.motion != wm.MotionClient || c.cnt != 3 {
		t.Fatalf("unexpected call %+v", c)
	}
}

func TestMachineReplay(t *testing.T) {
	r := &recorder{}
	m := NewMachine(r, DefaultBindings(nil, 5))

	press(m, key(KeyPeriod))
	if len(r.calls) != 0 {
		t.Fatalf("expected empty replay to do nothing, got %+v", r.calls)
	}

	press(m, key(KeyG), key(Key2), key(KeyW), key(KeyPeriod))
	if len(r.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(r.calls))
	}
	if r.calls[0] != r.calls[1] {
		t.Fatalf("expected replay to repeat %+v, got %+v", r.calls[0], r.calls[1])
	}

	press(m, key(KeyB), key(KeyPeriod))
	last := r.calls[len(r.calls)-1]
	if last.isOp || last.cmd != wm.CmdToggleBar {
		t.Fatalf("expected replay of last command, got %+v", last)
	}
}

func TestMachineResetInput(t *testing.T) {
	r := &recorder{}
	m := NewMachine(r, DefaultBindings(nil, 5))

	press(m, key(KeyQ), key(Key4))
	if m.State().Phase != PhaseMotion {
		t.Fatalf("expected motion phase, got %v", m.State().Phase)
	}
	press(m, KeyEvent{Mod: Mod4, Sym: KeyEscape})
	if m.State() != Initial() {
		t.Fatalf("expected reset, got %+v", m.State())
	}
	if len(r.calls) != 0 {
		t.Fatalf("expected reset not to reach the executor, got %+v", r.calls)
	}
}

func TestMachineModeSnapshot(t *testing.T) {
	r := &recorder{}
	m := NewMachine(r, DefaultBindings(nil, 5))

	press(m, KeyEvent{Mod: Mod4 | ModControl, Sym: KeyI})
	if r.mode != wm.ModeFocus {
		t.Fatalf("expected focus mode, got %v", r.mode)
	}
	if len(r.calls) != 1 {
		t.Fatalf("expected a single mode change, got %+v", r.calls)
	}
}

func TestMachineButton(t *testing.T) {
	r := &recorder{}
	m := NewMachine(r, DefaultBindings(nil, 5))

	m.HandleButton(ButtonEvent{Mod: Mod4, Button: 2})
	if len(r.calls) != 1 || r.calls[0].cmd != wm.CmdToggleFloat {
		t.Fatalf("expected toggle float, got %+v", r.calls)
	}
}

func TestModClean(t *testing.T) {
	got := (Mod4 | ModLock | Mod2 | 1<<8).Clean(Mod2)
	if got != Mod4 {
		t.Fatalf("expected %v, got %v", Mod4, got)
	}
}

func TestGrabsAreUnique(t *testing.T) {
	b := DefaultBindings([]string{"xterm"}, 5)
	seen := make(map[KeyEvent]bool)
	for _, g := range b.Grabs() {
		if seen[g] {
			t.Fatalf("duplicate grab %+v", g)
		}
		seen[g] = true
	}
	if !seen[key(Key9)] {
		t.Fatalf("expected count digits to be grabbed")
	}
}

func TestGrabsAlwaysCarryAModifier(t *testing.T) {
	b := DefaultBindings([]string{"xterm"}, 9)
	for _, g := range b.Grabs() {
		if g.Mod == 0 {
			t.Fatalf("grab %+v would take the key away from every client", g)
		}
	}
}
