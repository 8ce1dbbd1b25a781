package wm

import (
	"slices"
	"testing"
)

func TestOperateRejectsBadInput(t *testing.T) {
	m, d := newTestManager(DefaultSettings())
	mapWindows(m, 1)

	m.Operate(OpKill, MotionClient, 0)
	m.Operate(Operator(99), MotionClient, 1)
	if len(d.closed) != 0 {
		t.Fatalf("expected nothing closed, got %v", d.closed)
	}
}

func TestKillClients(t *testing.T) {
	m, d := newTestManager(DefaultSettings())
	clients := mapWindows(m, 1, 2, 3)

	m.Operate(OpKill, MotionClient, 2)
	if !slices.Equal(d.closed, []Window{3, 2}) {
		t.Fatalf("expected 3 then 2 closed, got %v", d.closed)
	}
	if m.Active().Current() != clients[0] {
		t.Fatalf("expected focus on 1, got %v", m.Active().Current())
	}
	checkInvariants(t, m)
}

func TestKillWorkspaces(t *testing.T) {
	m, _ := newTestManager(DefaultSettings())
	mapWindows(m, 1)
	m.ChangeWS(2)
	mapWindows(m, 2)
	m.ChangeWS(3)
	mapWindows(m, 3)
	m.ChangeWS(1)

	m.Operate(OpKill, MotionWorkspace, 2)
	if m.Workspace(1).Len() != 0 || m.Workspace(2).Len() != 0 {
		t.Fatalf("expected workspaces 1 and 2 emptied")
	}
	if m.Workspace(3).Len() != 1 {
		t.Fatalf("expected workspace 3 untouched")
	}
	checkInvariants(t, m)
}

func TestMoveClientOperator(t *testing.T) {
	m, _ := newTestManager(DefaultSettings())
	clients := mapWindows(m, 1, 2, 3)

	m.Operate(OpMoveUp, MotionClient, 2)
	if got := windows(m.Active().Clients()); !slices.Equal(got, []Window{3, 1, 2}) {
		t.Fatalf("expected 3 at the head, got %v", got)
	}
	if m.Active().Current() != clients[2] {
		t.Fatalf("expected moved client to keep focus")
	}

	m.Operate(OpMoveDown, MotionClient, 5)
	if got := windows(m.Active().Clients()); !slices.Equal(got, []Window{1, 2, 3}) {
		t.Fatalf("expected 3 at the tail, got %v", got)
	}
}

func TestMoveWorkspaceOperator(t *testing.T) {
	m, _ := newTestManager(DefaultSettings())
	mapWindows(m, 1, 2)

	m.Operate(OpMoveUp, MotionWorkspace, 1)
	if got := windows(m.Workspace(2).Clients()); !slices.Equal(got, []Window{1, 2}) {
		t.Fatalf("expected clients on workspace 2, got %v", got)
	}

	m.ChangeWS(2)
	m.Operate(OpMoveDown, MotionWorkspace, 1)
	if got := windows(m.Workspace(1).Clients()); !slices.Equal(got, []Window{1, 2}) {
		t.Fatalf("expected clients back on workspace 1, got %v", got)
	}
	checkInvariants(t, m)
}

func TestFocusOperator(t *testing.T) {
	m, _ := newTestManager(DefaultSettings())
	clients := mapWindows(m, 1, 2, 3)

	m.Operate(OpFocusDown, MotionClient, 2)
	if m.Active().Current() != clients[1] {
		t.Fatalf("expected focus on 2, got %v", m.Active().Current())
	}

	m.Operate(OpFocusDown, MotionWorkspace, 3)
	if m.ActiveIndex() != 4 {
		t.Fatalf("expected workspace 4, got %d", m.ActiveIndex())
	}
	m.Operate(OpFocusUp, MotionWorkspace, 4)
	if m.ActiveIndex() != 5 {
		t.Fatalf("expected workspace 5, got %d", m.ActiveIndex())
	}
}

func TestGapOperators(t *testing.T) {
	m, d := newTestManager(DefaultSettings())
	clients := mapWindows(m, 1, 2)
	m.UpdateFocus(clients[0])

	m.Operate(OpGrowGaps, MotionClient, 1)
	if clients[0].Gap != 4 || clients[1].Gap != 0 {
		t.Fatalf("expected only the focused client to grow, got %d %d", clients[0].Gap, clients[1].Gap)
	}
	if got := d.geometry[1]; got != (Rect{X: 4, Y: 4, W: 588, H: 788}) {
		t.Fatalf("unexpected geometry %+v", got)
	}

	m.Operate(OpGrowGaps, MotionWorkspace, 1)
	if m.Active().Gap != 4 || clients[0].Gap != 8 || clients[1].Gap != 4 {
		t.Fatalf("expected workspace gap growth, got %d %d %d", m.Active().Gap, clients[0].Gap, clients[1].Gap)
	}

	m.Operate(OpShrinkGaps, MotionWorkspace, 1)
	m.Operate(OpShrinkGaps, MotionWorkspace, 1)
	m.Operate(OpShrinkGaps, MotionClient, 9)
	if m.Active().Gap != 0 || clients[0].Gap != 0 || clients[1].Gap != 0 {
		t.Fatalf("expected gaps clamped at zero, got %d %d %d", m.Active().Gap, clients[0].Gap, clients[1].Gap)
	}
}

func TestCutAndPaste(t *testing.T) {
	m, d := newTestManager(DefaultSettings())
	clients := mapWindows(m, 1, 2, 3)
	m.UpdateFocus(clients[0])

	m.Operate(OpCut, MotionClient, 2)
	if got := windows(m.Active().Clients()); !slices.Equal(got, []Window{3}) {
		t.Fatalf("expected only 3 left, got %v", got)
	}
	if d.mapped[1] || d.mapped[2] {
		t.Fatalf("expected cut windows unmapped")
	}
	if m.RegisterLen() != 1 || m.Active().Current() != clients[2] {
		t.Fatalf("expected one cut and focus on 3")
	}
	checkInvariants(t, m)

	m.ChangeWS(2)
	m.Paste()
	if got := windows(m.Active().Clients()); !slices.Equal(got, []Window{1, 2}) {
		t.Fatalf("expected pasted clients on workspace 2, got %v", got)
	}
	if !d.mapped[1] || !d.mapped[2] || m.Active().Current() != clients[0] {
		t.Fatalf("expected pasted clients mapped with focus on the first")
	}
	if m.RegisterLen() != 0 {
		t.Fatalf("expected empty register")
	}
	m.Paste()
	checkInvariants(t, m)
}

func TestCutWholeWorkspace(t *testing.T) {
	m, d := newTestManager(DefaultSettings())
	mapWindows(m, 1, 2)

	m.Operate(OpCut, MotionWorkspace, 1)
	if m.Active().Len() != 0 || m.RegisterLen() != 1 {
		t.Fatalf("expected workspace cut into the register")
	}
	if d.active != 0 {
		t.Fatalf("expected active window cleared")
	}

	m.Operate(OpCut, MotionWorkspace, 1)
	if m.RegisterLen() != 1 {
		t.Fatalf("expected empty workspace not to be pushed")
	}
}

func TestCutRegisterFull(t *testing.T) {
	s := DefaultSettings()
	s.DeleteRegisterSize = 1
	m, _ := newTestManager(s)
	mapWindows(m, 1, 2)

	m.Operate(OpCut, MotionClient, 1)
	m.Operate(OpCut, MotionClient, 1)
	if m.RegisterLen() != 1 || m.Active().Len() != 1 {
		t.Fatalf("expected second cut to be refused, register=%d clients=%d", m.RegisterLen(), m.Active().Len())
	}
}

func TestDestroyForgetsCutClient(t *testing.T) {
	m, _ := newTestManager(DefaultSettings())
	mapWindows(m, 1)
	m.Operate(OpCut, MotionClient, 1)

	m.HandleDestroy(1)
	if m.RegisterLen() != 0 {
		t.Fatalf("expected destroyed window dropped from the register")
	}
}

func TestRemapForgetsParkedClient(t *testing.T) {
	m, _ := newTestManager(DefaultSettings())
	mapWindows(m, 1, 2, 3)

	m.SendToScratchpad()
	m.HandleMapRequest(MapRequest{Win: 3})
	m.GetFromScratchpad()
	if got := windows(m.Active().Clients()); !slices.Equal(got, []Window{1, 2, 3}) {
		t.Fatalf("expected a single client for window 3, got %v", got)
	}

	m.Operate(OpCut, MotionClient, 1)
	m.HandleMapRequest(MapRequest{Win: 3})
	m.Paste()
	if got := windows(m.Active().Clients()); !slices.Equal(got, []Window{1, 2, 3}) {
		t.Fatalf("expected a single client for window 3 after paste, got %v", got)
	}

	m.HandleDestroy(3)
	if got := windows(m.Active().Clients()); !slices.Equal(got, []Window{1, 2}) {
		t.Fatalf("expected window 3 gone, got %v", got)
	}
	checkInvariants(t, m)
}
