package wm

import (
	"slices"
	"testing"
)

func TestSpawn(t *testing.T) {
	s := &fakeSpawner{}
	m := New(newFakeDisplay(), s, testScreen, DefaultSettings())

	m.Run(CmdSpawn, Arg{Argv: []string{"xterm", "-e", "top"}})
	m.Run(CmdSpawn, Arg{})
	if len(s.spawned) != 1 || !slices.Equal(s.spawned[0], []string{"xterm", "-e", "top"}) {
		t.Fatalf("unexpected spawns %v", s.spawned)
	}
}

func TestQuitAndRestart(t *testing.T) {
	m, _ := newTestManager(DefaultSettings())
	m.Run(CmdQuit, Arg{Int: 3})
	if m.Running() || m.Restart() || m.ExitCode() != 3 {
		t.Fatalf("expected quit with code 3")
	}

	m, _ = newTestManager(DefaultSettings())
	m.Run(CmdRestart, Arg{})
	if m.Running() || !m.Restart() {
		t.Fatalf("expected restart")
	}
}

func TestChangeMode(t *testing.T) {
	m, _ := newTestManager(DefaultSettings())
	m.Run(CmdChangeMode, Arg{Int: int(ModeFloating)})
	if m.Mode() != ModeFloating {
		t.Fatalf("expected floating mode, got %v", m.Mode())
	}
	m.Run(CmdChangeMode, Arg{Int: 42})
	if m.Mode() != ModeFloating {
		t.Fatalf("expected invalid mode to be ignored, got %v", m.Mode())
	}
}

func TestToggleFloatCenters(t *testing.T) {
	m, d := newTestManager(DefaultSettings())
	clients := mapWindows(m, 1, 2)

	m.Run(CmdToggleFloat, Arg{})
	if !clients[1].Floating {
		t.Fatalf("expected client to float")
	}
	if got := d.geometry[2]; got != (Rect{X: 250, Y: 160, W: 500, H: 500}) {
		t.Fatalf("unexpected floating geometry %+v", got)
	}
	if got := d.geometry[1]; got != (Rect{W: 996, H: 796}) {
		t.Fatalf("expected remaining client to take the area, got %+v", got)
	}
}

func TestFloatingAdjustments(t *testing.T) {
	m, d := newTestManager(DefaultSettings())
	clients := mapWindows(m, 1)

	m.Run(CmdMoveFloatX, Arg{Int: 10})
	if got := d.geometry[1]; got != (Rect{W: 1000, H: 800}) {
		t.Fatalf("expected tiled client to ignore float commands, got %+v", got)
	}

	m.ToggleFloat()
	m.Run(CmdMoveFloatX, Arg{Int: 10})
	m.Run(CmdMoveFloatY, Arg{Int: -10})
	m.Run(CmdResizeFloatWidth, Arg{Int: 20})
	m.Run(CmdResizeFloatHeight, Arg{Int: -600})
	if got := d.geometry[1]; got != (Rect{X: 260, Y: 150, W: 520, H: 500}) {
		t.Fatalf("unexpected geometry %+v", got)
	}

	m.Run(CmdTeleportClient, Arg{Int: TopLeft})
	if clients[0].X != 0 || clients[0].Y != 0 {
		t.Fatalf("expected top left, got %d,%d", clients[0].X, clients[0].Y)
	}
	m.Run(CmdTeleportClient, Arg{Int: BottomRight})
	if clients[0].X != 480 || clients[0].Y != 300 {
		t.Fatalf("expected bottom right, got %d,%d", clients[0].X, clients[0].Y)
	}
}

func TestFullscreen(t *testing.T) {
	m, d := newTestManager(DefaultSettings())
	clients := mapWindows(m, 1, 2)

	m.Run(CmdToggleFullscreen, Arg{})
	if !clients[1].Fullscreen || !d.fullscreen[2] {
		t.Fatalf("expected fullscreen advertised")
	}
	if got := d.geometry[2]; got != (Rect{W: 1000, H: 820}) {
		t.Fatalf("expected whole screen, got %+v", got)
	}
	if d.borders[2] != 0 {
		t.Fatalf("expected no border on fullscreen client")
	}
	if got := d.raised[len(d.raised)-1]; got != 2 {
		t.Fatalf("expected fullscreen client on top, got %d", got)
	}

	m.HandleFullscreenRequest(2, StateToggle)
	if clients[1].Fullscreen || d.fullscreen[2] {
		t.Fatalf("expected fullscreen removed")
	}
	if got := d.geometry[2]; got != (Rect{X: 600, W: 396, H: 796}) {
		t.Fatalf("expected client tiled again, got %+v", got)
	}
}

func TestMakeMaster(t *testing.T) {
	m, _ := newTestManager(DefaultSettings())
	mapWindows(m, 1, 2, 3)

	m.Run(CmdMakeMaster, Arg{})
	if got := windows(m.Active().Clients()); !slices.Equal(got, []Window{3, 1, 2}) {
		t.Fatalf("expected 3 as master, got %v", got)
	}
}

func TestResizeMaster(t *testing.T) {
	m, _ := newTestManager(DefaultSettings())
	m.Run(CmdResizeMaster, Arg{Int: 10})
	if r := m.Active().MasterRatio; r < 0.69 || r > 0.71 {
		t.Fatalf("expected ratio 0.7, got %v", r)
	}
	m.Run(CmdResizeMaster, Arg{Int: 50})
	if r := m.Active().MasterRatio; r < 0.69 || r > 0.71 {
		t.Fatalf("expected out of range ratio to be ignored, got %v", r)
	}
}

func TestScratchpad(t *testing.T) {
	m, d := newTestManager(DefaultSettings())
	clients := mapWindows(m, 1, 2)

	m.Run(CmdSendToScratchpad, Arg{})
	if m.Scratchpad() != clients[1] || d.mapped[2] {
		t.Fatalf("expected 2 hidden in the scratchpad")
	}
	if m.Active().Current() != clients[0] {
		t.Fatalf("expected focus on 1")
	}

	m.ChangeWS(3)
	m.Run(CmdGetFromScratchpad, Arg{})
	if m.Scratchpad() != nil {
		t.Fatalf("expected scratchpad emptied")
	}
	if _, ws := m.FindByHandle(2); ws != 3 {
		t.Fatalf("expected scratchpad client on workspace 3, got %d", ws)
	}
	if !clients[1].Floating || !d.mapped[2] || d.focused != 2 {
		t.Fatalf("expected floating, mapped and focused client")
	}
	if got := d.geometry[2]; got != (Rect{X: 250, Y: 160, W: 500, H: 500}) {
		t.Fatalf("unexpected scratchpad geometry %+v", got)
	}
	checkInvariants(t, m)
}

func TestUrgency(t *testing.T) {
	m, d := newTestManager(DefaultSettings())
	mapWindows(m, 1)
	m.ChangeWS(2)
	clients := mapWindows(m, 2, 3)
	m.ChangeWS(1)

	m.HandleUrgency(2, true)
	if !clients[0].Urgent {
		t.Fatalf("expected urgent client")
	}

	m.Run(CmdFocusUrgent, Arg{})
	if m.ActiveIndex() != 2 || m.Active().Current() != clients[0] {
		t.Fatalf("expected focus on the urgent client")
	}
	if clients[0].Urgent {
		t.Fatalf("expected urgency cleared by focus")
	}
	if d.colors[2] != DefaultSettings().BorderFocus {
		t.Fatalf("expected focus border, got %x", d.colors[2])
	}
}

func TestCurrentToWSFollowsSetting(t *testing.T) {
	s := DefaultSettings()
	s.FollowMove = true
	m, _ := newTestManager(s)
	mapWindows(m, 1)

	m.Run(CmdCurrentToWS, Arg{Int: 2})
	if m.ActiveIndex() != 2 {
		t.Fatalf("expected to follow to workspace 2, got %d", m.ActiveIndex())
	}
}
