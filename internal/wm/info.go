package wm

import "fmt"

// Info is the status line published after every processed event.
type Info struct {
	Mode      Mode   `json:"mode"`
	Layout    Layout `json:"layout"`
	Workspace int    `json:"workspace"`
	State     int    `json:"state"`
	Clients   int    `json:"clients"`
}

func (i Info) String() string {
	return fmt.Sprintf("%d:%d:%d:%d:%d", i.Mode, i.Layout, i.Workspace, i.State, i.Clients)
}

// Info describes the active workspace. state is the input state machine
// phase, which the manager does not own.
func (m *Manager) Info(state int) Info {
	ws := m.Active()
	return Info{
		Mode:      m.mode,
		Layout:    ws.Layout,
		Workspace: m.active,
		State:     state,
		Clients:   ws.Len(),
	}
}

type ClientSnapshot struct {
	Window     uint32 `json:"window"`
	Focused    bool   `json:"focused"`
	Fullscreen bool   `json:"fullscreen"`
	Floating   bool   `json:"floating"`
	Transient  bool   `json:"transient"`
	Urgent     bool   `json:"urgent"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	W          int    `json:"w"`
	H          int    `json:"h"`
	Gap        int    `json:"gap"`
}

type WorkspaceSnapshot struct {
	Index       int              `json:"index"`
	Active      bool             `json:"active"`
	Layout      string           `json:"layout"`
	Gap         int              `json:"gap"`
	MasterRatio float64          `json:"master_ratio"`
	BarHeight   int              `json:"bar_height"`
	Clients     []ClientSnapshot `json:"clients"`
}

// Snapshot copies the state of every workspace.
func (m *Manager) Snapshot() []WorkspaceSnapshot {
	snapshots := make([]WorkspaceSnapshot, 0, m.Count())
	for i := 1; i < len(m.workspaces); i++ {
		ws := &m.workspaces[i]
		clients := make([]ClientSnapshot, 0, ws.Len())
		for _, c := range ws.clients {
			clients = append(clients, ClientSnapshot{
				Window:     uint32(c.Win),
				Focused:    c == ws.current,
				Fullscreen: c.Fullscreen,
				Floating:   c.Floating,
				Transient:  c.Transient,
				Urgent:     c.Urgent,
				X:          c.X,
				Y:          c.Y,
				W:          c.W,
				H:          c.H,
				Gap:        c.Gap,
			})
		}
		snapshots = append(snapshots, WorkspaceSnapshot{
			Index:       i,
			Active:      i == m.active,
			Layout:      ws.Layout.String(),
			Gap:         ws.Gap,
			MasterRatio: ws.MasterRatio,
			BarHeight:   ws.BarHeight,
			Clients:     clients,
		})
	}
	return snapshots
}
