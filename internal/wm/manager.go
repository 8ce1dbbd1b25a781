package wm

import (
	"log/slog"
	"slices"
)

// Manager owns every workspace slot and the active workspace index. It is
// not safe for concurrent use; all calls must come from one goroutine.
type Manager struct {
	display  Display
	spawner  Spawner
	settings Settings
	screen   Screen

	workspaces []Workspace // index 0 is unused
	active     int
	last       int
	prevLayout Layout
	mode       Mode

	register   [][]*Client
	scratchpad *Client

	running  bool
	restart  bool
	exitCode int
}

func New(display Display, spawner Spawner, screen Screen, settings Settings) *Manager {
	if spawner == nil {
		spawner = nopSpawner{}
	}
	settings = settings.normalized()

	workspaces := make([]Workspace, settings.Workspaces+1)
	for i := range workspaces {
		workspaces[i] = Workspace{
			Layout:      settings.DefaultLayout,
			Gap:         settings.Gap,
			MasterRatio: settings.MasterRatio,
			BarHeight:   settings.BarHeight,
		}
	}

	return &Manager{
		display:    display,
		spawner:    spawner,
		settings:   settings,
		screen:     screen,
		workspaces: workspaces,
		active:     settings.DefaultWorkspace,
		last:       settings.DefaultWorkspace,
		prevLayout: settings.DefaultLayout,
		mode:       ModeNormal,
		running:    true,
	}
}

func (m *Manager) Settings() Settings {
	return m.settings
}

// ApplySettings replaces the tunables that can change at runtime. The
// workspace count is fixed for the lifetime of the manager.
func (m *Manager) ApplySettings(settings Settings) {
	settings.Workspaces = m.settings.Workspaces
	m.settings = settings.normalized()
	m.UpdateFocus(m.Active().current)
}

func (m *Manager) Screen() Screen {
	return m.screen
}

func (m *Manager) Count() int {
	return len(m.workspaces) - 1
}

// Workspace returns the slot at the 1-based index i or nil when i is out of
// range.
func (m *Manager) Workspace(i int) *Workspace {
	if i < 1 || i >= len(m.workspaces) {
		return nil
	}
	return &m.workspaces[i]
}

func (m *Manager) ActiveIndex() int {
	return m.active
}

func (m *Manager) Active() *Workspace {
	return &m.workspaces[m.active]
}

func (m *Manager) Mode() Mode {
	return m.mode
}

// Running reports false once quit or restart has been requested.
func (m *Manager) Running() bool {
	return m.running
}

func (m *Manager) Restart() bool {
	return m.restart
}

func (m *Manager) ExitCode() int {
	return m.exitCode
}

// CorrectWS wraps a 1-based workspace index into 1..Count.
func (m *Manager) CorrectWS(ws int) int {
	n := m.Count()
	return ((ws-1)%n+n)%n + 1
}

// FindByHandle scans every workspace slot for win and returns the client
// with its owning workspace index, or nil and 0.
func (m *Manager) FindByHandle(win Window) (*Client, int) {
	for i := 1; i < len(m.workspaces); i++ {
		if c := m.workspaces[i].findByWindow(win); c != nil {
			return c, i
		}
	}
	return nil, 0
}

func (m *Manager) owner(c *Client) int {
	if c == nil {
		return 0
	}
	for i := 1; i < len(m.workspaces); i++ {
		if m.workspaces[i].Contains(c) {
			return i
		}
	}
	return 0
}

// Insert appends a new client for win to the tail of the active workspace.
func (m *Manager) Insert(win Window) *Client {
	c := m.insert(win)
	m.arrange()
	return c
}

func (m *Manager) insert(win Window) *Client {
	ws := m.Active()
	c := newClient(win, ws.Gap)
	ws.insert(c)
	return c
}

// Remove unlinks c from whichever workspace owns it and repairs focus.
func (m *Manager) Remove(c *Client) {
	if c == nil {
		return
	}
	idx := m.owner(c)
	if idx == 0 {
		slog.Debug("Remove of unmanaged client", "package", "wm", "client", c.String())
		return
	}

	ws := &m.workspaces[idx]
	_, wasCurrent := ws.unlink(c)
	if wasCurrent || ws.Len() <= 1 {
		m.updateFocus(idx, ws.prevFocus)
	}
	if idx == m.active {
		m.arrange()
	}
}

// MoveUp swaps c with its predecessor; a no-op on the head.
func (m *Manager) MoveUp(c *Client) {
	idx := m.owner(c)
	if idx == 0 || !m.workspaces[idx].moveUp(c) {
		return
	}
	if idx == m.active {
		m.arrange()
	}
}

// MoveDown swaps c with its successor; a no-op on the tail.
func (m *Manager) MoveDown(c *Client) {
	idx := m.owner(c)
	if idx == 0 || !m.workspaces[idx].moveDown(c) {
		return
	}
	if idx == m.active {
		m.arrange()
	}
}

// TransplantAll moves every client of from, in order, onto the tail of to.
func (m *Manager) TransplantAll(from, to int) {
	src, dst := m.Workspace(from), m.Workspace(to)
	if src == nil || dst == nil || from == to {
		return
	}

	clients := src.takeAll()
	if len(clients) == 0 {
		return
	}
	for _, c := range clients {
		dst.insert(c)
	}
	if dst.current == nil {
		dst.setFocus(nil)
	}

	switch m.active {
	case from:
		for _, c := range clients {
			m.display.Unmap(c.Win)
		}
		m.present()
	case to:
		for _, c := range clients {
			m.display.Map(c.Win)
		}
		m.UpdateFocus(dst.current)
	}
}

// ChangeWS makes workspace i the active one.
func (m *Manager) ChangeWS(i int) {
	ws := m.Workspace(i)
	if ws == nil || i == m.active {
		return
	}

	m.last = m.active
	for _, c := range ws.clients {
		m.display.Map(c.Win)
	}
	for _, c := range m.Active().clients {
		m.display.Unmap(c.Win)
	}
	m.active = i

	m.arrange()
	m.UpdateFocus(ws.current)
}

func (m *Manager) FocusNextWS() {
	m.ChangeWS(m.CorrectWS(m.active + 1))
}

func (m *Manager) FocusPrevWS() {
	m.ChangeWS(m.CorrectWS(m.active - 1))
}

func (m *Manager) FocusLastWS() {
	m.ChangeWS(m.last)
}

// ClientToWS moves c onto the tail of workspace i, optionally following it.
func (m *Manager) ClientToWS(c *Client, i int, follow bool) {
	dst := m.Workspace(i)
	src := m.owner(c)
	if dst == nil || src == 0 || src == i {
		return
	}

	ws := &m.workspaces[src]
	_, wasCurrent := ws.unlink(c)
	dst.insert(c)

	if src == m.active {
		m.display.Unmap(c.Win)
	}
	if wasCurrent {
		m.updateFocus(src, ws.prevFocus)
	} else {
		m.updateFocus(src, ws.current)
	}

	if follow {
		m.ChangeWS(i)
		m.UpdateFocus(c)
	} else {
		m.arrange()
	}
}

// KillClient closes and removes the focused client of the active workspace.
func (m *Manager) KillClient() {
	c := m.Active().current
	if c == nil {
		return
	}
	m.display.Close(c.Win)
	m.Remove(c)
}

// KillWS closes and removes every client of workspace i.
func (m *Manager) KillWS(i int) {
	ws := m.Workspace(i)
	if ws == nil {
		slog.Debug("KillWS out of range", "package", "wm", "workspace", i)
		return
	}
	for _, c := range slices.Clone(ws.clients) {
		m.display.Close(c.Win)
		m.Remove(c)
	}
}
