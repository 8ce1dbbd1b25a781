package wm

// StackOrder returns clients from bottom to top: normal clients, then
// floating or transient ones, then fullscreen ones. List order is kept
// inside each group except that current is raised to the top of its own.
func StackOrder(clients []*Client, current *Client) []*Client {
	var normal, floating, fullscreen []*Client
	group := func(c *Client) *[]*Client {
		switch {
		case c.Fullscreen:
			return &fullscreen
		case c.floatOrTransient():
			return &floating
		default:
			return &normal
		}
	}

	for _, c := range clients {
		if c == current {
			continue
		}
		g := group(c)
		*g = append(*g, c)
	}
	if current != nil {
		g := group(current)
		*g = append(*g, current)
	}

	order := make([]*Client, 0, len(clients))
	order = append(order, normal...)
	order = append(order, floating...)
	return append(order, fullscreen...)
}

// UpdateFocus focuses c on the active workspace and recomputes stacking and
// borders for every client on it.
func (m *Manager) UpdateFocus(c *Client) {
	m.updateFocus(m.active, c)
}

func (m *Manager) updateFocus(idx int, c *Client) {
	ws := &m.workspaces[idx]
	ws.setFocus(c)
	if ws.current != nil {
		ws.current.Urgent = false
	}
	if idx != m.active {
		return
	}
	m.present()
	m.arrange()
}

// FocusWindow focuses the client owning win when it lives on the active
// workspace.
func (m *Manager) FocusWindow(win Window) {
	c, idx := m.FindByHandle(win)
	if c == nil || idx != m.active {
		return
	}
	m.UpdateFocus(c)
}

func (m *Manager) borderWidth(ws *Workspace, c *Client) int {
	if c.Fullscreen || ws.Len() == 1 {
		return 0
	}
	return m.settings.BorderWidth
}

func (m *Manager) borderColor(ws *Workspace, c *Client) uint32 {
	switch {
	case c == ws.current:
		return m.settings.BorderFocus
	case c.Urgent:
		return m.settings.BorderUrgent
	default:
		return m.settings.BorderUnfocus
	}
}

// present pushes borders, stacking, input focus and the active window of the
// active workspace to the display.
func (m *Manager) present() {
	ws := m.Active()
	if ws.current == nil {
		m.display.ClearActiveWindow()
		return
	}

	for _, c := range ws.clients {
		m.display.SetBorderWidth(c.Win, m.borderWidth(ws, c))
		m.display.SetBorderColor(c.Win, m.borderColor(ws, c))
	}
	for _, c := range StackOrder(ws.clients, ws.current) {
		m.display.Raise(c.Win)
	}

	m.display.SetActiveWindow(ws.current.Win)
	m.display.Focus(ws.current.Win)
}

// BorderWidth is the border c is drawn with, or 0 when c is not managed.
func (m *Manager) BorderWidth(c *Client) int {
	idx := m.owner(c)
	if idx == 0 {
		return 0
	}
	return m.borderWidth(&m.workspaces[idx], c)
}
