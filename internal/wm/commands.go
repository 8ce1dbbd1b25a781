package wm

import "log/slog"

// Run executes a directly bound command.
func (m *Manager) Run(cmd Command, arg Arg) {
	switch cmd {
	case CmdSpawn:
		if len(arg.Argv) > 0 {
			m.spawner.Spawn(arg.Argv)
		}
	case CmdChangeWS:
		m.ChangeWS(arg.Int)
	case CmdFocusNextWS:
		m.FocusNextWS()
	case CmdFocusPrevWS:
		m.FocusPrevWS()
	case CmdFocusLastWS:
		m.FocusLastWS()
	case CmdCurrentToWS:
		m.ClientToWS(m.Active().current, arg.Int, m.settings.FollowMove)
	case CmdMoveCurrentUp:
		m.MoveUp(m.Active().current)
	case CmdMoveCurrentDown:
		m.MoveDown(m.Active().current)
	case CmdFocusNextClient:
		m.FocusNextClient()
	case CmdFocusPrevClient:
		m.FocusPrevClient()
	case CmdChangeLayout:
		m.ChangeLayout(Layout(arg.Int))
	case CmdNextLayout:
		m.ChangeLayout((m.Active().Layout + 1) % layoutEnd)
	case CmdPrevLayout:
		l := m.Active().Layout - 1
		if l < 0 {
			l = layoutEnd - 1
		}
		m.ChangeLayout(l)
	case CmdLastLayout:
		m.ChangeLayout(m.prevLayout)
	case CmdToggleFloat:
		m.ToggleFloat()
	case CmdToggleFullscreen:
		if c := m.Active().current; c != nil {
			m.SetFullscreen(c, !c.Fullscreen)
		}
	case CmdResizeFloatWidth:
		m.adjustFloat(func(r *Rect) { r.W += arg.Int })
	case CmdResizeFloatHeight:
		m.adjustFloat(func(r *Rect) { r.H += arg.Int })
	case CmdMoveFloatX:
		m.adjustFloat(func(r *Rect) { r.X += arg.Int })
	case CmdMoveFloatY:
		m.adjustFloat(func(r *Rect) { r.Y += arg.Int })
	case CmdTeleportClient:
		m.Teleport(arg.Int)
	case CmdMakeMaster:
		m.MakeMaster()
	case CmdResizeMaster:
		m.ResizeMaster(arg.Int)
	case CmdToggleBar:
		m.ToggleBar()
	case CmdFocusUrgent:
		m.FocusUrgent()
	case CmdSendToScratchpad:
		m.SendToScratchpad()
	case CmdGetFromScratchpad:
		m.GetFromScratchpad()
	case CmdChangeMode:
		if mode := Mode(arg.Int); mode.Valid() {
			m.mode = mode
		}
	case CmdPaste:
		m.Paste()
	case CmdQuit:
		m.running = false
		m.exitCode = arg.Int
	case CmdRestart:
		m.running = false
		m.restart = true
	default:
		slog.Debug("Command not handled by the manager", "package", "wm", "command", cmd.String())
	}
}

func (m *Manager) FocusNextClient() {
	ws := m.Active()
	if ws.current == nil || ws.Len() < 2 {
		return
	}
	m.UpdateFocus(ws.NextClient(ws.current))
}

func (m *Manager) FocusPrevClient() {
	ws := m.Active()
	if ws.current == nil || ws.Len() < 2 {
		return
	}
	prev := ws.PrevClient(ws.current)
	if prev == nil {
		prev = ws.Tail()
	}
	m.UpdateFocus(prev)
}

func (m *Manager) ChangeLayout(l Layout) {
	ws := m.Active()
	if !l.Valid() || l == ws.Layout {
		return
	}
	m.prevLayout = ws.Layout
	ws.Layout = l
	m.arrange()
	m.UpdateFocus(ws.current)
}

func (m *Manager) centered(w, h int) Rect {
	return Rect{
		X: (m.screen.Width - w) / 2,
		Y: (m.screen.Height - h) / 2,
		W: w,
		H: h,
	}
}

func (m *Manager) ToggleFloat() {
	c := m.Active().current
	if c == nil {
		return
	}
	c.Floating = !c.Floating
	if c.Floating && m.settings.CenterFloating {
		m.moveResize(c, m.centered(m.settings.FloatSpawnWidth, m.settings.FloatSpawnHeight))
	}
	m.UpdateFocus(c)
}

// SetFullscreen changes the fullscreen state of c and advertises it.
func (m *Manager) SetFullscreen(c *Client, fullscreen bool) {
	idx := m.owner(c)
	if idx == 0 {
		return
	}
	c.Fullscreen = fullscreen
	m.display.SetFullscreen(c.Win, fullscreen)
	if fullscreen {
		m.moveResize(c, Rect{W: m.screen.Width, H: m.screen.Height})
	}
	if idx == m.active {
		m.UpdateFocus(m.Active().current)
	}
}

// SetUrgent flags c as wanting attention.
func (m *Manager) SetUrgent(c *Client, urgent bool) {
	idx := m.owner(c)
	if idx == 0 {
		return
	}
	ws := &m.workspaces[idx]
	c.Urgent = urgent && c != ws.current
	if idx == m.active {
		m.display.SetBorderColor(c.Win, m.borderColor(ws, c))
	}
}

func (m *Manager) FocusUrgent() {
	for i := 1; i < len(m.workspaces); i++ {
		for _, c := range m.workspaces[i].clients {
			if c.Urgent {
				m.ChangeWS(i)
				m.UpdateFocus(c)
				return
			}
		}
	}
}

// adjustFloat edits the geometry of the focused floating or transient
// client. Changes that would leave it without area are dropped.
func (m *Manager) adjustFloat(fn func(r *Rect)) {
	c := m.Active().current
	if c == nil || !c.floatOrTransient() {
		return
	}
	r := Rect{X: c.X, Y: c.Y, W: c.W, H: c.H}
	fn(&r)
	if r.W <= 0 || r.H <= 0 {
		return
	}
	m.moveResize(c, r)
}

// Teleport moves the focused floating or transient client to a screen
// location such as TopLeft or Center.
func (m *Manager) Teleport(location int) {
	ws := m.Active()
	c := ws.current
	if c == nil || !c.floatOrTransient() {
		return
	}

	area := m.Area(ws)
	border := m.borderWidth(ws, c)
	w, h := c.W+2*border, c.H+2*border

	left := area.X + c.Gap
	hcenter := area.X + (area.W-w)/2
	right := area.X + area.W - w - c.Gap
	top := area.Y + c.Gap
	vcenter := area.Y + (area.H-h)/2
	bottom := area.Y + area.H - h - c.Gap

	var x, y int
	switch location {
	case TopLeft:
		x, y = left, top
	case TopCenter:
		x, y = hcenter, top
	case TopRight:
		x, y = right, top
	case Center:
		x, y = hcenter, vcenter
	case BottomLeft:
		x, y = left, bottom
	case BottomCenter:
		x, y = hcenter, bottom
	case BottomRight:
		x, y = right, bottom
	default:
		return
	}
	m.moveResize(c, Rect{X: x, Y: y, W: c.W, H: c.H})
}

// MakeMaster moves the focused client to the head of the workspace.
func (m *Manager) MakeMaster() {
	ws := m.Active()
	c := ws.current
	if c == nil || c == ws.Head() {
		return
	}
	for ws.Head() != c {
		ws.moveUp(c)
	}
	m.arrange()
	m.UpdateFocus(c)
}

// ResizeMaster changes the master ratio by percent points, keeping it
// strictly between 0 and 1.
func (m *Manager) ResizeMaster(percent int) {
	ws := m.Active()
	ratio := ws.MasterRatio + float64(percent)/100
	if ratio <= 0 || ratio >= 1 {
		return
	}
	ws.MasterRatio = ratio
	m.arrange()
}

func (m *Manager) ToggleBar() {
	ws := m.Active()
	if ws.BarHeight == 0 && m.settings.BarHeight > 0 {
		ws.BarHeight = m.settings.BarHeight
	} else {
		ws.BarHeight = 0
	}
	m.arrange()
}

func (m *Manager) SendToScratchpad() {
	ws := m.Active()
	c := ws.current
	if m.scratchpad != nil || c == nil {
		return
	}
	ws.unlink(c)
	m.display.Unmap(c.Win)
	m.scratchpad = c
	m.UpdateFocus(ws.prevFocus)
	m.arrange()
}

func (m *Manager) GetFromScratchpad() {
	c := m.scratchpad
	if c == nil {
		return
	}
	m.scratchpad = nil

	c.Floating = true
	m.Active().insert(c)
	m.moveResize(c, m.centered(m.settings.ScratchpadWidth, m.settings.ScratchpadHeight))
	m.display.Map(c.Win)
	m.UpdateFocus(c)
}

// Scratchpad returns the client parked in the scratchpad, if any.
func (m *Manager) Scratchpad() *Client {
	return m.scratchpad
}
