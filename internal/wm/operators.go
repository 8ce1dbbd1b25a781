package wm

import (
	"log/slog"
	"slices"
)

// Operate applies op cnt times to the targets selected by motion.
func (m *Manager) Operate(op Operator, motion Motion, cnt int) {
	if !op.Accepts(motion) || cnt < 1 {
		slog.Debug("Operator rejected", "package", "wm", "operator", op.String(), "motion", motion.String(), "count", cnt)
		return
	}

	switch op {
	case OpKill:
		m.opKill(motion, cnt)
	case OpMoveUp:
		m.opMove(motion, cnt, true)
	case OpMoveDown:
		m.opMove(motion, cnt, false)
	case OpFocusUp:
		m.opFocus(motion, cnt, true)
	case OpFocusDown:
		m.opFocus(motion, cnt, false)
	case OpShrinkGaps:
		m.opGaps(motion, cnt, -m.settings.OpGapSize)
	case OpGrowGaps:
		m.opGaps(motion, cnt, m.settings.OpGapSize)
	case OpCut:
		m.opCut(motion, cnt)
	}
}

func (m *Manager) opKill(motion Motion, cnt int) {
	switch motion {
	case MotionWorkspace:
		for ; cnt > 0; cnt-- {
			m.KillWS(m.CorrectWS(m.active + cnt - 1))
		}
	case MotionClient:
		for ; cnt > 0; cnt-- {
			m.KillClient()
		}
	}
}

func (m *Manager) opMove(motion Motion, cnt int, up bool) {
	switch motion {
	case MotionWorkspace:
		if up {
			for ; cnt > 0; cnt-- {
				ws := m.CorrectWS(m.active + cnt - 1)
				m.TransplantAll(ws, m.CorrectWS(ws+1))
			}
		} else {
			for i := 0; i < cnt; i++ {
				ws := m.CorrectWS(m.active + i)
				m.TransplantAll(ws, m.CorrectWS(ws-1))
			}
		}
	case MotionClient:
		c := m.Active().current
		if c == nil {
			return
		}
		for ; cnt > 0; cnt-- {
			if up {
				m.MoveUp(c)
			} else {
				m.MoveDown(c)
			}
		}
		m.UpdateFocus(c)
	}
}

func (m *Manager) opFocus(motion Motion, cnt int, up bool) {
	for ; cnt > 0; cnt-- {
		switch {
		case motion == MotionWorkspace && up:
			m.FocusPrevWS()
		case motion == MotionWorkspace:
			m.FocusNextWS()
		case up:
			m.FocusPrevClient()
		default:
			m.FocusNextClient()
		}
	}
}

func (m *Manager) opGaps(motion Motion, cnt int, size int) {
	switch motion {
	case MotionWorkspace:
		for cnt > 0 {
			cnt--
			ws := &m.workspaces[m.CorrectWS(m.active+cnt)]
			ws.Gap = max(ws.Gap+size, 0)
			for _, c := range ws.clients {
				c.changeGap(size)
			}
		}
	case MotionClient:
		ws := m.Active()
		for c := ws.current; c != nil && cnt > 0; cnt-- {
			c.changeGap(size)
			c = ws.NextClient(c)
		}
	}
	m.arrange()
}

func (m *Manager) registerFull() bool {
	if len(m.register) >= m.settings.DeleteRegisterSize {
		slog.Debug("Cut register is full", "package", "wm", "size", len(m.register))
		return true
	}
	return false
}

func (m *Manager) opCut(motion Motion, cnt int) {
	switch motion {
	case MotionClient:
		ws := m.Active()
		if ws.current == nil || m.registerFull() {
			return
		}

		var cut []*Client
		for c := ws.current; c != nil && cnt > 0 && !slices.Contains(cut, c); cnt-- {
			cut = append(cut, c)
			c = ws.NextClient(c)
		}
		for _, c := range cut {
			ws.unlink(c)
			m.display.Unmap(c.Win)
		}
		m.register = append(m.register, cut)
		m.UpdateFocus(ws.prevFocus)
	case MotionWorkspace:
		for i := 0; i < cnt && !m.registerFull(); i++ {
			idx := m.CorrectWS(m.active + i)
			clients := m.workspaces[idx].takeAll()
			if len(clients) == 0 {
				continue
			}
			if idx == m.active {
				for _, c := range clients {
					m.display.Unmap(c.Win)
				}
				m.present()
			}
			m.register = append(m.register, clients)
		}
	}
}

// Paste pops the most recent cut off the register onto the active
// workspace.
func (m *Manager) Paste() {
	if len(m.register) == 0 {
		return
	}
	clients := m.register[len(m.register)-1]
	m.register = m.register[:len(m.register)-1]

	ws := m.Active()
	for _, c := range clients {
		ws.insert(c)
		m.display.Map(c.Win)
	}
	m.UpdateFocus(clients[0])
}

// RegisterLen is the number of cuts waiting to be pasted.
func (m *Manager) RegisterLen() int {
	return len(m.register)
}

// forget drops win from the cut register and the scratchpad.
func (m *Manager) forget(win Window) {
	if m.scratchpad != nil && m.scratchpad.Win == win {
		m.scratchpad = nil
	}
	for i := range m.register {
		m.register[i] = slices.DeleteFunc(m.register[i], func(c *Client) bool { return c.Win == win })
	}
	m.register = slices.DeleteFunc(m.register, func(cut []*Client) bool { return len(cut) == 0 })
}
