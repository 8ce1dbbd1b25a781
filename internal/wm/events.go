package wm

import (
	"log/slog"
	"strings"
)

// MapRequest is sent when a new window wants to be shown.
type MapRequest struct {
	Win              Window
	Class            string
	Transient        bool
	OverrideRedirect bool
	Geometry         Rect
}

// Fullscreen state actions carried by a _NET_WM_STATE request.
const (
	StateRemove = iota
	StateAdd
	StateToggle
)

func (m *Manager) matchRule(class string) *Rule {
	if class == "" {
		return nil
	}
	for i := range m.settings.Rules {
		if r := &m.settings.Rules[i]; r.Class != "" && strings.Contains(class, r.Class) {
			return r
		}
	}
	return nil
}

// HandleMapRequest manages a new window on the active workspace.
func (m *Manager) HandleMapRequest(req MapRequest) {
	if req.OverrideRedirect {
		return
	}
	if c, _ := m.FindByHandle(req.Win); c != nil {
		return
	}
	// A parked or cut window that maps itself again is managed afresh.
	m.forget(req.Win)

	c := m.insert(req.Win)
	c.X, c.Y, c.W, c.H = req.Geometry.X, req.Geometry.Y, req.Geometry.W, req.Geometry.H
	c.Floating, c.Transient = req.Transient, req.Transient

	rule := m.matchRule(req.Class)
	if rule != nil {
		slog.Debug("Rule matched", "package", "wm", "rule", rule.ID, "class", req.Class)
		c.Floating = c.Floating || rule.Floating
		if m.Workspace(rule.Workspace) != nil && rule.Workspace != m.active {
			m.ClientToWS(c, rule.Workspace, rule.Follow)
			if rule.Fullscreen {
				m.SetFullscreen(c, true)
			}
			return
		}
	}

	m.arrange()
	m.display.Map(c.Win)
	m.UpdateFocus(c)
	if rule != nil && rule.Fullscreen {
		m.SetFullscreen(c, true)
	}
}

// HandleDestroy forgets a destroyed window wherever it lives.
func (m *Manager) HandleDestroy(win Window) {
	if c, _ := m.FindByHandle(win); c != nil {
		m.Remove(c)
		return
	}
	m.forget(win)
}

// HandleEnter implements focus-follows-pointer.
func (m *Manager) HandleEnter(win Window) {
	if m.settings.FocusMouse {
		m.FocusWindow(win)
	}
}

// HandleButtonPress implements click-to-focus with the first button.
func (m *Manager) HandleButtonPress(win Window, button int) {
	if m.settings.FocusMouseClick && button == 1 {
		m.FocusWindow(win)
	}
}

// HandleScreenChange adopts new display geometry.
func (m *Manager) HandleScreenChange(screen Screen) {
	if screen == m.screen || screen.Width <= 0 || screen.Height <= 0 {
		return
	}
	m.screen = screen
	for i := 1; i < len(m.workspaces); i++ {
		for _, c := range m.workspaces[i].clients {
			if c.Fullscreen {
				m.moveResize(c, Rect{W: screen.Width, H: screen.Height})
			}
		}
	}
	m.arrange()
}

// HandleFullscreenRequest applies a client's own fullscreen request.
func (m *Manager) HandleFullscreenRequest(win Window, action int) {
	c, _ := m.FindByHandle(win)
	if c == nil {
		return
	}
	switch action {
	case StateRemove:
		m.SetFullscreen(c, false)
	case StateAdd:
		m.SetFullscreen(c, true)
	case StateToggle:
		m.SetFullscreen(c, !c.Fullscreen)
	}
}

// HandleUrgency records a change of a client's urgency hint.
func (m *Manager) HandleUrgency(win Window, urgent bool) {
	if c, _ := m.FindByHandle(win); c != nil {
		m.SetUrgent(c, urgent)
	}
}
