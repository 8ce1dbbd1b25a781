package wm

import (
	"log/slog"
	"math"
)

// Rect is an on-screen rectangle in pixels.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Inset shrinks r by n pixels on every side, keeping at least 1x1.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X: r.X + n,
		Y: r.Y + n,
		W: max(r.W-2*n, 1),
		H: max(r.H-2*n, 1),
	}
}

// StackCells splits area into n cells along one axis. The first cell is the
// master and receives round(span*ratio); the others share the rest evenly and
// the last one absorbs the division remainder. vertical stacks cells top to
// bottom, otherwise left to right.
func StackCells(area Rect, n int, ratio float64, vertical bool) []Rect {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Rect{area}
	}

	span := area.W
	if vertical {
		span = area.H
	}
	master := int(math.Round(float64(span) * ratio))
	rest := span - master
	each, remainder := rest/(n-1), rest%(n-1)

	cells := make([]Rect, n)
	offset := 0
	for i := range cells {
		size := each
		switch {
		case i == 0:
			size = master
		case i == n-1:
			size += remainder
		}

		if vertical {
			cells[i] = Rect{X: area.X, Y: area.Y + offset, W: area.W, H: size}
		} else {
			cells[i] = Rect{X: area.X + offset, Y: area.Y, W: size, H: area.H}
		}
		offset += size
	}
	return cells
}

// ZoomCells gives each of the n clients the whole area.
func ZoomCells(area Rect, n int) []Rect {
	cells := make([]Rect, n)
	for i := range cells {
		cells[i] = area
	}
	return cells
}

// Area is the part of the screen left over by the workspace's bar.
func (m *Manager) Area(ws *Workspace) Rect {
	y := ws.BarHeight
	if m.settings.BarBottom {
		y = 0
	}
	return Rect{X: 0, Y: y, W: m.screen.Width, H: max(m.screen.Height-ws.BarHeight, 1)}
}

// Arrange recomputes the geometry of every arrangable client on the active
// workspace.
func (m *Manager) Arrange() {
	m.arrange()
}

func (m *Manager) arrange() {
	ws := m.Active()
	clients := ws.arrangable()
	if len(clients) == 0 {
		return
	}

	area := m.Area(ws)
	var cells []Rect
	switch ws.Layout {
	case LayoutZoom:
		cells = ZoomCells(area, len(clients))
	case LayoutHStack:
		cells = StackCells(area, len(clients), ws.MasterRatio, false)
	case LayoutVStack:
		cells = StackCells(area, len(clients), ws.MasterRatio, true)
	default:
		slog.Debug("Layout has no arrangement", "package", "wm", "layout", ws.Layout.String())
		return
	}

	for i, c := range clients {
		gap := c.Gap
		if ws.Layout == LayoutZoom && !m.settings.ZoomGap {
			gap = 0
		}
		border := m.borderWidth(ws, c)

		r := cells[i].Inset(gap)
		r.W = max(r.W-2*border, 1)
		r.H = max(r.H-2*border, 1)

		m.moveResize(c, r)
	}
}

func (m *Manager) moveResize(c *Client, r Rect) {
	c.X, c.Y, c.W, c.H = r.X, r.Y, r.W, r.H
	m.display.MoveResize(c.Win, r.X, r.Y, r.W, r.H)
}
