package wm

import "slices"

// Layout is a workspace layout policy.
type Layout int

const (
	LayoutZoom Layout = iota
	LayoutGrid
	LayoutHStack
	LayoutVStack
	layoutEnd
)

var layoutNames = [...]string{
	LayoutZoom:   "zoom",
	LayoutGrid:   "grid",
	LayoutHStack: "hstack",
	LayoutVStack: "vstack",
}

func (l Layout) String() string {
	if l < 0 || l >= layoutEnd {
		return "unknown"
	}
	return layoutNames[l]
}

func (l Layout) Valid() bool {
	return l >= 0 && l < layoutEnd
}

// ParseLayout converts a layout name into a Layout.
func ParseLayout(s string) (Layout, bool) {
	idx := slices.Index(layoutNames[:], s)
	if idx == -1 {
		return 0, false
	}
	return Layout(idx), true
}

// Workspace is one virtual desktop. Its client collection is ordered and the
// first element is the head.
type Workspace struct {
	Layout      Layout
	Gap         int
	MasterRatio float64
	BarHeight   int

	clients   []*Client
	current   *Client
	prevFocus *Client
}

// Head returns the first client or nil when the workspace is empty.
func (ws *Workspace) Head() *Client {
	if len(ws.clients) == 0 {
		return nil
	}
	return ws.clients[0]
}

// Tail returns the last client or nil when the workspace is empty.
func (ws *Workspace) Tail() *Client {
	if len(ws.clients) == 0 {
		return nil
	}
	return ws.clients[len(ws.clients)-1]
}

func (ws *Workspace) Current() *Client {
	return ws.current
}

func (ws *Workspace) PrevFocus() *Client {
	return ws.prevFocus
}

func (ws *Workspace) Len() int {
	return len(ws.clients)
}

// Clients returns the collection in list order. The slice must not be
// modified.
func (ws *Workspace) Clients() []*Client {
	return ws.clients
}

func (ws *Workspace) index(c *Client) int {
	if c == nil {
		return -1
	}
	return slices.Index(ws.clients, c)
}

func (ws *Workspace) Contains(c *Client) bool {
	return ws.index(c) != -1
}

func (ws *Workspace) findByWindow(win Window) *Client {
	for _, c := range ws.clients {
		if c.Win == win {
			return c
		}
	}
	return nil
}

// NextClient returns the client after c, wrapping from tail to head. It
// returns nil when c is not a member or the workspace holds fewer than two
// clients.
func (ws *Workspace) NextClient(c *Client) *Client {
	idx := ws.index(c)
	if idx == -1 || len(ws.clients) < 2 {
		return nil
	}
	return ws.clients[(idx+1)%len(ws.clients)]
}

// PrevClient returns the client before c. It does not wrap past the head.
func (ws *Workspace) PrevClient(c *Client) *Client {
	idx := ws.index(c)
	if idx < 1 || len(ws.clients) < 2 {
		return nil
	}
	return ws.clients[idx-1]
}

// insert appends c to the tail.
func (ws *Workspace) insert(c *Client) {
	ws.clients = append(ws.clients, c)
}

// unlink removes c from the collection and repairs current and prevFocus so
// they never point outside the workspace. It reports whether c was a member
// and whether c held focus.
func (ws *Workspace) unlink(c *Client) (found bool, wasCurrent bool) {
	idx := ws.index(c)
	if idx == -1 {
		return false, false
	}

	var pred *Client
	if idx > 0 {
		pred = ws.clients[idx-1]
	}

	ws.clients = slices.Delete(ws.clients, idx, idx+1)

	if ws.prevFocus == c {
		ws.prevFocus = pred
	}
	wasCurrent = ws.current == c
	if wasCurrent {
		ws.current = nil
	}
	if ws.prevFocus == ws.current {
		ws.prevFocus = nil
	}
	if len(ws.clients) == 0 {
		ws.current, ws.prevFocus = nil, nil
	}
	return true, wasCurrent
}

// moveUp swaps c with its predecessor. The head does not move.
func (ws *Workspace) moveUp(c *Client) bool {
	idx := ws.index(c)
	if idx < 1 {
		return false
	}
	ws.clients[idx-1], ws.clients[idx] = ws.clients[idx], ws.clients[idx-1]
	return true
}

// moveDown swaps c with its successor. The tail does not wrap to the head.
func (ws *Workspace) moveDown(c *Client) bool {
	idx := ws.index(c)
	if idx == -1 || idx == len(ws.clients)-1 {
		return false
	}
	ws.clients[idx+1], ws.clients[idx] = ws.clients[idx], ws.clients[idx+1]
	return true
}

// takeAll empties the workspace and returns its clients in order.
func (ws *Workspace) takeAll() []*Client {
	clients := ws.clients
	ws.clients = nil
	ws.current, ws.prevFocus = nil, nil
	return clients
}

// setFocus applies the focus transition rule to c without touching the
// display. A nil or foreign c falls back to prevFocus.
func (ws *Workspace) setFocus(c *Client) {
	if len(ws.clients) == 0 {
		ws.current, ws.prevFocus = nil, nil
		return
	}

	if !ws.Contains(c) {
		c = ws.prevFocus
	}

	switch {
	case c == ws.prevFocus:
		if ws.prevFocus != nil {
			ws.current = ws.prevFocus
		} else if !ws.Contains(ws.current) {
			ws.current = ws.Head()
		}
		ws.prevFocus = ws.PrevClient(ws.current)
	case c != ws.current:
		ws.prevFocus = ws.current
		ws.current = c
	}

	if !ws.Contains(ws.prevFocus) || ws.prevFocus == ws.current {
		ws.prevFocus = nil
	}
}

func (ws *Workspace) arrangable() []*Client {
	var clients []*Client
	for _, c := range ws.clients {
		if c.Arrangable() {
			clients = append(clients, c)
		}
	}
	return clients
}
