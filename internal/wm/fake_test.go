package wm

type fakeDisplay struct {
	mapped     map[Window]bool
	geometry   map[Window]Rect
	borders    map[Window]int
	colors     map[Window]uint32
	fullscreen map[Window]bool
	closed     []Window
	raised     []Window
	focused    Window
	active     Window
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{
		mapped:     make(map[Window]bool),
		geometry:   make(map[Window]Rect),
		borders:    make(map[Window]int),
		colors:     make(map[Window]uint32),
		fullscreen: make(map[Window]bool),
	}
}

func (d *fakeDisplay) Map(win Window)                       { d.mapped[win] = true }
func (d *fakeDisplay) Unmap(win Window)                     { d.mapped[win] = false }
func (d *fakeDisplay) SetBorderWidth(win Window, width int) { d.borders[win] = width }
func (d *fakeDisplay) SetBorderColor(win Window, px uint32) { d.colors[win] = px }
func (d *fakeDisplay) Raise(win Window)                     { d.raised = append(d.raised, win) }
func (d *fakeDisplay) Focus(win Window)                     { d.focused = win }
func (d *fakeDisplay) SetActiveWindow(win Window)           { d.active = win }
func (d *fakeDisplay) ClearActiveWindow()                   { d.active = 0 }
func (d *fakeDisplay) Close(win Window)                     { d.closed = append(d.closed, win) }

func (d *fakeDisplay) MoveResize(win Window, x, y, w, h int) {
	d.geometry[win] = Rect{X: x, Y: y, W: w, H: h}
}

func (d *fakeDisplay) SetFullscreen(win Window, fullscreen bool) {
	d.fullscreen[win] = fullscreen
}

type fakeSpawner struct {
	spawned [][]string
}

func (s *fakeSpawner) Spawn(argv []string) {
	s.spawned = append(s.spawned, argv)
}

var testScreen = Screen{Width: 1000, Height: 820}

func newTestManager(settings Settings) (*Manager, *fakeDisplay) {
	d := newFakeDisplay()
	return New(d, nil, testScreen, settings), d
}

// mapWindows manages each window on the active workspace in order.
func mapWindows(m *Manager, wins ...Window) []*Client {
	clients := make([]*Client, 0, len(wins))
	for _, win := range wins {
		m.HandleMapRequest(MapRequest{Win: win})
		c, _ := m.FindByHandle(win)
		clients = append(clients, c)
	}
	return clients
}

func windows(clients []*Client) []Window {
	wins := make([]Window, 0, len(clients))
	for _, c := range clients {
		wins = append(wins, c.Win)
	}
	return wins
}
