package wm

// Display is the outbound contract with the display server. Implementations
// handle their own errors; the core never sees a failure.
type Display interface {
	Map(win Window)
	Unmap(win Window)
	SetBorderWidth(win Window, width int)
	SetBorderColor(win Window, pixel uint32)
	MoveResize(win Window, x, y, w, h int)
	Raise(win Window)
	Focus(win Window)
	SetActiveWindow(win Window)
	ClearActiveWindow()
	SetFullscreen(win Window, fullscreen bool)
	Close(win Window)
}

// Spawner launches external programs without waiting for them.
type Spawner interface {
	Spawn(argv []string)
}

// Screen is the display geometry supplied at startup and on reconfiguration.
type Screen struct {
	Width  int
	Height int
}

type nopSpawner struct{}

func (nopSpawner) Spawn([]string) {}
