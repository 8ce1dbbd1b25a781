package wm

import "fmt"

// Window is the display server's opaque handle for a surface.
type Window uint32

// Client is a managed window and its window-manager metadata.
type Client struct {
	Win        Window
	Fullscreen bool
	Floating   bool
	Transient  bool
	Urgent     bool
	X          int
	Y          int
	W          int
	H          int
	Gap        int
}

func newClient(win Window, gap int) *Client {
	return &Client{
		Win: win,
		Gap: gap,
	}
}

// Arrangable reports whether the layout engine positions c.
func (c *Client) Arrangable() bool {
	return !c.Fullscreen && !c.Floating && !c.Transient
}

// floatOrTransient reports whether c belongs to the middle stacking group.
func (c *Client) floatOrTransient() bool {
	return !c.Fullscreen && (c.Floating || c.Transient)
}

func (c *Client) String() string {
	return fmt.Sprintf("wm.Client(win=%d)", c.Win)
}

func (c *Client) changeGap(size int) {
	if c.Fullscreen {
		return
	}
	c.Gap = max(c.Gap+size, 0)
}
