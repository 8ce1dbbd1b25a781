package wm

// Rule is applied to a client when it is first mapped.
type Rule struct {
	ID         string
	Class      string
	Workspace  int
	Follow     bool
	Floating   bool
	Fullscreen bool
}

// Settings are the static tunables of the window manager.
type Settings struct {
	Workspaces         int
	DefaultWorkspace   int
	DefaultLayout      Layout
	BorderWidth        int
	BorderFocus        uint32
	BorderUnfocus      uint32
	BorderUrgent       uint32
	Gap                int
	OpGapSize          int
	MasterRatio        float64
	BarHeight          int
	BarBottom          bool
	ZoomGap            bool
	FocusMouse         bool
	FocusMouseClick    bool
	FollowMove         bool
	CenterFloating     bool
	FloatSpawnWidth    int
	FloatSpawnHeight   int
	ScratchpadWidth    int
	ScratchpadHeight   int
	DeleteRegisterSize int
	Rules              []Rule
}

// DefaultSettings mirrors the defaults written to a fresh config file.
func DefaultSettings() Settings {
	return Settings{
		Workspaces:         5,
		DefaultWorkspace:   1,
		DefaultLayout:      LayoutHStack,
		BorderWidth:        2,
		BorderFocus:        0x70898f,
		BorderUnfocus:      0x555555,
		BorderUrgent:       0xff0000,
		Gap:                0,
		OpGapSize:          4,
		MasterRatio:        0.6,
		BarHeight:          20,
		BarBottom:          true,
		ZoomGap:            true,
		FocusMouse:         false,
		FocusMouseClick:    true,
		FollowMove:         false,
		CenterFloating:     true,
		FloatSpawnWidth:    500,
		FloatSpawnHeight:   500,
		ScratchpadWidth:    500,
		ScratchpadHeight:   500,
		DeleteRegisterSize: 5,
	}
}

func (s Settings) normalized() Settings {
	d := DefaultSettings()
	if s.Workspaces < 1 {
		s.Workspaces = d.Workspaces
	}
	if s.DefaultWorkspace < 1 || s.DefaultWorkspace > s.Workspaces {
		s.DefaultWorkspace = 1
	}
	if !s.DefaultLayout.Valid() {
		s.DefaultLayout = d.DefaultLayout
	}
	if s.MasterRatio <= 0 || s.MasterRatio >= 1 {
		s.MasterRatio = d.MasterRatio
	}
	s.BorderWidth = max(s.BorderWidth, 0)
	s.Gap = max(s.Gap, 0)
	s.BarHeight = max(s.BarHeight, 0)
	s.DeleteRegisterSize = max(s.DeleteRegisterSize, 0)
	return s
}
