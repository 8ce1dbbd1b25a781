package config

var defaultConfig = Config{
	Workspaces:         5,
	DefaultWorkspace:   1,
	DefaultLayout:      "hstack",
	BorderWidth:        2,
	BorderFocus:        "#70898f",
	BorderUnfocus:      "#555555",
	BorderUrgent:       "#ff0000",
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
	Terminal:           []string{"xterm"},
	Rules:              []Rule{},
}

// Default returns a copy of the built-in configuration.
func Default() Config {
	cfg := defaultConfig
	cfg.Terminal = append([]string(nil), defaultConfig.Terminal...)
	cfg.Rules = []Rule{}
	return cfg
}

type Config struct {
	Workspaces         int      `json:"workspaces" yaml:"workspaces" toml:"workspaces"`
	DefaultWorkspace   int      `json:"default_workspace" yaml:"default_workspace" toml:"default_workspace"`
	DefaultLayout      string   `json:"default_layout" yaml:"default_layout" toml:"default_layout"` // [zoom, grid, hstack, vstack]
	BorderWidth        int      `json:"border_width" yaml:"border_width" toml:"border_width"`
	BorderFocus        string   `json:"border_focus" yaml:"border_focus" toml:"border_focus"`
	BorderUnfocus      string   `json:"border_unfocus" yaml:"border_unfocus" toml:"border_unfocus"`
	BorderUrgent       string   `json:"border_urgent" yaml:"border_urgent" toml:"border_urgent"`
	Gap                int      `json:"gap" yaml:"gap" toml:"gap"`
	OpGapSize          int      `json:"op_gap_size" yaml:"op_gap_size" toml:"op_gap_size"`
	MasterRatio        float64  `json:"master_ratio" yaml:"master_ratio" toml:"master_ratio"`
	BarHeight          int      `json:"bar_height" yaml:"bar_height" toml:"bar_height"`
	BarBottom          bool     `json:"bar_bottom" yaml:"bar_bottom" toml:"bar_bottom"`
	ZoomGap            bool     `json:"zoom_gap" yaml:"zoom_gap" toml:"zoom_gap"`
	FocusMouse         bool     `json:"focus_mouse" yaml:"focus_mouse" toml:"focus_mouse"`
	FocusMouseClick    bool     `json:"focus_mouse_click" yaml:"focus_mouse_click" toml:"focus_mouse_click"`
	FollowMove         bool     `json:"follow_move" yaml:"follow_move" toml:"follow_move"`
	CenterFloating     bool     `json:"center_floating" yaml:"center_floating" toml:"center_floating"`
	FloatSpawnWidth    int      `json:"float_spawn_width" yaml:"float_spawn_width" toml:"float_spawn_width"`
	FloatSpawnHeight   int      `json:"float_spawn_height" yaml:"float_spawn_height" toml:"float_spawn_height"`
	ScratchpadWidth    int      `json:"scratchpad_width" yaml:"scratchpad_width" toml:"scratchpad_width"`
	ScratchpadHeight   int      `json:"scratchpad_height" yaml:"scratchpad_height" toml:"scratchpad_height"`
	DeleteRegisterSize int      `json:"delete_register_size" yaml:"delete_register_size" toml:"delete_register_size"`
	Terminal           []string `json:"terminal" yaml:"terminal" toml:"terminal"`
	Rules              []Rule   `json:"rules" yaml:"rules" toml:"rules"`
}

type Rule struct {
	ID         string `json:"id" yaml:"id" toml:"id"`
	Class      string `json:"class" yaml:"class" toml:"class"`
	Workspace  int    `json:"workspace" yaml:"workspace" toml:"workspace"`
	Follow     bool   `json:"follow" yaml:"follow" toml:"follow"`
	Floating   bool   `json:"floating" yaml:"floating" toml:"floating"`
	Fullscreen bool   `json:"fullscreen" yaml:"fullscreen" toml:"fullscreen"`
}
