package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ItsNotGoodName/x-howm/internal/wm"
)

// ParseColor parses a #rrggbb colour into an X pixel value.
func ParseColor(s string) (uint32, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return 0, fmt.Errorf("invalid color %q: expected #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return uint32(v), nil
}

// Settings converts the config into window manager settings.
func (cfg Config) Settings() (wm.Settings, error) {
	layout, ok := wm.ParseLayout(cfg.DefaultLayout)
	if !ok {
		return wm.Settings{}, fmt.Errorf("invalid default_layout %q", cfg.DefaultLayout)
	}

	var colors [3]uint32
	for i, s := range []string{cfg.BorderFocus, cfg.BorderUnfocus, cfg.BorderUrgent} {
		c, err := ParseColor(s)
		if err != nil {
			return wm.Settings{}, err
		}
		colors[i] = c
	}

	rules := make([]wm.Rule, 0, len(cfg.Rules))
	for _, r := range cfg.Rules {
		rules = append(rules, wm.Rule{
			ID:         r.ID,
			Class:      r.Class,
			Workspace:  r.Workspace,
			Follow:     r.Follow,
			Floating:   r.Floating,
			Fullscreen: r.Fullscreen,
		})
	}

	return wm.Settings{
		Workspaces:         cfg.Workspaces,
		DefaultWorkspace:   cfg.DefaultWorkspace,
		DefaultLayout:      layout,
		BorderWidth:        cfg.BorderWidth,
		BorderFocus:        colors[0],
		BorderUnfocus:      colors[1],
		BorderUrgent:       colors[2],
		Gap:                cfg.Gap,
		OpGapSize:          cfg.OpGapSize,
		MasterRatio:        cfg.MasterRatio,
		BarHeight:          cfg.BarHeight,
		BarBottom:          cfg.BarBottom,
		ZoomGap:            cfg.ZoomGap,
		FocusMouse:         cfg.FocusMouse,
		FocusMouseClick:    cfg.FocusMouseClick,
		FollowMove:         cfg.FollowMove,
		CenterFloating:     cfg.CenterFloating,
		FloatSpawnWidth:    cfg.FloatSpawnWidth,
		FloatSpawnHeight:   cfg.FloatSpawnHeight,
		ScratchpadWidth:    cfg.ScratchpadWidth,
		ScratchpadHeight:   cfg.ScratchpadHeight,
		DeleteRegisterSize: cfg.DeleteRegisterSize,
		Rules:              rules,
	}, nil
}
