package project

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ivlev/blog2video/internal/scene"
	"github.com/ivlev/blog2video/internal/theme"
)

// DefaultFPS is used when a project does not set one
const DefaultFPS = 30

var ErrNoScenes = errors.New("project has no scenes")

// Project is a complete video composition: a theme and an ordered list of scenes
type Project struct {
	Version     string       `yaml:"version" json:"version"`
	Title       string       `yaml:"title,omitempty" json:"title,omitempty"`
	FPS         int          `yaml:"fps" json:"fps"`
	AspectRatio string       `yaml:"aspectRatio,omitempty" json:"aspectRatio,omitempty"`
	ThemePreset string       `yaml:"themePreset,omitempty" json:"themePreset,omitempty"`
	Theme       *theme.Theme `yaml:"theme,omitempty" json:"theme,omitempty"`
	Scenes      []Scene      `yaml:"scenes" json:"scenes"`
}

// Scene is one timed scene of a project
type Scene struct {
	ID        int             `yaml:"id" json:"id"`
	Title     string          `yaml:"title,omitempty" json:"title,omitempty"`
	Narration string          `yaml:"narration,omitempty" json:"narration,omitempty"`
	ImageURL  string          `yaml:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Duration  float64         `yaml:"duration" json:"duration"` // seconds
	Layout    scene.RawLayout `yaml:"layout" json:"layout"`
}

// ResolveTheme returns the inline theme when present, otherwise the named preset
func (p *Project) ResolveTheme() theme.Theme {
	if p.Theme != nil {
		t := *p.Theme
		t.Patterns.Layout.Decorations = append([]string(nil), p.Theme.Patterns.Layout.Decorations...)
		return t
	}
	return theme.ByName(p.ThemePreset)
}

// Validate checks what the timeline needs to place scenes
func Validate(p *Project) error {
	if p == nil || len(p.Scenes) == 0 {
		return ErrNoScenes
	}
	if p.FPS <= 0 {
		return fmt.Errorf("invalid fps %d", p.FPS)
	}
	for i, s := range p.Scenes {
		if s.Duration < 0 {
			return fmt.Errorf("scene %d: negative duration %v", i, s.Duration)
		}
	}
	return nil
}

// Layouts normalizes every scene layout. Dropped elements are logged.
func (p *Project) Layouts(logger zerolog.Logger) []scene.LayoutConfig {
	out := make([]scene.LayoutConfig, len(p.Scenes))
	for i, s := range p.Scenes {
		cfg, dropped := scene.Normalize(s.Layout)
		for _, d := range dropped {
			logger.Warn().Int("scene", i).Str("element", d).Msg("dropping element")
		}
		out[i] = cfg
	}
	return out
}
