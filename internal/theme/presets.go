package theme

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultPreset is returned by ByName for unknown names
const DefaultPreset = "clean-slate"

var presets = map[string]Theme{
	"clean-slate": {
		Name:            "clean-slate",
		Colors:          Colors{Accent: "#2563eb", Background: "#ffffff", Text: "#0f172a", Surface: "#f1f5f9", Muted: "#64748b"},
		Fonts:           Fonts{Heading: "Inter", Body: "Inter", Mono: "JetBrains Mono"},
		BorderRadius:    12,
		Style:           StyleMinimal,
		AnimationPreset: PresetFade,
		Category:        "professional",
		Patterns: Patterns{
			Cards:   CardPattern{Corners: "rounded", Shadow: "none", Border: "thin"},
			Spacing: SpacingPattern{Density: "spacious"},
			Images:  ImagePattern{Treatment: "rounded", Overlay: "none", CaptionStyle: "below"},
			Layout:  LayoutPattern{Direction: "centered"},
		},
	},
	"frosted": {
		Name:            "frosted",
		Colors:          Colors{Accent: "#38bdf8", Background: "#0b1120", Text: "#f8fafc", Surface: "#1e293b", Muted: "#94a3b8"},
		Fonts:           Fonts{Heading: "Sora", Body: "Inter", Mono: "Fira Code"},
		BorderRadius:    20,
		Style:           StyleGlass,
		AnimationPreset: PresetSlide,
		Category:        "tech",
		Patterns: Patterns{
			Cards:   CardPattern{Corners: "rounded", Shadow: "subtle", Border: "thin"},
			Spacing: SpacingPattern{Density: "balanced"},
			Images:  ImagePattern{Treatment: "rounded", Overlay: "gradient", CaptionStyle: "overlay"},
			Layout:  LayoutPattern{Direction: "centered", Decorations: []string{"gradient-orb"}},
		},
	},
	"headline": {
		Name:            "headline",
		Colors:          Colors{Accent: "#f97316", Background: "#111111", Text: "#ffffff", Surface: "#222222", Muted: "#a3a3a3"},
		Fonts:           Fonts{Heading: "Anton", Body: "Roboto", Mono: "Roboto Mono"},
		BorderRadius:    4,
		Style:           StyleBold,
		AnimationPreset: PresetSpring,
		Category:        "news",
		Patterns: Patterns{
			Cards:   CardPattern{Corners: "sharp", Shadow: "dramatic", Border: "thick"},
			Spacing: SpacingPattern{Density: "compact"},
			Images:  ImagePattern{Treatment: "sharp", Overlay: "tint", CaptionStyle: "below"},
			Layout:  LayoutPattern{Direction: "left-aligned", Decorations: []string{"accent-bar-left", "diagonal-lines"}},
		},
	},
	"nightfall": {
		Name:            "nightfall",
		Colors:          Colors{Accent: "#a855f7", Background: "#05010d", Text: "#ede9fe", Surface: "#140a26", Muted: "#8b7fa8"},
		Fonts:           Fonts{Heading: "Orbitron", Body: "Exo 2", Mono: "Share Tech Mono"},
		BorderRadius:    10,
		Style:           StyleNeon,
		AnimationPreset: PresetTypewriter,
		Category:        "entertainment",
		Patterns: Patterns{
			Cards:   CardPattern{Corners: "rounded", Shadow: "glow", Border: "accent"},
			Spacing: SpacingPattern{Density: "balanced"},
			Images:  ImagePattern{Treatment: "framed", Overlay: "vignette", CaptionStyle: "overlay"},
			Layout:  LayoutPattern{Direction: "centered", Decorations: []string{"dot-grid", "corner-accent"}},
		},
	},
	"meadow": {
		Name:            "meadow",
		Colors:          Colors{Accent: "#10b981", Background: "#fdfcf7", Text: "#1f2937", Surface: "#ecfdf5", Muted: "#6b7280"},
		Fonts:           Fonts{Heading: "Nunito", Body: "Nunito", Mono: "Source Code Pro"},
		BorderRadius:    24,
		Style:           StyleSoft,
		AnimationPreset: PresetSpring,
		Category:        "lifestyle",
		Patterns: Patterns{
			Cards:   CardPattern{Corners: "pill", Shadow: "medium", Border: "none"},
			Spacing: SpacingPattern{Density: "spacious", GridGap: 32},
			Images:  ImagePattern{Treatment: "circular", Overlay: "none", CaptionStyle: "below"},
			Layout:  LayoutPattern{Direction: "centered", Decorations: []string{"gradient-orb", "accent-bar-top"}},
		},
	},
}

// ByName returns a copy of a built-in theme, falling back to the default preset
func ByName(name string) Theme {
	if t, ok := presets[name]; ok {
		return t.clone()
	}
	return presets[DefaultPreset].clone()
}

// Names lists the built-in presets in sorted order
func Names() []string {
	out := make([]string, 0, len(presets))
	for k := range presets {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// clone copies the slice fields so callers can't reach the registry
func (t Theme) clone() Theme {
	if t.Patterns.Layout.Decorations != nil {
		d := make([]string, len(t.Patterns.Layout.Decorations))
		copy(d, t.Patterns.Layout.Decorations)
		t.Patterns.Layout.Decorations = d
	}
	return t
}

// Read loads a theme from a YAML file
func Read(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}

	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, err
	}

	return t, nil
}
