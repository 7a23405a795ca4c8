package theme

// Style selects the whole derived-style branch of a theme
type Style string

const (
	StyleMinimal Style = "minimal"
	StyleGlass   Style = "glass"
	StyleBold    Style = "bold"
	StyleNeon    Style = "neon"
	StyleSoft    Style = "soft"
)

// Known reports whether s is one of the five supported styles
func (s Style) Known() bool {
	switch s {
	case StyleMinimal, StyleGlass, StyleBold, StyleNeon, StyleSoft:
		return true
	}
	return false
}

// AnimationPreset is carried through the model but not consumed by the engine;
// entrance timing is derived from Style.
type AnimationPreset string

const (
	PresetFade       AnimationPreset = "fade"
	PresetSlide      AnimationPreset = "slide"
	PresetSpring     AnimationPreset = "spring"
	PresetTypewriter AnimationPreset = "typewriter"
)

// Colors holds opaque color tokens
type Colors struct {
	Accent     string `yaml:"accent" json:"accent"`
	Background string `yaml:"background" json:"background"`
	Text       string `yaml:"text" json:"text"`
	Surface    string `yaml:"surface" json:"surface"`
	Muted      string `yaml:"muted" json:"muted"`
}

// Fonts holds opaque font-family tokens per role
type Fonts struct {
	Heading string `yaml:"heading" json:"heading"`
	Body    string `yaml:"body" json:"body"`
	Mono    string `yaml:"mono" json:"mono"`
}

// Theme is an immutable visual theme description
type Theme struct {
	Name            string          `yaml:"name,omitempty" json:"name,omitempty"`
	Colors          Colors          `yaml:"colors" json:"colors"`
	Fonts           Fonts           `yaml:"fonts" json:"fonts"`
	BorderRadius    float64         `yaml:"borderRadius" json:"borderRadius"`
	Style           Style           `yaml:"style" json:"style"`
	AnimationPreset AnimationPreset `yaml:"animationPreset,omitempty" json:"animationPreset,omitempty"`
	Category        string          `yaml:"category,omitempty" json:"category,omitempty"`
	Patterns        Patterns        `yaml:"patterns,omitempty" json:"patterns,omitempty"`
}

// Patterns groups the qualitative visual preferences of a theme.
// Empty fields mean "not specified" and resolve to documented defaults.
type Patterns struct {
	Cards   CardPattern    `yaml:"cards,omitempty" json:"cards,omitempty"`
	Spacing SpacingPattern `yaml:"spacing,omitempty" json:"spacing,omitempty"`
	Images  ImagePattern   `yaml:"images,omitempty" json:"images,omitempty"`
	Layout  LayoutPattern  `yaml:"layout,omitempty" json:"layout,omitempty"`
}

type CardPattern struct {
	Corners string `yaml:"corners,omitempty" json:"corners,omitempty"` // rounded | sharp | pill
	Shadow  string `yaml:"shadow,omitempty" json:"shadow,omitempty"`   // none | subtle | medium | dramatic | glow
	Border  string `yaml:"border,omitempty" json:"border,omitempty"`   // none | thin | thick | accent
}

type SpacingPattern struct {
	Density string  `yaml:"density,omitempty" json:"density,omitempty"` // compact | balanced | spacious
	GridGap float64 `yaml:"gridGap,omitempty" json:"gridGap,omitempty"`
}

type ImagePattern struct {
	Treatment    string `yaml:"treatment,omitempty" json:"treatment,omitempty"`       // rounded | sharp | circular | framed
	Overlay      string `yaml:"overlay,omitempty" json:"overlay,omitempty"`           // none | gradient | tint | vignette
	CaptionStyle string `yaml:"captionStyle,omitempty" json:"captionStyle,omitempty"` // below | overlay | hidden
}

type LayoutPattern struct {
	Direction   string   `yaml:"direction,omitempty" json:"direction,omitempty"` // centered | left-aligned | asymmetric
	Decorations []string `yaml:"decorations,omitempty" json:"decorations,omitempty"`
}
