package scene

import "strings"

// Arrangement names a spatial layout of a scene
type Arrangement string

const (
	FullCenter      Arrangement = "full-center"
	SplitLeft       Arrangement = "split-left"
	SplitRight      Arrangement = "split-right"
	TopBottom       Arrangement = "top-bottom"
	Grid2x2         Arrangement = "grid-2x2"
	Grid3           Arrangement = "grid-3"
	AsymmetricLeft  Arrangement = "asymmetric-left"
	AsymmetricRight Arrangement = "asymmetric-right"
	Stacked         Arrangement = "stacked"
)

// Arrangements lists every known arrangement
var Arrangements = []Arrangement{
	FullCenter, SplitLeft, SplitRight, TopBottom, Grid2x2, Grid3, AsymmetricLeft, AsymmetricRight, Stacked,
}

// IsSplit reports whether a has a primary and a secondary side
func (a Arrangement) IsSplit() bool {
	switch a {
	case SplitLeft, SplitRight, AsymmetricLeft, AsymmetricRight:
		return true
	}
	return false
}

// IsVertical reports whether a flows top to bottom
func (a Arrangement) IsVertical() bool {
	return a == TopBottom || a == Stacked
}

// IsGrid reports whether a places elements into grid cells
func (a Arrangement) IsGrid() bool {
	return a == Grid2x2 || a == Grid3
}

// BackgroundType is one of solid, gradient or image
type BackgroundType string

const (
	BackgroundSolid    BackgroundType = "solid"
	BackgroundGradient BackgroundType = "gradient"
	BackgroundImage    BackgroundType = "image"
)

// DefaultGradientAngle is used by gradients that leave the angle unset
const DefaultGradientAngle = 135

type Background struct {
	Type  BackgroundType `yaml:"type" json:"type"`
	Color string         `yaml:"color,omitempty" json:"color,omitempty"`
	// Angle is the gradient direction in degrees; nil means DefaultGradientAngle
	Angle    *float64 `yaml:"angle,omitempty" json:"angle,omitempty"`
	ImageURL string   `yaml:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

// GradientAngle returns the explicit angle, 0 included, or the default
func (b Background) GradientAngle() float64 {
	if b.Angle == nil {
		return DefaultGradientAngle
	}
	return *b.Angle
}

// Clone returns a deep copy of b; nil stays nil
func (b *Background) Clone() *Background {
	if b == nil {
		return nil
	}
	out := *b
	if b.Angle != nil {
		a := *b.Angle
		out.Angle = &a
	}
	return &out
}

// Decoration is an ambient decoration kind
type Decoration string

const (
	AccentBarTop  Decoration = "accent-bar-top"
	AccentBarLeft Decoration = "accent-bar-left"
	CornerAccent  Decoration = "corner-accent"
	GradientOrb   Decoration = "gradient-orb"
	DotGrid       Decoration = "dot-grid"
	DiagonalLines Decoration = "diagonal-lines"
	NoDecoration  Decoration = "none"
)

// LayoutConfig is the typed description of one scene
type LayoutConfig struct {
	Arrangement Arrangement
	Elements    []Element
	Background  *Background
	// Decorations, when non-nil, replaces the theme's pattern decorations.
	Decorations         []Decoration
	TitleFontSize       float64
	DescriptionFontSize float64
}

var unusableURLs = map[string]bool{
	"null":        true,
	"undefined":   true,
	"about:blank": true,
}

// IsUsableImageURL reports whether u can be handed to the host as an image source
func IsUsableImageURL(u string) bool {
	u = strings.TrimSpace(u)
	if u == "" {
		return false
	}
	return !unusableURLs[strings.ToLower(u)]
}
