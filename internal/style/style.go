package style

import (
	"github.com/ivlev/blog2video/internal/node"
	"github.com/ivlev/blog2video/internal/scene"
	"github.com/ivlev/blog2video/internal/theme"
)

// Bundle is the fully resolved set of style primitives for one theme and orientation.
// Every field is populated by Resolve.
type Bundle struct {
	Style    theme.Style
	Portrait bool

	FontScale   float64
	HeadingFont string
	BodyFont    string
	MonoFont    string

	TextColor       string
	MutedColor      string
	AccentColor     string
	SurfaceColor    string
	BackgroundColor string

	HeadingColor  string
	HeadingShadow string
	// AccentGlow is the text-shadow applied to accent-colored text ("none" outside neon)
	AccentGlow string

	Container  node.Style
	Card       node.Style
	ImageFrame node.Style
	// ImageOverlay is the overlay painted over framed images, "" for none
	ImageOverlay string
	// BackdropOverlay is painted over full-bleed background images
	BackdropOverlay string
	CaptionStyle    string

	Radius         float64
	ContentPadding float64
	GridGap        float64

	TextAlign  string
	AlignItems string

	Decorations []Decoration
}

// Decoration is an ambient, non-interactive shape drawn below content
type Decoration struct {
	Kind  scene.Decoration
	Style node.Style
}

type density struct {
	padding float64
	gap     float64
}

var densities = map[string]density{
	"compact":  {padding: 48, gap: 16},
	"balanced": {padding: 72, gap: 24},
	"spacious": {padding: 96, gap: 36},
}

const portraitPaddingScale = 0.75

var fontScales = map[theme.Style]float64{
	theme.StyleBold:    1.14,
	theme.StyleMinimal: 0.94,
}

// defaultShadows is the card shadow used when the theme's patterns leave it unset
var defaultShadows = map[theme.Style]string{
	theme.StyleSoft: "medium",
}

// Resolve derives the style bundle for t. Unknown styles resolve as minimal.
func Resolve(t theme.Theme, portrait bool) Bundle {
	st := t.Style
	if !st.Known() {
		st = theme.StyleMinimal
	}
	c := t.Colors

	b := Bundle{
		Style:           st,
		Portrait:        portrait,
		FontScale:       1,
		HeadingFont:     t.Fonts.Heading,
		BodyFont:        t.Fonts.Body,
		MonoFont:        t.Fonts.Mono,
		TextColor:       c.Text,
		MutedColor:      c.Muted,
		AccentColor:     c.Accent,
		SurfaceColor:    c.Surface,
		BackgroundColor: c.Background,
		HeadingColor:    c.Text,
		HeadingShadow:   "none",
		AccentGlow:      "none",
		Radius:          t.BorderRadius,
	}
	if s, ok := fontScales[st]; ok {
		b.FontScale = s
	}

	var cardFill, borderColor string
	cardExtra := node.Style{}

	switch st {
	case theme.StyleGlass:
		b.Container = node.Style{
			"background": "linear-gradient(135deg, " + c.Background + " 0%, " + Mix(c.Background, c.Accent, 0.18) + " 100%)",
			"boxShadow":  "none",
		}
		cardFill = Alpha(c.Surface, 0.35)
		borderColor = Alpha(c.Text, 0.15)
		cardExtra["backdropFilter"] = "blur(16px)"
		b.HeadingShadow = "0 2px 12px rgba(0, 0, 0, 0.25)"
	case theme.StyleNeon:
		b.Container = node.Style{
			"background": Mix(c.Background, "#000000", 0.5),
			"boxShadow":  "inset 0 0 160px " + Alpha(c.Accent, 0.25),
		}
		cardFill = Alpha(c.Surface, 0.6)
		borderColor = Alpha(c.Accent, 0.6)
		b.HeadingColor = c.Accent
		b.HeadingShadow = NeonGlow(c.Accent)
		b.AccentGlow = "0 0 12px " + Alpha(c.Accent, 0.8)
	case theme.StyleBold:
		b.Container = node.Style{
			"background": c.Background,
			"boxShadow":  "none",
		}
		cardFill = c.Surface
		borderColor = c.Accent
		b.HeadingShadow = "0 4px 16px rgba(0, 0, 0, 0.35)"
	case theme.StyleSoft:
		b.Container = node.Style{
			"background": "linear-gradient(180deg, " + c.Background + " 0%, " + Mix(c.Background, c.Surface, 0.6) + " 100%)",
			"boxShadow":  "none",
		}
		cardFill = c.Surface
		borderColor = Alpha(c.Muted, 0.2)
	default:
		b.Container = node.Style{
			"background": c.Background,
			"boxShadow":  "none",
		}
		cardFill = Alpha(c.Surface, 0.6)
		borderColor = Alpha(c.Muted, 0.3)
	}

	cards := t.Patterns.Cards
	shadow := cards.Shadow
	if shadow == "" {
		shadow = defaultShadows[st]
	}
	b.Card = node.Style{
		"background":   cardFill,
		"border":       border(cards.Border, borderColor, c.Accent),
		"boxShadow":    Shadow(shadow, c.Accent),
		"borderRadius": node.Px(cornerRadius(cards.Corners, t.BorderRadius)),
	}.Merge(cardExtra)

	b.ImageFrame, b.ImageOverlay = imageTreatment(t, st)
	b.BackdropOverlay = b.ImageOverlay
	if b.BackdropOverlay == "" {
		b.BackdropOverlay = "linear-gradient(180deg, " + Alpha(c.Background, 0.55) + " 0%, " + Alpha(c.Background, 0.85) + " 100%)"
	}
	b.CaptionStyle = t.Patterns.Images.CaptionStyle
	switch b.CaptionStyle {
	case "below", "overlay", "hidden":
	default:
		b.CaptionStyle = "below"
	}

	d, ok := densities[t.Patterns.Spacing.Density]
	if !ok {
		d = densities["balanced"]
	}
	b.ContentPadding = d.padding
	if portrait {
		b.ContentPadding *= portraitPaddingScale
	}
	b.GridGap = d.gap
	if t.Patterns.Spacing.GridGap > 0 {
		b.GridGap = t.Patterns.Spacing.GridGap
	}

	switch t.Patterns.Layout.Direction {
	case "left-aligned", "asymmetric":
		b.TextAlign, b.AlignItems = "left", "flex-start"
	default:
		b.TextAlign, b.AlignItems = "center", "center"
	}

	kinds := make([]scene.Decoration, 0, len(t.Patterns.Layout.Decorations))
	for _, k := range t.Patterns.Layout.Decorations {
		kinds = append(kinds, scene.Decoration(k))
	}
	b.Decorations = b.DecorationsFor(kinds)

	return b
}

// NeonGlow is the layered accent glow used for neon headings
func NeonGlow(accent string) string {
	return "0 0 12px " + Alpha(accent, 0.9) + ", 0 0 32px " + Alpha(accent, 0.5)
}

// Shadow maps a shadow depth name to a box-shadow value
func Shadow(depth, accent string) string {
	switch depth {
	case "subtle":
		return "0 2px 8px rgba(0, 0, 0, 0.08)"
	case "medium":
		return "0 8px 24px rgba(0, 0, 0, 0.12)"
	case "dramatic":
		return "0 20px 48px rgba(0, 0, 0, 0.35)"
	case "glow":
		return "0 0 24px " + Alpha(accent, 0.35)
	}
	return "none"
}

func border(weight, color, accent string) string {
	switch weight {
	case "none":
		return "none"
	case "thick":
		return "3px solid " + color
	case "accent":
		return "2px solid " + accent
	}
	return "1px solid " + color
}

func cornerRadius(corners string, radius float64) float64 {
	switch corners {
	case "sharp":
		return 0
	case "pill":
		if radius*2 < 24 {
			return 24
		}
		return radius * 2
	}
	return radius
}

func imageTreatment(t theme.Theme, st theme.Style) (node.Style, string) {
	c := t.Colors
	radius := t.BorderRadius
	if st == theme.StyleSoft {
		radius *= 1.5
	}

	frame := node.Style{
		"objectFit": "cover",
		"overflow":  "hidden",
	}
	switch t.Patterns.Images.Treatment {
	case "sharp":
		frame["borderRadius"] = "0px"
	case "circular":
		frame["borderRadius"] = "50%"
		frame["aspectRatio"] = "1 / 1"
	case "framed":
		frame["borderRadius"] = node.Px(radius)
		frame["border"] = "8px solid " + c.Surface
		frame["boxShadow"] = Shadow("medium", c.Accent)
	default:
		frame["borderRadius"] = node.Px(radius)
	}
	if st == theme.StyleNeon {
		frame["boxShadow"] = Shadow("glow", c.Accent)
	}

	var overlay string
	switch t.Patterns.Images.Overlay {
	case "gradient":
		overlay = "linear-gradient(180deg, rgba(0, 0, 0, 0) 40%, " + Alpha(c.Background, 0.85) + " 100%)"
	case "tint":
		overlay = Alpha(c.Accent, 0.25)
	case "vignette":
		overlay = "radial-gradient(circle, rgba(0, 0, 0, 0) 50%, rgba(0, 0, 0, 0.6) 100%)"
	}
	return frame, overlay
}
