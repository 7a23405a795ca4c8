package style

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/blog2video/internal/motion"
	"github.com/ivlev/blog2video/internal/scene"
	"github.com/ivlev/blog2video/internal/theme"
)

func testTheme(st theme.Style) theme.Theme {
	return theme.Theme{
		Colors:       theme.Colors{Accent: "#00ffcc", Background: "#101010", Text: "#ffffff", Surface: "#202020", Muted: "#888888"},
		Fonts:        theme.Fonts{Heading: "Orbitron", Body: "Inter", Mono: "Fira Code"},
		BorderRadius: 12,
		Style:        st,
	}
}

var allStyles = []theme.Style{theme.StyleMinimal, theme.StyleGlass, theme.StyleBold, theme.StyleNeon, theme.StyleSoft}

func TestResolveAlwaysPopulated(t *testing.T) {
	for _, st := range append(allStyles, "unknown-style", "") {
		for _, portrait := range []bool{false, true} {
			b := Resolve(testTheme(st), portrait)

			assert.True(t, b.Style.Known(), "style %q", st)
			assert.Greater(t, b.FontScale, 0.0)
			assert.Greater(t, b.ContentPadding, 0.0)
			assert.Greater(t, b.GridGap, 0.0)
			assert.NotEmpty(t, b.HeadingShadow)
			assert.NotEmpty(t, b.AccentGlow)
			assert.NotEmpty(t, b.BackdropOverlay)
			assert.NotEmpty(t, b.CaptionStyle)
			assert.NotEmpty(t, b.TextAlign)
			assert.NotNil(t, b.Decorations)
			for _, k := range []string{"background", "boxShadow"} {
				assert.NotEmpty(t, b.Container[k], "container %s for %q", k, st)
			}
			for _, k := range []string{"background", "border", "boxShadow", "borderRadius"} {
				assert.NotEmpty(t, b.Card[k], "card %s for %q", k, st)
			}
			assert.NotEmpty(t, b.ImageFrame["borderRadius"])
		}
	}
}

func TestResolveUnknownFallsBackToMinimal(t *testing.T) {
	want := Resolve(testTheme(theme.StyleMinimal), false)
	got := Resolve(testTheme("holographic"), false)
	if !reflect.DeepEqual(want, got) {
		t.Errorf("unknown style should resolve exactly like minimal")
	}
}

func TestResolveIsPure(t *testing.T) {
	th := testTheme(theme.StyleGlass)
	th.Patterns.Layout.Decorations = []string{"gradient-orb", "dot-grid"}
	a := Resolve(th, true)
	b := Resolve(th, true)
	if !reflect.DeepEqual(a, b) {
		t.Error("Resolve returned different bundles for identical input")
	}
	if th.Patterns.Layout.Decorations[0] != "gradient-orb" {
		t.Error("Resolve mutated the theme")
	}
}

func TestStyleBranches(t *testing.T) {
	neon := Resolve(testTheme(theme.StyleNeon), false)
	assert.Equal(t, "#00ffcc", neon.HeadingColor)
	assert.Equal(t, NeonGlow("#00ffcc"), neon.HeadingShadow)
	assert.Contains(t, neon.Container["boxShadow"], "inset")
	assert.Contains(t, neon.Card["border"], "rgba(0, 255, 204, 0.6)")

	glass := Resolve(testTheme(theme.StyleGlass), false)
	assert.True(t, strings.HasPrefix(glass.Container["background"], "linear-gradient(135deg"))
	assert.Equal(t, "blur(16px)", glass.Card["backdropFilter"])
	assert.Contains(t, glass.Card["background"], "rgba(")

	bold := Resolve(testTheme(theme.StyleBold), false)
	assert.InDelta(t, 1.14, bold.FontScale, 1e-9)
	assert.Equal(t, "#202020", bold.Card["background"])

	minimal := Resolve(testTheme(theme.StyleMinimal), false)
	assert.Less(t, minimal.FontScale, 1.0)
	assert.Equal(t, "none", minimal.Card["boxShadow"])
	assert.Equal(t, "none", minimal.HeadingShadow)
	assert.Empty(t, minimal.Decorations)

	soft := Resolve(testTheme(theme.StyleSoft), false)
	assert.True(t, strings.HasPrefix(soft.Container["background"], "linear-gradient(180deg"))
	assert.Equal(t, Shadow("medium", "#00ffcc"), soft.Card["boxShadow"])
	assert.Equal(t, "18px", soft.ImageFrame["borderRadius"])
}

func TestPatternDefaults(t *testing.T) {
	b := Resolve(testTheme(theme.StyleBold), false)
	assert.Equal(t, "none", b.Card["boxShadow"], "card default: no shadow")
	assert.Equal(t, "1px solid #00ffcc", b.Card["border"], "card default: thin border")
	assert.Equal(t, "12px", b.ImageFrame["borderRadius"], "image default: rounded")
	assert.Empty(t, b.ImageOverlay, "image default: no overlay")
	assert.Equal(t, "center", b.TextAlign, "layout default: centered")
	assert.Empty(t, b.Decorations, "layout default: no decorations")
}

func TestPatternOverrides(t *testing.T) {
	th := testTheme(theme.StyleMinimal)
	th.Patterns = theme.Patterns{
		Cards:   theme.CardPattern{Corners: "sharp", Shadow: "dramatic", Border: "none"},
		Images:  theme.ImagePattern{Treatment: "circular", Overlay: "tint", CaptionStyle: "overlay"},
		Layout:  theme.LayoutPattern{Direction: "left-aligned"},
		Spacing: theme.SpacingPattern{Density: "compact"},
	}
	b := Resolve(th, false)
	assert.Equal(t, "0px", b.Card["borderRadius"])
	assert.Equal(t, "none", b.Card["border"])
	assert.Equal(t, Shadow("dramatic", ""), b.Card["boxShadow"])
	assert.Equal(t, "50%", b.ImageFrame["borderRadius"])
	assert.Equal(t, "rgba(0, 255, 204, 0.25)", b.ImageOverlay)
	assert.Equal(t, b.ImageOverlay, b.BackdropOverlay)
	assert.Equal(t, "overlay", b.CaptionStyle)
	assert.Equal(t, "left", b.TextAlign)
	assert.Equal(t, 48.0, b.ContentPadding)
	assert.Equal(t, 16.0, b.GridGap)
}

func TestSpacing(t *testing.T) {
	tests := []struct {
		density  string
		gridGap  float64
		portrait bool
		padding  float64
		gap      float64
	}{
		{"compact", 0, false, 48, 16},
		{"balanced", 0, false, 72, 24},
		{"spacious", 0, false, 96, 36},
		{"spacious", 0, true, 72, 36},
		{"", 0, false, 72, 24},
		{"cozy", 0, true, 54, 24},
		{"compact", 40, false, 48, 40},
	}
	for _, tt := range tests {
		th := testTheme(theme.StyleSoft)
		th.Patterns.Spacing = theme.SpacingPattern{Density: tt.density, GridGap: tt.gridGap}
		b := Resolve(th, tt.portrait)
		if b.ContentPadding != tt.padding || b.GridGap != tt.gap {
			t.Errorf("%+v: got padding %v gap %v", tt, b.ContentPadding, b.GridGap)
		}
	}
}

func TestDecorationsFor(t *testing.T) {
	b := Resolve(testTheme(theme.StyleNeon), false)

	got := b.DecorationsFor([]scene.Decoration{scene.DotGrid, "confetti", scene.GradientOrb, scene.DotGrid})
	require.Len(t, got, 2)
	assert.Equal(t, scene.DotGrid, got[0].Kind)
	assert.Equal(t, scene.GradientOrb, got[1].Kind)
	assert.Equal(t, "absolute", got[1].Style["position"])

	assert.Empty(t, b.DecorationsFor([]scene.Decoration{scene.CornerAccent, scene.NoDecoration}))
}

func TestResolveAnimation(t *testing.T) {
	seen := map[motion.Config]bool{}
	for _, st := range allStyles {
		c := ResolveAnimation(st)
		assert.GreaterOrEqual(t, c.Spring.DampingRatio(), 1.0, "style %s must not overshoot", st)
		assert.Greater(t, c.SlideOffset, 0.0)
		seen[c] = true
	}
	assert.Len(t, seen, len(allStyles))
	assert.Equal(t, ResolveAnimation(theme.StyleMinimal), ResolveAnimation("laser"))
}

func TestAlphaAndMix(t *testing.T) {
	tests := []struct {
		token string
		a     float64
		want  string
	}{
		{"#ff0000", 0.5, "rgba(255, 0, 0, 0.5)"},
		{"#0f0", 1, "rgba(0, 255, 0, 1)"},
		{"white", 0.25, "rgba(255, 255, 255, 0.25)"},
		{"var(--accent)", 0.5, "var(--accent)"},
		{"#zzz", 0.5, "#zzz"},
		{"#000000", 3, "rgba(0, 0, 0, 1)"},
	}
	for _, tt := range tests {
		if got := Alpha(tt.token, tt.a); got != tt.want {
			t.Errorf("Alpha(%q, %v) = %q, want %q", tt.token, tt.a, got, tt.want)
		}
	}

	assert.Equal(t, "#ffffff", Mix("#ffffff", "#000000", 0))
	assert.Equal(t, "#000000", Mix("#ffffff", "#000000", 1))
	assert.Equal(t, "var(--bg)", Mix("var(--bg)", "#000000", 0.5))
	assert.Equal(t, "#123456", Mix("#123456", "nonsense", 0.5))
}
