package style

import (
	"github.com/ivlev/blog2video/internal/node"
	"github.com/ivlev/blog2video/internal/scene"
	"github.com/ivlev/blog2video/internal/theme"
)

// DecorationsFor builds shapes for the given kinds in order. "none" anywhere
// disables every decoration; unknown and repeated kinds are skipped.
func (b Bundle) DecorationsFor(kinds []scene.Decoration) []Decoration {
	out := []Decoration{}
	seen := map[scene.Decoration]bool{}
	for _, k := range kinds {
		if k == scene.NoDecoration {
			return []Decoration{}
		}
		if seen[k] {
			continue
		}
		s, ok := b.decorationStyle(k)
		if !ok {
			continue
		}
		seen[k] = true
		out = append(out, Decoration{Kind: k, Style: s})
	}
	return out
}

func (b Bundle) decorationStyle(k scene.Decoration) (node.Style, bool) {
	accent := b.AccentColor
	base := node.Style{"position": "absolute", "pointerEvents": "none"}

	switch k {
	case scene.AccentBarTop:
		return base.Merge(node.Style{
			"top": "0px", "left": "0px", "width": "100%", "height": "6px",
			"background": accent,
		}), true
	case scene.AccentBarLeft:
		return base.Merge(node.Style{
			"top": "0px", "left": "0px", "width": "8px", "height": "100%",
			"background": "linear-gradient(180deg, " + accent + " 0%, " + Alpha(accent, 0) + " 100%)",
		}), true
	case scene.CornerAccent:
		size := 120.0
		if b.Portrait {
			size = 80
		}
		return base.Merge(node.Style{
			"top": "40px", "right": "40px", "width": node.Px(size), "height": node.Px(size),
			"borderTop":   "4px solid " + accent,
			"borderRight": "4px solid " + accent,
		}), true
	case scene.GradientOrb:
		size := 600.0
		if b.Portrait {
			size = 420
		}
		strength := 0.3
		if b.Style == theme.StyleNeon {
			strength = 0.45
		}
		return base.Merge(node.Style{
			"top": "-15%", "right": "-10%", "width": node.Px(size), "height": node.Px(size),
			"borderRadius": "50%",
			"background":   "radial-gradient(circle, " + Alpha(accent, strength) + " 0%, " + Alpha(accent, 0) + " 70%)",
			"filter":       "blur(40px)",
		}), true
	case scene.DotGrid:
		return base.Merge(node.Style{
			"inset":           "0px",
			"backgroundImage": "radial-gradient(" + Alpha(b.MutedColor, 0.25) + " 1.5px, transparent 1.5px)",
			"backgroundSize":  "28px 28px",
		}), true
	case scene.DiagonalLines:
		return base.Merge(node.Style{
			"inset":           "0px",
			"backgroundImage": "repeating-linear-gradient(45deg, " + Alpha(accent, 0.06) + " 0px, " + Alpha(accent, 0.06) + " 2px, transparent 2px, transparent 24px)",
		}), true
	}
	return nil, false
}
