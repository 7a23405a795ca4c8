package assembly

import (
	"strings"

	"github.com/ivlev/blog2video/internal/node"
	"github.com/ivlev/blog2video/internal/scene"
	"github.com/ivlev/blog2video/internal/style"
)

var fill = node.Style{
	"position": "absolute",
	"top":      "0px",
	"left":     "0px",
	"width":    "100%",
	"height":   "100%",
}

// background returns the layers painted below everything else. Without an
// explicit background the style's container treatment is used.
func background(b style.Bundle, bg *scene.Background) []*node.Node {
	if bg == nil {
		return []*node.Node{node.Shape("background", fill.Merge(b.Container))}
	}

	switch bg.Type {
	case scene.BackgroundImage:
		if !scene.IsUsableImageURL(bg.ImageURL) {
			return []*node.Node{node.Shape("background", fill.Merge(b.Container))}
		}
		return []*node.Node{
			node.Shape("background", fill.Merge(node.Style{"background": b.BackgroundColor})),
			node.Image("background-image", strings.TrimSpace(bg.ImageURL), fill.Merge(node.Style{"objectFit": "cover"})),
			node.Shape("background-overlay", fill.Merge(node.Style{"background": b.BackdropOverlay})),
		}

	case scene.BackgroundGradient:
		angle := bg.GradientAngle()
		from := bg.Color
		if from == "" {
			from = b.BackgroundColor
		}
		return []*node.Node{node.Shape("background", fill.Merge(node.Style{
			"background": "linear-gradient(" + node.Num(angle) + "deg, " + from + " 0%, " + b.SurfaceColor + " 100%)",
		}))}
	}

	color := bg.Color
	if color == "" {
		color = b.BackgroundColor
	}
	return []*node.Node{node.Shape("background", fill.Merge(node.Style{"background": color}))}
}
