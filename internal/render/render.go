package render

import (
	"github.com/ivlev/blog2video/internal/motion"
	"github.com/ivlev/blog2video/internal/node"
	"github.com/ivlev/blog2video/internal/scene"
	"github.com/ivlev/blog2video/internal/style"
)

// Per-item stagger steps in frames
const (
	CardStep     = 6
	CodeLineStep = 3
	MetricStep   = 5
	TimelineStep = 6
	StepsStep    = 5
	IconTextStep = 4
)

// Context is everything a renderer needs besides the element itself
type Context struct {
	Bundle      style.Bundle
	Motion      motion.Config
	Frame       int
	FPS         int
	Portrait    bool
	Index       int
	Arrangement scene.Arrangement

	TitleFontSize       float64
	DescriptionFontSize float64
}

// Element renders el at the current frame. It returns nil when the element has
// nothing to draw, such as an image without a usable URL.
func Element(el scene.Element, ctx Context) *node.Node {
	if el == nil {
		return nil
	}
	r := &renderer{ctx: ctx}
	el.Accept(r)
	return r.out
}

type renderer struct {
	ctx Context
	out *node.Node
}

var _ scene.Visitor = (*renderer)(nil)

// entrance evaluates the shared entrance law for this element with an extra delay
func (c Context) entrance(extraDelay float64) *node.Motion {
	s := motion.Entrance(c.Frame, c.FPS, c.Index, extraDelay, c.Motion)
	return &node.Motion{Opacity: s.Opacity, TranslateY: s.TranslateY}
}

// size picks the landscape or portrait base size and applies the style scale
func (c Context) size(landscape, portrait float64) float64 {
	base := landscape
	if c.Portrait {
		base = portrait
	}
	return base * c.Bundle.FontScale
}

func (c Context) textStyle(font string, size float64, color string) node.Style {
	return node.Style{
		"fontFamily": font,
		"fontSize":   node.Px(size),
		"color":      color,
		"margin":     "0px",
	}
}

// widthFor maps a size hint to a width fraction of the container
func widthFor(s scene.Size, fallback scene.Size) string {
	if s == "" {
		s = fallback
	}
	switch s {
	case scene.SizeSmall:
		return "40%"
	case scene.SizeMedium:
		return "60%"
	case scene.SizeLarge:
		return "80%"
	}
	return "100%"
}

func withMotion(n *node.Node, m *node.Motion) *node.Node {
	n.Motion = m
	return n
}
