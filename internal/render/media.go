package render

import (
	"strings"

	"github.com/ivlev/blog2video/internal/motion"
	"github.com/ivlev/blog2video/internal/node"
	"github.com/ivlev/blog2video/internal/scene"
	"github.com/ivlev/blog2video/internal/style"
)

var statusDots = []string{"#ff5f56", "#ffbd2e", "#27c93f"}

func (r *renderer) VisitCodeBlock(e scene.CodeBlock) {
	c := r.ctx
	b := c.Bundle

	chrome := node.Box("terminal-chrome", node.Style{
		"display":    "flex",
		"alignItems": "center",
		"gap":        node.Px(8),
		"padding":    "12px 16px",
		"background": style.Alpha(b.MutedColor, 0.12),
	})
	for _, dot := range statusDots {
		chrome.Append(node.Shape("status-dot", node.Style{
			"width":        node.Px(12),
			"height":       node.Px(12),
			"borderRadius": "50%",
			"background":   dot,
		}))
	}
	if e.Language != "" {
		chrome.Append(node.Text("language", e.Language, c.textStyle(b.MonoFont, c.size(16, 14), b.MutedColor).Merge(node.Style{
			"marginLeft": "auto",
		})))
	}
	chrome.Motion = c.entrance(0)

	body := node.Box("code-body", node.Style{
		"display":       "flex",
		"flexDirection": "column",
		"padding":       node.Px(c.size(24, 18)),
		"gap":           node.Px(4),
	})
	lineStyle := c.textStyle(b.MonoFont, c.size(22, 18), b.TextColor).Merge(node.Style{
		"whiteSpace": "pre",
		"lineHeight": "1.5",
	})
	for i, line := range e.Lines {
		body.Append(withMotion(node.Text("code-line", line, lineStyle), c.entrance(motion.Stagger(i, CodeLineStep))))
	}

	r.out = node.Box("code-block", node.Style{
		"background":   style.Mix(b.SurfaceColor, "#000000", 0.4),
		"border":       b.Card["border"],
		"borderRadius": node.Px(b.Radius),
		"overflow":     "hidden",
		"width":        widthFor(e.Size, scene.SizeFull),
		"boxShadow":    b.Card["boxShadow"],
	}, chrome, body)
}

func (r *renderer) VisitImage(e scene.Image) {
	if !scene.IsUsableImageURL(e.URL) {
		return
	}
	c := r.ctx
	b := c.Bundle

	fallback := scene.SizeMedium
	if e.Emphasis == scene.EmphasisSecondary {
		fallback = scene.SizeFull
	}
	width := widthFor(e.Size, fallback)

	img := node.Image("image-source", strings.TrimSpace(e.URL), b.ImageFrame.Merge(node.Style{
		"width":  "100%",
		"height": "100%",
	}))

	frame := node.Box("image-frame", node.Style{
		"position":     "relative",
		"overflow":     "hidden",
		"borderRadius": b.ImageFrame["borderRadius"],
		"width":        "100%",
	}, img)
	if b.ImageOverlay != "" {
		frame.Append(node.Shape("image-overlay", node.Style{
			"position":   "absolute",
			"inset":      "0px",
			"background": b.ImageOverlay,
		}))
	}

	var caption *node.Node
	if strings.TrimSpace(e.Caption) != "" && b.CaptionStyle != "hidden" {
		cs := c.textStyle(b.BodyFont, c.size(18, 16), b.MutedColor).Merge(node.Style{
			"textAlign": "center",
		})
		if b.CaptionStyle == "overlay" {
			cs = cs.Merge(node.Style{
				"position":   "absolute",
				"left":       "0px",
				"right":      "0px",
				"bottom":     "0px",
				"padding":    "12px 16px",
				"color":      b.TextColor,
				"background": style.Alpha(b.BackgroundColor, 0.6),
			})
			frame.Append(node.Text("image-caption", e.Caption, cs))
		} else {
			caption = node.Text("image-caption", e.Caption, cs.Merge(node.Style{"marginTop": "12px"}))
		}
	}

	root := node.Box("image", node.Style{
		"width":         width,
		"display":       "flex",
		"flexDirection": "column",
		"alignSelf":     "center",
	}, frame, caption)
	r.out = withMotion(root, c.entrance(0))
}
