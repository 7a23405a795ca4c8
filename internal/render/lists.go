package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ivlev/blog2video/internal/motion"
	"github.com/ivlev/blog2video/internal/node"
	"github.com/ivlev/blog2video/internal/scene"
	"github.com/ivlev/blog2video/internal/style"
)

func gridStyle(cols, count int, gap float64) node.Style {
	if cols < 1 {
		cols = 1
	}
	rows := (count + cols - 1) / cols
	if rows < 1 {
		rows = 1
	}
	return node.Style{
		"display":             "grid",
		"gridTemplateColumns": fmt.Sprintf("repeat(%d, 1fr)", cols),
		"gridTemplateRows":    fmt.Sprintf("repeat(%d, auto)", rows),
		"gap":                 node.Px(gap),
	}
}

// CardColumns returns the card-grid column count for n items
func CardColumns(n int, portrait bool) int {
	if portrait {
		return 1
	}
	if n == 3 || n > 4 {
		return 3
	}
	return 2
}

// MetricColumns returns the metric-row column count for n items
func MetricColumns(n int, portrait bool, a scene.Arrangement) int {
	limit := 4
	if portrait || a == scene.Grid2x2 {
		limit = 2
	}
	return max(1, min(n, limit))
}

func (r *renderer) VisitCardGrid(e scene.CardGrid) {
	c := r.ctx
	b := c.Bundle

	grid := node.Box("card-grid", gridStyle(CardColumns(len(e.Items), c.Portrait), len(e.Items), b.GridGap).Merge(node.Style{
		"width": widthFor(e.Size, scene.SizeFull),
	}))

	for i, it := range e.Items {
		card := node.Box("card", b.Card.Merge(node.Style{
			"display":       "flex",
			"flexDirection": "column",
			"gap":           node.Px(12),
			"padding":       node.Px(c.size(28, 22)),
		}))
		if it.Icon != "" {
			card.Append(node.Text("card-icon", it.Icon, c.textStyle(b.BodyFont, c.size(40, 32), b.AccentColor)))
		}
		if scene.IsUsableImageURL(it.ImageURL) {
			card.Append(node.Image("card-image", strings.TrimSpace(it.ImageURL), b.ImageFrame.Merge(node.Style{
				"width":  "100%",
				"height": node.Px(c.size(160, 140)),
			})))
		}
		if it.Value != "" {
			card.Append(node.Text("card-value", it.Value, c.textStyle(b.HeadingFont, c.size(36, 30), b.AccentColor).Merge(node.Style{
				"fontWeight": "700",
				"textShadow": b.AccentGlow,
			})))
		}
		card.Append(node.Text("card-label", it.Label, c.textStyle(b.HeadingFont, c.size(28, 24), b.TextColor).Merge(node.Style{
			"fontWeight": "600",
		})))
		if it.Description != "" {
			card.Append(node.Text("card-description", it.Description, c.textStyle(b.BodyFont, c.size(20, 18), b.MutedColor).Merge(node.Style{
				"lineHeight": "1.4",
			})))
		}
		grid.Append(withMotion(card, c.entrance(motion.Stagger(i, CardStep))))
	}

	r.out = grid
}

func (r *renderer) VisitMetricRow(e scene.MetricRow) {
	c := r.ctx
	b := c.Bundle

	cols := MetricColumns(len(e.Items), c.Portrait, c.Arrangement)
	grid := node.Box("metric-row", gridStyle(cols, len(e.Items), b.GridGap).Merge(node.Style{
		"width": "100%",
	}))

	for i, it := range e.Items {
		cell := node.Box("metric", b.Card.Merge(node.Style{
			"display":       "flex",
			"flexDirection": "column",
			"alignItems":    "center",
			"gap":           node.Px(8),
			"padding":       node.Px(c.size(28, 20)),
		}),
			node.Text("metric-value", it.Value, c.textStyle(b.HeadingFont, c.size(64, 48), b.AccentColor).Merge(node.Style{
				"fontWeight": "800",
				"textShadow": b.AccentGlow,
			})),
			node.Text("metric-label", it.Label, c.textStyle(b.BodyFont, c.size(20, 18), b.MutedColor).Merge(node.Style{
				"textTransform": "uppercase",
				"letterSpacing": "0.08em",
			})),
		)
		grid.Append(withMotion(cell, c.entrance(motion.Stagger(i, MetricStep))))
	}

	r.out = grid
}

func (r *renderer) VisitTimeline(e scene.Timeline) {
	c := r.ctx
	b := c.Bundle

	// the connector grows while the items stagger in
	start := motion.Delay(c.Index, 0)
	span := float64(len(e.Items)*TimelineStep + 20)
	grow := motion.Track{{Frame: start, Value: 0}, {Frame: start + span, Value: 100}}.
		Eval(float64(c.Frame), motion.EaseInOutCubic)

	direction := "row"
	line := node.Style{
		"position":   "absolute",
		"background": style.Alpha(b.AccentColor, 0.5),
		"top":        node.Px(10),
		"left":       "0px",
		"height":     node.Px(3),
		"width":      node.Pct(grow),
	}
	if c.Portrait {
		direction = "column"
		line = node.Style{
			"position":   "absolute",
			"background": style.Alpha(b.AccentColor, 0.5),
			"left":       node.Px(10),
			"top":        "0px",
			"width":      node.Px(3),
			"height":     node.Pct(grow),
		}
	}

	root := node.Box("timeline", node.Style{
		"position":       "relative",
		"display":        "flex",
		"flexDirection":  direction,
		"justifyContent": "space-between",
		"gap":            node.Px(b.GridGap),
		"width":          "100%",
	}, node.Shape("timeline-line", line))

	for i, it := range e.Items {
		item := node.Box("timeline-item", node.Style{
			"display":       "flex",
			"flexDirection": "column",
			"gap":           node.Px(8),
			"flex":          "1",
		},
			node.Shape("timeline-dot", node.Style{
				"width":        node.Px(22),
				"height":       node.Px(22),
				"borderRadius": "50%",
				"background":   b.AccentColor,
				"border":       "4px solid " + b.BackgroundColor,
				"boxShadow":    b.AccentGlow,
			}),
			node.Text("timeline-label", it.Label, c.textStyle(b.HeadingFont, c.size(24, 20), b.TextColor).Merge(node.Style{
				"fontWeight": "700",
			})),
		)
		if it.Description != "" {
			item.Append(node.Text("timeline-description", it.Description, c.textStyle(b.BodyFont, c.size(18, 16), b.MutedColor)))
		}
		root.Append(withMotion(item, c.entrance(motion.Stagger(i, TimelineStep))))
	}

	r.out = root
}

func (r *renderer) VisitSteps(e scene.Steps) {
	c := r.ctx
	b := c.Bundle

	root := node.Box("steps", node.Style{
		"display":       "flex",
		"flexDirection": "column",
		"gap":           node.Px(b.GridGap),
		"width":         "100%",
	})

	badge := c.size(52, 44)
	for i, it := range e.Items {
		body := node.Box("step-body", node.Style{
			"display":       "flex",
			"flexDirection": "column",
			"gap":           node.Px(4),
		}, node.Text("step-label", it.Label, c.textStyle(b.HeadingFont, c.size(26, 22), b.TextColor).Merge(node.Style{
			"fontWeight": "600",
		})))
		if it.Description != "" {
			body.Append(node.Text("step-description", it.Description, c.textStyle(b.BodyFont, c.size(18, 16), b.MutedColor)))
		}

		step := node.Box("step", node.Style{
			"display":    "flex",
			"alignItems": "center",
			"gap":        node.Px(20),
		},
			node.Text("step-number", strconv.Itoa(i+1), c.textStyle(b.HeadingFont, c.size(28, 24), b.BackgroundColor).Merge(node.Style{
				"width":          node.Px(badge),
				"height":         node.Px(badge),
				"borderRadius":   "50%",
				"background":     b.AccentColor,
				"display":        "flex",
				"alignItems":     "center",
				"justifyContent": "center",
				"fontWeight":     "800",
				"boxShadow":      b.AccentGlow,
			})),
			body,
		)
		root.Append(withMotion(step, c.entrance(motion.Stagger(i, StepsStep))))
	}

	r.out = root
}

func (r *renderer) VisitIconText(e scene.IconText) {
	c := r.ctx
	b := c.Bundle

	root := node.Box("icon-text", node.Style{
		"display":       "flex",
		"flexDirection": "column",
		"gap":           node.Px(b.GridGap),
		"width":         "100%",
	})

	for i, it := range e.Items {
		row := node.Box("icon-text-row", node.Style{
			"display":    "flex",
			"alignItems": "center",
			"gap":        node.Px(18),
		})
		if it.Icon != "" {
			row.Append(node.Text("icon", it.Icon, c.textStyle(b.BodyFont, c.size(36, 30), b.AccentColor)))
		}
		row.Append(node.Text("icon-text-label", it.Label, c.textStyle(b.BodyFont, c.size(26, 22), b.TextColor)))
		if it.Description != "" {
			row.Append(node.Text("icon-text-description", it.Description, c.textStyle(b.BodyFont, c.size(20, 18), b.MutedColor)))
		}
		root.Append(withMotion(row, c.entrance(motion.Stagger(i, IconTextStep))))
	}

	r.out = root
}
