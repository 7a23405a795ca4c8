package render

import (
	"strings"

	"github.com/ivlev/blog2video/internal/node"
	"github.com/ivlev/blog2video/internal/scene"
	"github.com/ivlev/blog2video/internal/style"
	"github.com/ivlev/blog2video/internal/theme"
)

func (r *renderer) VisitHeading(e scene.Heading) {
	c := r.ctx
	b := c.Bundle

	primary := e.Emphasis == "" || e.Emphasis == scene.EmphasisPrimary
	size := c.size(72, 56)
	if !primary {
		size = c.size(48, 40)
	}
	if primary && c.TitleFontSize > 0 {
		size = c.TitleFontSize
	}

	color := b.HeadingColor
	if e.Emphasis == scene.EmphasisSubtle {
		color = b.MutedColor
	}
	weight := "700"
	if b.Style == theme.StyleBold {
		weight = "800"
	}

	s := c.textStyle(b.HeadingFont, size, color).Merge(node.Style{
		"fontWeight": weight,
		"lineHeight": "1.15",
		"textAlign":  b.TextAlign,
		"textShadow": b.HeadingShadow,
	})
	r.out = withMotion(node.Text("heading", e.Text, s), c.entrance(0))
}

func (r *renderer) VisitBodyText(e scene.BodyText) {
	c := r.ctx
	b := c.Bundle

	size := c.size(30, 26)
	if c.DescriptionFontSize > 0 {
		size = c.DescriptionFontSize
	}
	color := b.TextColor
	if e.Emphasis == scene.EmphasisSubtle {
		color = b.MutedColor
	}
	maxWidth := "80%"
	if c.Portrait {
		maxWidth = "100%"
	}

	s := c.textStyle(b.BodyFont, size, color).Merge(node.Style{
		"lineHeight": "1.5",
		"maxWidth":   maxWidth,
		"textAlign":  b.TextAlign,
	})
	r.out = withMotion(node.Text("body-text", e.Text, s), c.entrance(0))
}

// Segment is one run of quote text
type Segment struct {
	Text      string
	Highlight bool
}

// HighlightSegments splits text around the first exact occurrence of phrase.
// Without a match the whole text is a single plain segment.
func HighlightSegments(text, phrase string) []Segment {
	if phrase == "" || text == "" {
		return []Segment{{Text: text}}
	}
	i := strings.Index(text, phrase)
	if i < 0 {
		return []Segment{{Text: text}}
	}

	var out []Segment
	if i > 0 {
		out = append(out, Segment{Text: text[:i]})
	}
	out = append(out, Segment{Text: phrase, Highlight: true})
	if rest := text[i+len(phrase):]; rest != "" {
		out = append(out, Segment{Text: rest})
	}
	return out
}

func (r *renderer) VisitQuote(e scene.Quote) {
	c := r.ctx
	b := c.Bundle

	glyph := node.Text("quote-mark", "“", c.textStyle(b.HeadingFont, c.size(140, 110), b.AccentColor).Merge(node.Style{
		"lineHeight": "0.8",
		"opacity":    "0.5",
		"textShadow": b.AccentGlow,
	}))

	textStyle := c.textStyle(b.HeadingFont, c.size(40, 32), b.TextColor).Merge(node.Style{
		"fontStyle":  "italic",
		"lineHeight": "1.35",
		"textAlign":  b.TextAlign,
	})
	quote := node.Box("quote-text", textStyle)
	for _, seg := range HighlightSegments(e.Text, e.Highlight) {
		if seg.Highlight {
			quote.Append(node.Text("quote-highlight", seg.Text, node.Style{
				"background":   style.Alpha(b.AccentColor, 0.25),
				"color":        b.TextColor,
				"padding":      "0px 6px",
				"borderRadius": "4px",
			}))
			continue
		}
		quote.Append(node.Text("quote-segment", seg.Text, nil))
	}

	var author *node.Node
	if strings.TrimSpace(e.Author) != "" {
		author = node.Text("quote-author", "— "+e.Author, c.textStyle(b.BodyFont, c.size(22, 20), b.MutedColor).Merge(node.Style{
			"textAlign": b.TextAlign,
		}))
	}

	root := node.Box("quote", node.Style{
		"display":       "flex",
		"flexDirection": "column",
		"alignItems":    b.AlignItems,
		"gap":           node.Px(16),
		"maxWidth":      "90%",
	}, glyph, quote, author)
	r.out = withMotion(root, c.entrance(0))
}
