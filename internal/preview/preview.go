// Package preview prints a rendered frame as an indented tree in the terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ivlev/blog2video/internal/node"
)

// MaxText is the number of runes of node text shown per line
const MaxText = 40

// Render draws root as a boxed tree under the given title. Each line shows
// the role, kind, effective opacity and a text excerpt.
func Render(title string, root *node.Node) string {
	var b strings.Builder
	walk(&b, root, 0, 1)
	body := strings.TrimRight(b.String(), "\n")
	return BoxStyle.Render(TitleStyle.Render(title) + "\n" + body)
}

func walk(b *strings.Builder, n *node.Node, depth int, parentOpacity float64) {
	if n == nil {
		return
	}
	opacity := parentOpacity
	if n.Motion != nil {
		opacity *= n.Motion.Opacity
	}

	line := fmt.Sprintf("%s%s %s", strings.Repeat("  ", depth), roleOf(n), string(n.Kind))
	if n.Motion != nil {
		line += fmt.Sprintf(" %3.0f%%", opacity*100)
		if n.Motion.TranslateY != 0 {
			line += fmt.Sprintf(" ↓%s", node.Px(n.Motion.TranslateY))
		}
	}
	if n.Text != "" {
		line += " " + textStyle.Render(fmt.Sprintf("%q", Truncate(n.Text, MaxText)))
	}
	if n.Src != "" {
		line += " <" + Truncate(n.Src, MaxText) + ">"
	}

	b.WriteString(styleFor(opacity).Render(line))
	b.WriteByte('\n')

	for _, c := range n.Children {
		walk(b, c, depth+1, opacity)
	}
}

func roleOf(n *node.Node) string {
	if n.Role == "" {
		return "-"
	}
	return n.Role
}

func styleFor(opacity float64) lipgloss.Style {
	switch {
	case opacity >= 1:
		return visibleStyle
	case opacity <= 0:
		return hiddenStyle
	}
	return enteringStyle
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
