package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ivlev/blog2video/internal/node"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "ü", Truncate("über", 1))
}

func TestRender(t *testing.T) {
	root := node.Box("scene", nil,
		node.Shape("background", nil),
		node.Box("content", nil,
			&node.Node{Kind: node.KindText, Role: "heading", Text: "Awaken", Motion: &node.Motion{Opacity: 0.5, TranslateY: 20}},
			&node.Node{Kind: node.KindImage, Role: "image-source", Src: "https://x/y.png", Motion: &node.Motion{Opacity: 1}},
		),
	)
	out := Render("frame 12", root)

	assert.Contains(t, out, "frame 12")
	assert.Contains(t, out, "scene box")
	assert.Contains(t, out, "heading text")
	assert.Contains(t, out, "Awaken")
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "↓20px")
	assert.Contains(t, out, "<https://x/y.png>")

	lines := strings.Split(out, "\n")
	var heading string
	for _, l := range lines {
		if strings.Contains(l, "heading") {
			heading = l
		}
	}
	// heading sits two levels below the scene root
	assert.Contains(t, heading, "    heading")
}

func TestRenderNil(t *testing.T) {
	assert.Contains(t, Render("empty", nil), "empty")
}
