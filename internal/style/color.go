package style

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/ivlev/blog2video/internal/node"
)

// parseColor resolves hex and named color tokens
func parseColor(token string) (colorful.Color, bool) {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(token, "#") {
		c, err := colorful.Hex(token)
		if err != nil {
			return colorful.Color{}, false
		}
		return c, true
	}
	if named, ok := colornames.Map[strings.ToLower(token)]; ok {
		return colorful.MakeColor(named)
	}
	return colorful.Color{}, false
}

// Alpha returns token at opacity a. Tokens that are neither hex nor a named
// color are returned unchanged.
func Alpha(token string, a float64) string {
	c, ok := parseColor(token)
	if !ok {
		return token
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, node.Num(clamp(a, 0, 1)))
}

// Mix blends a towards b by t in Lab space. It returns a if either token
// can't be parsed.
func Mix(a, b string, t float64) string {
	ca, ok := parseColor(a)
	if !ok {
		return a
	}
	cb, ok := parseColor(b)
	if !ok {
		return a
	}
	return ca.BlendLab(cb, clamp(t, 0, 1)).Clamped().Hex()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
