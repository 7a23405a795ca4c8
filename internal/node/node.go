package node

import (
	"math"
	"strconv"
)

// Kind is the primitive a host paints
type Kind string

const (
	KindBox   Kind = "box"
	KindText  Kind = "text"
	KindImage Kind = "image"
	KindShape Kind = "shape"
)

// Style is a CSS-like property bag. Values are already formatted.
type Style map[string]string

// Motion is the entrance state of a node at the current frame
type Motion struct {
	Opacity    float64 `json:"opacity"`
	TranslateY float64 `json:"translateY"`
}

// Node is one positioned, styled element of a rendered frame
type Node struct {
	Kind     Kind    `json:"kind"`
	Role     string  `json:"role,omitempty"`
	Text     string  `json:"text,omitempty"`
	Src      string  `json:"src,omitempty"`
	Style    Style   `json:"style,omitempty"`
	Motion   *Motion `json:"motion,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

func Box(role string, style Style, children ...*Node) *Node {
	return &Node{Kind: KindBox, Role: role, Style: style, Children: compact(children)}
}

func Text(role, text string, style Style) *Node {
	return &Node{Kind: KindText, Role: role, Text: text, Style: style}
}

func Image(role, src string, style Style) *Node {
	return &Node{Kind: KindImage, Role: role, Src: src, Style: style}
}

func Shape(role string, style Style) *Node {
	return &Node{Kind: KindShape, Role: role, Style: style}
}

// Append adds non-nil children
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, compact(children)...)
	return n
}

// Find returns every node in the subtree whose role matches, in depth-first order
func (n *Node) Find(role string) []*Node {
	var out []*Node
	n.Walk(func(c *Node) {
		if c.Role == role {
			out = append(out, c)
		}
	})
	return out
}

// Walk visits n and its descendants depth-first
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

func compact(nodes []*Node) []*Node {
	out := nodes[:0:0]
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Merge returns a new style with other's keys layered over s
func (s Style) Merge(other Style) Style {
	out := make(Style, len(s)+len(other))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Px formats a length in pixels
func Px(v float64) string {
	return Num(v) + "px"
}

// Num formats a float with at most three decimals
func Num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

// Pct formats a percentage
func Pct(v float64) string {
	return Num(v) + "%"
}
