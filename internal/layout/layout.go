package layout

import (
	"strings"

	"github.com/ivlev/blog2video/internal/node"
	"github.com/ivlev/blog2video/internal/scene"
)

// Container is the concrete layout of a scene's content container
type Container struct {
	Arrangement scene.Arrangement // resolved, never unknown
	Display     string            // "flex" | "grid"
	Direction   string            // flex direction, "" for grid
	Columns     []string          // grid-template-columns tracks
	Rows        []string          // grid-template-rows tracks, nil for auto
	AlignItems  string
	Justify     string
	Gap         float64

	// Split containers hold two zones: primary content and its secondary side
	Split bool
	// SecondaryFirst places the secondary zone before the primary one
	SecondaryFirst bool
}

// ColumnCount returns the number of active top-level columns
func (c Container) ColumnCount() int {
	if c.Display != "grid" {
		if c.Direction == "row" || c.Direction == "row-reverse" {
			return 2
		}
		return 1
	}
	if len(c.Columns) == 0 {
		return 1
	}
	return len(c.Columns)
}

// Style renders the container as a style property bag
func (c Container) Style() node.Style {
	s := node.Style{
		"display":    c.Display,
		"alignItems": c.AlignItems,
		"gap":        node.Px(c.Gap),
		"width":      "100%",
		"height":     "100%",
	}
	if c.Justify != "" {
		s["justifyContent"] = c.Justify
	}
	if c.Display == "grid" {
		s["gridTemplateColumns"] = strings.Join(c.Columns, " ")
		if len(c.Rows) > 0 {
			s["gridTemplateRows"] = strings.Join(c.Rows, " ")
		}
	} else {
		s["flexDirection"] = c.Direction
	}
	return s
}

// Resolve maps an arrangement to its container. Portrait collapses every
// multi-column arrangement to one column; unknown values resolve as full-center.
func Resolve(a scene.Arrangement, portrait bool) Container {
	gap := 48.0
	if portrait {
		gap = 32
	}

	switch a {
	case scene.SplitLeft, scene.SplitRight, scene.AsymmetricLeft, scene.AsymmetricRight:
		if portrait {
			return Container{
				Arrangement: a,
				Display:     "grid",
				Columns:     []string{"1fr"},
				Rows:        []string{"auto", "auto"},
				AlignItems:  "center",
				Justify:     "center",
				Gap:         gap,
				Split:       true,
			}
		}
		c := Container{
			Arrangement: a,
			Display:     "grid",
			Rows:        []string{"1fr"},
			AlignItems:  "center",
			Gap:         gap,
			Split:       true,
		}
		switch a {
		case scene.SplitLeft:
			c.Columns = []string{"55fr", "45fr"}
		case scene.SplitRight:
			c.Columns = []string{"45fr", "55fr"}
			c.SecondaryFirst = true
		case scene.AsymmetricLeft:
			c.Columns = []string{"2fr", "1fr"}
		case scene.AsymmetricRight:
			c.Columns = []string{"1fr", "2fr"}
			c.SecondaryFirst = true
		}
		return c

	case scene.Grid2x2, scene.Grid3:
		gap = 32
		if portrait {
			return Container{
				Arrangement: a,
				Display:     "grid",
				Columns:     []string{"1fr"},
				AlignItems:  "stretch",
				Justify:     "center",
				Gap:         24,
			}
		}
		c := Container{
			Arrangement: a,
			Display:     "grid",
			AlignItems:  "stretch",
			Justify:     "center",
			Gap:         gap,
		}
		if a == scene.Grid2x2 {
			c.Columns = []string{"1fr", "1fr"}
			c.Rows = []string{"auto", "auto"}
		} else {
			c.Columns = []string{"1fr", "1fr", "1fr"}
		}
		return c

	case scene.TopBottom:
		return Container{
			Arrangement: a,
			Display:     "flex",
			Direction:   "column",
			AlignItems:  "stretch",
			Justify:     "space-between",
			Gap:         gap,
		}

	case scene.Stacked:
		return Container{
			Arrangement: a,
			Display:     "flex",
			Direction:   "column",
			AlignItems:  "stretch",
			Justify:     "flex-start",
			Gap:         24,
		}
	}

	return Container{
		Arrangement: scene.FullCenter,
		Display:     "flex",
		Direction:   "column",
		AlignItems:  "center",
		Justify:     "center",
		Gap:         24,
	}
}
