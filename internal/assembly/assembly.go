// Package assembly builds the visual tree of one scene at one frame.
package assembly

import (
	"strings"

	"github.com/ivlev/blog2video/internal/layout"
	"github.com/ivlev/blog2video/internal/motion"
	"github.com/ivlev/blog2video/internal/node"
	"github.com/ivlev/blog2video/internal/render"
	"github.com/ivlev/blog2video/internal/scene"
	"github.com/ivlev/blog2video/internal/style"
	"github.com/ivlev/blog2video/internal/theme"
)

// PortraitAspect is the only aspect ratio rendered in portrait
const PortraitAspect = "9:16"

// DecorationFade is the number of frames ambient decorations take to fade in
const DecorationFade = 15

// Input is everything one render call depends on
type Input struct {
	Config      scene.LayoutConfig
	Theme       theme.Theme
	Title       string
	Narration   string
	ImageURL    string
	AspectRatio string
	Frame       int
	FPS         int
}

func (in Input) Portrait() bool {
	return in.AspectRatio == PortraitAspect
}

// Prepared is the scene content after backfill and image injection
type Prepared struct {
	Elements   []scene.Element
	Background *scene.Background
}

// Prepare backfills element content from the scene fields and decides where
// the scene image goes. The input config is never modified.
func Prepare(in Input) Prepared {
	cfg := in.Config
	sceneImage := strings.TrimSpace(in.ImageURL)
	usable := scene.IsUsableImageURL(sceneImage)

	elements := make([]scene.Element, 0, len(cfg.Elements)+1)
	hasImage := false
	for _, el := range cfg.Elements {
		switch e := el.(type) {
		case scene.Heading:
			if e.Text == "" {
				e.Text = in.Title
			}
			el = e
		case scene.BodyText:
			if e.Text == "" {
				e.Text = in.Narration
			}
			el = e
		case scene.Image:
			if !scene.IsUsableImageURL(e.URL) && usable {
				e.URL = sceneImage
			}
			hasImage = true
			el = e
		case nil:
			continue
		}
		elements = append(elements, el)
	}

	bg := cfg.Background.Clone()
	bgIsImage := bg != nil && bg.Type == scene.BackgroundImage

	if usable && !hasImage && !bgIsImage {
		switch {
		case cfg.Arrangement.IsSplit():
			elements = append(elements, scene.Image{
				Attrs: scene.Attrs{Emphasis: scene.EmphasisSecondary},
				URL:   sceneImage,
			})
		case cfg.Arrangement.IsVertical():
			at := min(1, len(elements))
			img := scene.Image{
				Attrs: scene.Attrs{Size: scene.SizeLarge, Emphasis: scene.EmphasisSecondary},
				URL:   sceneImage,
			}
			elements = append(elements[:at], append([]scene.Element{img}, elements[at:]...)...)
		default:
			bg = &scene.Background{Type: scene.BackgroundImage, ImageURL: sceneImage}
		}
	}

	if bgIsImage && !scene.IsUsableImageURL(bg.ImageURL) && usable {
		bg.ImageURL = sceneImage
	}

	return Prepared{Elements: elements, Background: bg}
}

// Assemble renders the scene at in.Frame: background, ambient decorations,
// then the arranged elements.
func Assemble(in Input) *node.Node {
	portrait := in.Portrait()
	bundle := style.Resolve(in.Theme, portrait)
	anim := style.ResolveAnimation(bundle.Style)
	container := layout.Resolve(in.Config.Arrangement, portrait)
	prepared := Prepare(in)

	root := node.Box("scene", node.Style{
		"position":   "relative",
		"width":      "100%",
		"height":     "100%",
		"overflow":   "hidden",
		"fontFamily": bundle.BodyFont,
		"color":      bundle.TextColor,
	})
	root.Append(background(bundle, prepared.Background)...)

	decorations := bundle.Decorations
	if in.Config.Decorations != nil {
		decorations = bundle.DecorationsFor(in.Config.Decorations)
	}
	fade := motion.Track{{Frame: 0, Value: 0}, {Frame: DecorationFade, Value: 1}}.
		Eval(float64(in.Frame), motion.EaseInOutCubic)
	for _, d := range decorations {
		root.Append(withMotion(node.Shape("decoration-"+string(d.Kind), d.Style), &node.Motion{Opacity: fade}))
	}

	ctx := render.Context{
		Bundle:              bundle,
		Motion:              anim,
		Frame:               in.Frame,
		FPS:                 in.FPS,
		Portrait:            portrait,
		Arrangement:         container.Arrangement,
		TitleFontSize:       in.Config.TitleFontSize,
		DescriptionFontSize: in.Config.DescriptionFontSize,
	}

	content := node.Box("content", container.Style().Merge(node.Style{
		"position":  "relative",
		"padding":   node.Px(bundle.ContentPadding),
		"boxSizing": "border-box",
	}))

	if container.Split {
		content.Append(zones(ctx, bundle, container, prepared.Elements)...)
	} else {
		grid := container.Display == "grid"
		for i, el := range prepared.Elements {
			content.Append(slot(ctx, i, el, grid))
		}
	}
	return root.Append(content)
}

func withMotion(n *node.Node, m *node.Motion) *node.Node {
	n.Motion = m
	return n
}

// slot renders the element at position i wrapped in its own positioned node
func slot(ctx render.Context, i int, el scene.Element, grid bool) *node.Node {
	ctx.Index = i
	out := render.Element(el, ctx)
	if out == nil {
		return nil
	}
	s := node.Style{
		"position":       "relative",
		"display":        "flex",
		"flexDirection":  "column",
		"alignItems":     ctx.Bundle.AlignItems,
		"justifyContent": "center",
	}
	if grid {
		switch el.Kind() {
		case scene.KindHeading, scene.KindBodyText:
			s["gridColumn"] = "1 / -1"
		}
	}
	return node.Box("slot-"+string(el.Kind()), s, out)
}

// zones splits elements between the primary side and the secondary side of a
// split arrangement. Images go to the secondary side; without images the last
// element does when there is more than one.
func zones(ctx render.Context, b style.Bundle, c layout.Container, elements []scene.Element) []*node.Node {
	secondary := make([]bool, len(elements))
	found := false
	for i, el := range elements {
		if el.Kind() == scene.KindImage {
			secondary[i] = true
			found = true
		}
	}
	if !found && len(elements) > 1 {
		secondary[len(elements)-1] = true
	}

	zoneStyle := node.Style{
		"display":        "flex",
		"flexDirection":  "column",
		"justifyContent": "center",
		"alignItems":     b.AlignItems,
		"gap":            node.Px(b.GridGap),
		"minWidth":       "0px",
	}
	primary := node.Box("zone-primary", zoneStyle)
	other := node.Box("zone-secondary", zoneStyle.Merge(node.Style{"alignItems": "center"}))
	for i, el := range elements {
		if secondary[i] {
			other.Append(slot(ctx, i, el, false))
		} else {
			primary.Append(slot(ctx, i, el, false))
		}
	}

	if len(other.Children) == 0 {
		return []*node.Node{primary}
	}
	if c.SecondaryFirst {
		return []*node.Node{other, primary}
	}
	return []*node.Node{primary, other}
}
