package scene

import (
	"fmt"
	"strings"
)

// RawLayout is the loosely typed layout payload produced by scene authoring
type RawLayout struct {
	Arrangement         string       `yaml:"arrangement" json:"arrangement"`
	Elements            []RawElement `yaml:"elements" json:"elements"`
	Background          *Background  `yaml:"background,omitempty" json:"background,omitempty"`
	Decorations         []string     `yaml:"decorations,omitempty" json:"decorations,omitempty"`
	TitleFontSize       float64      `yaml:"titleFontSize,omitempty" json:"titleFontSize,omitempty"`
	DescriptionFontSize float64      `yaml:"descriptionFontSize,omitempty" json:"descriptionFontSize,omitempty"`
}

type RawElement struct {
	Type     string     `yaml:"type" json:"type"`
	Content  RawContent `yaml:"content,omitempty" json:"content,omitempty"`
	Size     string     `yaml:"size,omitempty" json:"size,omitempty"`
	Emphasis string     `yaml:"emphasis,omitempty" json:"emphasis,omitempty"`
}

type RawContent struct {
	Text            string    `yaml:"text,omitempty" json:"text,omitempty"`
	Items           []RawItem `yaml:"items,omitempty" json:"items,omitempty"`
	CodeLines       []string  `yaml:"codeLines,omitempty" json:"codeLines,omitempty"`
	Language        string    `yaml:"language,omitempty" json:"language,omitempty"`
	Quote           string    `yaml:"quote,omitempty" json:"quote,omitempty"`
	Author          string    `yaml:"author,omitempty" json:"author,omitempty"`
	HighlightPhrase string    `yaml:"highlightPhrase,omitempty" json:"highlightPhrase,omitempty"`
	ImageURL        string    `yaml:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Caption         string    `yaml:"caption,omitempty" json:"caption,omitempty"`
}

// RawItem accepts the field spellings legacy templates emit
type RawItem struct {
	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Trend       string `yaml:"trend,omitempty" json:"trend,omitempty"`
	Value       string `yaml:"value,omitempty" json:"value,omitempty"`
	Label       string `yaml:"label,omitempty" json:"label,omitempty"`
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Text        string `yaml:"text,omitempty" json:"text,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	ImageURL    string `yaml:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

// Normalize converts a raw payload into a typed LayoutConfig. Elements of an
// unknown type are dropped and described in the returned slice.
func Normalize(raw RawLayout) (LayoutConfig, []string) {
	cfg := LayoutConfig{
		Arrangement:         Arrangement(strings.TrimSpace(raw.Arrangement)),
		TitleFontSize:       raw.TitleFontSize,
		DescriptionFontSize: raw.DescriptionFontSize,
	}
	cfg.Background = raw.Background.Clone()
	if raw.Decorations != nil {
		cfg.Decorations = make([]Decoration, 0, len(raw.Decorations))
		for _, d := range raw.Decorations {
			cfg.Decorations = append(cfg.Decorations, Decoration(strings.TrimSpace(d)))
		}
	}

	var dropped []string
	for i, re := range raw.Elements {
		el, ok := NormalizeElement(re)
		if !ok {
			dropped = append(dropped, fmt.Sprintf("element %d: unknown type %q", i, re.Type))
			continue
		}
		cfg.Elements = append(cfg.Elements, el)
	}

	return cfg, dropped
}

// NormalizeElement builds one typed element; ok is false for unknown types
func NormalizeElement(re RawElement) (Element, bool) {
	attrs := Attrs{Size: normalizeSize(re.Size), Emphasis: normalizeEmphasis(re.Emphasis)}
	c := re.Content

	switch Kind(strings.TrimSpace(re.Type)) {
	case KindHeading:
		return Heading{Attrs: attrs, Text: c.Text}, true
	case KindBodyText:
		return BodyText{Attrs: attrs, Text: c.Text}, true
	case KindCardGrid:
		return CardGrid{Attrs: attrs, Items: normalizeItems(c.Items)}, true
	case KindCodeBlock:
		lines := c.CodeLines
		if len(lines) == 0 && c.Text != "" {
			lines = strings.Split(c.Text, "\n")
		}
		return CodeBlock{Attrs: attrs, Language: c.Language, Lines: copyStrings(lines)}, true
	case KindMetricRow:
		return MetricRow{Attrs: attrs, Items: normalizeItems(c.Items)}, true
	case KindImage:
		return Image{Attrs: attrs, URL: strings.TrimSpace(c.ImageURL), Caption: c.Caption}, true
	case KindQuote:
		return Quote{Attrs: attrs, Text: firstNonEmpty(c.Quote, c.Text), Author: c.Author, Highlight: c.HighlightPhrase}, true
	case KindTimeline:
		return Timeline{Attrs: attrs, Items: normalizeItems(c.Items)}, true
	case KindSteps:
		return Steps{Attrs: attrs, Items: normalizeItems(c.Items)}, true
	case KindIconText:
		return IconText{Attrs: attrs, Items: normalizeItems(c.Items)}, true
	}
	return nil, false
}

func normalizeItems(raw []RawItem) []Item {
	if len(raw) == 0 {
		return nil
	}
	items := make([]Item, 0, len(raw))
	for _, r := range raw {
		label := firstNonEmpty(r.Label, r.Title, r.Text)
		desc := r.Description
		if desc == "" && r.Text != "" && label != r.Text {
			desc = r.Text
		}
		items = append(items, Item{
			Icon:        firstNonEmpty(r.Icon, r.Trend),
			Value:       r.Value,
			Label:       label,
			Description: desc,
			ImageURL:    strings.TrimSpace(r.ImageURL),
		})
	}
	return items
}

func normalizeSize(s string) Size {
	switch sz := Size(strings.ToLower(strings.TrimSpace(s))); sz {
	case SizeSmall, SizeMedium, SizeLarge, SizeFull:
		return sz
	}
	return ""
}

func normalizeEmphasis(s string) Emphasis {
	switch e := Emphasis(strings.ToLower(strings.TrimSpace(s))); e {
	case EmphasisPrimary, EmphasisSecondary, EmphasisSubtle:
		return e
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
