package scene

// Kind is the closed set of element types
type Kind string

const (
	KindHeading   Kind = "heading"
	KindBodyText  Kind = "body-text"
	KindCardGrid  Kind = "card-grid"
	KindCodeBlock Kind = "code-block"
	KindMetricRow Kind = "metric-row"
	KindImage     Kind = "image"
	KindQuote     Kind = "quote"
	KindTimeline  Kind = "timeline"
	KindSteps     Kind = "steps"
	KindIconText  Kind = "icon-text"
)

type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeFull   Size = "full"
)

type Emphasis string

const (
	EmphasisPrimary   Emphasis = "primary"
	EmphasisSecondary Emphasis = "secondary"
	EmphasisSubtle    Emphasis = "subtle"
)

// Attrs are the sizing hints shared by every element
type Attrs struct {
	Size     Size
	Emphasis Emphasis
}

// Item is one entry of a list-shaped element
type Item struct {
	Icon        string
	Value       string
	Label       string
	Description string
	ImageURL    string
}

// Element is one typed content block. The set of implementations is closed;
// a new kind needs a new Visitor method, so every renderer has to handle it.
type Element interface {
	Kind() Kind
	Attributes() Attrs
	Accept(v Visitor)
}

// Visitor dispatches over every element kind
type Visitor interface {
	VisitHeading(Heading)
	VisitBodyText(BodyText)
	VisitCardGrid(CardGrid)
	VisitCodeBlock(CodeBlock)
	VisitMetricRow(MetricRow)
	VisitImage(Image)
	VisitQuote(Quote)
	VisitTimeline(Timeline)
	VisitSteps(Steps)
	VisitIconText(IconText)
}

type Heading struct {
	Attrs
	Text string
}

type BodyText struct {
	Attrs
	Text string
}

type CardGrid struct {
	Attrs
	Items []Item
}

type CodeBlock struct {
	Attrs
	Language string
	Lines    []string
}

type MetricRow struct {
	Attrs
	Items []Item
}

type Image struct {
	Attrs
	URL     string
	Caption string
}

type Quote struct {
	Attrs
	Text      string
	Author    string
	Highlight string
}

type Timeline struct {
	Attrs
	Items []Item
}

type Steps struct {
	Attrs
	Items []Item
}

type IconText struct {
	Attrs
	Items []Item
}

func (e Heading) Kind() Kind   { return KindHeading }
func (e BodyText) Kind() Kind  { return KindBodyText }
func (e CardGrid) Kind() Kind  { return KindCardGrid }
func (e CodeBlock) Kind() Kind { return KindCodeBlock }
func (e MetricRow) Kind() Kind { return KindMetricRow }
func (e Image) Kind() Kind     { return KindImage }
func (e Quote) Kind() Kind     { return KindQuote }
func (e Timeline) Kind() Kind  { return KindTimeline }
func (e Steps) Kind() Kind     { return KindSteps }
func (e IconText) Kind() Kind  { return KindIconText }

func (a Attrs) Attributes() Attrs { return a }

func (e Heading) Accept(v Visitor)   { v.VisitHeading(e) }
func (e BodyText) Accept(v Visitor)  { v.VisitBodyText(e) }
func (e CardGrid) Accept(v Visitor)  { v.VisitCardGrid(e) }
func (e CodeBlock) Accept(v Visitor) { v.VisitCodeBlock(e) }
func (e MetricRow) Accept(v Visitor) { v.VisitMetricRow(e) }
func (e Image) Accept(v Visitor)     { v.VisitImage(e) }
func (e Quote) Accept(v Visitor)     { v.VisitQuote(e) }
func (e Timeline) Accept(v Visitor)  { v.VisitTimeline(e) }
func (e Steps) Accept(v Visitor)     { v.VisitSteps(e) }
func (e IconText) Accept(v Visitor)  { v.VisitIconText(e) }
