package pptx

// Shape is any visual element placed on a canvas.
type Shape interface {
	shape()
}

// Fill is a solid color fill. AlphaPct below 100 makes it translucent.
type Fill struct {
	Color    string
	AlphaPct float64
}

// Border is a solid outline.
type Border struct {
	Color   string
	WidthPt float64
}

// Run is a styled span of text within a paragraph.
type Run struct {
	Text   string
	SizePt float64
	Bold   bool
	Italic bool
	Color  string
	Font   string
}

// Paragraph is one line block inside a text box. Align takes the
// DrawingML values "l", "ctr" and "r"; empty means left.
type Paragraph struct {
	Align string
	Runs  []Run
}

// TextBox is a borderless free text frame. Anchor takes the bodyPr
// values "t", "ctr" and "b"; empty means top.
type TextBox struct {
	Name       string
	X, Y, W, H int64
	Anchor     string
	WordWrap   bool
	Paragraphs []Paragraph
}

func (*TextBox) shape() {}

// AutoShape is a preset geometry such as "rect", "roundRect" or
// "ellipse", optionally carrying centered text.
type AutoShape struct {
	Name       string
	Preset     string
	X, Y, W, H int64
	Fill       *Fill
	Border     *Border
	Anchor     string
	Paragraphs []Paragraph
}

func (*AutoShape) shape() {}

// Line is a straight connector.
type Line struct {
	Name       string
	X, Y, W, H int64
	Color      string
	WidthPt    float64
}

func (*Line) shape() {}

// Picture embeds image bytes. Format is the decoded image format name
// such as "png" or "jpeg".
type Picture struct {
	Name       string
	X, Y, W, H int64
	Data       []byte
	Format     string
}

func (*Picture) shape() {}

// TableCell is one cell of a table shape.
type TableCell struct {
	Text   string
	SizePt float64
	Bold   bool
	Color  string
	Fill   string
}

// Table is a uniform grid of cells.
type Table struct {
	Name       string
	X, Y, W, H int64
	Rows       [][]TableCell
}

func (*Table) shape() {}

// ChartSeries is one named value series of a chart.
type ChartSeries struct {
	Name   string
	Values []float64
}

// Chart is a clustered bar chart rendered as a separate chart part.
type Chart struct {
	Name       string
	X, Y, W, H int64
	Categories []string
	Series     []ChartSeries
}

func (*Chart) shape() {}

// Canvas is one slide surface. Shapes are painted in insertion order;
// the background fill is a separate slide property and always sits
// beneath every shape.
type Canvas struct {
	background string
	shapes     []Shape
}

func NewCanvas() *Canvas {
	return &Canvas{}
}

// SetBackground fills the whole slide with a solid color.
func (c *Canvas) SetBackground(hexColor string) {
	c.background = hexColor
}

func (c *Canvas) Background() string {
	return c.background
}

func (c *Canvas) Add(s Shape) {
	c.shapes = append(c.shapes, s)
}

func (c *Canvas) Shapes() []Shape {
	return c.shapes
}
