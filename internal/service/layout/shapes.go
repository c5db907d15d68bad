package layout

import (
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/pptx"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/theme"
)

// Shared font sizes in points.
const (
	headingSize = 36
	bodySize    = 16
	smallSize   = 13
	captionSize = 11
)

// addTitle places the standard heading at the top of a canvas.
func addTitle(c *pptx.Canvas, title string, th theme.Theme) {
	c.Add(&pptx.TextBox{
		Name:     "Title",
		X:        pptx.Inches(0.5),
		Y:        pptx.Inches(0.3),
		W:        pptx.Inches(12.33),
		H:        pptx.Inches(1),
		WordWrap: true,
		Paragraphs: []pptx.Paragraph{{
			Runs: []pptx.Run{{Text: title, SizePt: headingSize, Bold: true, Color: th.Text.Hex()}},
		}},
	})
}

// addRoundedCard places a rounded rectangle with a fill and border.
func addRoundedCard(c *pptx.Canvas, x, y, w, h int64, fill, border string, borderPt float64) {
	c.Add(&pptx.AutoShape{
		Name:   "Card",
		Preset: "roundRect",
		X:      x, Y: y, W: w, H: h,
		Fill:   &pptx.Fill{Color: fill},
		Border: &pptx.Border{Color: border, WidthPt: borderPt},
	})
}

// addCircle places an ellipse with optional translucency. alphaPct is
// opacity: 100 draws a solid circle.
func addCircle(c *pptx.Canvas, x, y, d int64, color string, alphaPct float64) {
	c.Add(&pptx.AutoShape{
		Name:   "Circle",
		Preset: "ellipse",
		X:      x, Y: y, W: d, H: d,
		Fill: &pptx.Fill{Color: color, AlphaPct: alphaPct},
	})
}

// addBadge places a numbered circular badge.
func addBadge(c *pptx.Canvas, x, y, d int64, number, fill, textColor string, sizePt float64) {
	c.Add(&pptx.AutoShape{
		Name:   "Badge",
		Preset: "ellipse",
		X:      x, Y: y, W: d, H: d,
		Fill:   &pptx.Fill{Color: fill},
		Anchor: "ctr",
		Paragraphs: []pptx.Paragraph{{
			Align: "ctr",
			Runs:  []pptx.Run{{Text: number, SizePt: sizePt, Bold: true, Color: textColor}},
		}},
	})
}

// addConnector draws a straight line between two points.
func addConnector(c *pptx.Canvas, x1, y1, x2, y2 int64, color string, widthPt float64) {
	c.Add(&pptx.Line{
		Name: "Connector",
		X:    x1, Y: y1,
		W: x2 - x1, H: y2 - y1,
		Color:   color,
		WidthPt: widthPt,
	})
}

// textLines renders lines as one paragraph each inside a text box.
func textLines(name string, x, y, w, h int64, lines []string, sizePt float64, color string) *pptx.TextBox {
	paras := make([]pptx.Paragraph, 0, len(lines))
	for _, line := range lines {
		paras = append(paras, pptx.Paragraph{
			Runs: []pptx.Run{{Text: line, SizePt: sizePt, Color: color}},
		})
	}
	return &pptx.TextBox{
		Name: name,
		X:    x, Y: y, W: w, H: h,
		WordWrap:   true,
		Paragraphs: paras,
	}
}

// paleTint blends a color toward white, used for soft backgrounds.
func paleTint(c theme.Color) theme.Color {
	blend := func(v uint8) uint8 {
		return uint8(int(v) + (255-int(v))*85/100)
	}
	return theme.Color{R: blend(c.R), G: blend(c.G), B: blend(c.B)}
}
