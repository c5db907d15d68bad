package layout

import (
	"context"
	"strconv"
	"strings"

	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/content"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/pptx"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/theme"
)

// buildSplit renders an image on the left half and a bordered content
// card on the right. A failed image download omits the picture with no
// placeholder.
func (b *Builders) buildSplit(ctx context.Context, rec Record, th theme.Theme) (*pptx.Canvas, error) {
	c := pptx.NewCanvas()
	c.SetBackground(th.Background.Hex())
	addTitle(c, rec.Title, th)

	if img := b.fetchImage(ctx, rec.Image); img != nil {
		c.Add(&pptx.Picture{
			Name: "Split Image",
			X:    pptx.Inches(0.5), Y: pptx.Inches(2),
			W: pptx.Inches(5), H: pptx.Inches(4.5),
			Data:   img.Data,
			Format: img.Format,
		})
	}

	c.Add(&pptx.AutoShape{
		Name:   "Content Card",
		Preset: "roundRect",
		X:      pptx.Inches(6), Y: pptx.Inches(2),
		W: pptx.Inches(6.8), H: pptx.Inches(4.5),
		Fill:   &pptx.Fill{Color: th.Card.Hex()},
		Border: &pptx.Border{Color: th.Accent.Hex(), WidthPt: 2},
		Paragraphs: []pptx.Paragraph{{
			Runs: []pptx.Run{{Text: content.Clean(rec.Content), SizePt: bodySize, Color: th.Text.Hex()}},
		}},
	})

	return c, nil
}

// Grid slides use a fixed dark navy scheme regardless of theme so the
// white numbers and light text stay legible.
const (
	gridBackground = "141E30"
	gridCardFill   = "1E2A3E"
	gridCardBorder = "505A6E"
	gridText       = "DCDCDC"
)

// buildGrid renders up to three numbered cards in a row on a dark
// navy background.
func (b *Builders) buildGrid(_ context.Context, rec Record, th theme.Theme) (*pptx.Canvas, error) {
	c := pptx.NewCanvas()
	c.SetBackground(gridBackground)

	c.Add(&pptx.TextBox{
		Name: "Title",
		X:    pptx.Inches(0.5), Y: pptx.Inches(0.6),
		W: pptx.Inches(12), H: pptx.Inches(0.8),
		WordWrap: true,
		Paragraphs: []pptx.Paragraph{{
			Runs: []pptx.Run{{Text: rec.Title, SizePt: 32, Bold: true, Color: "FFFFFF"}},
		}},
	})

	items := content.ExtractItems(rec.Content)

	cardWidth := pptx.Inches(4.0)
	cardHeight := pptx.Inches(2.5)
	gap := pptx.Inches(0.3)
	startX := pptx.Inches(0.5)
	startY := pptx.Inches(2.5)

	n := len(items)
	if n > 3 {
		n = 3
	}
	for idx := 0; idx < n; idx++ {
		x := startX + int64(idx)*(cardWidth+gap)

		addRoundedCard(c, x, startY, cardWidth, cardHeight, gridCardFill, gridCardBorder, 1)

		addBadge(c,
			x+pptx.Inches(0.2), startY+pptx.Inches(0.2), pptx.Inches(0.6),
			strconv.Itoa(idx+1), th.Accent.Hex(), "FFFFFF", 20)

		c.Add(&pptx.TextBox{
			Name: "Card Text",
			X:    x + pptx.Inches(0.3), Y: startY + pptx.Inches(0.9),
			W: cardWidth - pptx.Inches(0.6), H: cardHeight - pptx.Inches(1.0),
			WordWrap: true,
			Paragraphs: []pptx.Paragraph{{
				Runs: []pptx.Run{{Text: items[idx], SizePt: 12, Color: gridText}},
			}},
		})
	}

	return c, nil
}

// buildComparison renders two option panels side by side, items split
// at the midpoint, with distinct colored header bands.
func (b *Builders) buildComparison(_ context.Context, rec Record, th theme.Theme) (*pptx.Canvas, error) {
	c := pptx.NewCanvas()
	c.SetBackground(th.Background.Hex())
	addTitle(c, rec.Title, th)

	items := content.ExtractItems(rec.Content)
	mid := len(items) / 2
	left := items[:mid]
	right := items[mid:]

	b.addComparisonPanel(c, th, pptx.Inches(0.5), th.Success.Hex(), "✓ Option A", left)
	b.addComparisonPanel(c, th, pptx.Inches(7.3), th.Accent.Hex(), "→ Option B", right)

	return c, nil
}

func (b *Builders) addComparisonPanel(c *pptx.Canvas, th theme.Theme, x int64, bandColor, header string, items []string) {
	addRoundedCard(c, x, pptx.Inches(2), pptx.Inches(5.5), pptx.Inches(4.5), th.Card.Hex(), bandColor, 3)

	c.Add(&pptx.AutoShape{
		Name:   "Panel Header",
		Preset: "rect",
		X:      x, Y: pptx.Inches(2),
		W: pptx.Inches(5.5), H: pptx.Inches(0.6),
		Fill:   &pptx.Fill{Color: bandColor},
		Anchor: "ctr",
		Paragraphs: []pptx.Paragraph{{
			Align: "ctr",
			Runs:  []pptx.Run{{Text: header, SizePt: 20, Bold: true, Color: th.Background.Hex()}},
		}},
	})

	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = strings.ReplaceAll(item, "*", "•")
	}
	c.Add(textLines("Panel Content",
		x+pptx.Inches(0.2), pptx.Inches(2.8),
		pptx.Inches(5.1), pptx.Inches(3.5),
		lines, smallSize, th.Text.Hex()))
}
