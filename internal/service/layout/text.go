package layout

import (
	"context"
	"strings"

	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/content"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/pptx"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/theme"
)

// buildQuote renders a large decorative quotation glyph, the centered
// italic quote body and a right-aligned attribution when a title is
// supplied.
func (b *Builders) buildQuote(_ context.Context, rec Record, th theme.Theme) (*pptx.Canvas, error) {
	c := pptx.NewCanvas()
	c.SetBackground(th.Background.Hex())

	c.Add(&pptx.TextBox{
		Name: "Quote Mark",
		X:    pptx.Inches(1), Y: pptx.Inches(1),
		W: pptx.Inches(2), H: pptx.Inches(2),
		Anchor: "ctr",
		Paragraphs: []pptx.Paragraph{{
			Runs: []pptx.Run{{Text: `"`, SizePt: 120, Bold: true, Color: th.Accent.Hex()}},
		}},
	})

	c.Add(&pptx.TextBox{
		Name: "Quote Body",
		X:    pptx.Inches(2), Y: pptx.Inches(2.5),
		W: pptx.Inches(9.33), H: pptx.Inches(3),
		WordWrap: true,
		Paragraphs: []pptx.Paragraph{{
			Align: "ctr",
			Runs:  []pptx.Run{{Text: content.Clean(rec.Content), SizePt: 28, Italic: true, Color: th.Text.Hex()}},
		}},
	})

	if rec.Title != "" {
		c.Add(&pptx.TextBox{
			Name: "Attribution",
			X:    pptx.Inches(2), Y: pptx.Inches(5.5),
			W: pptx.Inches(9.33), H: pptx.Inches(1),
			Paragraphs: []pptx.Paragraph{{
				Align: "r",
				Runs:  []pptx.Run{{Text: "— " + rec.Title, SizePt: 20, Color: th.Accent.Hex()}},
			}},
		})
	}

	return c, nil
}

// buildImageFocus renders one large centered image with an italic
// caption beneath. The caption is omitted when content is empty.
func (b *Builders) buildImageFocus(ctx context.Context, rec Record, th theme.Theme) (*pptx.Canvas, error) {
	c := pptx.NewCanvas()
	c.SetBackground(th.Background.Hex())
	addTitle(c, rec.Title, th)

	if img := b.fetchImage(ctx, rec.Image); img != nil {
		c.Add(&pptx.Picture{
			Name: "Focus Image",
			X:    pptx.Inches(1.5), Y: pptx.Inches(2),
			W: pptx.Inches(10), H: pptx.Inches(5),
			Data:   img.Data,
			Format: img.Format,
		})
	}

	if rec.Content != "" {
		c.Add(&pptx.TextBox{
			Name: "Caption",
			X:    pptx.Inches(1.5), Y: pptx.Inches(7),
			W: pptx.Inches(10), H: pptx.Inches(0.3),
			Paragraphs: []pptx.Paragraph{{
				Align: "ctr",
				Runs:  []pptx.Run{{Text: content.Clean(rec.Content), SizePt: captionSize, Italic: true, Color: th.Text.Hex()}},
			}},
		})
	}

	return c, nil
}

// buildTwoColumn splits items at the midpoint into two text columns
// separated by a vertical rule.
func (b *Builders) buildTwoColumn(_ context.Context, rec Record, th theme.Theme) (*pptx.Canvas, error) {
	c := pptx.NewCanvas()
	c.SetBackground(th.Background.Hex())
	addTitle(c, rec.Title, th)

	items := content.ExtractItems(rec.Content)
	mid := len(items) / 2

	c.Add(textLines("Left Column",
		pptx.Inches(0.5), pptx.Inches(2),
		pptx.Inches(6), pptx.Inches(5),
		items[:mid], bodySize, th.Text.Hex()))

	addConnector(c,
		pptx.Inches(6.665), pptx.Inches(2),
		pptx.Inches(6.665), pptx.Inches(7),
		th.Border.Hex(), 2)

	c.Add(textLines("Right Column",
		pptx.Inches(7), pptx.Inches(2),
		pptx.Inches(6), pptx.Inches(5),
		items[mid:], bodySize, th.Text.Hex()))

	return c, nil
}

// buildStandard renders body text beside an optional left image. When
// the image is missing or fails to download the text takes the full
// width.
func (b *Builders) buildStandard(ctx context.Context, rec Record, th theme.Theme) (*pptx.Canvas, error) {
	c := pptx.NewCanvas()
	c.SetBackground(th.Background.Hex())
	addTitle(c, rec.Title, th)

	img := b.fetchImage(ctx, rec.Image)
	if img != nil {
		c.Add(&pptx.Picture{
			Name: "Standard Image",
			X:    pptx.Inches(0.5), Y: pptx.Inches(2.2),
			W: pptx.Inches(5.5), H: pptx.Inches(3.5),
			Data:   img.Data,
			Format: img.Format,
		})
	}

	textX := pptx.Inches(0.8)
	textW := pptx.Inches(11.8)
	if img != nil {
		textX = pptx.Inches(6.3)
		textW = pptx.Inches(6.5)
	}

	lines := strings.Split(content.Clean(rec.Content), "\n")
	var nonEmpty []string
	for _, line := range lines {
		if line != "" {
			nonEmpty = append(nonEmpty, line)
		}
	}

	c.Add(textLines("Body", textX, pptx.Inches(2.2), textW, pptx.Inches(4.5),
		nonEmpty, 14, th.Text.Hex()))

	return c, nil
}
