package layout

import (
	"context"

	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/content"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/pptx"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/theme"
)

// buildHero renders the full-bleed opening slide. With a usable image
// the whole canvas is covered by it plus a half-opaque black overlay
// and white text; otherwise the theme background gets decorative
// accent circles and the theme text color.
func (b *Builders) buildHero(ctx context.Context, rec Record, th theme.Theme) (*pptx.Canvas, error) {
	c := pptx.NewCanvas()

	textColor := th.Text.Hex()
	img := b.fetchImage(ctx, rec.Image)

	if img != nil {
		c.Add(&pptx.Picture{
			Name: "Hero Image",
			X:    0, Y: 0,
			W: pptx.SlideWidthEMU, H: pptx.SlideHeightEMU,
			Data:   img.Data,
			Format: img.Format,
		})
		c.Add(&pptx.AutoShape{
			Name:   "Overlay",
			Preset: "rect",
			X:      0, Y: 0,
			W: pptx.SlideWidthEMU, H: pptx.SlideHeightEMU,
			Fill: &pptx.Fill{Color: "000000", AlphaPct: 50},
		})
		textColor = "FFFFFF"
	} else {
		c.SetBackground(th.Background.Hex())

		c.Add(&pptx.AutoShape{
			Name:   "Band",
			Preset: "rect",
			X:      0, Y: pptx.Inches(2),
			W: pptx.SlideWidthEMU, H: pptx.Inches(4),
			Fill: &pptx.Fill{Color: th.Accent.Hex(), AlphaPct: 15},
		})

		addCircle(c, pptx.Inches(-2), pptx.Inches(-2), pptx.Inches(6), th.Accent.Hex(), 85)
		addCircle(c, pptx.Inches(10), pptx.Inches(4), pptx.Inches(5), th.Accent.Hex(), 85)
		addCircle(c, pptx.Inches(11), pptx.Inches(1), pptx.Inches(2), th.AccentLight.Hex(), 80)
	}

	c.Add(&pptx.TextBox{
		Name: "Hero Title",
		X:    pptx.Inches(0.5), Y: pptx.Inches(0.8),
		W: pptx.Inches(12), H: pptx.Inches(1.2),
		WordWrap: true,
		Paragraphs: []pptx.Paragraph{{
			Align: "ctr",
			Runs:  []pptx.Run{{Text: rec.Title, SizePt: 44, Bold: true, Color: textColor}},
		}},
	})

	if rec.Content != "" {
		body := content.Clean(rec.Content)
		c.Add(&pptx.TextBox{
			Name: "Hero Body",
			X:    pptx.Inches(1), Y: pptx.Inches(2),
			W: pptx.Inches(11), H: pptx.Inches(4.5),
			WordWrap: true,
			Paragraphs: []pptx.Paragraph{{
				Align: "ctr",
				Runs:  []pptx.Run{{Text: body, SizePt: bodySize, Color: textColor}},
			}},
		})
	}

	return c, nil
}
