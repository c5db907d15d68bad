package layout

import (
	"context"

	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/pptx"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/theme"
)

// buildError renders the per-slide fallback: a pale warning background
// with a centered warning glyph, the failing slide's title, and the
// error description in Record.Content. Never routed from normal input.
func (b *Builders) buildError(_ context.Context, rec Record, th theme.Theme) (*pptx.Canvas, error) {
	c := pptx.NewCanvas()
	c.SetBackground(paleTint(th.Warning).Hex())

	c.Add(&pptx.TextBox{
		Name: "Warning Glyph",
		X:    pptx.Inches(5.5), Y: pptx.Inches(2),
		W: pptx.Inches(2.33), H: pptx.Inches(1),
		Paragraphs: []pptx.Paragraph{{
			Align: "ctr",
			Runs:  []pptx.Run{{Text: "⚠", SizePt: 72, Color: th.Warning.Hex()}},
		}},
	})

	msg := &pptx.TextBox{
		Name: "Error Message",
		X:    pptx.Inches(2), Y: pptx.Inches(3.5),
		W: pptx.Inches(9.33), H: pptx.Inches(2),
		WordWrap: true,
	}
	if rec.Title != "" {
		msg.Paragraphs = append(msg.Paragraphs, pptx.Paragraph{
			Align: "ctr",
			Runs:  []pptx.Run{{Text: rec.Title, SizePt: 20, Bold: true, Color: th.Error.Hex()}},
		})
	}
	msg.Paragraphs = append(msg.Paragraphs, pptx.Paragraph{
		Align: "ctr",
		Runs:  []pptx.Run{{Text: "Error generating slide: " + rec.Content, SizePt: 18, Color: th.Error.Hex()}},
	})
	c.Add(msg)

	return c, nil
}
