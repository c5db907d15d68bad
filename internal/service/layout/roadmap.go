package layout

import (
	"context"
	"strconv"
	"strings"

	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/content"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/pptx"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/theme"
)

// maxRoadmapSteps caps the vertical timeline at what fits the canvas.
const maxRoadmapSteps = 6

// defaultRoadmapSteps fills a roadmap slide whose content yields no
// items, so the layout never renders zero nodes.
var defaultRoadmapSteps = []string{
	"Research Phase: Analyze requirements and gather data.",
	"Planning Stage: Create detailed roadmap and timeline.",
	"Development: Build core features and functionality.",
	"Testing: Quality assurance and bug fixes.",
	"Launch: Deploy to production environment.",
	"Optimization: Monitor performance and improve.",
}

// buildRoadmap renders a vertical timeline of numbered circles joined
// by a connecting line, one step per extracted item. Items past the
// cap are dropped; empty content falls back to the default steps.
func (b *Builders) buildRoadmap(_ context.Context, rec Record, th theme.Theme) (*pptx.Canvas, error) {
	c := pptx.NewCanvas()
	c.SetBackground(th.Background.Hex())
	addTitle(c, rec.Title, th)

	items := content.ExtractItems(rec.Content)
	if len(items) == 0 {
		items = defaultRoadmapSteps
	}
	if len(items) > maxRoadmapSteps {
		items = items[:maxRoadmapSteps]
	}

	circleDiameter := pptx.Inches(0.6)
	circleX := pptx.Inches(1.5)
	startY := pptx.Inches(2.2)
	verticalGap := pptx.Inches(1.0)
	textX := pptx.Inches(2.5)
	textWidth := pptx.Inches(9.5)

	accent := th.Accent.Hex()

	if len(items) > 1 {
		centerX := circleX + circleDiameter/2
		lineStartY := startY + circleDiameter/2
		lineEndY := startY + int64(len(items)-1)*verticalGap + circleDiameter/2
		addConnector(c, centerX, lineStartY, centerX, lineEndY, accent, 5.76)
	}

	for i, item := range items {
		y := startY + int64(i)*verticalGap

		addBadge(c, circleX, y, circleDiameter, strconv.Itoa(i+1), accent, "FFFFFF", 20)

		box := &pptx.TextBox{
			Name: "Step",
			X:    textX, Y: y,
			W: textWidth, H: circleDiameter,
			WordWrap: true,
			Anchor:   "ctr",
		}

		// A colon splits a step into a bold heading and a description.
		if head, desc, ok := strings.Cut(item, ":"); ok {
			box.Paragraphs = append(box.Paragraphs, pptx.Paragraph{
				Runs: []pptx.Run{{Text: strings.TrimSpace(head), SizePt: 16, Bold: true, Color: th.Text.Hex()}},
			})
			if d := strings.TrimSpace(desc); d != "" {
				box.Paragraphs = append(box.Paragraphs, pptx.Paragraph{
					Runs: []pptx.Run{{Text: d, SizePt: 12, Color: "646464"}},
				})
			}
		} else {
			box.Paragraphs = append(box.Paragraphs, pptx.Paragraph{
				Runs: []pptx.Run{{Text: item, SizePt: 14, Color: th.Text.Hex()}},
			})
		}

		c.Add(box)
	}

	return c, nil
}
