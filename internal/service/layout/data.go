package layout

import (
	"context"

	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/pptx"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/theme"
)

// Chart and table slides are template layouts. The record schema does
// not carry structured data for them, so they render illustrative
// placeholder structures.

func (b *Builders) buildChart(_ context.Context, rec Record, th theme.Theme) (*pptx.Canvas, error) {
	c := pptx.NewCanvas()
	c.SetBackground(th.Background.Hex())
	addTitle(c, rec.Title, th)

	c.Add(&pptx.Chart{
		Name: "Chart",
		X:    pptx.Inches(1.5), Y: pptx.Inches(2),
		W: pptx.Inches(10), H: pptx.Inches(5),
		Categories: []string{"Q1", "Q2", "Q3", "Q4"},
		Series: []pptx.ChartSeries{
			{Name: "Revenue", Values: []float64{50, 65, 80, 95}},
			{Name: "Costs", Values: []float64{30, 35, 40, 45}},
		},
	})

	return c, nil
}

func (b *Builders) buildTable(_ context.Context, rec Record, th theme.Theme) (*pptx.Canvas, error) {
	c := pptx.NewCanvas()
	c.SetBackground(th.Background.Hex())
	addTitle(c, rec.Title, th)

	data := [][]string{
		{"Feature", "Plan A", "Plan B", "Plan C"},
		{"Price", "$10", "$20", "$30"},
		{"Storage", "10GB", "50GB", "100GB"},
		{"Users", "1", "5", "Unlimited"},
	}

	rows := make([][]pptx.TableCell, len(data))
	for i, row := range data {
		cells := make([]pptx.TableCell, len(row))
		for j, text := range row {
			cell := pptx.TableCell{Text: text, SizePt: 12, Color: th.Text.Hex()}
			if i == 0 {
				cell.SizePt = 14
				cell.Bold = true
				cell.Color = th.Background.Hex()
				cell.Fill = th.Accent.Hex()
			} else if i%2 == 0 {
				cell.Fill = th.Card.Hex()
			}
			cells[j] = cell
		}
		rows[i] = cells
	}

	c.Add(&pptx.Table{
		Name: "Table",
		X:    pptx.Inches(1), Y: pptx.Inches(2),
		W: pptx.Inches(11.33), H: pptx.Inches(2),
		Rows: rows,
	})

	return c, nil
}
