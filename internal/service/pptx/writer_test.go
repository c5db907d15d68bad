package pptx

import (
	"archive/zip"
	"bytes"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"
)

func openDeck(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a valid zip: %v", err)
	}
	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open part %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read part %s: %v", f.Name, err)
		}
		parts[f.Name] = string(content)
	}
	return parts
}

func fixedProps() Properties {
	return Properties{
		Title:   "Test Deck",
		Creator: "tester",
		Created: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestBytesProducesValidSkeleton(t *testing.T) {
	p := NewPresentation(fixedProps())
	p.AppendSlide(NewCanvas())

	data, err := p.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	parts := openDeck(t, data)

	required := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/_rels/slide1.xml.rels",
	}
	for _, name := range required {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing part %s", name)
		}
	}

	if !strings.HasPrefix(string(data[:4]), "PK\x03\x04") {
		t.Error("output does not start with the zip magic")
	}
}

func TestBytesSlideCount(t *testing.T) {
	p := NewPresentation(fixedProps())
	for i := 0; i < 5; i++ {
		p.AppendSlide(NewCanvas())
	}

	data, err := p.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	parts := openDeck(t, data)

	count := 0
	for name := range parts {
		if strings.HasPrefix(name, "ppt/slides/slide") && strings.HasSuffix(name, ".xml") && !strings.Contains(name, "_rels") {
			count++
		}
	}
	if count != 5 {
		t.Errorf("slide part count = %d, want 5", count)
	}

	pres := parts["ppt/presentation.xml"]
	if got := strings.Count(pres, "<p:sldId "); got != 5 {
		t.Errorf("sldId entries = %d, want 5", got)
	}
}

func TestSlideXMLShapes(t *testing.T) {
	c := NewCanvas()
	c.SetBackground("0F172A")
	c.Add(&AutoShape{
		Name:   "Card",
		Preset: "roundRect",
		X:      Inches(1), Y: Inches(1), W: Inches(2), H: Inches(1),
		Fill:   &Fill{Color: "FFFFFF", AlphaPct: 50},
		Border: &Border{Color: "6366F1", WidthPt: 2},
	})
	c.Add(&TextBox{
		Name: "Body",
		X:    Inches(1), Y: Inches(3), W: Inches(4), H: Inches(1),
		WordWrap: true,
		Paragraphs: []Paragraph{{
			Align: "ctr",
			Runs:  []Run{{Text: "hello", SizePt: 18, Bold: true, Color: "FF0000"}},
		}},
	})

	p := NewPresentation(fixedProps())
	p.AppendSlide(c)
	data, err := p.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	slide := openDeck(t, data)["ppt/slides/slide1.xml"]

	for _, want := range []string{
		`prst="roundRect"`,
		`<a:srgbClr val="0F172A"/>`,
		`<a:srgbClr val="6366F1"/>`,
		`val="50000"`,
		`sz="1800"`,
		`b="1"`,
		`algn="ctr"`,
		">hello</a:t>",
	} {
		if !strings.Contains(slide, want) {
			t.Errorf("slide xml missing %s", want)
		}
	}
}

func TestSlideXMLEscapesText(t *testing.T) {
	c := NewCanvas()
	c.Add(&TextBox{
		Name: "Body",
		X:    0, Y: 0, W: Inches(4), H: Inches(1),
		Paragraphs: []Paragraph{{
			Runs: []Run{{Text: `<A & "B">`, SizePt: 12}},
		}},
	})

	p := NewPresentation(fixedProps())
	p.AppendSlide(c)
	data, err := p.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	slide := openDeck(t, data)["ppt/slides/slide1.xml"]

	if strings.Contains(slide, "<A &") {
		t.Error("raw markup leaked into slide xml")
	}
	if !strings.Contains(slide, "&lt;A &amp;") {
		t.Error("escaped text missing from slide xml")
	}
}

func TestPictureMediaAndRels(t *testing.T) {
	c := NewCanvas()
	c.Add(&Picture{
		Name: "Pic",
		X:    0, Y: 0, W: Inches(2), H: Inches(2),
		Data:   pngBytes(t),
		Format: "png",
	})

	p := NewPresentation(fixedProps())
	p.AppendSlide(c)
	data, err := p.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	parts := openDeck(t, data)

	if _, ok := parts["ppt/media/image1.png"]; !ok {
		t.Fatal("media part missing")
	}
	if !strings.Contains(parts["[Content_Types].xml"], `Extension="png"`) {
		t.Error("png default content type missing")
	}
	rels := parts["ppt/slides/_rels/slide1.xml.rels"]
	if !strings.Contains(rels, "../media/image1.png") {
		t.Error("slide rels missing media target")
	}
	slide := parts["ppt/slides/slide1.xml"]
	if !strings.Contains(slide, `r:embed="rId2"`) {
		t.Error("slide xml missing blip embed reference")
	}
}

func TestChartPart(t *testing.T) {
	c := NewCanvas()
	c.Add(&Chart{
		Name: "Chart",
		X:    0, Y: 0, W: Inches(4), H: Inches(3),
		Categories: []string{"Q1", "Q2"},
		Series: []ChartSeries{
			{Name: "Revenue", Values: []float64{10, 20}},
		},
	})

	p := NewPresentation(fixedProps())
	p.AppendSlide(c)
	data, err := p.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	parts := openDeck(t, data)

	chart, ok := parts["ppt/charts/chart1.xml"]
	if !ok {
		t.Fatal("chart part missing")
	}
	for _, want := range []string{"<c:barChart>", "Revenue", "Q1", "<c:v>10</c:v>"} {
		if !strings.Contains(chart, want) {
			t.Errorf("chart xml missing %s", want)
		}
	}
	if !strings.Contains(parts["[Content_Types].xml"], "chart1.xml") {
		t.Error("chart content type override missing")
	}
}

func TestBytesDeterministic(t *testing.T) {
	build := func() []byte {
		c := NewCanvas()
		c.SetBackground("FFFFFF")
		c.Add(&TextBox{
			Name: "Body",
			X:    0, Y: 0, W: Inches(4), H: Inches(1),
			Paragraphs: []Paragraph{{Runs: []Run{{Text: "same", SizePt: 12}}}},
		})
		p := NewPresentation(fixedProps())
		p.AppendSlide(c)
		data, err := p.Bytes()
		if err != nil {
			t.Fatalf("Bytes: %v", err)
		}
		return data
	}

	if !bytes.Equal(build(), build()) {
		t.Error("identical input produced different output bytes")
	}
}

func TestInches(t *testing.T) {
	if Inches(1) != 914400 {
		t.Errorf("Inches(1) = %d, want 914400", Inches(1))
	}
	if Inches(0.5) != 457200 {
		t.Errorf("Inches(0.5) = %d, want 457200", Inches(0.5))
	}
	if SlideWidthEMU != 12192000 || SlideHeightEMU != 6858000 {
		t.Error("16:9 slide dimensions changed")
	}
}
