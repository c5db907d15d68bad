package deck

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/layout"
)

func newTestGenerator(maxSlides int) *Generator {
	builders := layout.NewBuilders(nil, nil)
	dispatcher := layout.NewDispatcher(builders, nil)
	return NewGenerator(dispatcher, nil, nil, maxSlides)
}

func countSlides(t *testing.T, data []byte) int {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("deck is not a valid zip: %v", err)
	}
	count := 0
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") &&
			strings.HasSuffix(f.Name, ".xml") &&
			!strings.Contains(f.Name, "_rels") {
			count++
		}
	}
	return count
}

func slideParts(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("deck is not a valid zip: %v", err)
	}
	parts := map[string]string{}
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, "ppt/slides/") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		parts[f.Name] = string(content)
	}
	return parts
}

func TestGenerateSlideCountMatchesRecords(t *testing.T) {
	tags := append(layout.SupportedTags(), "", "unknown_tag")
	gen := newTestGenerator(100)

	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 15).Draw(rt, "recordCount")

		slides := make([]SlideRecord, n)
		for i := range slides {
			slides[i] = SlideRecord{
				Title:   rapid.StringMatching(`[A-Za-z0-9 ]{0,30}`).Draw(rt, fmt.Sprintf("title%d", i)),
				Content: rapid.StringMatching(`[A-Za-z0-9 .:\n-]{0,80}`).Draw(rt, fmt.Sprintf("content%d", i)),
				Layout:  rapid.SampledFrom(tags).Draw(rt, fmt.Sprintf("layout%d", i)),
			}
		}

		data, err := gen.Generate(context.Background(), Request{
			Theme:  rapid.SampledFrom([]string{"dialogue", "alien", "bogus"}).Draw(rt, "theme"),
			Slides: slides,
		})
		if err != nil {
			rt.Fatalf("Generate: %v", err)
		}
		if got := countSlides(t, data); got != n {
			rt.Fatalf("slide count = %d, want %d", got, n)
		}
	})
}

func TestGenerateCapsSlideCount(t *testing.T) {
	gen := newTestGenerator(100)

	slides := make([]SlideRecord, 120)
	for i := range slides {
		slides[i] = SlideRecord{
			Title:   fmt.Sprintf("Slide %d", i+1),
			Content: "some body text",
		}
	}

	data, err := gen.Generate(context.Background(), Request{Theme: "dialogue", Slides: slides})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got := countSlides(t, data); got != 100 {
		t.Errorf("slide count = %d, want cap of 100", got)
	}
}

func TestGenerateUnknownThemeFallsBack(t *testing.T) {
	gen := newTestGenerator(10)
	data, err := gen.Generate(context.Background(), Request{
		Theme:  "definitely-not-a-theme",
		Slides: []SlideRecord{{Title: "One", Content: "body"}},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if countSlides(t, data) != 1 {
		t.Error("fallback theme should still render the slide")
	}
}

func TestGenerateDeterministicSlideParts(t *testing.T) {
	gen := newTestGenerator(10)
	req := Request{
		Theme: "business",
		Slides: []SlideRecord{
			{Title: "Intro", Content: "welcome", Layout: "hero"},
			{Title: "Plan", Content: "1. one: alpha\n2. two: beta", Layout: "roadmap"},
			{Title: "Costs", Layout: "table"},
		},
	}

	first, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	second, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}

	a := slideParts(t, first)
	b := slideParts(t, second)
	if len(a) != len(b) {
		t.Fatalf("slide part counts differ: %d vs %d", len(a), len(b))
	}
	for name, content := range a {
		if b[name] != content {
			t.Errorf("slide part %s differs between runs", name)
		}
	}
}

func TestStats(t *testing.T) {
	gen := newTestGenerator(42)
	stats := gen.Stats()

	if len(stats.Themes) != 8 {
		t.Errorf("themes = %d, want 8", len(stats.Themes))
	}
	if len(stats.SupportedLayouts) == 0 {
		t.Error("supported layouts empty")
	}
	if stats.MaxSlides != 42 {
		t.Errorf("max slides = %d, want 42", stats.MaxSlides)
	}
}
