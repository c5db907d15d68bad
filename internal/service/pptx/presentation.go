package pptx

import (
	"bytes"
	"time"
)

// Properties carries the document metadata written to docProps.
type Properties struct {
	Title   string
	Creator string
	Created time.Time
}

// Presentation is an ordered sequence of canvases plus document
// metadata. Built fresh per export, serialized once, then discarded.
type Presentation struct {
	props  Properties
	slides []*Canvas
}

func NewPresentation(props Properties) *Presentation {
	if props.Created.IsZero() {
		props.Created = time.Now()
	}
	return &Presentation{props: props}
}

// AppendSlide adds a canvas at the end of the deck.
func (p *Presentation) AppendSlide(c *Canvas) {
	p.slides = append(p.slides, c)
}

func (p *Presentation) SlideCount() int {
	return len(p.slides)
}

func (p *Presentation) Slides() []*Canvas {
	return p.slides
}

// Bytes serializes the presentation to PPTX bytes.
func (p *Presentation) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	w := &writer{presentation: p}
	if err := w.writeTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
