package layout

import (
	"context"
	"fmt"

	"github.com/Bsoumyaranjan32/AI-PPTX/internal/infra/logger"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/pptx"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/theme"
)

// Outcome describes how one record was rendered.
type Outcome struct {
	Kind Kind
	// Fallback is set when the chosen builder failed and the error
	// slide (or a blank canvas) was substituted.
	Fallback bool
}

// Dispatcher routes each record to its builder and isolates per-slide
// failures: a failing builder yields an error slide, and a failing
// error slide yields a bare blank canvas. Render always returns a
// canvas, so the deck's slide count matches the input record count.
type Dispatcher struct {
	builders *Builders
	logger   *logger.Logger

	// forKind is replaceable in tests to force builder failures.
	forKind func(Kind) BuilderFunc
}

func NewDispatcher(builders *Builders, log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Dispatcher{
		builders: builders,
		logger:   log,
		forKind:  builders.ForKind,
	}
}

// Render builds one canvas for the record.
func (d *Dispatcher) Render(ctx context.Context, rec Record, th theme.Theme) (*pptx.Canvas, Outcome) {
	kind := KindForTag(rec.Layout)

	canvas, err := d.invoke(ctx, kind, rec, th)
	if err == nil {
		return canvas, Outcome{Kind: kind}
	}

	d.logger.Warn("slide builder failed, substituting error slide",
		"layout", kind.String(), "title", rec.Title, "error", err)

	errRec := Record{Title: rec.Title, Content: err.Error()}
	canvas, err2 := d.invoke(ctx, KindError, errRec, th)
	if err2 == nil {
		return canvas, Outcome{Kind: kind, Fallback: true}
	}

	d.logger.Error("error slide builder failed, inserting blank canvas",
		"layout", kind.String(), "title", rec.Title, "builderError", err, "fallbackError", err2)
	return pptx.NewCanvas(), Outcome{Kind: kind, Fallback: true}
}

// invoke runs one builder, converting panics into errors so a single
// bad slide cannot abort the whole deck.
func (d *Dispatcher) invoke(ctx context.Context, kind Kind, rec Record, th theme.Theme) (canvas *pptx.Canvas, err error) {
	defer func() {
		if r := recover(); r != nil {
			canvas = nil
			err = fmt.Errorf("builder panic: %v", r)
		}
	}()

	fn := d.forKind(kind)
	if fn == nil {
		return nil, fmt.Errorf("no builder for layout %q", kind)
	}
	return fn(ctx, rec, th)
}
