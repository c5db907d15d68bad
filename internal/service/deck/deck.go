package deck

import (
	"context"

	"github.com/google/uuid"

	"github.com/Bsoumyaranjan32/AI-PPTX/internal/infra/logger"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/imagefetch"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/layout"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/pptx"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/theme"
	"github.com/Bsoumyaranjan32/AI-PPTX/pkg/errors"
)

// SlideRecord is one requested slide.
type SlideRecord struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Layout  string `json:"layout"`
	Image   string `json:"image,omitempty"`
}

// Request is a full deck generation request.
type Request struct {
	Title  string        `json:"title,omitempty"`
	Theme  string        `json:"theme"`
	Slides []SlideRecord `json:"slides"`
}

// Stats reports generator capabilities and image service counters.
type Stats struct {
	Themes           []string         `json:"themes"`
	SupportedLayouts []string         `json:"supported_layouts"`
	MaxSlides        int              `json:"max_slides"`
	Images           imagefetch.Stats `json:"images"`
}

// Generator assembles slide records into a serialized deck. The slide
// count cap drops excess records with a warning rather than failing.
type Generator struct {
	dispatcher *layout.Dispatcher
	images     *imagefetch.Service
	logger     *logger.Logger
	maxSlides  int
}

func NewGenerator(dispatcher *layout.Dispatcher, images *imagefetch.Service, log *logger.Logger, maxSlides int) *Generator {
	if log == nil {
		log = logger.Nop()
	}
	return &Generator{
		dispatcher: dispatcher,
		images:     images,
		logger:     log,
		maxSlides:  maxSlides,
	}
}

// Generate renders every record in order and serializes the finished
// deck once. Individual slide failures surface as error slides inside
// the deck; only a serialization failure is fatal.
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	deckID := uuid.NewString()
	log := g.logger.With("deckID", deckID)

	th := theme.Get(req.Theme)
	if th.Name != req.Theme && req.Theme != "" {
		log.Debug("theme resolved to default", "requested", req.Theme, "resolved", th.Name)
	}

	records := req.Slides
	if len(records) > g.maxSlides {
		log.Warn("slide count exceeds cap, dropping excess records",
			"requested", len(records), "cap", g.maxSlides)
		records = records[:g.maxSlides]
	}

	prs := pptx.NewPresentation(pptx.Properties{
		Title:   req.Title,
		Creator: "AI-PPTX",
	})

	for i, rec := range records {
		canvas, outcome := g.dispatcher.Render(ctx, layout.Record{
			Title:   rec.Title,
			Content: rec.Content,
			Layout:  rec.Layout,
			Image:   rec.Image,
		}, th)
		prs.AppendSlide(canvas)

		log.Debug("slide rendered",
			"slide", i+1,
			"layout", outcome.Kind.String(),
			"fallback", outcome.Fallback)
	}

	data, err := prs.Bytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialize, "serialize deck")
	}

	log.Info("deck generated",
		"slides", prs.SlideCount(),
		"theme", th.Name,
		"bytes", len(data))
	return data, nil
}

// Stats snapshots the generator's capabilities and counters.
func (g *Generator) Stats() Stats {
	s := Stats{
		Themes:           theme.Names(),
		SupportedLayouts: layout.SupportedTags(),
		MaxSlides:        g.maxSlides,
	}
	if g.images != nil {
		s.Images = g.images.Stats()
	}
	return s
}
