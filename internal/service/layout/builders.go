package layout

import (
	"context"

	"github.com/Bsoumyaranjan32/AI-PPTX/internal/infra/logger"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/imagefetch"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/pptx"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/theme"
)

// ImageFetcher downloads and verifies a remote image. A nil fetcher
// or a failed download degrades to rendering without the image.
type ImageFetcher interface {
	Download(ctx context.Context, url string) (*imagefetch.Image, error)
}

// BuilderFunc renders one record onto a fresh canvas using only the
// given theme. Builders return an error for unexpected internal
// failures; normal bad input (missing image, empty content) must
// render a degraded slide instead.
type BuilderFunc func(ctx context.Context, rec Record, th theme.Theme) (*pptx.Canvas, error)

// Builders holds the collaborators shared by every layout builder.
type Builders struct {
	fetcher ImageFetcher
	logger  *logger.Logger
}

func NewBuilders(fetcher ImageFetcher, log *logger.Logger) *Builders {
	if log == nil {
		log = logger.Nop()
	}
	return &Builders{fetcher: fetcher, logger: log}
}

// ForKind resolves a builder for a kind. Every kind has a builder.
func (b *Builders) ForKind(k Kind) BuilderFunc {
	switch k {
	case KindHero:
		return b.buildHero
	case KindSplit:
		return b.buildSplit
	case KindGrid:
		return b.buildGrid
	case KindRoadmap:
		return b.buildRoadmap
	case KindComparison:
		return b.buildComparison
	case KindQuote:
		return b.buildQuote
	case KindImageFocus:
		return b.buildImageFocus
	case KindTwoColumn:
		return b.buildTwoColumn
	case KindChart:
		return b.buildChart
	case KindTable:
		return b.buildTable
	case KindError:
		return b.buildError
	default:
		return b.buildStandard
	}
}

// fetchImage returns nil whenever the image cannot be used, so
// builders can fall through to their no-image rendering.
func (b *Builders) fetchImage(ctx context.Context, url string) *imagefetch.Image {
	if b.fetcher == nil || url == "" {
		return nil
	}
	img, err := b.fetcher.Download(ctx, url)
	if err != nil {
		b.logger.Warn("image unavailable, rendering without it", "url", url, "error", err)
		return nil
	}
	return img
}
