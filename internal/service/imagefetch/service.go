package imagefetch

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"sync/atomic"

	// Decoders registered for image verification.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/Bsoumyaranjan32/AI-PPTX/internal/infra/httpclient"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/infra/limiter"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/infra/logger"
	"github.com/Bsoumyaranjan32/AI-PPTX/pkg/errors"
)

// Image is a downloaded and verified picture.
type Image struct {
	Data   []byte
	Format string
	Width  int
	Height int
}

// Stats counts cache and download outcomes for one Service instance.
type Stats struct {
	CacheHits   int64
	CacheMisses int64
	Downloads   int64
	Failures    int64
}

// Service downloads remote images with sanitization, caching, retries
// and decode verification. A failed download is reported as an error
// value so callers can degrade to rendering without the image.
type Service struct {
	client   *httpclient.Client
	limiter  *limiter.Limiter
	logger   *logger.Logger
	cache    *cache
	maxBytes int64

	hits      atomic.Int64
	misses    atomic.Int64
	downloads atomic.Int64
	failures  atomic.Int64
}

func NewService(client *httpclient.Client, lim *limiter.Limiter, log *logger.Logger, maxBytes int64, cacheEntries int) *Service {
	return &Service{
		client:   client,
		limiter:  lim,
		logger:   log,
		cache:    newCache(cacheEntries),
		maxBytes: maxBytes,
	}
}

// Download fetches the image at url. The URL is sanitized first and
// the cache is consulted before any network call.
func (s *Service) Download(ctx context.Context, rawURL string) (*Image, error) {
	if rawURL == "" {
		return nil, errors.New(errors.ErrCodeImageFetch, "empty image url")
	}

	url := SanitizeURL(rawURL)
	key := cacheKey(url)

	if data, ok := s.cache.get(key); ok {
		s.hits.Add(1)
		s.logger.Debug("image cache hit", "url", truncate(url, 50))
		img, err := verify(data)
		if err != nil {
			return nil, err
		}
		return img, nil
	}
	s.misses.Add(1)

	release, err := s.limiter.Acquire(ctx)
	if err != nil {
		s.failures.Add(1)
		return nil, errors.Wrap(err, errors.ErrCodeRateLimited, "image download limiter")
	}
	defer release()

	data, err := s.fetch(ctx, url)
	if err != nil {
		s.failures.Add(1)
		s.logger.Warn("image download failed", "url", truncate(url, 50), "error", err)
		return nil, err
	}

	img, err := verify(data)
	if err != nil {
		s.failures.Add(1)
		s.logger.Warn("image verification failed", "url", truncate(url, 50), "error", err)
		return nil, err
	}

	s.cache.put(key, data)
	s.downloads.Add(1)
	s.logger.Info("image downloaded", "url", truncate(url, 50), "bytes", len(data), "format", img.Format)
	return img, nil
}

func (s *Service) fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := s.client.Get(ctx, url)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeImageFetch, "download image")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.ErrCodeImageFetch, fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}
	if resp.ContentLength > s.maxBytes {
		return nil, errors.New(errors.ErrCodeImageFetch, fmt.Sprintf("image too large: %d bytes", resp.ContentLength))
	}

	// Content-Length can lie or be absent, so the read is capped too.
	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeImageFetch, "read image body")
	}
	if int64(len(data)) > s.maxBytes {
		return nil, errors.New(errors.ErrCodeImageFetch, "image exceeds size limit")
	}
	return data, nil
}

// verify decodes just the image header to reject corrupt payloads.
func verify(data []byte) (*Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeImageFetch, "decode image")
	}
	return &Image{
		Data:   data,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// Stats returns a snapshot of the service counters.
func (s *Service) Stats() Stats {
	return Stats{
		CacheHits:   s.hits.Load(),
		CacheMisses: s.misses.Load(),
		Downloads:   s.downloads.Load(),
		Failures:    s.failures.Load(),
	}
}

// CacheLen reports the number of cached entries.
func (s *Service) CacheLen() int {
	return s.cache.len()
}

// ClearCache drops every cached image.
func (s *Service) ClearCache() {
	s.cache.clear()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
