package imagefetch

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Bsoumyaranjan32/AI-PPTX/internal/infra/httpclient"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/infra/limiter"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/infra/logger"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func newTestService(maxBytes int64) *Service {
	client := httpclient.New(5*time.Second, 0)
	lim := limiter.New(2, 100)
	return NewService(client, lim, logger.Nop(), maxBytes, 8)
}

func TestDownloadSuccess(t *testing.T) {
	payload := testPNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	svc := newTestService(1 << 20)
	img, err := svc.Download(context.Background(), srv.URL+"/pic.png")
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if img.Format != "png" {
		t.Errorf("format = %q, want png", img.Format)
	}
	if img.Width != 2 || img.Height != 3 {
		t.Errorf("dimensions = %dx%d, want 2x3", img.Width, img.Height)
	}
	if !bytes.Equal(img.Data, payload) {
		t.Error("downloaded bytes differ from served payload")
	}

	stats := svc.Stats()
	if stats.Downloads != 1 || stats.CacheMisses != 1 || stats.Failures != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestDownloadCacheHitSkipsNetwork(t *testing.T) {
	payload := testPNG(t)
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write(payload)
	}))
	defer srv.Close()

	svc := newTestService(1 << 20)
	url := srv.URL + "/pic.png"

	if _, err := svc.Download(context.Background(), url); err != nil {
		t.Fatalf("first Download: %v", err)
	}
	if _, err := svc.Download(context.Background(), url); err != nil {
		t.Fatalf("second Download: %v", err)
	}

	if n := requests.Load(); n != 1 {
		t.Errorf("server saw %d requests, want 1", n)
	}
	stats := svc.Stats()
	if stats.CacheHits != 1 || stats.CacheMisses != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if svc.CacheLen() != 1 {
		t.Errorf("cache len = %d, want 1", svc.CacheLen())
	}
}

func TestDownloadEmptyURL(t *testing.T) {
	svc := newTestService(1 << 20)
	if _, err := svc.Download(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty url")
	}
}

func TestDownloadNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	svc := newTestService(1 << 20)
	if _, err := svc.Download(context.Background(), srv.URL+"/missing.png"); err == nil {
		t.Fatal("expected error for 404 response")
	}
	if svc.Stats().Failures != 1 {
		t.Errorf("failures = %d, want 1", svc.Stats().Failures)
	}
}

func TestDownloadOversizeRejected(t *testing.T) {
	payload := testPNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	svc := newTestService(int64(len(payload) - 1))
	if _, err := svc.Download(context.Background(), srv.URL+"/big.png"); err == nil {
		t.Fatal("expected error for oversize image")
	}
	if svc.CacheLen() != 0 {
		t.Error("oversize image must not be cached")
	}
}

func TestDownloadCorruptRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not an image"))
	}))
	defer srv.Close()

	svc := newTestService(1 << 20)
	if _, err := svc.Download(context.Background(), srv.URL+"/fake.png"); err == nil {
		t.Fatal("expected error for corrupt payload")
	}
	if svc.CacheLen() != 0 {
		t.Error("corrupt payload must not be cached")
	}
}

func TestClearCache(t *testing.T) {
	payload := testPNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	svc := newTestService(1 << 20)
	if _, err := svc.Download(context.Background(), srv.URL+"/pic.png"); err != nil {
		t.Fatalf("Download: %v", err)
	}
	if svc.CacheLen() != 1 {
		t.Fatalf("cache len = %d, want 1", svc.CacheLen())
	}

	svc.ClearCache()
	if svc.CacheLen() != 0 {
		t.Errorf("cache len after clear = %d, want 0", svc.CacheLen())
	}
}

func TestCacheEviction(t *testing.T) {
	c := newCache(2)
	c.put("a", []byte("1"))
	c.put("b", []byte("2"))
	c.put("c", []byte("3"))

	if c.len() != 2 {
		t.Fatalf("cache len = %d, want 2", c.len())
	}
	if _, ok := c.get("a"); ok {
		t.Error("oldest entry should have been evicted")
	}
	if _, ok := c.get("c"); !ok {
		t.Error("newest entry missing")
	}
}
