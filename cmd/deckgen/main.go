package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Bsoumyaranjan32/AI-PPTX/internal/infra/config"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/infra/httpclient"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/infra/limiter"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/infra/logger"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/deck"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/imagefetch"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/layout"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/storage"
	"github.com/Bsoumyaranjan32/AI-PPTX/internal/service/theme"
)

func main() {
	var (
		inputPath  = flag.String("input", "-", "deck request JSON file, or - for stdin")
		outputName = flag.String("out", "", "output file name without extension, default is a generated id")
		themeName  = flag.String("theme", "", "override the theme from the request")
		list       = flag.Bool("list", false, "list available themes and layouts, then exit")
	)
	flag.Parse()

	if *list {
		fmt.Println("themes: " + strings.Join(theme.Names(), ", "))
		fmt.Println("layouts: " + strings.Join(layout.SupportedTags(), ", "))
		return
	}

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Init logger
	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	// Init HTTP client and limiter
	httpClient := httpclient.New(time.Duration(cfg.Image.TimeoutSeconds)*time.Second, cfg.Image.MaxRetries)
	lim := limiter.New(cfg.Limiter.MaxConcurrent, cfg.Limiter.RequestsPerSecond)

	// Init services
	imageSvc := imagefetch.NewService(httpClient, lim, zapLogger, cfg.Image.MaxBytes, cfg.Image.CacheEntries)
	builders := layout.NewBuilders(imageSvc, zapLogger)
	dispatcher := layout.NewDispatcher(builders, zapLogger)
	generator := deck.NewGenerator(dispatcher, imageSvc, zapLogger, cfg.Deck.MaxSlides)
	storageSvc := storage.New(cfg.Storage.Type, cfg.Storage.BasePath, zapLogger)

	req, err := readRequest(*inputPath)
	if err != nil {
		zapLogger.Error("failed to read request", "error", err)
		os.Exit(1)
	}
	if *themeName != "" {
		req.Theme = *themeName
	}
	if req.Theme == "" {
		req.Theme = cfg.Deck.DefaultTheme
	}

	data, err := generator.Generate(context.Background(), *req)
	if err != nil {
		zapLogger.Error("deck generation failed", "error", err)
		os.Exit(1)
	}

	id := *outputName
	if id == "" {
		id = uuid.NewString()
	}
	path, err := storageSvc.SaveDeck(id, data)
	if err != nil {
		zapLogger.Error("failed to save deck", "error", err)
		os.Exit(1)
	}

	fmt.Println(path)
}

func readRequest(path string) (*deck.Request, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var req deck.Request
	dec := json.NewDecoder(r)
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("invalid request JSON: %w", err)
	}
	if len(req.Slides) == 0 {
		return nil, fmt.Errorf("request has no slides")
	}
	return &req, nil
}
