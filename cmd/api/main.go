package main

import (
	"context"
	"fmt"
	"time"

	"agribot/config"
	apichat "agribot/internal/api/chat"
	apicorpus "agribot/internal/api/corpus"
	"agribot/internal/api/healthcheck"
	apiretriever "agribot/internal/api/retriever"
	apispeech "agribot/internal/api/speech"
	"agribot/internal/core/chat"
	"agribot/internal/core/generate"
	"agribot/internal/core/retriever"
	"agribot/internal/core/speech"
	"agribot/internal/core/textnorm"
	"agribot/internal/core/translate"
	"agribot/internal/middleware"
	"agribot/pkg/logger"

	"github.com/gofiber/fiber/v3"
)

func main() {
	// One normalizer and one corpus snapshot per pivot language. Every
	// configured language retrieves in its pivot, so only pivots need corpora.
	normalizers := make(map[string]*textnorm.Normalizer)
	var pivots []string
	for _, lang := range config.Cfg.Languages {
		if _, ok := normalizers[lang.Pivot]; ok {
			continue
		}
		normalizers[lang.Pivot] = textnorm.New(lang.Pivot)
		pivots = append(pivots, lang.Pivot)
	}

	catalog := retriever.NewCatalog(pivots)
	for _, lang := range config.Cfg.Languages {
		if _, err := catalog.Snapshot(lang.Pivot); err == nil {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		snap, err := retriever.BuildSnapshot(ctx, lang.Corpus, normalizers[lang.Pivot])
		cancel()
		if err != nil {
			logger.Fatal(err, "failed to build corpus snapshot for %s", lang.Pivot)
		}
		if err := catalog.Swap(lang.Pivot, snap); err != nil {
			logger.Fatal(err, "failed to install corpus snapshot for %s", lang.Pivot)
		}
	}

	translator := translate.NewAdapter(translate.NewGoogleProvider())
	generator := generate.NewOpenAI()
	pipeline := chat.NewPipeline(catalog, translator, generator)

	app := fiber.New(fiber.Config{
		AppName:     config.Cfg.Server.AppName,
		BodyLimit:   config.Cfg.Server.BodyLimit,
		Concurrency: config.Cfg.Server.Concurrency,
	})

	app.Use(middleware.PanicRecovery())
	app.Use(middleware.ConnectionLimit(middleware.NewConnectionLimiter(config.Cfg.Server.Concurrency)))

	// routes
	healthcheck.RegisterRoutes(app, catalog)
	apichat.RegisterRoutes(app, pipeline)
	apiretriever.RegisterRoutes(app, catalog)
	apicorpus.RegisterRoutes(app, catalog, normalizers)
	apispeech.RegisterRoutes(app, speech.NewHFTranscriber(), speech.NewTTS())

	addr := fmt.Sprintf(":%d", config.Cfg.Server.Port)
	if err := app.Listen(addr); err != nil {
		logger.Error(err, "server error")
	}
}
