package corpus

import (
	"context"

	"agribot/config"
	coreretriever "agribot/internal/core/retriever"
	"agribot/internal/core/textnorm"
	"agribot/pkg/apperror"
	"agribot/pkg/apperror/status"
	"agribot/pkg/logger"

	"github.com/gofiber/fiber/v3"
)

type reloadResponse struct {
	Language string `json:"language"`
	Passages int    `json:"passages"`
}

// Handler reloads a language's corpus from its configured locator and swaps
// the rebuilt snapshot in atomically; in-flight retrievals keep the old one.
type Handler struct {
	catalog     *coreretriever.Catalog
	normalizers map[string]*textnorm.Normalizer
}

func (h *Handler) HandleReload(c fiber.Ctx) error {
	trackingID := c.Get("X-Request-ID")

	langCode := c.Params("lang")
	pivotCfg, ok := pivotLanguage(langCode)
	if !ok {
		return apperror.BadRequest(config.ModuleCorpus, c, status.ChatUnknownLanguage, "language not configured: "+langCode)
	}
	norm, ok := h.normalizers[langCode]
	if !ok {
		return apperror.BadRequest(config.ModuleCorpus, c, status.ChatUnknownLanguage, "no normalizer for language: "+langCode)
	}

	snap, err := coreretriever.BuildSnapshot(context.Background(), pivotCfg.Corpus, norm)
	if err != nil {
		logger.Error(err, "%v: reload failed for %s", config.ModuleCorpus, langCode)
		return apperror.InternalError(config.ModuleCorpus, c, status.New(status.CorpusReloadFailed, err))
	}
	if err := h.catalog.Swap(langCode, snap); err != nil {
		return apperror.InternalError(config.ModuleCorpus, c, err)
	}
	logger.Info("%v: corpus reloaded for %s (%d passages)", config.ModuleCorpus, langCode, snap.Corpus.Len())

	return apperror.Success(config.ModuleCorpus, c, apperror.FiberSuccessMessage{
		Code:       status.OK,
		Message:    "reload ok",
		TrackingID: trackingID,
		Data: reloadResponse{
			Language: langCode,
			Passages: snap.Corpus.Len(),
		},
	})
}

// pivotLanguage finds the language config whose pivot code matches, since
// corpora are keyed by pivot language in the catalog.
func pivotLanguage(code string) (config.LanguageConfig, bool) {
	for _, lang := range config.Cfg.Languages {
		if lang.Pivot == code {
			return lang, true
		}
	}
	return config.LanguageConfig{}, false
}
