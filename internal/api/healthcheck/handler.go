package healthcheck

import (
	"agribot/config"
	coreretriever "agribot/internal/core/retriever"
	"agribot/pkg/apperror"

	"github.com/gofiber/fiber/v3"
)

type Handler struct {
	catalog *coreretriever.Catalog
}

func (h *Handler) ApiHealthCheck(c fiber.Ctx) error {
	return c.SendString("ok")
}

// CorpusHealthCheck verifies every catalog language has a live snapshot.
func (h *Handler) CorpusHealthCheck(c fiber.Ctx) error {
	for _, lang := range h.catalog.Languages() {
		if _, err := h.catalog.Snapshot(lang); err != nil {
			return apperror.InternalError(config.ModuleCorpus, c, err)
		}
	}
	return c.SendString("ok")
}
