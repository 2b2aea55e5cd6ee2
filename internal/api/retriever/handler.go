package retriever

import (
	"strings"

	"agribot/config"
	coreretriever "agribot/internal/core/retriever"
	"agribot/pkg/apperror"
	"agribot/pkg/apperror/status"

	"github.com/gofiber/fiber/v3"
)

type searchResponse struct {
	Topic      string  `json:"topic"`
	Similarity float64 `json:"similarity"`
}

// Handler exposes the top-1 retrieval decision for observability. The
// similarity score surfaces here and in logs, never in chat answers.
type Handler struct {
	catalog *coreretriever.Catalog
}

func (h *Handler) HandleSearch(c fiber.Ctx) error {
	trackingID := c.Get("X-Request-ID")

	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return apperror.BadRequest(config.ModuleRetriever, c, status.ChatMissingParams, "q is required")
	}
	lang := strings.TrimSpace(c.Query("lang"))
	if lang == "" {
		lang = "en"
	}

	snap, err := h.catalog.Snapshot(lang)
	if err != nil {
		return apperror.BadRequest(config.ModuleRetriever, c, status.ChatUnknownLanguage, err.Error())
	}
	match, err := coreretriever.Retrieve(snap.Index, snap.Corpus, q)
	if err != nil {
		return apperror.InternalError(config.ModuleRetriever, c, err)
	}

	return apperror.Success(config.ModuleRetriever, c, apperror.FiberSuccessMessage{
		Code:       status.OK,
		Message:    "search ok",
		TrackingID: trackingID,
		Data: searchResponse{
			Topic:      match.Passage.Key,
			Similarity: match.Similarity,
		},
	})
}
