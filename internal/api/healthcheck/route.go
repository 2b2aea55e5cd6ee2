package healthcheck

import (
	coreretriever "agribot/internal/core/retriever"

	"github.com/gofiber/fiber/v3"
)

func RegisterRoutes(r fiber.Router, catalog *coreretriever.Catalog) {
	h := &Handler{catalog: catalog}

	grp := r.Group("/health")
	grp.Get("/api", h.ApiHealthCheck)
	grp.Get("/corpus", h.CorpusHealthCheck)
}
