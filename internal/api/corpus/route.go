package corpus

import (
	coreretriever "agribot/internal/core/retriever"
	"agribot/internal/core/textnorm"

	"github.com/gofiber/fiber/v3"
)

func RegisterRoutes(r fiber.Router, catalog *coreretriever.Catalog, normalizers map[string]*textnorm.Normalizer) {
	h := &Handler{catalog: catalog, normalizers: normalizers}

	grp := r.Group("/corpus")
	grp.Post("/:lang/reload", h.HandleReload)
}
