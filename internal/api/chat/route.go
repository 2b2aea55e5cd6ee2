package chat

import (
	corechat "agribot/internal/core/chat"

	"github.com/gofiber/fiber/v3"
)

// RegisterRoutes registers chat routes on the provided router.
func RegisterRoutes(r fiber.Router, pipeline *corechat.Pipeline) {
	h := &Handler{pipeline: pipeline}

	grp := r.Group("/chat")
	grp.Post("/:lang", h.HandleChat)
}
