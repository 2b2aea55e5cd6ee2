package speech

import (
	corespeech "agribot/internal/core/speech"

	"github.com/gofiber/fiber/v3"
)

func RegisterRoutes(r fiber.Router, transcriber corespeech.Transcriber, synthesizer corespeech.Synthesizer) {
	h := &Handler{transcriber: transcriber, synthesizer: synthesizer}

	grp := r.Group("/speech")
	grp.Post("/transcribe", h.HandleTranscribe)
	grp.Post("/synthesize", h.HandleSynthesize)
}
