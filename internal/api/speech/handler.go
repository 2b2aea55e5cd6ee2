package speech

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"agribot/config"
	corespeech "agribot/internal/core/speech"
	"agribot/pkg/apperror"
	"agribot/pkg/apperror/status"

	"github.com/gofiber/fiber/v3"
)

type transcribeResponse struct {
	Text string `json:"text"`
}

type synthesizeRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// Handler bridges the audio collaborators; transcription output feeds the
// chat endpoint, synthesis turns answers back into speech.
type Handler struct {
	transcriber corespeech.Transcriber
	synthesizer corespeech.Synthesizer
}

func (h *Handler) HandleTranscribe(c fiber.Ctx) error {
	trackingID := c.Get("X-Request-ID")

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return apperror.BadRequest(config.ModuleSpeech, c, status.ChatMissingParams, "audio file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return apperror.InternalError(config.ModuleSpeech, c, err)
	}
	defer file.Close()
	audio, err := io.ReadAll(file)
	if err != nil {
		return apperror.InternalError(config.ModuleSpeech, c, err)
	}

	text, err := h.transcriber.Transcribe(context.Background(), audio)
	if err != nil {
		return apperror.BadGateway(config.ModuleSpeech, c, status.TranscriptionFailed, err.Error())
	}

	return apperror.Success(config.ModuleSpeech, c, apperror.FiberSuccessMessage{
		Code:       status.OK,
		Message:    "transcribe ok",
		TrackingID: trackingID,
		Data:       transcribeResponse{Text: text},
	})
}

func (h *Handler) HandleSynthesize(c fiber.Ctx) error {
	var req synthesizeRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return apperror.BadRequest(config.ModuleSpeech, c, status.ChatInvalidRequestBody, err.Error())
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		return apperror.BadRequest(config.ModuleSpeech, c, status.ChatMissingParams, "text is empty")
	}
	if req.Lang == "" {
		req.Lang = "en"
	}

	audio, err := h.synthesizer.Synthesize(context.Background(), req.Text, req.Lang)
	if err != nil {
		return apperror.BadGateway(config.ModuleSpeech, c, status.SynthesisFailed, err.Error())
	}

	c.Set("Content-Type", "audio/mpeg")
	return c.Send(audio)
}
