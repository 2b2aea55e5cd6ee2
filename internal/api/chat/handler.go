package chat

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"agribot/config"
	corechat "agribot/internal/core/chat"
	"agribot/internal/core/generate"
	"agribot/internal/core/history"
	"agribot/internal/core/translate"
	"agribot/pkg/apperror"
	"agribot/pkg/apperror/status"

	"github.com/gofiber/fiber/v3"
)

type chatRequest struct {
	Query   string         `json:"query"`
	History []history.Turn `json:"history"`
}

type chatResponse struct {
	Answer    string         `json:"answer"`
	RawAnswer string         `json:"raw_answer"`
	History   []history.Turn `json:"history"`
}

// Handler serves the conversational endpoint over the chat pipeline.
type Handler struct {
	pipeline *corechat.Pipeline
}

func (h *Handler) HandleChat(c fiber.Ctx) error {
	trackingID := c.Get("X-Request-ID")

	langCode := c.Params("lang")
	langCfg, ok := config.Cfg.Language(langCode)
	if !ok {
		return apperror.BadRequest(config.ModuleChat, c, status.ChatUnknownLanguage, "language not configured: "+langCode)
	}

	var req chatRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return apperror.BadRequest(config.ModuleChat, c, status.ChatInvalidRequestBody, err.Error())
	}
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		return apperror.BadRequest(config.ModuleChat, c, status.ChatMissingParams, "query is empty")
	}

	hist, err := history.FromTurns(req.History)
	if err != nil {
		return apperror.BadRequest(config.ModuleChat, c, status.ChatBadHistory, err.Error())
	}

	sess := corechat.NewSession(langCfg, hist)
	result, err := h.pipeline.Run(context.Background(), sess, req.Query)
	if err != nil {
		var trErr *translate.Error
		if errors.As(err, &trErr) {
			return apperror.BadGateway(config.ModuleChat, c, status.TranslationFailed, err.Error())
		}
		var genErr *generate.Error
		if errors.As(err, &genErr) {
			return apperror.BadGateway(config.ModuleChat, c, status.GenerationFailed, err.Error())
		}
		var ordErr *history.OrderingError
		if errors.As(err, &ordErr) {
			return apperror.BadRequest(config.ModuleChat, c, status.ChatBadHistory, err.Error())
		}
		return apperror.InternalError(config.ModuleChat, c, err)
	}

	return apperror.Success(config.ModuleChat, c, apperror.FiberSuccessMessage{
		Code:       status.OK,
		Message:    "chat ok",
		TrackingID: trackingID,
		Data: chatResponse{
			Answer:    result.Answer,
			RawAnswer: result.RawAnswer,
			History:   sess.History.Turns(),
		},
	})
}
