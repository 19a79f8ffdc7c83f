package handlers

import (
	"net/http"

	"cafe-bot/internal/common/logger"
	"cafe-bot/internal/microservices/cafe/domain/dto"
	"cafe-bot/internal/microservices/cafe/narrative"
	"cafe-bot/internal/microservices/cafe/service"
)

type FeedbackHandler struct {
	service service.FeedbackServiceInterface
	format  *narrative.Formatter
	lg      *logger.Logger
}

func NewFeedbackHandler(s service.FeedbackServiceInterface, f *narrative.Formatter, lg *logger.Logger) *FeedbackHandler {
	return &FeedbackHandler{service: s, format: f, lg: lg}
}

// Negative handles POST /negative-feedback.
func (h *FeedbackHandler) Negative(w http.ResponseWriter, r *http.Request) {
	var req dto.FeedbackRequest
	if err := decode(r, &req); err != nil {
		malformed(w, err)
		return
	}

	entry, accepted, err := h.service.Submit(r.Context(), req)
	if err != nil {
		fail(w, r, h.lg, "submit_feedback_failed", err)
		return
	}
	if !accepted {
		reply(w, r, h.lg, h.format.FeedbackFailure(entry))
		return
	}
	reply(w, r, h.lg, h.format.FeedbackSuccess(entry))
}
