package handlers

import (
	"net/http"

	"cafe-bot/internal/common/logger"
	"cafe-bot/internal/microservices/cafe/domain/dto"
	"cafe-bot/internal/microservices/cafe/narrative"
	"cafe-bot/internal/microservices/cafe/service"
)

type ClientHandler struct {
	service service.ClientServiceInterface
	format  *narrative.Formatter
	lg      *logger.Logger
}

func NewClientHandler(s service.ClientServiceInterface, f *narrative.Formatter, lg *logger.Logger) *ClientHandler {
	return &ClientHandler{service: s, format: f, lg: lg}
}

// Register handles POST /register-client.
func (h *ClientHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterClientRequest
	if err := decode(r, &req); err != nil {
		malformed(w, err)
		return
	}

	client, accepted, err := h.service.Register(r.Context(), req)
	if err != nil {
		fail(w, r, h.lg, "register_client_failed", err)
		return
	}
	if !accepted {
		reply(w, r, h.lg, h.format.RegisterFailure(client))
		return
	}
	reply(w, r, h.lg, h.format.RegisterSuccess(client))
}

// Check handles POST /check-client.
func (h *ClientHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckClientRequest
	if err := decode(r, &req); err != nil {
		malformed(w, err)
		return
	}

	phone, registered, err := h.service.Check(r.Context(), req)
	if err != nil {
		fail(w, r, h.lg, "check_client_failed", err)
		return
	}
	reply(w, r, h.lg, h.format.CheckClient(phone, registered))
}
