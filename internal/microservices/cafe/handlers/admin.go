package handlers

import (
	"net/http"

	"cafe-bot/internal/common/logger"
	"cafe-bot/internal/microservices/cafe/service"
)

// AdminHandler exposes the in-memory lists. No auth: it is meant for the
// shop's own network.
type AdminHandler struct {
	service service.AdminServiceInterface
	lg      *logger.Logger
}

func NewAdminHandler(s service.AdminServiceInterface, lg *logger.Logger) *AdminHandler {
	return &AdminHandler{service: s, lg: lg}
}

func (h *AdminHandler) Orders(w http.ResponseWriter, r *http.Request) {
	orders := h.service.Orders()
	reply(w, r, h.lg, map[string]any{"total_orders": len(orders), "orders": orders})
}

func (h *AdminHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	entries := h.service.Feedback()
	reply(w, r, h.lg, map[string]any{"total_feedback": len(entries), "feedback": entries})
}

func (h *AdminHandler) Clients(w http.ResponseWriter, r *http.Request) {
	clients := h.service.Clients()
	reply(w, r, h.lg, map[string]any{"total_clients": len(clients), "clients": clients})
}
