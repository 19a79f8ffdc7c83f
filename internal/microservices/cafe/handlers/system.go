package handlers

import (
	"net/http"
	"time"

	"cafe-bot/internal/common/logger"
	"cafe-bot/internal/microservices/cafe/service"
)

// Version is reported by GET / and `cafe-bot version`.
var Version = "1.0.0"

type endpoint struct {
	route, about string
}

var endpoints = []endpoint{
	{"POST /register-client", "Register a new client"},
	{"POST /check-client", "Check if a client is registered"},
	{"POST /negative-feedback", "Leave feedback about a bad experience"},
	{"POST /place-order", "Place a drink order"},
	{"GET /admin/orders", "List received orders"},
	{"GET /admin/feedback", "List received feedback"},
	{"GET /admin/clients", "List registered clients"},
	{"GET /health", "Health check"},
	{"GET /metrics", "Prometheus metrics"},
}

type SystemHandler struct {
	admin service.AdminServiceInterface
	brand string
	now   func() time.Time
	lg    *logger.Logger
}

func NewSystemHandler(admin service.AdminServiceInterface, brand string, now func() time.Time, lg *logger.Logger) *SystemHandler {
	return &SystemHandler{admin: admin, brand: brand, now: now, lg: lg}
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	routes := make([]string, 0, len(endpoints))
	for _, e := range endpoints {
		routes = append(routes, e.route)
	}
	reply(w, r, h.lg, map[string]any{
		"status":     "OK",
		"message":    h.brand + " server is running",
		"timestamp":  h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		"endpoints":  routes,
		"stats":      h.admin.Stats(),
		"downstream": h.admin.Downstream(r.Context()),
	})
}

func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	described := make(map[string]string, len(endpoints))
	for _, e := range endpoints {
		described[e.route] = e.about
	}
	reply(w, r, h.lg, map[string]any{
		"service":     h.brand + " API",
		"version":     Version,
		"description": "Messaging bot backend for client registration, feedback and orders",
		"endpoints":   described,
	})
}
