package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"cafe-bot/internal/common/metrics"
)

// Router wires every route; middleware runs in the given order.
func Router(h *Handler, mw ...mux.MiddlewareFunc) *mux.Router {
	r := mux.NewRouter()
	r.Use(mw...)

	r.HandleFunc("/register-client", h.ClientHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/check-client", h.ClientHandler.Check).Methods(http.MethodPost)
	r.HandleFunc("/negative-feedback", h.FeedbackHandler.Negative).Methods(http.MethodPost)
	r.HandleFunc("/place-order", h.OrderHandler.PlaceOrder).Methods(http.MethodPost)

	admin := r.PathPrefix("/admin").Methods(http.MethodGet).Subrouter()
	admin.HandleFunc("/orders", h.AdminHandler.Orders)
	admin.HandleFunc("/feedback", h.AdminHandler.Feedback)
	admin.HandleFunc("/clients", h.AdminHandler.Clients)

	r.HandleFunc("/health", h.SystemHandler.Health).Methods(http.MethodGet)
	r.HandleFunc("/", h.SystemHandler.Root).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeProblem(w, http.StatusNotFound, "Not found", "")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeProblem(w, http.StatusMethodNotAllowed, "Method not allowed", "")
	})
	return r
}
