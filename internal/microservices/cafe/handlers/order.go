package handlers

import (
	"net/http"

	"cafe-bot/internal/common/logger"
	"cafe-bot/internal/microservices/cafe/domain/dto"
	"cafe-bot/internal/microservices/cafe/narrative"
	"cafe-bot/internal/microservices/cafe/service"
)

type OrderHandler struct {
	service service.OrderServiceInterface
	format  *narrative.Formatter
	lg      *logger.Logger
}

func NewOrderHandler(s service.OrderServiceInterface, f *narrative.Formatter, lg *logger.Logger) *OrderHandler {
	return &OrderHandler{service: s, format: f, lg: lg}
}

func (oh *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaceOrderRequest
	if err := decode(r, &req); err != nil {
		malformed(w, err)
		return
	}

	// Call service layer
	order, accepted, err := oh.service.PlaceOrder(r.Context(), req)
	if err != nil {
		fail(w, r, oh.lg, "place_order_failed", err)
		return
	}
	if !accepted {
		reply(w, r, oh.lg, oh.format.OrderFailure(order))
		return
	}
	reply(w, r, oh.lg, oh.format.OrderSuccess(order))
}
