package handlers

import (
	"time"

	"cafe-bot/internal/common/logger"
	"cafe-bot/internal/microservices/cafe/narrative"
	"cafe-bot/internal/microservices/cafe/service"
)

type Handler struct {
	ClientHandler   *ClientHandler
	OrderHandler    *OrderHandler
	FeedbackHandler *FeedbackHandler
	AdminHandler    *AdminHandler
	SystemHandler   *SystemHandler
}

func New(s *service.Service, f *narrative.Formatter, now func() time.Time, lg *logger.Logger) *Handler {
	return &Handler{
		ClientHandler:   NewClientHandler(s.ClientService, f, lg),
		OrderHandler:    NewOrderHandler(s.OrderService, f, lg),
		FeedbackHandler: NewFeedbackHandler(s.FeedbackService, f, lg),
		AdminHandler:    NewAdminHandler(s.AdminService, lg),
		SystemHandler:   NewSystemHandler(s.AdminService, f.Brand, now, lg),
	}
}
