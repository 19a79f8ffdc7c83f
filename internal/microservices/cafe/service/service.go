package service

import (
	"time"

	"cafe-bot/internal/common/logger"
	"cafe-bot/internal/downstream"
	"cafe-bot/internal/microservices/cafe/repository"
)

type Service struct {
	ClientService   ClientServiceInterface
	OrderService    OrderServiceInterface
	FeedbackService FeedbackServiceInterface
	AdminService    AdminServiceInterface
}

func New(store repository.StoreInterface, backend downstream.Backend, ids IDSource, now func() time.Time, clientPrefix string, lg *logger.Logger) *Service {
	a := &Assembler{IDs: ids, Now: now, ClientPrefix: clientPrefix}
	return &Service{
		ClientService:   NewClientService(store, backend, a, lg.Named("client-service")),
		OrderService:    NewOrderService(store, backend, a, lg.Named("order-service")),
		FeedbackService: NewFeedbackService(store, backend, a, lg.Named("feedback-service")),
		AdminService:    NewAdminService(store, backend),
	}
}
