package service

import (
	"context"

	"cafe-bot/internal/common/logger"
	"cafe-bot/internal/downstream"
	"cafe-bot/internal/microservices/cafe/domain/dao"
	"cafe-bot/internal/microservices/cafe/domain/dto"
	"cafe-bot/internal/microservices/cafe/repository"
)

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest) (dao.Order, bool, error)
}

type OrderService struct {
	store     repository.StoreInterface
	port      downstream.Port
	assembler *Assembler
	lg        *logger.Logger
}

func NewOrderService(store repository.StoreInterface, port downstream.Port, a *Assembler, lg *logger.Logger) OrderServiceInterface {
	return &OrderService{store: store, port: port, assembler: a, lg: lg}
}

func (s *OrderService) PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest) (dao.Order, bool, error) {
	// 1. validate + build (price, ready time)
	order, err := s.assembler.Order(req)
	if err != nil {
		return dao.Order{}, false, err
	}

	// 2. downstream
	accepted := submit(ctx, s.port, s.lg, dao.KindOrder, order.OrderID, order)
	if !accepted {
		return order, false, nil
	}

	// 3. keep for /admin/orders
	s.store.Append(dao.KindOrder, order)
	s.lg.Info("order_received", map[string]any{
		"order_id":    order.OrderID,
		"tea_type":    order.TeaType,
		"size":        order.Size,
		"total_price": order.TotalPrice,
	})
	return order, true, nil
}
