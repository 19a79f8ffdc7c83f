package service

import (
	"context"

	"cafe-bot/internal/downstream"
	"cafe-bot/internal/microservices/cafe/domain/dao"
	"cafe-bot/internal/microservices/cafe/repository"
)

// Stats is the per-kind record count shown by /health.
type Stats struct {
	Clients  int `json:"clients"`
	Orders   int `json:"orders"`
	Feedback int `json:"feedback"`
}

type AdminServiceInterface interface {
	Clients() []dao.Client
	Orders() []dao.Order
	Feedback() []dao.Feedback
	Stats() Stats
	Downstream(ctx context.Context) string
}

type AdminService struct {
	store   repository.StoreInterface
	backend downstream.Port
}

func NewAdminService(store repository.StoreInterface, backend downstream.Port) AdminServiceInterface {
	return &AdminService{store: store, backend: backend}
}

func (s *AdminService) Clients() []dao.Client {
	return repository.ListAs[dao.Client](s.store, dao.KindClient)
}

func (s *AdminService) Orders() []dao.Order {
	return repository.ListAs[dao.Order](s.store, dao.KindOrder)
}

func (s *AdminService) Feedback() []dao.Feedback {
	return repository.ListAs[dao.Feedback](s.store, dao.KindFeedback)
}

func (s *AdminService) Stats() Stats {
	return Stats{
		Clients:  s.store.Count(dao.KindClient),
		Orders:   s.store.Count(dao.KindOrder),
		Feedback: s.store.Count(dao.KindFeedback),
	}
}

// Downstream reports whether the backend connection is usable.
func (s *AdminService) Downstream(ctx context.Context) string {
	return downstream.Status(ctx, s.backend)
}
