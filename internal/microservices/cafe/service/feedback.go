package service

import (
	"context"

	"cafe-bot/internal/common/logger"
	"cafe-bot/internal/downstream"
	"cafe-bot/internal/microservices/cafe/domain/dao"
	"cafe-bot/internal/microservices/cafe/domain/dto"
	"cafe-bot/internal/microservices/cafe/repository"
)

type FeedbackServiceInterface interface {
	Submit(ctx context.Context, req dto.FeedbackRequest) (dao.Feedback, bool, error)
}

type FeedbackService struct {
	store     repository.StoreInterface
	port      downstream.Port
	assembler *Assembler
	lg        *logger.Logger
}

func NewFeedbackService(store repository.StoreInterface, port downstream.Port, a *Assembler, lg *logger.Logger) FeedbackServiceInterface {
	return &FeedbackService{store: store, port: port, assembler: a, lg: lg}
}

func (s *FeedbackService) Submit(ctx context.Context, req dto.FeedbackRequest) (dao.Feedback, bool, error) {
	entry, err := s.assembler.Feedback(req)
	if err != nil {
		return dao.Feedback{}, false, err
	}
	if !submit(ctx, s.port, s.lg, dao.KindFeedback, entry.ID, entry) {
		return entry, false, nil
	}
	s.store.Append(dao.KindFeedback, entry)
	s.lg.Info("feedback_received", map[string]any{"id": entry.ID, "category": entry.Category})
	return entry, true, nil
}
