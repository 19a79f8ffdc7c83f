package service

import (
	"context"
	"fmt"

	"cafe-bot/internal/common/logger"
	"cafe-bot/internal/downstream"
	"cafe-bot/internal/microservices/cafe/domain/dao"
	"cafe-bot/internal/microservices/cafe/domain/dto"
	"cafe-bot/internal/microservices/cafe/repository"
)

type ClientServiceInterface interface {
	Register(ctx context.Context, req dto.RegisterClientRequest) (dao.Client, bool, error)
	Check(ctx context.Context, req dto.CheckClientRequest) (string, bool, error)
}

type ClientService struct {
	store     repository.StoreInterface
	backend   downstream.Backend
	assembler *Assembler
	lg        *logger.Logger
}

func NewClientService(store repository.StoreInterface, backend downstream.Backend, a *Assembler, lg *logger.Logger) ClientServiceInterface {
	return &ClientService{store: store, backend: backend, assembler: a, lg: lg}
}

// Register returns the assembled client and whether the downstream kept it.
// Only accepted clients reach the store.
func (s *ClientService) Register(ctx context.Context, req dto.RegisterClientRequest) (dao.Client, bool, error) {
	client, err := s.assembler.Client(req)
	if err != nil {
		return dao.Client{}, false, err
	}
	accepted := submit(ctx, s.backend, s.lg, dao.KindClient, client.ClientID, client)
	if accepted {
		s.store.Append(dao.KindClient, client)
	}
	s.lg.Info("client_registration", map[string]any{
		"client_id": client.ClientID,
		"accepted":  accepted,
	})
	return client, accepted, nil
}

// Check reports whether the phone belongs to a registered client. The
// trimmed phone is returned for the reply.
func (s *ClientService) Check(ctx context.Context, req dto.CheckClientRequest) (string, bool, error) {
	req.Trim()
	if err := dto.Check(req, dto.MsgCheckMissing, ""); err != nil {
		return "", false, err
	}
	registered, err := s.backend.IsRegistered(ctx, req.Phone)
	if err != nil {
		return req.Phone, false, fmt.Errorf("lookup client %s: %w", req.Phone, err)
	}
	s.lg.Debug("client_checked", map[string]any{"phone": req.Phone, "registered": registered})
	return req.Phone, registered, nil
}
