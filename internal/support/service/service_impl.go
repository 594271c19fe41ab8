package service

import (
	"context"

	"github.com/meridianmobile/careline/internal/clock"
	"github.com/meridianmobile/careline/internal/idgen"
	"github.com/meridianmobile/careline/internal/store"
	"github.com/meridianmobile/careline/internal/support/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Tickets opened through this surface are attributed to the automated agent.
const defaultAgent = "AI_Bot"

type Params struct {
	fx.In

	Log   *zap.Logger
	Clock clock.Clock
	Seq   idgen.Sequence
	Repo  domain.Repository
}

type Service struct {
	log   *zap.Logger
	clock clock.Clock
	seq   idgen.Sequence
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:   p.Log.Named("support.service"),
		clock: p.Clock,
		seq:   p.Seq,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context, customerID int64, openOnly bool) ([]domain.SupportTicket, error) {
	return s.repo.ListByCustomer(ctx, customerID, openOnly)
}

func (s *Service) Create(ctx context.Context, req domain.CreateTicketRequest) (domain.SupportTicket, error) {
	ticketID, err := s.seq.NextID(ctx, store.ContainerSupportTickets, "ticket_id")
	if err != nil {
		return domain.SupportTicket{}, err
	}

	ticket := domain.SupportTicket{
		TicketID:       ticketID,
		CustomerID:     req.CustomerID,
		SubscriptionID: req.SubscriptionID,
		Category:       req.Category,
		OpenedAt:       s.clock.Now().Format("2006-01-02 15:04:05"),
		Status:         domain.StatusOpen,
		Priority:       req.Priority,
		Subject:        req.Subject,
		Description:    req.Description,
		CSAgent:        defaultAgent,
	}
	if err := s.repo.Create(ctx, &ticket); err != nil {
		return domain.SupportTicket{}, err
	}

	s.log.Info("support ticket created",
		zap.Int64("ticket_id", ticketID),
		zap.Int64("customer_id", req.CustomerID),
		zap.String("category", req.Category),
	)
	return ticket, nil
}
