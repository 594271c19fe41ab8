package service

import (
	"context"

	"github.com/meridianmobile/careline/internal/clock"
	"github.com/meridianmobile/careline/internal/idgen"
	"github.com/meridianmobile/careline/internal/security/domain"
	"github.com/meridianmobile/careline/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

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
		log:   p.Log.Named("security.service"),
		clock: p.Clock,
		seq:   p.Seq,
		repo:  p.Repo,
	}
}

func (s *Service) Logs(ctx context.Context, customerID int64) ([]domain.LogView, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

// UnlockAccount appends an account_unlocked event, provided a lock event
// exists. With nothing to unlock it fails without writing anything.
func (s *Service) UnlockAccount(ctx context.Context, customerID int64) (domain.UnlockResult, error) {
	lockEvent, err := s.repo.LatestEvent(ctx, customerID, domain.EventAccountLocked)
	if err != nil {
		return domain.UnlockResult{}, err
	}
	if lockEvent == nil {
		return domain.UnlockResult{}, domain.ErrNothingToUnlock
	}

	logID, err := s.seq.NextID(ctx, store.ContainerSecurityLogs, "log_id")
	if err != nil {
		return domain.UnlockResult{}, err
	}

	event := domain.SecurityLog{
		LogID:          logID,
		CustomerID:     customerID,
		EventType:      domain.EventAccountUnlocked,
		EventTimestamp: s.clock.Now().Format("2006-01-02 15:04:05"),
		Description:    "Unlocked via API",
	}
	if err := s.repo.Create(ctx, &event); err != nil {
		return domain.UnlockResult{}, err
	}

	s.log.Info("account unlocked",
		zap.Int64("customer_id", customerID),
		zap.Int64("log_id", logID),
	)
	return domain.UnlockResult{
		CustomerID: customerID,
		LogID:      logID,
		Message:    "Account unlocked",
	}, nil
}
