package service

import (
	"context"
	"testing"
	"time"

	"github.com/meridianmobile/careline/internal/clock"
	"github.com/meridianmobile/careline/internal/security/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepo struct {
	latest  map[string]domain.SecurityLog
	created []domain.SecurityLog
}

func (f *fakeRepo) ListByCustomer(_ context.Context, _ int64) ([]domain.LogView, error) {
	return nil, nil
}

func (f *fakeRepo) LatestEvent(_ context.Context, _ int64, eventType string) (*domain.SecurityLog, error) {
	if event, ok := f.latest[eventType]; ok {
		return &event, nil
	}
	return nil, nil
}

func (f *fakeRepo) Create(_ context.Context, log *domain.SecurityLog) error {
	f.created = append(f.created, *log)
	return nil
}

type fakeSequence struct {
	next int64
}

func (f *fakeSequence) NextID(_ context.Context, _, _ string) (int64, error) {
	return f.next, nil
}

func newService(repo *fakeRepo, seq *fakeSequence) domain.Service {
	return New(Params{
		Log:   zap.NewNop(),
		Clock: clock.NewFakeClock(time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)),
		Seq:   seq,
		Repo:  repo,
	})
}

func TestUnlockAccountWithoutLockEvent(t *testing.T) {
	repo := &fakeRepo{latest: map[string]domain.SecurityLog{}}
	svc := newService(repo, &fakeSequence{next: 1})

	_, err := svc.UnlockAccount(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrNothingToUnlock)
	assert.Empty(t, repo.created, "no record may be created when there is nothing to unlock")
}

func TestUnlockAccountAppendsUnlockEvent(t *testing.T) {
	repo := &fakeRepo{latest: map[string]domain.SecurityLog{
		domain.EventAccountLocked: {LogID: 12, CustomerID: 5, EventType: domain.EventAccountLocked},
	}}
	svc := newService(repo, &fakeSequence{next: 13})

	result, err := svc.UnlockAccount(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(13), result.LogID)
	assert.Equal(t, int64(5), result.CustomerID)

	require.Len(t, repo.created, 1)
	event := repo.created[0]
	assert.Equal(t, domain.EventAccountUnlocked, event.EventType)
	assert.Equal(t, "2024-03-15 09:30:00", event.EventTimestamp)
}
