package service

import (
	"context"
	"testing"
	"time"

	"github.com/meridianmobile/careline/internal/clock"
	"github.com/meridianmobile/careline/internal/support/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepo struct {
	tickets []domain.SupportTicket
	created []domain.SupportTicket
}

func (f *fakeRepo) ListByCustomer(_ context.Context, _ int64, openOnly bool) ([]domain.SupportTicket, error) {
	if !openOnly {
		return f.tickets, nil
	}
	var open []domain.SupportTicket
	for _, t := range f.tickets {
		if t.Status != domain.StatusClosed {
			open = append(open, t)
		}
	}
	return open, nil
}

func (f *fakeRepo) Create(_ context.Context, ticket *domain.SupportTicket) error {
	f.created = append(f.created, *ticket)
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
		Clock: clock.NewFakeClock(time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)),
		Seq:   seq,
		Repo:  repo,
	})
}

func TestCreateTicketAllocatesIDAndOpensTicket(t *testing.T) {
	repo := &fakeRepo{}
	subID := int64(10)
	svc := newService(repo, &fakeSequence{next: 121})

	ticket, err := svc.Create(context.Background(), domain.CreateTicketRequest{
		CustomerID:     5,
		SubscriptionID: &subID,
		Category:       "billing",
		Priority:       "high",
		Subject:        "Double charge on invoice",
		Description:    "Charged twice for March",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(121), ticket.TicketID)
	assert.Equal(t, domain.StatusOpen, ticket.Status)
	assert.Nil(t, ticket.ClosedAt)
	assert.Equal(t, "2024-03-15 14:00:00", ticket.OpenedAt)
	assert.Equal(t, "AI_Bot", ticket.CSAgent)
	require.Len(t, repo.created, 1)
}

func TestCreateTicketAcceptsEmptySubject(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo, &fakeSequence{next: 1})

	ticket, err := svc.Create(context.Background(), domain.CreateTicketRequest{CustomerID: 5})
	require.NoError(t, err)
	assert.Empty(t, ticket.Subject)
	require.Len(t, repo.created, 1)
}

func TestListOpenOnlyFiltersClosedTickets(t *testing.T) {
	repo := &fakeRepo{tickets: []domain.SupportTicket{
		{TicketID: 1, Status: domain.StatusOpen},
		{TicketID: 2, Status: domain.StatusClosed},
	}}
	svc := newService(repo, &fakeSequence{next: 1})

	open, err := svc.List(context.Background(), 5, true)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, int64(1), open[0].TicketID)
}
