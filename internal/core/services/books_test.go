package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/core/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedJournalRepo holds the save of failID until release is closed and then
// fails it. Every other save goes to the wrapped repository.
type gatedJournalRepo struct {
	portsrepo.JournalRepositoryFacade
	failID  string
	entered chan struct{}
	release chan struct{}
}

func newGatedJournalRepo(inner portsrepo.JournalRepositoryFacade, failID string) *gatedJournalRepo {
	return &gatedJournalRepo{
		JournalRepositoryFacade: inner,
		failID:                  failID,
		entered:                 make(chan struct{}),
		release:                 make(chan struct{}),
	}
}

func (r *gatedJournalRepo) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	if entry.EntryID == r.failID {
		close(r.entered)
		<-r.release
		return errors.New("db down")
	}
	return r.JournalRepositoryFacade.SaveJournalEntry(ctx, entry)
}

type gatedLedger struct {
	repos     portsrepo.RepositoryProvider
	journal   *gatedJournalRepo
	ledger    portssvc.JournalSvcFacade
	reporting portssvc.ReportingService
}

func newGatedLedger(t *testing.T, failID string) *gatedLedger {
	t.Helper()
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())
	for _, acc := range seedChart() {
		require.NoError(t, repos.AccountRepo.SaveAccount(ctx, acc))
	}

	gated := newGatedJournalRepo(repos.JournalRepo, failID)
	books := services.NewBooks(repos.AccountRepo, gated)
	return &gatedLedger{
		repos:     repos,
		journal:   gated,
		ledger:    services.NewLedgerService(books, repos.AccountRepo, gated),
		reporting: services.NewReportingService(books),
	}
}

// waitForBlockedWriters gives goroutines started after the gated save a
// chance to queue on the tenant's write lock before the save fails.
func waitForBlockedWriters() {
	time.Sleep(50 * time.Millisecond)
}

func TestBooks_ReverseQueuedBehindFailedPostSeesReloadedBook(t *testing.T) {
	l := newGatedLedger(t, "A")
	ctx := context.Background()

	draft := balancedDraft("100")
	draft.EntryID = "A"
	postErr := make(chan error, 1)
	go func() {
		_, err := l.ledger.PostEntry(ctx, testTenant, draft, "user-1")
		postErr <- err
	}()
	<-l.journal.entered

	reverseErr := make(chan error, 1)
	go func() {
		_, err := l.ledger.ReverseEntry(ctx, testTenant, "A", "user-2")
		reverseErr <- err
	}()
	waitForBlockedWriters()
	close(l.journal.release)

	require.Error(t, <-postErr)
	assert.ErrorIs(t, <-reverseErr, apperrors.ErrNotFound)

	persisted, err := l.repos.JournalRepo.ListJournalEntries(ctx, testTenant)
	require.NoError(t, err)
	assert.Empty(t, persisted, "no reversal of an unpersisted entry may be saved")

	_, err = l.ledger.GetEntry(ctx, testTenant, "A")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBooks_PostsQueuedBehindFailedPostMatchStorage(t *testing.T) {
	l := newGatedLedger(t, "A")
	ctx := context.Background()

	failing := balancedDraft("100")
	failing.EntryID = "A"
	postErr := make(chan error, 1)
	go func() {
		_, err := l.ledger.PostEntry(ctx, testTenant, failing, "user-1")
		postErr <- err
	}()
	<-l.journal.entered

	const writers = 5
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.ledger.PostEntry(ctx, testTenant, balancedDraft("10"), "user-2")
			errs <- err
		}()
	}
	waitForBlockedWriters()
	close(l.journal.release)

	require.Error(t, <-postErr)
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	persisted, err := l.repos.JournalRepo.ListJournalEntries(ctx, testTenant)
	require.NoError(t, err)
	served, _, err := l.ledger.ListEntries(ctx, testTenant, dto.ListEntriesParams{Limit: 50})
	require.NoError(t, err)

	require.Len(t, persisted, writers)
	require.Len(t, served, writers)
	persistedIDs := map[string]bool{}
	for _, e := range persisted {
		persistedIDs[e.EntryID] = true
	}
	for _, e := range served {
		assert.True(t, persistedIDs[e.EntryID], "served entry %s is not in storage", e.EntryID)
	}

	report, err := l.reporting.TrialBalance(ctx, testTenant)
	require.NoError(t, err)
	assert.True(t, report.TotalDebit.Equal(amt("50")))
	assert.True(t, report.TotalCredit.Equal(amt("50")))
}
