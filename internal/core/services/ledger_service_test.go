package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ledger"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/core/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/platform/obs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testTenant = "tenant-a"

var fixedNow = time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedChart() []domain.Account {
	return []domain.Account{
		{AccountID: "acc-cash", TenantID: testTenant, Code: "1000", Name: "Cash on Hand", Type: domain.Asset},
		{AccountID: "acc-sales", TenantID: testTenant, Code: "4000", Name: "Retail Sales", Type: domain.Revenue},
	}
}

func balancedDraft(value string) domain.JournalEntry {
	return domain.JournalEntry{
		Lines: []domain.EntryLine{
			{AccountID: "acc-cash", Debit: amt(value)},
			{AccountID: "acc-sales", Credit: amt(value)},
		},
	}
}

type LedgerServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockJournalRepo *MockJournalRepository
	observer        *recordingObserver
	accounts        portssvc.AccountSvcFacade
	journal         portssvc.JournalSvcFacade
	ctx             context.Context
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockAccountRepo = new(MockAccountRepository)
	s.mockJournalRepo = new(MockJournalRepository)
	s.observer = &recordingObserver{}
	s.ctx = context.Background()

	books := services.NewBooks(s.mockAccountRepo, s.mockJournalRepo, services.WithPostingObserver(s.observer))
	svc := services.NewLedgerService(books, s.mockAccountRepo, s.mockJournalRepo,
		services.WithClock(func() time.Time { return fixedNow }))
	s.accounts = svc
	s.journal = svc
}

func (s *LedgerServiceTestSuite) expectLoad(accounts []domain.Account, entries []domain.JournalEntry) {
	s.mockAccountRepo.On("ListAccounts", mock.Anything, testTenant).Return(accounts, nil).Once()
	s.mockJournalRepo.On("ListJournalEntries", mock.Anything, testTenant).Return(entries, nil).Once()
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) TestPostEntry_AppliesDefaultsAndPersists() {
	s.expectLoad(seedChart(), nil)
	s.mockJournalRepo.On("SaveJournalEntry", mock.Anything, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.TenantID == testTenant && e.PostedBy == "user-1" && len(e.Lines) == 2
	})).Return(nil).Once()

	posted, err := s.journal.PostEntry(s.ctx, testTenant, balancedDraft("100"), "user-1")

	s.Require().NoError(err)
	s.NotEmpty(posted.EntryID)
	s.Equal(domain.DefaultEntryReference, posted.Reference)
	s.Equal(domain.DefaultEntryDescription, posted.Description)
	s.Equal(time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), posted.Date)
	s.Equal(fixedNow, posted.PostedAt)
	s.Equal([]string{obs.OutcomePosted}, s.observer.outcomes)
	s.Equal(1, s.observer.loaded)
	s.mockJournalRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestPostEntry_KeepsSuppliedFields() {
	s.expectLoad(seedChart(), nil)
	s.mockJournalRepo.On("SaveJournalEntry", mock.Anything, mock.Anything).Return(nil).Once()

	draft := balancedDraft("10")
	draft.Reference = "INV-7"
	draft.Description = "Invoice 7"
	draft.Date = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	draft.ReversalOf = "smuggled"

	posted, err := s.journal.PostEntry(s.ctx, testTenant, draft, "user-1")

	s.Require().NoError(err)
	s.Equal("INV-7", posted.Reference)
	s.Equal("Invoice 7", posted.Description)
	s.Equal(draft.Date, posted.Date)
	s.Empty(posted.ReversalOf)
}

func (s *LedgerServiceTestSuite) TestPostEntry_Unbalanced() {
	s.expectLoad(seedChart(), nil)

	draft := balancedDraft("100")
	draft.Lines[1].Credit = amt("90")
	_, err := s.journal.PostEntry(s.ctx, testTenant, draft, "user-1")

	s.ErrorIs(err, ledger.ErrUnbalanced)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal([]string{obs.OutcomeRejected}, s.observer.outcomes)
	s.mockJournalRepo.AssertNotCalled(s.T(), "SaveJournalEntry", mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestPostEntry_PersistFailureReloadsBook() {
	s.expectLoad(seedChart(), nil)
	s.mockJournalRepo.On("SaveJournalEntry", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	_, err := s.journal.PostEntry(s.ctx, testTenant, balancedDraft("100"), "user-1")
	s.Require().Error(err)
	s.Equal([]string{obs.OutcomeFailed}, s.observer.outcomes)
	s.Equal(0, s.observer.loaded)

	// Next access hydrates from the repositories again, without the failed entry.
	s.expectLoad(seedChart(), nil)
	entries, next, err := s.journal.ListEntries(s.ctx, testTenant, dto.ListEntriesParams{})
	s.Require().NoError(err)
	s.Empty(entries)
	s.Nil(next)
	s.mockAccountRepo.AssertNumberOfCalls(s.T(), "ListAccounts", 2)
}

func (s *LedgerServiceTestSuite) TestValidateEntry_DoesNotPersist() {
	s.expectLoad(seedChart(), nil)

	err := s.journal.ValidateEntry(s.ctx, testTenant, balancedDraft("5"))
	s.NoError(err)

	err = s.journal.ValidateEntry(s.ctx, testTenant, domain.JournalEntry{})
	s.ErrorIs(err, ledger.ErrZeroAmount)

	s.mockJournalRepo.AssertNotCalled(s.T(), "SaveJournalEntry", mock.Anything, mock.Anything)
	s.Empty(s.observer.outcomes)
}

func (s *LedgerServiceTestSuite) TestLoadFailure() {
	s.mockAccountRepo.On("ListAccounts", mock.Anything, testTenant).Return(nil, errors.New("boom")).Once()

	_, err := s.accounts.ListAccounts(s.ctx, testTenant, "")
	s.Error(err)
}

func (s *LedgerServiceTestSuite) TestReverseEntry() {
	original := balancedDraft("250")
	original.EntryID = "je-1"
	original.Reference = "INV-1"
	original.Description = "Cash sale"
	original.Lines[0].Memo = "till"
	s.expectLoad(seedChart(), []domain.JournalEntry{original})
	s.mockJournalRepo.On("SaveJournalEntry", mock.Anything, mock.Anything).Return(nil).Once()

	reversal, err := s.journal.ReverseEntry(s.ctx, testTenant, "je-1", "user-2")

	s.Require().NoError(err)
	s.Equal("REV-INV-1", reversal.Reference)
	s.Equal("Reversal of: Cash sale", reversal.Description)
	s.Equal("je-1", reversal.ReversalOf)
	s.Equal("user-2", reversal.PostedBy)
	s.Require().Len(reversal.Lines, 2)
	s.True(reversal.Lines[0].Credit.Equal(amt("250")))
	s.True(reversal.Lines[0].Debit.IsZero())
	s.Equal("till", reversal.Lines[0].Memo)
	s.True(reversal.Lines[1].Debit.Equal(amt("250")))

	_, err = s.journal.ReverseEntry(s.ctx, testTenant, "je-1", "user-2")
	s.ErrorIs(err, apperrors.ErrDuplicate)

	_, err = s.journal.ReverseEntry(s.ctx, testTenant, reversal.EntryID, "user-2")
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.journal.ReverseEntry(s.ctx, testTenant, "missing", "user-2")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestGetEntry() {
	seeded := balancedDraft("1")
	seeded.EntryID = "je-1"
	s.expectLoad(seedChart(), []domain.JournalEntry{seeded})

	got, err := s.journal.GetEntry(s.ctx, testTenant, "je-1")
	s.Require().NoError(err)
	s.Equal("je-1", got.EntryID)

	_, err = s.journal.GetEntry(s.ctx, testTenant, "je-2")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestListEntries_Pages() {
	seed := make([]domain.JournalEntry, 0, 3)
	for _, id := range []string{"je-1", "je-2", "je-3"} {
		e := balancedDraft("1")
		e.EntryID = id
		e.Description = "Sale " + id
		e.PostedAt = fixedNow
		seed = append(seed, e)
	}
	s.expectLoad(seedChart(), seed)

	page, next, err := s.journal.ListEntries(s.ctx, testTenant, dto.ListEntriesParams{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Require().NotNil(next)
	s.Equal("je-1", page[0].EntryID)

	page, next, err = s.journal.ListEntries(s.ctx, testTenant, dto.ListEntriesParams{Limit: 2, NextToken: *next})
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal("je-3", page[0].EntryID)
	s.Nil(next)

	_, _, err = s.journal.ListEntries(s.ctx, testTenant, dto.ListEntriesParams{NextToken: "not-a-token"})
	s.ErrorIs(err, apperrors.ErrValidation)

	filtered, _, err := s.journal.ListEntries(s.ctx, testTenant, dto.ListEntriesParams{Query: "je-2"})
	s.Require().NoError(err)
	s.Len(filtered, 1)
}

func (s *LedgerServiceTestSuite) TestLedger_FiltersByAccount() {
	seeded := balancedDraft("3")
	seeded.EntryID = "je-1"
	s.expectLoad(seedChart(), []domain.JournalEntry{seeded})

	all, err := s.journal.Ledger(s.ctx, testTenant, "")
	s.Require().NoError(err)
	s.Len(all, 2)

	cash, err := s.journal.Ledger(s.ctx, testTenant, "acc-cash")
	s.Require().NoError(err)
	s.Require().Len(cash, 1)
	s.Equal(0, cash[0].LineNo)
}

func (s *LedgerServiceTestSuite) TestCreateAccount() {
	s.expectLoad(seedChart(), nil)
	s.mockAccountRepo.On("SaveAccount", mock.Anything, mock.MatchedBy(func(a domain.Account) bool {
		return a.Code == "1100" && a.Type == domain.Asset && a.CreatedBy == "user-1"
	})).Return(nil).Once()

	acc, err := s.accounts.CreateAccount(s.ctx, testTenant, dto.CreateAccountRequest{
		Code: " 1100 ", Name: "Bank", AccountType: "Asset", ParentAccountID: "acc-cash",
	}, "user-1")

	s.Require().NoError(err)
	s.NotEmpty(acc.AccountID)
	s.Equal(testTenant, acc.TenantID)
	s.Equal(fixedNow, acc.CreatedAt)

	_, err = s.accounts.CreateAccount(s.ctx, testTenant, dto.CreateAccountRequest{
		Code: "1000", Name: "Dup", AccountType: "asset",
	}, "user-1")
	s.ErrorIs(err, apperrors.ErrDuplicate)

	_, err = s.accounts.CreateAccount(s.ctx, testTenant, dto.CreateAccountRequest{
		Code: "1300", Name: "Orphan", AccountType: "asset", ParentAccountID: "nope",
	}, "user-1")
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.accounts.CreateAccount(s.ctx, testTenant, dto.CreateAccountRequest{
		Code: "9000", Name: "Bad", AccountType: "income",
	}, "user-1")
	s.ErrorIs(err, apperrors.ErrValidation)

	listed, err := s.accounts.ListAccounts(s.ctx, testTenant, "bank")
	s.Require().NoError(err)
	s.Len(listed, 1)
}

func (s *LedgerServiceTestSuite) TestSetupChartOfAccounts_SkipsExistingCodes() {
	s.expectLoad(seedChart(), nil)
	s.mockAccountRepo.On("SaveAccount", mock.Anything, mock.Anything).Return(nil)

	created, err := s.accounts.SetupChartOfAccounts(s.ctx, testTenant, "Pharmacy", "user-1")
	s.Require().NoError(err)
	codes := make([]string, 0, len(created))
	for _, acc := range created {
		codes = append(codes, acc.Code)
	}
	s.Equal([]string{"1200", "5000"}, codes)

	again, err := s.accounts.SetupChartOfAccounts(s.ctx, testTenant, "pharmacy", "user-1")
	s.Require().NoError(err)
	s.Empty(again)
	s.mockAccountRepo.AssertNumberOfCalls(s.T(), "SaveAccount", 2)
}

func TestBooks_TenantsAreIsolated(t *testing.T) {
	accountRepo := new(MockAccountRepository)
	journalRepo := new(MockJournalRepository)
	for _, tenant := range []string{"t1", "t2"} {
		accountRepo.On("ListAccounts", mock.Anything, tenant).Return(seedChart(), nil).Once()
		journalRepo.On("ListJournalEntries", mock.Anything, tenant).Return([]domain.JournalEntry{}, nil).Once()
	}
	journalRepo.On("SaveJournalEntry", mock.Anything, mock.Anything).Return(nil)

	books := services.NewBooks(accountRepo, journalRepo)
	svc := services.NewLedgerService(books, accountRepo, journalRepo)
	ctx := context.Background()

	_, err := svc.PostEntry(ctx, "t1", balancedDraft("10"), "u")
	require.NoError(t, err)

	t2, _, err := svc.ListEntries(ctx, "t2", dto.ListEntriesParams{})
	require.NoError(t, err)
	assert.Empty(t, t2)

	t1, _, err := svc.ListEntries(ctx, "t1", dto.ListEntriesParams{})
	require.NoError(t, err)
	assert.Len(t, t1, 1)
}

func TestBooks_StrictAccounts(t *testing.T) {
	accountRepo := new(MockAccountRepository)
	journalRepo := new(MockJournalRepository)
	accountRepo.On("ListAccounts", mock.Anything, testTenant).Return(seedChart(), nil).Once()
	journalRepo.On("ListJournalEntries", mock.Anything, testTenant).Return([]domain.JournalEntry{}, nil).Once()

	books := services.NewBooks(accountRepo, journalRepo, services.WithStrictAccounts(true))
	svc := services.NewLedgerService(books, accountRepo, journalRepo)

	draft := balancedDraft("10")
	draft.Lines[1].AccountID = "ghost"
	_, err := svc.PostEntry(context.Background(), testTenant, draft, "u")

	assert.ErrorIs(t, err, ledger.ErrUnknownAccount)
	journalRepo.AssertNotCalled(t, "SaveJournalEntry", mock.Anything, mock.Anything)
}
