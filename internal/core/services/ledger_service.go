package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/platform/obs"
	"github.com/SscSPs/erp_ledger/internal/utils/pagination"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200

	reversalRefPrefix  = "REV-"
	reversalDescPrefix = "Reversal of: "
)

// LedgerServiceOption configures the ledger service.
type LedgerServiceOption func(*ledgerService)

// WithClock replaces the clock used for audit and posting timestamps.
func WithClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// WithDefaultIndustry sets the chart template used when setup names none.
func WithDefaultIndustry(industry string) LedgerServiceOption {
	return func(s *ledgerService) {
		if industry != "" {
			s.defaultIndustry = industry
		}
	}
}

// ledgerService serves accounts and journal entries from the tenant books and
// writes every change through to the repositories.
type ledgerService struct {
	BaseService
	books       *Books
	accountRepo portsrepo.AccountWriter
	journalRepo portsrepo.JournalWriter

	now             func() time.Time
	defaultIndustry string
}

// NewLedgerService creates the account and journal service over books.
func NewLedgerService(books *Books, accountRepo portsrepo.AccountWriter, journalRepo portsrepo.JournalWriter, opts ...LedgerServiceOption) *ledgerService {
	s := &ledgerService{
		books:           books,
		accountRepo:     accountRepo,
		journalRepo:     journalRepo,
		now:             func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }, // postgres timestamp precision
		defaultIndustry: domain.DefaultIndustry,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	_ portssvc.AccountSvcFacade = (*ledgerService)(nil)
	_ portssvc.JournalSvcFacade = (*ledgerService)(nil)
)

// --- Accounts ---

func (s *ledgerService) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	accountType, ok := domain.ParseAccountType(req.AccountType)
	if !ok {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	acc := s.newAccount(tenantID, strings.TrimSpace(req.Code), strings.TrimSpace(req.Name), accountType, userID)
	acc.ParentAccountID = strings.TrimSpace(req.ParentAccountID)

	book, err := s.books.lock(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	defer book.writeMu.Unlock()

	if acc.ParentAccountID != "" && !hasAccount(book.engine.Accounts(), acc.ParentAccountID) {
		return nil, fmt.Errorf("%w: parent account %s not found", apperrors.ErrValidation, acc.ParentAccountID)
	}
	if err := s.addAccountLocked(ctx, tenantID, book, acc); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", acc.AccountID), slog.String("code", acc.Code))
	return &acc, nil
}

func (s *ledgerService) ListAccounts(ctx context.Context, tenantID, filter string) ([]domain.Account, error) {
	book, err := s.books.get(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return book.engine.ListAccounts(filter), nil
}

func (s *ledgerService) SetupChartOfAccounts(ctx context.Context, tenantID, industry, userID string) ([]domain.Account, error) {
	industry = strings.ToLower(strings.TrimSpace(industry))
	if industry == "" {
		industry = s.defaultIndustry
	}

	book, err := s.books.lock(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	defer book.writeMu.Unlock()

	created := make([]domain.Account, 0)
	for _, tpl := range domain.ChartTemplateFor(industry) {
		if _, exists := book.engine.AccountByCode(tpl.Code); exists {
			continue
		}
		acc := s.newAccount(tenantID, tpl.Code, tpl.Name, tpl.Type, userID)
		if err := s.addAccountLocked(ctx, tenantID, book, acc); err != nil {
			return created, err
		}
		created = append(created, acc)
	}

	s.LogInfo(ctx, "Chart of accounts set up", slog.String("industry", industry), slog.Int("created", len(created)))
	return created, nil
}

func (s *ledgerService) newAccount(tenantID, code, name string, accountType domain.AccountType, userID string) domain.Account {
	return domain.Account{
		AccountID: uuid.NewString(),
		TenantID:  tenantID,
		Code:      code,
		Name:      name,
		Type:      accountType,
		AuditFields: domain.AuditFields{
			CreatedAt: s.now(),
			CreatedBy: userID,
		},
	}
}

// addAccountLocked requires book.writeMu, taken through Books.lock.
func (s *ledgerService) addAccountLocked(ctx context.Context, tenantID string, book *tenantBook, acc domain.Account) error {
	if err := book.engine.AddAccount(acc); err != nil {
		return err
	}
	if err := s.accountRepo.SaveAccount(ctx, acc); err != nil {
		s.books.discard(tenantID, book)
		s.LogError(ctx, err, "Failed to persist account", slog.String("account_id", acc.AccountID))
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

func hasAccount(accounts []domain.Account, accountID string) bool {
	for _, acc := range accounts {
		if acc.AccountID == accountID {
			return true
		}
	}
	return false
}

// --- Journal entries ---

func (s *ledgerService) ValidateEntry(ctx context.Context, tenantID string, draft domain.JournalEntry) error {
	book, err := s.books.get(ctx, tenantID)
	if err != nil {
		return err
	}
	return book.engine.Validate(draft)
}

func (s *ledgerService) PostEntry(ctx context.Context, tenantID string, draft domain.JournalEntry, userID string) (*domain.JournalEntry, error) {
	entry := s.applyDefaults(draft)
	entry.TenantID = tenantID
	entry.PostedBy = userID
	entry.ReversalOf = ""

	book, err := s.books.lock(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	defer book.writeMu.Unlock()
	return s.postLocked(ctx, tenantID, book, entry)
}

// postLocked requires book.writeMu, taken through Books.lock. The entry is
// appended locally first and then persisted; a persistence failure discards
// the book.
func (s *ledgerService) postLocked(ctx context.Context, tenantID string, book *tenantBook, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	posted, err := book.engine.PostEntry(entry)
	if err != nil {
		s.books.observer.ObservePosting(obs.OutcomeRejected)
		s.LogDebug(ctx, "Journal entry rejected", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.journalRepo.SaveJournalEntry(ctx, posted); err != nil {
		s.books.discard(tenantID, book)
		s.books.observer.ObservePosting(obs.OutcomeFailed)
		s.LogError(ctx, err, "Failed to persist journal entry", slog.String("entry_id", posted.EntryID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	s.books.observer.ObservePosting(obs.OutcomePosted)
	s.LogInfo(ctx, "Journal entry posted", slog.String("entry_id", posted.EntryID), slog.String("reference", posted.Reference))
	return &posted, nil
}

func (s *ledgerService) applyDefaults(draft domain.JournalEntry) domain.JournalEntry {
	entry := draft.Clone()
	now := s.now()
	if strings.TrimSpace(entry.Reference) == "" {
		entry.Reference = domain.DefaultEntryReference
	}
	if strings.TrimSpace(entry.Description) == "" {
		entry.Description = domain.DefaultEntryDescription
	}
	if entry.Date.IsZero() {
		entry.Date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	entry.PostedAt = now
	return entry
}

func (s *ledgerService) ReverseEntry(ctx context.Context, tenantID, entryID, userID string) (*domain.JournalEntry, error) {
	book, err := s.books.lock(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	defer book.writeMu.Unlock()

	original, ok := book.engine.Entry(entryID)
	if !ok {
		return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	if original.ReversalOf != "" {
		return nil, fmt.Errorf("%w: entry %s is itself a reversal", apperrors.ErrValidation, entryID)
	}
	for _, e := range book.engine.Entries() {
		if e.ReversalOf == entryID {
			return nil, fmt.Errorf("%w: entry %s already reversed by %s", apperrors.ErrDuplicate, entryID, e.EntryID)
		}
	}

	reversal := s.applyDefaults(domain.JournalEntry{
		TenantID:    tenantID,
		Reference:   reversalRefPrefix + original.Reference,
		Description: reversalDescPrefix + original.Description,
		Lines:       make([]domain.EntryLine, len(original.Lines)),
		ReversalOf:  original.EntryID,
		PostedBy:    userID,
	})
	for i, l := range original.Lines {
		reversal.Lines[i] = domain.EntryLine{
			AccountID: l.AccountID,
			Debit:     l.Credit,
			Credit:    l.Debit,
			Memo:      l.Memo,
		}
	}
	return s.postLocked(ctx, tenantID, book, reversal)
}

func (s *ledgerService) GetEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	book, err := s.books.get(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	entry, ok := book.engine.Entry(entryID)
	if !ok {
		return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	return &entry, nil
}

// ListEntries pages through the filtered entries in posting order. The
// returned token is nil on the last page.
func (s *ledgerService) ListEntries(ctx context.Context, tenantID string, params dto.ListEntriesParams) ([]domain.JournalEntry, *string, error) {
	book, err := s.books.get(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}
	entries := book.engine.ListEntries(params.Query)
	limit := pagination.ClampLimit(params.Limit, defaultPageSize, maxPageSize)

	start := 0
	if params.NextToken != "" {
		postedAt, lastID, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		idx := indexOfEntry(entries, lastID)
		if idx < 0 || !entries[idx].PostedAt.Equal(postedAt) {
			return nil, nil, fmt.Errorf("%w: pagination token does not match any entry", apperrors.ErrValidation)
		}
		start = idx + 1
	}

	end := start + limit
	if end >= len(entries) {
		return entries[start:], nil, nil
	}
	page := entries[start:end]
	last := page[len(page)-1]
	token := pagination.EncodeToken(last.PostedAt, last.EntryID)
	return page, &token, nil
}

func indexOfEntry(entries []domain.JournalEntry, entryID string) int {
	for i, e := range entries {
		if e.EntryID == entryID {
			return i
		}
	}
	return -1
}

func (s *ledgerService) Ledger(ctx context.Context, tenantID, accountID string) ([]domain.LedgerLine, error) {
	book, err := s.books.get(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	lines := book.engine.Ledger()
	if accountID != "" {
		lines = ledger.LedgerForAccount(lines, accountID)
	}
	return lines, nil
}
