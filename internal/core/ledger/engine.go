// Package ledger implements double-entry journal validation and posting, and
// the read-side views derived from posted entries: the flattened ledger, the
// trial balance, customer statements and receivables aging.
//
// The engine performs no I/O and no logging. Callers inject the chart of
// accounts and any previously posted entries and decide where results are
// persisted.
package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/utils/ids"
)

// Option configures an Engine.
type Option func(*Engine)

// WithStrictAccounts makes PostEntry reject lines whose account is not in the chart.
func WithStrictAccounts() Option {
	return func(e *Engine) {
		e.strict = true
	}
}

// WithIDGenerator replaces the default ULID generator used for entries posted without an id.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		e.newID = fn
	}
}

// WithClock replaces the clock used to stamp PostedAt.
func WithClock(fn func() time.Time) Option {
	return func(e *Engine) {
		e.now = fn
	}
}

// Engine owns the canonical account and entry store of one book.
// Posting is append-only; every read returns a snapshot copy.
type Engine struct {
	mu       sync.RWMutex
	accounts []domain.Account
	entries  []domain.JournalEntry
	entryIdx map[string]int

	strict bool
	newID  func() string
	now    func() time.Time
}

// New creates an engine seeded with the given accounts and already-posted
// entries, in store order. Seed entries are trusted and not re-validated.
func New(accounts []domain.Account, entries []domain.JournalEntry, opts ...Option) *Engine {
	e := &Engine{
		accounts: make([]domain.Account, len(accounts)),
		entries:  make([]domain.JournalEntry, 0, len(entries)),
		entryIdx: make(map[string]int, len(entries)),
		newID:    ids.New,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	copy(e.accounts, accounts)
	for _, entry := range entries {
		e.entryIdx[entry.EntryID] = len(e.entries)
		e.entries = append(e.entries, entry.Clone())
	}
	return e
}

// Strict reports whether the engine enforces account references.
func (e *Engine) Strict() bool {
	return e.strict
}

// AddAccount appends an account to the chart. Ids and codes must be unique.
func (e *Engine) AddAccount(acc domain.Account) error {
	if acc.AccountID == "" {
		return fmt.Errorf("%w: account id is required", apperrors.ErrValidation)
	}
	if acc.Code == "" {
		return fmt.Errorf("%w: account code is required", apperrors.ErrValidation)
	}
	if _, ok := domain.ParseAccountType(string(acc.Type)); !ok {
		return fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, acc.Type)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, existing := range e.accounts {
		if existing.AccountID == acc.AccountID {
			return fmt.Errorf("%w: account id %s", apperrors.ErrDuplicate, acc.AccountID)
		}
		if existing.Code == acc.Code {
			return fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, acc.Code)
		}
	}
	e.accounts = append(e.accounts, acc)
	return nil
}

// Accounts returns the chart of accounts in insertion order.
func (e *Engine) Accounts() []domain.Account {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]domain.Account, len(e.accounts))
	copy(out, e.accounts)
	return out
}

// AccountByCode looks up an account by its code.
func (e *Engine) AccountByCode(code string) (domain.Account, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, acc := range e.accounts {
		if acc.Code == code {
			return acc, true
		}
	}
	return domain.Account{}, false
}

// Entries returns all posted entries in store order.
func (e *Engine) Entries() []domain.JournalEntry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshotLocked()
}

// Entry returns the posted entry with the given id.
func (e *Engine) Entry(entryID string) (domain.JournalEntry, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	i, ok := e.entryIdx[entryID]
	if !ok {
		return domain.JournalEntry{}, false
	}
	return e.entries[i].Clone(), true
}

// Validate runs ValidateEntry and, in strict mode, the account reference check.
// It never mutates the store.
func (e *Engine) Validate(entry domain.JournalEntry) error {
	if err := ValidateEntry(entry); err != nil {
		return err
	}
	if !e.strict {
		return nil
	}
	e.mu.RLock()
	known := e.accountSetLocked()
	e.mu.RUnlock()
	return validateAccounts(entry, known)
}

// PostEntry validates entry and, on success, appends it to the store and
// returns the stored copy. On failure the store is unchanged and the
// validation error is returned as is.
func (e *Engine) PostEntry(entry domain.JournalEntry) (domain.JournalEntry, error) {
	if err := ValidateEntry(entry); err != nil {
		return domain.JournalEntry{}, err
	}

	stored := entry.Clone()
	if stored.PostedAt.IsZero() {
		stored.PostedAt = e.now()
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.strict {
		if err := validateAccounts(stored, e.accountSetLocked()); err != nil {
			return domain.JournalEntry{}, err
		}
	}
	if stored.EntryID == "" {
		stored.EntryID = e.newID()
	}
	if _, exists := e.entryIdx[stored.EntryID]; exists {
		return domain.JournalEntry{}, fmt.Errorf("%w: journal entry %s", apperrors.ErrDuplicate, stored.EntryID)
	}

	e.entryIdx[stored.EntryID] = len(e.entries)
	e.entries = append(e.entries, stored)
	return stored.Clone(), nil
}

// ListAccounts returns the accounts whose name, code or type contains filter,
// case-insensitively. A blank filter returns every account.
func (e *Engine) ListAccounts(filter string) []domain.Account {
	return FilterAccounts(e.Accounts(), filter)
}

// ListEntries returns the entries whose description or reference contains
// filter, case-insensitively, in store order.
func (e *Engine) ListEntries(filter string) []domain.JournalEntry {
	return FilterEntries(e.Entries(), filter)
}

// Ledger flattens the current store.
func (e *Engine) Ledger() []domain.LedgerLine {
	return FlattenLedger(e.Entries())
}

// TrialBalance computes the trial balance of the current store.
func (e *Engine) TrialBalance() []domain.TrialBalanceRow {
	e.mu.RLock()
	accounts := make([]domain.Account, len(e.accounts))
	copy(accounts, e.accounts)
	entries := e.snapshotLocked()
	e.mu.RUnlock()
	return TrialBalance(accounts, entries)
}

func (e *Engine) snapshotLocked() []domain.JournalEntry {
	out := make([]domain.JournalEntry, len(e.entries))
	for i, entry := range e.entries {
		out[i] = entry.Clone()
	}
	return out
}

func (e *Engine) accountSetLocked() map[string]struct{} {
	known := make(map[string]struct{}, len(e.accounts))
	for _, acc := range e.accounts {
		known[acc.AccountID] = struct{}{}
	}
	return known
}
