package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/erp_ledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
)

// PostingObserver receives posting outcomes and cache size, typically a
// Prometheus collector set.
type PostingObserver interface {
	ObservePosting(outcome string)
	SetBooksLoaded(n int)
}

type nopObserver struct{}

func (nopObserver) ObservePosting(string) {}
func (nopObserver) SetBooksLoaded(int)    {}

// BooksOption configures Books.
type BooksOption func(*Books)

// WithStrictAccounts makes every tenant engine reject unknown account ids.
func WithStrictAccounts(strict bool) BooksOption {
	return func(b *Books) {
		b.strict = strict
	}
}

// WithPostingObserver reports posting outcomes to o.
func WithPostingObserver(o PostingObserver) BooksOption {
	return func(b *Books) {
		if o != nil {
			b.observer = o
		}
	}
}

// tenantBook is one tenant's engine. writeMu serializes a local post with its
// persistence so the repository sees entries in engine order. Writers take it
// through Books.lock.
type tenantBook struct {
	engine  *ledger.Engine
	writeMu sync.Mutex
}

// Books keeps one ledger engine per tenant, hydrated lazily from the
// repositories. A book whose persistence failed is discarded and rebuilt
// from the repositories on next access.
type Books struct {
	mu    sync.Mutex
	books map[string]*tenantBook
	epoch uint64 // bumped on every discard

	accountRepo portsrepo.AccountReader
	journalRepo portsrepo.JournalReader
	strict      bool
	observer    PostingObserver
}

// NewBooks creates an empty per-tenant book cache.
func NewBooks(accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalReader, opts ...BooksOption) *Books {
	b := &Books{
		books:       make(map[string]*tenantBook),
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		observer:    nopObserver{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Books) get(ctx context.Context, tenantID string) (*tenantBook, error) {
	for {
		b.mu.Lock()
		book, ok := b.books[tenantID]
		epoch := b.epoch
		b.mu.Unlock()
		if ok {
			return book, nil
		}

		loaded, err := b.load(ctx, tenantID)
		if err != nil {
			return nil, err
		}

		b.mu.Lock()
		// Another request may have loaded the book meanwhile; keep the first.
		if existing, ok := b.books[tenantID]; ok {
			b.mu.Unlock()
			return existing, nil
		}
		// A discard since the read started means the load may predate writes
		// persisted by the discarded book.
		if b.epoch != epoch {
			b.mu.Unlock()
			continue
		}
		b.books[tenantID] = loaded
		b.observer.SetBooksLoaded(len(b.books))
		b.mu.Unlock()
		return loaded, nil
	}
}

func (b *Books) load(ctx context.Context, tenantID string) (*tenantBook, error) {
	accounts, err := b.accountRepo.ListAccounts(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts for tenant %s: %w", tenantID, err)
	}
	entries, err := b.journalRepo.ListJournalEntries(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal entries for tenant %s: %w", tenantID, err)
	}

	var opts []ledger.Option
	if b.strict {
		opts = append(opts, ledger.WithStrictAccounts())
	}
	return &tenantBook{engine: ledger.New(accounts, entries, opts...)}, nil
}

// lock returns the tenant's current book with writeMu held. Callers that
// waited on a book discarded in the meantime retry against the reloaded one,
// so no write is ever applied to a book holding unpersisted entries.
func (b *Books) lock(ctx context.Context, tenantID string) (*tenantBook, error) {
	for {
		book, err := b.get(ctx, tenantID)
		if err != nil {
			return nil, err
		}
		book.writeMu.Lock()
		if b.current(tenantID, book) {
			return book, nil
		}
		book.writeMu.Unlock()
	}
}

func (b *Books) current(tenantID string, book *tenantBook) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.books[tenantID] == book
}

// discard drops book so the next access reloads it from the repositories.
// It must be called with book.writeMu held.
func (b *Books) discard(tenantID string, book *tenantBook) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.books[tenantID] == book {
		delete(b.books, tenantID)
		b.epoch++
		b.observer.SetBooksLoaded(len(b.books))
	}
}
