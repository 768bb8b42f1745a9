package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// JournalReader defines read operations for posted journal entries
type JournalReader interface {
	// ListJournalEntries returns every posted entry of a tenant, with lines,
	// in posting order.
	ListJournalEntries(ctx context.Context, tenantID string) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for posted journal entries
type JournalWriter interface {
	// SaveJournalEntry atomically persists an entry and all of its lines.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
