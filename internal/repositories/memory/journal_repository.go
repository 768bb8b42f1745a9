package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
)

type entryRow struct {
	header models.JournalEntry
	lines  []models.JournalLine
}

// JournalRepository stores posted entries per tenant in posting order.
type JournalRepository struct {
	store *Store
}

var _ portsrepo.JournalRepositoryFacade = (*JournalRepository)(nil)

func (r *JournalRepository) SaveJournalEntry(_ context.Context, entry domain.JournalEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rows := r.store.entries[entry.TenantID]
	for _, row := range rows {
		if row.header.EntryID == entry.EntryID {
			return fmt.Errorf("%w: journal entry %s", apperrors.ErrDuplicate, entry.EntryID)
		}
		if entry.ReversalOf != "" && row.header.ReversalOf.String == entry.ReversalOf {
			return fmt.Errorf("%w: entry %s already reversed", apperrors.ErrDuplicate, entry.ReversalOf)
		}
	}
	header, lines := mapping.ToModelJournalEntry(entry)
	header.Seq = int64(len(rows) + 1)
	r.store.entries[entry.TenantID] = append(rows, entryRow{header: header, lines: lines})
	return nil
}

func (r *JournalRepository) ListJournalEntries(_ context.Context, tenantID string) ([]domain.JournalEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows := r.store.entries[tenantID]
	out := make([]domain.JournalEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapping.ToDomainJournalEntry(row.header, row.lines))
	}
	return out, nil
}
