package pgsql

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for posted journal entries.
func newPgxJournalRepository(pool *pgxpool.Pool) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveJournalEntry inserts the entry header and its lines in one transaction.
// The seq column records store order.
func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	header, lines := mapping.ToModelJournalEntry(entry)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		INSERT INTO journal_entries (entry_id, tenant_id, entry_date, reference, description, reversal_of, posted_at, posted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	if _, err := tx.Exec(ctx, headerQuery,
		header.EntryID,
		header.TenantID,
		header.EntryDate,
		header.Reference,
		header.Description,
		header.ReversalOf,
		header.PostedAt,
		header.PostedBy,
	); err != nil {
		return mapError(err, "journal entry "+header.EntryID)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (entry_id, line_no, account_id, debit, credit, memo)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, l := range lines {
		batch.Queue(lineQuery, l.EntryID, l.LineNo, l.AccountID, l.Debit, l.Credit, l.Memo)
	}
	br := tx.SendBatch(ctx, batch)
	// Close reports the first failed command of the batch.
	if err := br.Close(); err != nil {
		return mapError(err, "journal lines of "+header.EntryID)
	}

	return r.Commit(ctx, tx)
}

// ListJournalEntries loads every entry of the tenant with its lines, in seq order.
func (r *PgxJournalRepository) ListJournalEntries(ctx context.Context, tenantID string) ([]domain.JournalEntry, error) {
	headerQuery := `
		SELECT entry_id, tenant_id, entry_date, reference, description, reversal_of, seq, posted_at, posted_by
		FROM journal_entries
		WHERE tenant_id = $1
		ORDER BY seq;
	`
	rows, err := r.Pool.Query(ctx, headerQuery, tenantID)
	if err != nil {
		return nil, mapError(err, "list journal entries")
	}
	var headers []models.JournalEntry
	for rows.Next() {
		var h models.JournalEntry
		if err := rows.Scan(
			&h.EntryID,
			&h.TenantID,
			&h.EntryDate,
			&h.Reference,
			&h.Description,
			&h.ReversalOf,
			&h.Seq,
			&h.PostedAt,
			&h.PostedBy,
		); err != nil {
			rows.Close()
			return nil, mapError(err, "scan journal entry")
		}
		headers = append(headers, h)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate journal entries")
	}

	lineQuery := `
		SELECT l.entry_id, l.line_no, l.account_id, l.debit, l.credit, l.memo
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.tenant_id = $1
		ORDER BY e.seq, l.line_no;
	`
	lineRows, err := r.Pool.Query(ctx, lineQuery, tenantID)
	if err != nil {
		return nil, mapError(err, "list journal lines")
	}
	defer lineRows.Close()

	linesByEntry := make(map[string][]models.JournalLine, len(headers))
	for lineRows.Next() {
		var l models.JournalLine
		if err := lineRows.Scan(&l.EntryID, &l.LineNo, &l.AccountID, &l.Debit, &l.Credit, &l.Memo); err != nil {
			return nil, mapError(err, "scan journal line")
		}
		linesByEntry[l.EntryID] = append(linesByEntry[l.EntryID], l)
	}
	if err := lineRows.Err(); err != nil {
		return nil, mapError(err, "iterate journal lines")
	}

	entries := make([]domain.JournalEntry, 0, len(headers))
	for _, h := range headers {
		entries = append(entries, mapping.ToDomainJournalEntry(h, linesByEntry[h.EntryID]))
	}
	return entries, nil
}
