package sqlite

import (
	"context"
	"database/sql"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
)

// JournalRepository stores posted entries. rowid records posting order.
type JournalRepository struct {
	db *sql.DB
}

var _ portsrepo.JournalRepositoryFacade = (*JournalRepository)(nil)

func (r *JournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	header, lines := mapping.ToModelJournalEntry(entry)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err, "begin journal entry "+header.EntryID)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO journal_entries (entry_id, tenant_id, entry_date, reference, description, reversal_of, posted_at, posted_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		header.EntryID, header.TenantID, formatTime(header.EntryDate), header.Reference, header.Description,
		header.ReversalOf, formatTime(header.PostedAt), header.PostedBy,
	); err != nil {
		return mapError(err, "journal entry "+header.EntryID)
	}

	for _, l := range lines {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO journal_lines (entry_id, line_no, account_id, debit, credit, memo)
			VALUES (?, ?, ?, ?, ?, ?)`,
			l.EntryID, l.LineNo, l.AccountID, l.Debit.String(), l.Credit.String(), l.Memo,
		); err != nil {
			return mapError(err, "journal lines of "+header.EntryID)
		}
	}

	if err := tx.Commit(); err != nil {
		return mapError(err, "commit journal entry "+header.EntryID)
	}
	return nil
}

func (r *JournalRepository) ListJournalEntries(ctx context.Context, tenantID string) ([]domain.JournalEntry, error) {
	headers, err := r.listHeaders(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT l.entry_id, l.line_no, l.account_id, l.debit, l.credit, l.memo
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.tenant_id = ?
		ORDER BY e.rowid, l.line_no`, tenantID)
	if err != nil {
		return nil, mapError(err, "list journal lines")
	}
	defer rows.Close()

	linesByEntry := make(map[string][]models.JournalLine, len(headers))
	for rows.Next() {
		var l models.JournalLine
		if err := rows.Scan(&l.EntryID, &l.LineNo, &l.AccountID, &l.Debit, &l.Credit, &l.Memo); err != nil {
			return nil, mapError(err, "scan journal line")
		}
		linesByEntry[l.EntryID] = append(linesByEntry[l.EntryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate journal lines")
	}

	entries := make([]domain.JournalEntry, 0, len(headers))
	for _, h := range headers {
		entries = append(entries, mapping.ToDomainJournalEntry(h, linesByEntry[h.EntryID]))
	}
	return entries, nil
}

func (r *JournalRepository) listHeaders(ctx context.Context, tenantID string) ([]models.JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT entry_id, tenant_id, entry_date, reference, description, reversal_of, rowid, posted_at, posted_by
		FROM journal_entries
		WHERE tenant_id = ?
		ORDER BY rowid`, tenantID)
	if err != nil {
		return nil, mapError(err, "list journal entries")
	}
	defer rows.Close()

	var headers []models.JournalEntry
	for rows.Next() {
		var (
			h                   models.JournalEntry
			entryDate, postedAt string
		)
		if err := rows.Scan(&h.EntryID, &h.TenantID, &entryDate, &h.Reference, &h.Description, &h.ReversalOf, &h.Seq, &postedAt, &h.PostedBy); err != nil {
			return nil, mapError(err, "scan journal entry")
		}
		if h.EntryDate, err = parseTime(entryDate); err != nil {
			return nil, mapError(err, "parse entry_date")
		}
		if h.PostedAt, err = parseTime(postedAt); err != nil {
			return nil, mapError(err, "parse posted_at")
		}
		headers = append(headers, h)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate journal entries")
	}
	return headers, nil
}
