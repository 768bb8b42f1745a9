package mapping

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
)

// ToModelJournalEntry splits a domain entry into its header row and line rows.
func ToModelJournalEntry(d domain.JournalEntry) (models.JournalEntry, []models.JournalLine) {
	header := models.JournalEntry{
		EntryID:     d.EntryID,
		TenantID:    d.TenantID,
		EntryDate:   d.Date,
		Reference:   d.Reference,
		Description: d.Description,
		ReversalOf:  nullString(d.ReversalOf),
		PostedAt:    d.PostedAt,
		PostedBy:    d.PostedBy,
	}
	lines := make([]models.JournalLine, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = models.JournalLine{
			EntryID:   d.EntryID,
			LineNo:    i,
			AccountID: l.AccountID,
			Debit:     l.Debit,
			Credit:    l.Credit,
			Memo:      l.Memo,
		}
	}
	return header, lines
}

// ToDomainJournalEntry joins a header row with its lines, which must already
// be in line_no order.
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalLine) domain.JournalEntry {
	entry := domain.JournalEntry{
		EntryID:     m.EntryID,
		TenantID:    m.TenantID,
		Date:        m.EntryDate,
		Reference:   m.Reference,
		Description: m.Description,
		ReversalOf:  m.ReversalOf.String,
		PostedAt:    m.PostedAt,
		PostedBy:    m.PostedBy,
		Lines:       make([]domain.EntryLine, len(lines)),
	}
	for i, l := range lines {
		entry.Lines[i] = domain.EntryLine{
			AccountID: l.AccountID,
			Debit:     l.Debit,
			Credit:    l.Credit,
			Memo:      l.Memo,
		}
	}
	return entry
}
