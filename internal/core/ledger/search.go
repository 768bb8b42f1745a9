package ledger

import (
	"strings"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// FilterAccounts keeps accounts whose name, code or type contains filter.
func FilterAccounts(accounts []domain.Account, filter string) []domain.Account {
	q := normalizeQuery(filter)
	if q == "" {
		return accounts
	}
	out := make([]domain.Account, 0, len(accounts))
	for _, acc := range accounts {
		if containsFold(acc.Name, q) || containsFold(acc.Code, q) || containsFold(string(acc.Type), q) {
			out = append(out, acc)
		}
	}
	return out
}

// FilterEntries keeps entries whose description or reference contains filter.
func FilterEntries(entries []domain.JournalEntry, filter string) []domain.JournalEntry {
	q := normalizeQuery(filter)
	if q == "" {
		return entries
	}
	out := make([]domain.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if containsFold(entry.Description, q) || containsFold(entry.Reference, q) {
			out = append(out, entry)
		}
	}
	return out
}

func normalizeQuery(filter string) string {
	return strings.ToLower(strings.TrimSpace(filter))
}

// containsFold expects q already lower-cased.
func containsFold(s, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}
