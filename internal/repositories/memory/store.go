// Package memory implements the repository ports in process memory. It backs
// STORE_BACKEND=memory and is lost on restart.
package memory

import (
	"sync"

	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
)

// Store holds every tenant's rows behind one lock.
type Store struct {
	mu       sync.RWMutex
	accounts map[string][]accountRow
	entries  map[string][]entryRow
	invoices map[string][]invoiceRow
	receipts map[string][]receiptRow
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		accounts: make(map[string][]accountRow),
		entries:  make(map[string][]entryRow),
		invoices: make(map[string][]invoiceRow),
		receipts: make(map[string][]receiptRow),
	}
}

// NewRepositoryProvider wires the in-memory repositories over one store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     &AccountRepository{store: store},
		JournalRepo:     &JournalRepository{store: store},
		ReceivablesRepo: &ReceivablesRepository{store: store},
	}
}
