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

type accountRow = models.Account

// AccountRepository stores accounts per tenant in insertion order.
type AccountRepository struct {
	store *Store
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

func (r *AccountRepository) SaveAccount(_ context.Context, account domain.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rows := r.store.accounts[account.TenantID]
	for _, row := range rows {
		if row.AccountID == account.AccountID || row.Code == account.Code {
			return fmt.Errorf("%w: account %s", apperrors.ErrDuplicate, account.Code)
		}
	}
	r.store.accounts[account.TenantID] = append(rows, mapping.ToModelAccount(account))
	return nil
}

func (r *AccountRepository) ListAccounts(_ context.Context, tenantID string) ([]domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return mapping.ToDomainAccountSlice(r.store.accounts[tenantID]), nil
}
