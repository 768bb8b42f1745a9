package sqlite

import (
	"context"
	"database/sql"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
)

// AccountRepository stores the chart of accounts.
type AccountRepository struct {
	db *sql.DB
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (account_id, tenant_id, code, name, account_type, parent_account_id, created_at, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.AccountID, m.TenantID, m.Code, m.Name, m.AccountType, m.ParentAccountID, formatTime(m.CreatedAt), m.CreatedBy,
	)
	if err != nil {
		return mapError(err, "account "+m.Code)
	}
	return nil
}

func (r *AccountRepository) ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT account_id, tenant_id, code, name, account_type, parent_account_id, created_at, created_by
		FROM accounts
		WHERE tenant_id = ?
		ORDER BY rowid`, tenantID)
	if err != nil {
		return nil, mapError(err, "list accounts")
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var (
			m         models.Account
			createdAt string
		)
		if err := rows.Scan(&m.AccountID, &m.TenantID, &m.Code, &m.Name, &m.AccountType, &m.ParentAccountID, &createdAt, &m.CreatedBy); err != nil {
			return nil, mapError(err, "scan account")
		}
		if m.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, mapError(err, "parse account created_at")
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate accounts")
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}
