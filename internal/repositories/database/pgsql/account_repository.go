package pgsql

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account. Codes are unique per tenant.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (account_id, tenant_id, code, name, account_type, parent_account_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.TenantID,
		m.Code,
		m.Name,
		m.AccountType,
		m.ParentAccountID,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return mapError(err, "account "+m.Code)
	}
	return nil
}

// ListAccounts returns the tenant's chart in creation order.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error) {
	query := `
		SELECT account_id, tenant_id, code, name, account_type, parent_account_id, created_at, created_by
		FROM accounts
		WHERE tenant_id = $1
		ORDER BY created_at, code;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, mapError(err, "list accounts")
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(
			&m.AccountID,
			&m.TenantID,
			&m.Code,
			&m.Name,
			&m.AccountType,
			&m.ParentAccountID,
			&m.CreatedAt,
			&m.CreatedBy,
		); err != nil {
			return nil, mapError(err, "scan account")
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate accounts")
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}
