package models

import "database/sql"

// Account is the accounts table row.
type Account struct {
	AccountID       string         `db:"account_id"`
	TenantID        string         `db:"tenant_id"`
	Code            string         `db:"code"`
	Name            string         `db:"name"`
	AccountType     string         `db:"account_type"`
	ParentAccountID sql.NullString `db:"parent_account_id"`
	AuditFields
}
