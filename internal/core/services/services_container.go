package services

import (
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, observer PostingObserver) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Accounts, journal and reports share one per-tenant book cache.
	books := NewBooks(
		repos.AccountRepo,
		repos.JournalRepo,
		WithStrictAccounts(cfg.LedgerStrictAccounts),
		WithPostingObserver(observer),
	)

	ledgerSvc := NewLedgerService(books, repos.AccountRepo, repos.JournalRepo, WithDefaultIndustry(cfg.DefaultIndustry))
	container.Account = ledgerSvc
	container.Journal = ledgerSvc
	container.Reporting = NewReportingService(books)
	container.Receivables = NewReceivablesService(repos.ReceivablesRepo)
	container.Sales = NewSalesPostingService(ledgerSvc, ledgerSvc, SalesAccountCodes{
		Cash:    cfg.SalesCashAccountCode,
		Revenue: cfg.SalesRevenueCode,
	})
	container.Auth = NewAuthService(AuthConfig{
		Username:     cfg.OperatorUsername,
		PasswordHash: cfg.OperatorPasswordHash,
		JWTSecret:    cfg.JWTSecret,
		JWTIssuer:    cfg.JWTIssuer,
		JWTExpiry:    cfg.JWTExpiryDuration,
	})

	return container
}
