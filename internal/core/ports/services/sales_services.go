package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// SalesPostingSvc turns completed POS sales into journal entries.
type SalesPostingSvc interface {
	PostSale(ctx context.Context, tenantID string, sale domain.Sale, userID string) (*domain.SalePosting, error)
}
