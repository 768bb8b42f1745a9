package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// PostSaleRequest is a completed POS sale to record in the general ledger.
type PostSaleRequest struct {
	SaleID      string    `json:"saleID" binding:"required"`
	TotalAmount RawAmount `json:"totalAmount" swaggertype:"string"`
	CreatedAt   string    `json:"createdAt"` // YYYY-MM-DD, defaults to today
}

// ToSale converts the request.
func (r PostSaleRequest) ToSale() (domain.Sale, error) {
	at, err := ParseDate(r.CreatedAt)
	if err != nil {
		return domain.Sale{}, err
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}
	total := r.TotalAmount.Decimal()
	if !total.IsPositive() {
		return domain.Sale{}, fmt.Errorf("%w: sale total must be greater than zero", apperrors.ErrValidation)
	}
	return domain.Sale{
		SaleID:      strings.TrimSpace(r.SaleID),
		TotalAmount: total,
		CreatedAt:   at,
	}, nil
}
