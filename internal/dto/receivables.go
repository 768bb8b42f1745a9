package dto

import (
	"fmt"
	"strings"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// CreateInvoiceRequest records an invoice issued outside this service.
type CreateInvoiceRequest struct {
	InvoiceID  string    `json:"invoiceID"`
	CustomerID string    `json:"customerID" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	DueDate    string    `json:"dueDate" binding:"required"`
	Amount     RawAmount `json:"amount" swaggertype:"string"`
	Status     string    `json:"status" binding:"omitempty,oneof=sent part-paid overdue paid"`
}

// ToInvoice converts the request. Status defaults to sent.
func (r CreateInvoiceRequest) ToInvoice() (domain.Invoice, error) {
	date, err := requireDate("date", r.Date)
	if err != nil {
		return domain.Invoice{}, err
	}
	due, err := requireDate("dueDate", r.DueDate)
	if err != nil {
		return domain.Invoice{}, err
	}
	amount := r.Amount.Decimal()
	if !amount.IsPositive() {
		return domain.Invoice{}, fmt.Errorf("%w: invoice amount must be greater than zero", apperrors.ErrValidation)
	}
	status := domain.InvoiceStatus(r.Status)
	if status == "" {
		status = domain.InvoiceSent
	}
	return domain.Invoice{
		InvoiceID:  strings.TrimSpace(r.InvoiceID),
		CustomerID: strings.TrimSpace(r.CustomerID),
		Date:       date,
		DueDate:    due,
		Amount:     amount,
		Status:     status,
	}, nil
}

// CreateReceiptRequest records a customer payment against an invoice.
type CreateReceiptRequest struct {
	ReceiptID  string    `json:"receiptID"`
	CustomerID string    `json:"customerID" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	Amount     RawAmount `json:"amount" swaggertype:"string"`
	Method     string    `json:"method"`
	AppliedTo  string    `json:"appliedTo" binding:"required"`
}

// ToReceipt converts the request.
func (r CreateReceiptRequest) ToReceipt() (domain.Receipt, error) {
	date, err := requireDate("date", r.Date)
	if err != nil {
		return domain.Receipt{}, err
	}
	amount := r.Amount.Decimal()
	if !amount.IsPositive() {
		return domain.Receipt{}, fmt.Errorf("%w: receipt amount must be greater than zero", apperrors.ErrValidation)
	}
	return domain.Receipt{
		ReceiptID:  strings.TrimSpace(r.ReceiptID),
		CustomerID: strings.TrimSpace(r.CustomerID),
		Date:       date,
		Amount:     amount,
		Method:     r.Method,
		AppliedTo:  strings.TrimSpace(r.AppliedTo),
	}, nil
}

// AgingParams defines query parameters for the aging report.
type AgingParams struct {
	AsOf string `form:"asOf"` // YYYY-MM-DD, defaults to today
}

// AgingResponse is the receivables aging report.
type AgingResponse struct {
	AsOf    string               `json:"asOf"`
	Buckets []domain.AgingBucket `json:"buckets"`
}
