package mapping

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice, audit domain.AuditFields) models.Invoice {
	return models.Invoice{
		InvoiceID:   d.InvoiceID,
		TenantID:    d.TenantID,
		CustomerID:  d.CustomerID,
		IssueDate:   d.Date,
		DueDate:     d.DueDate,
		Amount:      d.Amount,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(audit),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:  m.InvoiceID,
		TenantID:   m.TenantID,
		CustomerID: m.CustomerID,
		Date:       m.IssueDate,
		DueDate:    m.DueDate,
		Amount:     m.Amount,
		Status:     domain.InvoiceStatus(m.Status),
	}
}

// ToModelReceipt converts a domain Receipt to a model Receipt
func ToModelReceipt(d domain.Receipt, audit domain.AuditFields) models.Receipt {
	return models.Receipt{
		ReceiptID:   d.ReceiptID,
		TenantID:    d.TenantID,
		CustomerID:  d.CustomerID,
		ReceiptDate: d.Date,
		Amount:      d.Amount,
		Method:      d.Method,
		AppliedTo:   d.AppliedTo,
		AuditFields: ToModelAuditFields(audit),
	}
}

// ToDomainReceipt converts a model Receipt to a domain Receipt
func ToDomainReceipt(m models.Receipt) domain.Receipt {
	return domain.Receipt{
		ReceiptID:  m.ReceiptID,
		TenantID:   m.TenantID,
		CustomerID: m.CustomerID,
		Date:       m.ReceiptDate,
		Amount:     m.Amount,
		Method:     m.Method,
		AppliedTo:  m.AppliedTo,
	}
}
