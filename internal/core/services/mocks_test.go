package services_test

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) ListJournalEntries(ctx context.Context, tenantID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock ReceivablesRepository ---
type MockReceivablesRepository struct {
	mock.Mock
}

var _ portsrepo.ReceivablesRepositoryFacade = (*MockReceivablesRepository)(nil)

func (m *MockReceivablesRepository) ListInvoices(ctx context.Context, tenantID, customerID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, tenantID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockReceivablesRepository) ListReceipts(ctx context.Context, tenantID, customerID string) ([]domain.Receipt, error) {
	args := m.Called(ctx, tenantID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receipt), args.Error(1)
}

func (m *MockReceivablesRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, audit domain.AuditFields) error {
	args := m.Called(ctx, invoice, audit)
	return args.Error(0)
}

func (m *MockReceivablesRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt, audit domain.AuditFields) error {
	args := m.Called(ctx, receipt, audit)
	return args.Error(0)
}

// --- Recording PostingObserver ---
type recordingObserver struct {
	outcomes []string
	loaded   int
}

func (r *recordingObserver) ObservePosting(outcome string) { r.outcomes = append(r.outcomes, outcome) }
func (r *recordingObserver) SetBooksLoaded(n int)          { r.loaded = n }
