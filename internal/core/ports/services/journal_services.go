package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
)

// JournalReaderSvc defines read operations on posted entries
type JournalReaderSvc interface {
	GetEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, tenantID string, params dto.ListEntriesParams) ([]domain.JournalEntry, *string, error)
	// Ledger flattens posted entries, optionally restricted to one account.
	Ledger(ctx context.Context, tenantID, accountID string) ([]domain.LedgerLine, error)
}

// JournalWriterSvc defines validation and posting of entries
type JournalWriterSvc interface {
	// ValidateEntry checks a draft without touching the store.
	ValidateEntry(ctx context.Context, tenantID string, draft domain.JournalEntry) error
	PostEntry(ctx context.Context, tenantID string, draft domain.JournalEntry, userID string) (*domain.JournalEntry, error)
	// ReverseEntry posts the offsetting entry of entryID.
	ReverseEntry(ctx context.Context, tenantID, entryID, userID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
