package domain_test

import (
	"testing"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestJournalEntry_Totals(t *testing.T) {
	tests := []struct {
		name       string
		lines      []domain.EntryLine
		wantDebit  decimal.Decimal
		wantCredit decimal.Decimal
	}{
		{
			name:       "no lines",
			lines:      nil,
			wantDebit:  decimal.Zero,
			wantCredit: decimal.Zero,
		},
		{
			name: "split credit side",
			lines: []domain.EntryLine{
				{AccountID: "acc-1000", Debit: decimal.NewFromInt(2450)},
				{AccountID: "acc-4000", Credit: decimal.NewFromInt(2120)},
				{AccountID: "acc-2200", Credit: decimal.NewFromInt(330)},
			},
			wantDebit:  decimal.NewFromInt(2450),
			wantCredit: decimal.NewFromInt(2450),
		},
		{
			name: "both columns on one line are summed independently",
			lines: []domain.EntryLine{
				{AccountID: "acc-1", Debit: decimal.NewFromInt(10), Credit: decimal.NewFromInt(4)},
			},
			wantDebit:  decimal.NewFromInt(10),
			wantCredit: decimal.NewFromInt(4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := domain.JournalEntry{Lines: tt.lines}
			debit, credit := entry.Totals()
			assert.True(t, tt.wantDebit.Equal(debit), "debit: want %s got %s", tt.wantDebit, debit)
			assert.True(t, tt.wantCredit.Equal(credit), "credit: want %s got %s", tt.wantCredit, credit)
		})
	}
}

func TestJournalEntry_CloneDoesNotShareLines(t *testing.T) {
	orig := domain.JournalEntry{
		EntryID: "JE-1",
		Lines:   []domain.EntryLine{{AccountID: "acc-1", Debit: decimal.NewFromInt(5)}},
	}
	cp := orig.Clone()
	cp.Lines[0].AccountID = "changed"

	assert.Equal(t, "acc-1", orig.Lines[0].AccountID)
	assert.Equal(t, "JE-1", cp.EntryID)
}

func TestParseAccountType(t *testing.T) {
	got, ok := domain.ParseAccountType(" Revenue ")
	assert.True(t, ok)
	assert.Equal(t, domain.Revenue, got)

	_, ok = domain.ParseAccountType("income")
	assert.False(t, ok)
}

func TestChartTemplateFor(t *testing.T) {
	assert.Len(t, domain.ChartTemplateFor("service"), 3)
	assert.Equal(t, domain.IndustryChartTemplates["retail"], domain.ChartTemplateFor("bakery"))
}
