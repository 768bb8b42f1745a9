package accounting

import (
	"fmt"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IsDebitNormal reports whether accounts of this type increase with debits.
func IsDebitNormal(accountType domain.AccountType) (bool, error) {
	// DEBIT to ASSET/EXPENSE -> Positive (+)
	// CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+)
	switch accountType {
	case domain.Asset, domain.Expense:
		return true, nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return false, nil
	default:
		return false, fmt.Errorf("unknown account type '%s'", accountType)
	}
}

// NetAmount returns the balance of an account expressed in its normal
// direction, so a healthy asset or revenue account is positive.
func NetAmount(accountType domain.AccountType, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	debitNormal, err := IsDebitNormal(accountType)
	if err != nil {
		return decimal.Zero, err
	}
	if debitNormal {
		return debit.Sub(credit), nil
	}
	return credit.Sub(debit), nil
}

// ProfitAndLoss groups trial balance rows into revenue and expense sections.
// Rows of other types and unmapped rows are ignored.
func ProfitAndLoss(rows []domain.TrialBalanceRow) (domain.PAndLReport, error) {
	report := domain.PAndLReport{
		Revenue:   []domain.AccountAmount{},
		Expenses:  []domain.AccountAmount{},
		NetProfit: decimal.Zero,
	}
	revenue, expenses := decimal.Zero, decimal.Zero
	for _, row := range rows {
		if row.Unmapped {
			continue
		}
		switch row.AccountType {
		case domain.Revenue, domain.Expense:
		default:
			continue
		}
		net, err := NetAmount(row.AccountType, row.Debit, row.Credit)
		if err != nil {
			return domain.PAndLReport{}, fmt.Errorf("account %s: %w", row.AccountID, err)
		}
		amt := toAccountAmount(row, net)
		if row.AccountType == domain.Revenue {
			report.Revenue = append(report.Revenue, amt)
			revenue = revenue.Add(net)
		} else {
			report.Expenses = append(report.Expenses, amt)
			expenses = expenses.Add(net)
		}
	}
	report.NetProfit = revenue.Sub(expenses)
	return report, nil
}

// BalanceSheet groups trial balance rows into assets, liabilities and equity.
// Current-period profit is reported as RetainedEarnings and included in
// TotalEquity, so TotalAssets == TotalLiabilities + TotalEquity for a
// balanced book.
func BalanceSheet(rows []domain.TrialBalanceRow) (domain.BalanceSheetReport, error) {
	report := domain.BalanceSheetReport{
		Assets:           []domain.AccountAmount{},
		Liabilities:      []domain.AccountAmount{},
		Equity:           []domain.AccountAmount{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}
	for _, row := range rows {
		if row.Unmapped {
			continue
		}
		net, err := NetAmount(row.AccountType, row.Debit, row.Credit)
		if err != nil {
			return domain.BalanceSheetReport{}, fmt.Errorf("account %s: %w", row.AccountID, err)
		}
		amt := toAccountAmount(row, net)
		switch row.AccountType {
		case domain.Asset:
			report.Assets = append(report.Assets, amt)
			report.TotalAssets = report.TotalAssets.Add(net)
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, amt)
			report.TotalLiabilities = report.TotalLiabilities.Add(net)
		case domain.Equity:
			report.Equity = append(report.Equity, amt)
			report.TotalEquity = report.TotalEquity.Add(net)
		}
	}

	pnl, err := ProfitAndLoss(rows)
	if err != nil {
		return domain.BalanceSheetReport{}, err
	}
	report.RetainedEarnings = pnl.NetProfit
	report.TotalEquity = report.TotalEquity.Add(pnl.NetProfit)
	return report, nil
}

func toAccountAmount(row domain.TrialBalanceRow, net decimal.Decimal) domain.AccountAmount {
	return domain.AccountAmount{
		AccountID: row.AccountID,
		Code:      row.AccountCode,
		Name:      row.AccountName,
		NetAmount: net,
	}
}
