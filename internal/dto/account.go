package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code            string `json:"code" binding:"required,max=20"`
	Name            string `json:"name" binding:"required,max=120"`
	AccountType     string `json:"accountType" binding:"required,accounttype"`
	ParentAccountID string `json:"parentAccountID"` // Optional
}

// Normalized returns the account type in canonical form.
func (r CreateAccountRequest) Normalized() domain.AccountType {
	t, _ := domain.ParseAccountType(r.AccountType)
	return t
}

// SetupChartRequest selects the industry template to seed.
type SetupChartRequest struct {
	Industry string `json:"industry"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string             `json:"accountID"`
	Code            string             `json:"code"`
	Name            string             `json:"name"`
	AccountType     domain.AccountType `json:"accountType"`
	ParentAccountID string             `json:"parentAccountID,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	CreatedBy       string             `json:"createdBy"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Query string `form:"q"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		Code:            acc.Code,
		Name:            strings.TrimSpace(acc.Name),
		AccountType:     acc.Type,
		ParentAccountID: acc.ParentAccountID,
		CreatedAt:       acc.CreatedAt,
		CreatedBy:       acc.CreatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
