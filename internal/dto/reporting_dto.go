package dto

import (
	"github.com/SscSPs/money_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceResponse represents the income/expense summary of a report
type BalanceResponse struct {
	Incomes  decimal.Decimal `json:"incomes"`
	Expenses decimal.Decimal `json:"expenses"`
	Result   decimal.Decimal `json:"result"`
}

// FilterResponse represents the category, title and month+category filter responses
type FilterResponse struct {
	ResultsFound int                   `json:"resultsFound"`
	TotalValue   decimal.Decimal       `json:"totalValue"`
	Data         []TransactionResponse `json:"data"`
}

// MonthResponse represents the month filter response
type MonthResponse struct {
	Balance BalanceResponse       `json:"balance"`
	Data    []TransactionResponse `json:"data"`
}

// PatrimonyResponse represents the cumulative view up to a month
type PatrimonyResponse struct {
	TotalValue decimal.Decimal       `json:"totalValue"`
	Balance    BalanceResponse       `json:"balance"`
	Data       []TransactionResponse `json:"data"`
}

// CategorySumResponse represents one row of the grouped-by-category sums
type CategorySumResponse struct {
	CategoryID    *int64          `json:"categoryID"`
	CategoryTitle *string         `json:"categoryTitle"`
	Sum           decimal.Decimal `json:"sum"`
}

// ToBalanceResponse converts a domain.Balance
func ToBalanceResponse(b domain.Balance) BalanceResponse {
	return BalanceResponse{Incomes: b.Incomes, Expenses: b.Expenses, Result: b.Result}
}

// ToFilterResponse converts a domain.FilterReport
func ToFilterResponse(r *domain.FilterReport) FilterResponse {
	return FilterResponse{
		ResultsFound: r.ResultsFound,
		TotalValue:   r.TotalValue,
		Data:         ToListTransactionResponse(r.Data),
	}
}

// ToMonthResponse converts a domain.MonthReport
func ToMonthResponse(r *domain.MonthReport) MonthResponse {
	return MonthResponse{
		Balance: ToBalanceResponse(r.Balance),
		Data:    ToListTransactionResponse(r.Data),
	}
}

// ToPatrimonyResponse converts a domain.PatrimonyReport
func ToPatrimonyResponse(r *domain.PatrimonyReport) PatrimonyResponse {
	return PatrimonyResponse{
		TotalValue: r.TotalValue,
		Balance:    ToBalanceResponse(r.Balance),
		Data:       ToListTransactionResponse(r.Data),
	}
}

// ToListCategorySumResponse converts grouped sums
func ToListCategorySumResponse(sums []domain.CategorySum) []CategorySumResponse {
	res := make([]CategorySumResponse, len(sums))
	for i, s := range sums {
		res[i] = CategorySumResponse{CategoryID: s.CategoryID, CategoryTitle: s.CategoryTitle, Sum: s.Sum}
	}
	return res
}
