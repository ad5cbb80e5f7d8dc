package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/money_tracker_app/internal/apperrors"
	"github.com/SscSPs/money_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// dayLayouts are the accepted formats for a transaction day, tried in order.
var dayLayouts = []string{time.RFC3339Nano, "2006-01-02"}

// ParseDay parses a day given either as a calendar date or an RFC 3339 timestamp.
// Calendar dates are interpreted as midnight UTC.
func ParseDay(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperrors.NewValidationError("invalid day %q: expected YYYY-MM-DD or RFC 3339", raw)
}

// CreateTransactionRequest defines the data needed to create a new transaction.
type CreateTransactionRequest struct {
	Title      string           `json:"title" binding:"required"`
	Value      *decimal.Decimal `json:"value" binding:"required,gte=0"`
	Day        string           `json:"day" binding:"required"`
	Type       *int             `json:"type" binding:"required,oneof=0 1"`
	CategoryID *int64           `json:"categoryID"` // Optional
}

// UpdateTransactionRequest defines the data allowed for updating a transaction.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateTransactionRequest struct {
	Title         *string          `json:"title" binding:"omitempty,min=1"`
	Value         *decimal.Decimal `json:"value" binding:"omitempty,gte=0"`
	Day           *string          `json:"day"`
	Type          *int             `json:"type" binding:"omitempty,oneof=0 1"`
	CategoryID    *int64           `json:"categoryID"`
	ClearCategory bool             `json:"clearCategory"` // Detach from the current category
}

// ToPatch converts the request into a domain patch, parsing the day if present.
func (r UpdateTransactionRequest) ToPatch() (domain.TransactionPatch, error) {
	patch := domain.TransactionPatch{
		Title:         r.Title,
		Value:         r.Value,
		CategoryID:    r.CategoryID,
		ClearCategory: r.ClearCategory,
	}
	if r.Day != nil {
		day, err := ParseDay(*r.Day)
		if err != nil {
			return domain.TransactionPatch{}, err
		}
		patch.Day = &day
	}
	if r.Type != nil {
		typ := domain.TransactionType(*r.Type)
		patch.Type = &typ
	}
	if r.ClearCategory && r.CategoryID != nil {
		return domain.TransactionPatch{}, apperrors.NewValidationError("categoryID and clearCategory are mutually exclusive")
	}
	return patch, nil
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Value         decimal.Decimal `json:"value"`
	Day           time.Time       `json:"day"`
	Type          int             `json:"type"`
	CategoryID    *int64          `json:"categoryID"`
	CategoryTitle *string         `json:"categoryTitle,omitempty"`
	UserID        string          `json:"userID"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		Title:         t.Title,
		Value:         t.Value,
		Day:           t.Day,
		Type:          int(t.Type),
		CategoryID:    t.CategoryID,
		CategoryTitle: t.CategoryTitle,
		UserID:        t.UserID,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to response DTOs.
// A nil slice becomes an empty one so it serializes as [].
func ToListTransactionResponse(transactions []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		res[i] = ToTransactionResponse(&transactions[i])
	}
	return res
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// GetTransactionResponse wraps a single transaction.
type GetTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
}

// UpdateTransactionResponse is returned after a successful update.
type UpdateTransactionResponse struct {
	Message string              `json:"message"`
	Data    TransactionResponse `json:"data"`
}

// MessageResponse carries a human readable outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// ToListCategoryResponse converts categories to response DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = CategoryResponse{ID: c.ID, Title: c.Title}
	}
	return res
}

// TransactionTypeFromParam parses a path parameter naming a transaction type.
// Only the persisted numeric values are accepted.
func TransactionTypeFromParam(raw string) (domain.TransactionType, error) {
	switch raw {
	case "0":
		return domain.Expense, nil
	case "1":
		return domain.Income, nil
	default:
		return 0, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, raw)
	}
}
