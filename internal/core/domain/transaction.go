package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is money going out or coming in.
// The numeric values are persisted as-is.
type TransactionType int

const (
	Expense TransactionType = 0
	Income  TransactionType = 1
)

// IsKnown reports whether t is one of the persisted transaction types.
func (t TransactionType) IsKnown() bool {
	return t == Expense || t == Income
}

func (t TransactionType) String() string {
	switch t {
	case Expense:
		return "EXPENSE"
	case Income:
		return "INCOME"
	default:
		return "UNKNOWN"
	}
}

// Transaction represents a single financial record.
// Value is stored non-negative; the sign is derived from Type when aggregating.
type Transaction struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Value         decimal.Decimal `json:"value"`
	Day           time.Time       `json:"day"`
	Type          TransactionType `json:"type"`
	CategoryID    *int64          `json:"categoryID"`    // Nullable FK -> categories.id
	CategoryTitle *string         `json:"categoryTitle"` // Populated by joined reads only
	UserID        string          `json:"userID"`
	AuditFields
}

// Balance is the derived income/expense summary over a set of transactions.
type Balance struct {
	Incomes  decimal.Decimal `json:"incomes"`
	Expenses decimal.Decimal `json:"expenses"`
	Result   decimal.Decimal `json:"result"`
}

// TransactionPatch carries the fields of a partial update. Nil means "leave unchanged".
type TransactionPatch struct {
	Title      *string
	Value      *decimal.Decimal
	Day        *time.Time
	Type       *TransactionType
	CategoryID *int64
	// ClearCategory detaches the transaction from its category.
	ClearCategory bool
}

// IsEmpty reports whether the patch changes nothing.
func (p TransactionPatch) IsEmpty() bool {
	return p.Title == nil && p.Value == nil && p.Day == nil && p.Type == nil && p.CategoryID == nil && !p.ClearCategory
}

// Apply returns a copy of t with the patch applied.
func (p TransactionPatch) Apply(t Transaction) Transaction {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Value != nil {
		t.Value = *p.Value
	}
	if p.Day != nil {
		t.Day = *p.Day
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.ClearCategory {
		t.CategoryID = nil
		t.CategoryTitle = nil
	} else if p.CategoryID != nil {
		id := *p.CategoryID
		t.CategoryID = &id
		t.CategoryTitle = nil
	}
	return t
}
