package accounting

import (
	"github.com/SscSPs/money_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedValue returns the value of txn with the sign implied by its type:
// expenses are negative, everything else is returned as stored.
func SignedValue(txn domain.Transaction) decimal.Decimal {
	if txn.Type == domain.Expense {
		return txn.Value.Neg()
	}
	return txn.Value
}

// NormalizeSigns returns a copy of transactions with every expense value negated.
// The input slice is left untouched.
func NormalizeSigns(transactions []domain.Transaction) []domain.Transaction {
	normalized := make([]domain.Transaction, len(transactions))
	for i, txn := range transactions {
		txn.Value = SignedValue(txn)
		normalized[i] = txn
	}
	return normalized
}

// SumValues adds up the values exactly as given. Callers that mix incomes and
// expenses must normalize signs first.
func SumValues(transactions []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range transactions {
		total = total.Add(txn.Value)
	}
	return total
}

// ComputeBalance totals incomes and expenses over already normalized transactions.
// Transactions with an unknown type count towards neither side.
func ComputeBalance(transactions []domain.Transaction) domain.Balance {
	incomes := decimal.Zero
	expenses := decimal.Zero
	for _, txn := range transactions {
		switch txn.Type {
		case domain.Income:
			incomes = incomes.Add(txn.Value)
		case domain.Expense:
			expenses = expenses.Add(txn.Value)
		}
	}
	return domain.Balance{
		Incomes:  incomes,
		Expenses: expenses,
		Result:   incomes.Add(expenses),
	}
}

// CountUnknownTypes reports how many transactions carry a type outside the known set.
func CountUnknownTypes(transactions []domain.Transaction) int {
	n := 0
	for _, txn := range transactions {
		if !txn.Type.IsKnown() {
			n++
		}
	}
	return n
}
