package utils

import (
	"github.com/SscSPs/money_tracker_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ValuePrecision is the number of decimal places a stored value keeps.
const ValuePrecision = 2

// maxStorableValue is the first magnitude that no longer fits NUMERIC(14,2).
var maxStorableValue = decimal.New(1, 14-ValuePrecision)

// FormatWithPrecision formats an amount with the given precision
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}

// CheckStorableValue rejects values the store would round or refuse.
// Trailing zeros are fine, so "10.500" passes while "10.005" does not.
func CheckStorableValue(value decimal.Decimal) error {
	if !value.Equal(value.Round(ValuePrecision)) {
		return apperrors.NewValidationError("value %s has more than %d decimal places", value.String(), ValuePrecision)
	}
	if value.Abs().GreaterThanOrEqual(maxStorableValue) {
		return apperrors.NewValidationError("value %s must be below %s", value.String(), FormatWithPrecision(maxStorableValue, 0))
	}
	return nil
}
