// Package filtering turns request parameters into store-agnostic transaction filters.
// Nothing here touches the store.
package filtering

import (
	"time"

	"github.com/SscSPs/money_tracker_app/internal/core/domain"
)

var (
	dayDesc = domain.SortField{Column: domain.SortByDay, Descending: true}
	idDesc  = domain.SortField{Column: domain.SortByID, Descending: true}
)

// MonthRange returns [year-month-01, first day of the next month) in UTC.
// December rolls over to January 1st of year+1. Months outside 1-12 yield the
// empty range, so queries built from it match nothing.
func MonthRange(year, month int) domain.DateRange {
	if month < 1 || month > 12 {
		return domain.DateRange{}
	}
	initialDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	finalDay := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	if month == 12 {
		finalDay = time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return domain.DateRange{From: initialDay, To: finalDay}
}

// All lists every transaction, newest first with id as tie-break.
func All() domain.TransactionFilter {
	return domain.TransactionFilter{OrderBy: []domain.SortField{dayDesc, idDesc}}
}

// ByCategory matches transactions whose category title equals title, ignoring case.
func ByCategory(title string) domain.TransactionFilter {
	return domain.TransactionFilter{
		CategoryTitle: &title,
		OrderBy:       []domain.SortField{dayDesc},
	}
}

// ByMonth matches transactions within the given calendar month.
func ByMonth(year, month int) domain.TransactionFilter {
	f := withRange(MonthRange(year, month))
	f.OrderBy = []domain.SortField{dayDesc, idDesc}
	return f
}

// ByMonthAndCategory is the conjunction of ByMonth and ByCategory.
func ByMonthAndCategory(year, month int, title string) domain.TransactionFilter {
	f := withRange(MonthRange(year, month))
	f.CategoryTitle = &title
	f.OrderBy = []domain.SortField{dayDesc}
	return f
}

// ByTitle matches transactions whose title contains fragment, ignoring case.
func ByTitle(fragment string) domain.TransactionFilter {
	return domain.TransactionFilter{
		TitleContains: &fragment,
		OrderBy:       []domain.SortField{dayDesc},
	}
}

// Patrimony matches every transaction before the end of the given month,
// with no lower bound.
func Patrimony(year, month int) domain.TransactionFilter {
	r := MonthRange(year, month)
	finalDay := r.To
	return domain.TransactionFilter{
		DayBefore: &finalDay,
		OrderBy:   []domain.SortField{dayDesc, idDesc},
	}
}

// CategorySums selects the rows summed per category for a month and type.
// Grouping and ordering are owned by the store query.
func CategorySums(year, month int, typ domain.TransactionType) domain.TransactionFilter {
	f := withRange(MonthRange(year, month))
	f.Type = &typ
	return f
}

// WithPage restricts f to at most limit rows following after.
// Keyset paging needs a total order, so the ordering is forced to (day desc, id desc).
func WithPage(f domain.TransactionFilter, limit int, after *domain.Cursor) domain.TransactionFilter {
	f.Limit = limit
	f.After = after
	f.OrderBy = []domain.SortField{dayDesc, idDesc}
	return f
}

func withRange(r domain.DateRange) domain.TransactionFilter {
	from, to := r.From, r.To
	return domain.TransactionFilter{DayFrom: &from, DayBefore: &to}
}
