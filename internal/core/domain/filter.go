package domain

import "time"

// DateRange is a half-open interval [From, To) of transaction days.
// The zero value is empty and matches nothing.
type DateRange struct {
	From time.Time
	To   time.Time
}

// IsEmpty reports whether no instant can fall inside the range.
func (r DateRange) IsEmpty() bool {
	return !r.From.Before(r.To)
}

// SortColumn names a column transactions can be ordered by.
type SortColumn string

const (
	SortByDay SortColumn = "day"
	SortByID  SortColumn = "id"
)

// SortField is one entry of an ordering list.
type SortField struct {
	Column     SortColumn
	Descending bool
}

// Cursor marks the last row of a previous page for keyset pagination
// over the (day desc, id desc) ordering.
type Cursor struct {
	Day time.Time
	ID  string
}

// TransactionFilter is a store-agnostic description of a transaction query.
// All non-nil predicates are combined with AND.
type TransactionFilter struct {
	DayFrom       *time.Time       // day >= DayFrom
	DayBefore     *time.Time       // day < DayBefore
	CategoryTitle *string          // exact, case-insensitive
	TitleContains *string          // substring, case-insensitive
	Type          *TransactionType // exact
	OrderBy       []SortField
	Limit         int // 0 means unbounded
	After         *Cursor
}

// MatchesNothing reports whether the day bounds exclude every possible row.
// A missing lower bound counts as the zero time.
func (f TransactionFilter) MatchesNothing() bool {
	if f.DayBefore == nil {
		return false
	}
	r := DateRange{To: *f.DayBefore}
	if f.DayFrom != nil {
		r.From = *f.DayFrom
	}
	return r.IsEmpty()
}
