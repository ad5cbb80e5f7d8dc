package pgsql

import (
	"fmt"
	"strings"

	"github.com/SscSPs/money_tracker_app/internal/core/domain"
)

const transactionColumns = `
	t.id, t.title, t.value, t.day, t.type, t.category_id, c.title AS category_title,
	t.user_id, t.created_at, t.last_updated_at`

const transactionFrom = `
	FROM transactions t
	LEFT OUTER JOIN categories c ON c.id = t.category_id`

var sortColumns = map[domain.SortColumn]string{
	domain.SortByDay: "t.day",
	domain.SortByID:  "t.id",
}

// queryArgs collects positional arguments and hands out their placeholders.
type queryArgs []any

func (a *queryArgs) add(v any) string {
	*a = append(*a, v)
	return fmt.Sprintf("$%d", len(*a))
}

// buildWhere renders the filter predicates. Ordering and limits are ignored.
func buildWhere(filter domain.TransactionFilter, args *queryArgs) string {
	var conds []string
	if filter.DayFrom != nil {
		conds = append(conds, "t.day >= "+args.add(*filter.DayFrom))
	}
	if filter.DayBefore != nil {
		conds = append(conds, "t.day < "+args.add(*filter.DayBefore))
	}
	if filter.CategoryTitle != nil {
		conds = append(conds, "lower(c.title) = lower("+args.add(*filter.CategoryTitle)+")")
	}
	if filter.TitleContains != nil {
		// strpos avoids treating % and _ in user input as LIKE wildcards
		conds = append(conds, "strpos(lower(t.title), lower("+args.add(*filter.TitleContains)+")) > 0")
	}
	if filter.Type != nil {
		conds = append(conds, "t.type = "+args.add(int16(*filter.Type)))
	}
	if filter.After != nil {
		day := args.add(filter.After.Day)
		id := args.add(filter.After.ID)
		conds = append(conds, fmt.Sprintf("(t.day, t.id) < (%s, %s)", day, id))
	}
	if len(conds) == 0 {
		return ""
	}
	return "\n\tWHERE " + strings.Join(conds, "\n\t\tAND ")
}

func buildOrderBy(order []domain.SortField) string {
	var parts []string
	for _, f := range order {
		col, ok := sortColumns[f.Column]
		if !ok {
			continue
		}
		dir := "ASC"
		if f.Descending {
			dir = "DESC"
		}
		parts = append(parts, col+" "+dir)
	}
	if len(parts) == 0 {
		return ""
	}
	return "\n\tORDER BY " + strings.Join(parts, ", ")
}

// buildTransactionQuery renders the SELECT for FindTransactions.
func buildTransactionQuery(filter domain.TransactionFilter) (string, []any) {
	var args queryArgs
	query := "SELECT" + transactionColumns + transactionFrom + buildWhere(filter, &args) + buildOrderBy(filter.OrderBy)
	if filter.Limit > 0 {
		query += "\n\tLIMIT " + args.add(filter.Limit)
	}
	return query, args
}

// buildCategorySumQuery renders the grouped sum for SumByCategory.
func buildCategorySumQuery(filter domain.TransactionFilter) (string, []any) {
	var args queryArgs
	query := `SELECT c.id AS category_id, c.title AS category_title, SUM(t.value) AS sum` +
		transactionFrom +
		buildWhere(filter, &args) +
		"\n\tGROUP BY c.id, c.title\n\tORDER BY c.id ASC"
	return query, args
}
