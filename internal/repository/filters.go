package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ListFilter narrows list queries. OnlyEnabled keeps disabled rows out;
// Search is matched word by word, accent- and case-insensitive.
type ListFilter struct {
	OnlyEnabled bool
	Search      string
}

func applyListFilter(q *gorm.DB, column string, filter ListFilter) *gorm.DB {
	if filter.OnlyEnabled {
		q = q.Where("disabled = false")
	}
	for _, word := range strings.Fields(filter.Search) {
		q = q.Where(
			fmt.Sprintf("upper(unaccent(%s)) like upper(unaccent(?))", column),
			"%"+word+"%",
		)
	}
	return q
}

// disabledByUserSelect resolves the name of the user who last disabled a row.
func disabledByUserSelect(table string) string {
	return fmt.Sprintf(
		"%s.*, (select u2.name from users u2 where u2.id = %s.last_disabled_by) as disabled_by_user",
		table, table,
	)
}
