// Package query holds paging and sorting options shared by repository filters.
package query

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type PageFilter struct {
	Page     int
	PageSize int
}

func (f PageFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

func (f PageFilter) Limit() int {
	if f.PageSize <= 0 {
		return defaultPageSize
	}
	if f.PageSize > maxPageSize {
		return maxPageSize
	}
	return f.PageSize
}

type SortFilter struct {
	SortBy    string
	SortOrder string
}

func (f SortFilter) IsDescending() bool {
	return f.SortOrder == "desc" || f.SortOrder == "DESC"
}

// OrderClause renders "column DIR" for columns present in allowed and ""
// otherwise, so user input never reaches ORDER BY unchecked.
func (f SortFilter) OrderClause(allowed map[string]bool) string {
	if f.SortBy == "" || !allowed[f.SortBy] {
		return ""
	}
	if f.IsDescending() {
		return f.SortBy + " DESC"
	}
	return f.SortBy + " ASC"
}

type BaseFilter struct {
	PageFilter
	SortFilter
}
