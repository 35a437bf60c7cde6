package service

import billingv1 "github.com/elsafrica/billing/pkg/billingv1"

// paginate returns the rows of page. A zero RowsPerPage returns all of
// items; a page past the end is empty.
func paginate[T any](items []T, page billingv1.Page) []T {
	if page.RowsPerPage <= 0 {
		return items
	}
	start := page.PageNum * page.RowsPerPage
	if start >= len(items) {
		return []T{}
	}
	end := min(start+page.RowsPerPage, len(items))
	return items[start:end]
}
