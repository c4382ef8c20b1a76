package model

// PageSize is the fixed number of articles shown per page.
const PageSize = 10

// TotalPages returns the number of pages needed to show n articles.
func TotalPages(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// ClampPage bounds a requested page number to [1, totalPages].
// With no pages at all the result is 1 so the view stays on a valid page
// once articles arrive.
func ClampPage(page, totalPages int) int {
	if totalPages <= 0 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
