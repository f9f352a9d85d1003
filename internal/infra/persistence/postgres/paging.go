package postgres

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// pageOffset converts a 1-based page number into a row offset.
func pageOffset(page, perPage int) int {
	if page < 1 {
		page = 1
	}

	return (page - 1) * pageLimit(perPage)
}

// pageLimit clamps the page size to a sane range.
func pageLimit(perPage int) int {
	if perPage < 1 {
		return defaultPerPage
	}
	if perPage > maxPerPage {
		return maxPerPage
	}

	return perPage
}
