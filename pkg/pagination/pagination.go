package pagination

const (
	// DefaultPerPage is the standard page size when one is not provided.
	DefaultPerPage = 20
	// MaxPerPage caps how many rows any listing can request.
	MaxPerPage = 100
)

// Params holds page-based pagination inputs from controllers or services.
type Params struct {
	Page    int
	PerPage int
}

// NormalizePage clamps the requested page to 1 or greater.
func NormalizePage(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

// NormalizePerPage enforces the configured default and maximum page sizes.
func NormalizePerPage(perPage int) int {
	if perPage <= 0 {
		return DefaultPerPage
	}
	if perPage > MaxPerPage {
		return MaxPerPage
	}
	return perPage
}

// Normalize returns a copy of params with both fields clamped.
func Normalize(params Params) Params {
	return Params{
		Page:    NormalizePage(params.Page),
		PerPage: NormalizePerPage(params.PerPage),
	}
}

// TotalPages derives the page count for the given total row count.
func TotalPages(total, perPage int) int {
	perPage = NormalizePerPage(perPage)
	if total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}
