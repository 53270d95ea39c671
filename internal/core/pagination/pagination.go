package pagination

// Pagination describes one page of a list response.
// Mirrors the meta block the admin API returns alongside every list.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	From        int `json:"from"`
	To          int `json:"to"`
}

const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

// Normalize clamps page and perPage to sane values
func Normalize(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// New computes pagination metadata for a page over total rows
func New(page, perPage, total int) Pagination {
	page, perPage = Normalize(page, perPage)

	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}

	from := (page-1)*perPage + 1
	to := page * perPage
	if to > total {
		to = total
	}
	// Empty page: no rows, or the page lies past the end of the data
	if total == 0 || from > to {
		from = 0
		to = 0
	}

	return Pagination{
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
		From:        from,
		To:          to,
	}
}

// Offset returns the SQL offset for a page
func (p Pagination) Offset() int {
	return (p.CurrentPage - 1) * p.PerPage
}
