// Package pagination provides pagination utilities.
package pagination

// Pagination holds pagination parameters.
type Pagination struct {
	Page    int
	PerPage int
}

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// New creates a new Pagination with defaults applied.
func New(page, perPage int) Pagination {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Pagination{
		Page:    page,
		PerPage: perPage,
	}
}

// Offset returns the offset for database queries.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Limit returns the limit for database queries.
func (p Pagination) Limit() int {
	return p.PerPage
}

// Result represents a paginated result set.
type Result[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// NewResult creates a new paginated Result.
func NewResult[T any](data []T, total int64, p Pagination) Result[T] {
	if data == nil {
		data = make([]T, 0)
	}

	return Result[T]{
		Data:       data,
		Total:      total,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: TotalPages(int(total), p.PerPage),
	}
}

// TotalPages returns the number of pages needed for total items. An empty
// set still has one (empty) page.
func TotalPages(total, perPage int) int {
	if perPage < 1 {
		return 1
	}
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		return 1
	}
	return pages
}

// Window is an in-memory slice of a list: [Offset, End) with a 1-based Start
// for display ("Showing Start to End of Total entries").
type Window struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
	Total      int `json:"total"`
	Offset     int `json:"-"`
	Start      int `json:"start"`
	End        int `json:"end"`
}

// Clamp builds the Window for page, forcing it into [1, TotalPages].
func Clamp(total, page, perPage int) Window {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	totalPages := TotalPages(total, perPage)
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	offset := (page - 1) * perPage
	end := offset + perPage
	if end > total {
		end = total
	}
	start := offset + 1
	if total == 0 {
		start = 0
	}

	return Window{
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		Total:      total,
		Offset:     offset,
		Start:      start,
		End:        end,
	}
}
