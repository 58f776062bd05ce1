package kernel

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// PaginationOptions carries the page request as received from the outside.
// Call Normalize before using it against a repository.
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Normalize clamps the options into the allowed window: page starts at 1,
// page size falls back to the default and is capped at the maximum.
func (p PaginationOptions) Normalize() PaginationOptions {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the row offset for the requested page. The options must be
// normalized first.
func (p PaginationOptions) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Paginated is a page of results plus the derived page math.
type Paginated[T any] struct {
	Items       []T  `json:"items"`
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// NewPaginated derives the page math from the raw counts. TotalPages is the
// ceiling of totalItems/pageSize, and the Has* flags follow from the page
// position alone, so a page past the end reports HasNext=false.
func NewPaginated[T any](items []T, totalItems, page, pageSize int) *Paginated[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalItems + pageSize - 1) / pageSize
	}
	return &Paginated[T]{
		Items:       items,
		Page:        page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
}
