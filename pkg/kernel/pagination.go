package kernel

// PaginationOptions controls page-based listing
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Normalize applies defaults for zero/negative values
func (p PaginationOptions) Normalize() PaginationOptions {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
	return p
}

// Offset returns the SQL offset for the page
func (p PaginationOptions) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PageSize
}

// Limit returns the SQL limit for the page
func (p PaginationOptions) Limit() int {
	return p.Normalize().PageSize
}

// PageInfo describes the page of a paginated result
type PageInfo struct {
	Number int `json:"number"`
	Size   int `json:"size"`
	Total  int `json:"total"`
}

// Paginated wraps a page of items with page metadata
type Paginated[T any] struct {
	Items []T      `json:"items"`
	Page  PageInfo `json:"page"`
}
