package pagination

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type Pager struct {
	page  int
	limit int
	total int64
}

type PageInfo struct {
	TotalItems   int64 `json:"total_items"`
	TotalPages   int   `json:"total_pages"`
	CurrentPage  int   `json:"current_page"`
	ItemsPerPage int   `json:"items_per_page"`
} // @name pagination.PageInfo

// NewPager clamps page to >= 1 and limit to [1, MaxLimit].
func NewPager(page, limit int) *Pager {
	if page < 1 {
		page = 1
	}

	if limit < 1 {
		limit = DefaultLimit
	}

	if limit > MaxLimit {
		limit = MaxLimit
	}

	return &Pager{page: page, limit: limit}
}

func (p *Pager) SetTotal(total int64) {
	p.total = total
}

// Do returns the offset and limit of the current page.
func (p *Pager) Do() (int, int) {
	return (p.page - 1) * p.limit, p.limit
}

func (p *Pager) PageInfo() PageInfo {
	totalPages := int(p.total / int64(p.limit))
	if p.total%int64(p.limit) != 0 {
		totalPages++
	}

	return PageInfo{
		TotalItems:   p.total,
		TotalPages:   totalPages,
		CurrentPage:  p.page,
		ItemsPerPage: p.limit,
	}
}
