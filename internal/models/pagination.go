package models

// PaginatedResponse wraps list endpoints; Total is the upstream's full count,
// not the page length.
type PaginatedResponse struct {
	Data     any `json:"data"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

func (p PaginatedResponse) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}

	return (p.Total + p.PageSize - 1) / p.PageSize
}
