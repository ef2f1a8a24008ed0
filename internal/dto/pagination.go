package dto

// PageMeta is the shared pagination envelope metadata for every list
// endpoint: {data: [...], meta: {...}}.
type PageMeta struct {
	TotalItems   int64 `json:"totalItems"`
	ItemCount    int   `json:"itemCount"`
	ItemsPerPage int   `json:"itemsPerPage"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
}

// NewPageMeta derives the metadata block from a total row count and the
// page actually returned.
func NewPageMeta(total int64, itemCount, limit, page int) PageMeta {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return PageMeta{
		TotalItems:   total,
		ItemCount:    itemCount,
		ItemsPerPage: limit,
		TotalPages:   totalPages,
		CurrentPage:  page,
	}
}

// PageQuery is bound from the common ?page&limit&search query string.
type PageQuery struct {
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=10" validate:"min=1,max=100"`
	Search string `form:"search"`
}

// Normalize clamps page/limit to sane values; gin's default tags only apply
// when the key is absent, not when it is malformed.
func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 10
	}
}
