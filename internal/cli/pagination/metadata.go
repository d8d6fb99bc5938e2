package pagination

import "github.com/rshade/agentdesk/internal/catalog"

// Meta is the paging block printed with a listed page. Pages are 1-based.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	Count       int  `json:"count"        yaml:"count"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta builds Meta from the request and the source's response metadata.
// A nil meta describes a single page holding count items.
func NewMeta(params Params, meta *catalog.PaginationMeta, count int) Meta {
	m := Meta{
		CurrentPage: params.Page,
		PageSize:    params.PageSize,
		Count:       count,
		HasPrevious: params.Page > 1,
	}
	if meta == nil {
		m.TotalPages = 1
		return m
	}
	m.CurrentPage = meta.Page + 1
	m.TotalPages = meta.TotalPages
	m.HasPrevious = meta.Page > 0
	m.HasNext = catalog.HasMore(meta)
	return m
}
