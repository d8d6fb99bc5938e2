package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rshade/agentdesk/internal/catalog"
)

// Paging defaults and limits.
const (
	DefaultPage      = 1
	MinPage          = 1
	DefaultPageSize  = 25
	MinPageSize      = 1
	MaxPageSize      = 500
	DefaultSortOrder = SortOrderAsc
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
	sortPartsMax     = 2
)

// Validation errors.
var (
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrInvalidPageSize   = fmt.Errorf("page-size must be between %d and %d", MinPageSize, MaxPageSize)
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'name:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
)

// Params holds the paging flags of a list command.
type Params struct {
	// Page is 1-based.
	Page     int
	PageSize int
	Search   string
	Sort     string
}

// NewParams returns Params with the defaults.
func NewParams() *Params {
	return &Params{Page: DefaultPage, PageSize: DefaultPageSize}
}

// Validate checks bounds and the sort expression.
func (p Params) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	if p.Sort != "" {
		if _, _, err := ParseSort(p.Sort); err != nil {
			return err
		}
	}
	return nil
}

// FetchParams converts to the 0-based request a FetchFunc expects.
// Search is trimmed; whitespace-only search means no search.
func (p Params) FetchParams() catalog.FetchParams {
	return catalog.FetchParams{
		Page:     p.Page - 1,
		PageSize: p.PageSize,
		Search:   strings.TrimSpace(p.Search),
	}
}

// ParseSort parses "field" or "field:order".
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}
	return field, order, nil
}
