package pagination

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/rshade/agentdesk/internal/catalog"
)

// ErrInvalidSortField is returned for a field ItemSorter does not know.
var ErrInvalidSortField = errors.New("invalid sort field")

// ItemSorter sorts listed directory items.
type ItemSorter struct {
	validFields map[string]func(catalog.ListItem) string
}

// NewItemSorter creates a sorter over name, id and number.
func NewItemSorter() *ItemSorter {
	return &ItemSorter{
		validFields: map[string]func(catalog.ListItem) string{
			"name":   func(it catalog.ListItem) string { return strings.ToLower(it.Name) },
			"id":     func(it catalog.ListItem) string { return it.ID },
			"number": func(it catalog.ListItem) string { return it.Number },
		},
	}
}

// IsValidField reports whether field can be sorted on.
func (s *ItemSorter) IsValidField(field string) bool {
	_, ok := s.validFields[field]
	return ok
}

// GetValidFields returns the sortable fields in order.
func (s *ItemSorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for f := range s.validFields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Apply sorts a copy of items by a "field[:order]" expression. An empty
// expression returns items unchanged.
func (s *ItemSorter) Apply(items []catalog.ListItem, expr string) ([]catalog.ListItem, error) {
	if expr == "" {
		return items, nil
	}
	field, order, err := ParseSort(expr)
	if err != nil {
		return nil, err
	}
	keyOf, ok := s.validFields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field,
			strings.Join(s.GetValidFields(), ", "))
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b catalog.ListItem) int {
		c := strings.Compare(keyOf(a), keyOf(b))
		if order == SortOrderDesc {
			return -c
		}
		return c
	})
	return sorted, nil
}
