package catalog

import (
	"fmt"
	"strings"
)

// Category identifies one tab of the consult/transfer picker.
type Category int

const (
	// CategoryAgents lists logged-in agents; filtered locally, never fetched.
	CategoryAgents Category = iota
	// CategoryQueues lists routable queues.
	CategoryQueues
	// CategoryDialNumber lists address book entries and accepts typed numbers.
	CategoryDialNumber
	// CategoryEntryPoint lists entry points.
	CategoryEntryPoint
)

// numCategories is the size of the closed category set.
const numCategories = 4

// Categories lists every category in tab order.
//
//nolint:gochecknoglobals // Closed enum lookup table.
var Categories = []Category{CategoryAgents, CategoryQueues, CategoryDialNumber, CategoryEntryPoint}

// FetchedCategories lists the categories backed by a paginated fetch.
//
//nolint:gochecknoglobals // Closed enum lookup table.
var FetchedCategories = []Category{CategoryDialNumber, CategoryEntryPoint, CategoryQueues}

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case CategoryAgents:
		return "Agents"
	case CategoryQueues:
		return "Queues"
	case CategoryDialNumber:
		return "Dial Number"
	case CategoryEntryPoint:
		return "Entry Point"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Fetched reports whether the category is loaded through a FetchFunc.
func (c Category) Fetched() bool {
	return c == CategoryQueues || c == CategoryDialNumber || c == CategoryEntryPoint
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	return c >= CategoryAgents && c < numCategories
}

// Next returns the following category in tab order, wrapping around.
func (c Category) Next() Category {
	return (c + 1) % numCategories
}

// Prev returns the preceding category in tab order, wrapping around.
func (c Category) Prev() Category {
	return (c + numCategories - 1) % numCategories
}

// ParseCategory parses a display name or a dashed CLI name.
func ParseCategory(s string) (Category, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", " ", "_", " ").Replace(norm)
	switch norm {
	case "agents", "agent":
		return CategoryAgents, nil
	case "queues", "queue":
		return CategoryQueues, nil
	case "dial number", "dialnumber", "dial", "address book":
		return CategoryDialNumber, nil
	case "entry point", "entrypoint", "entry points":
		return CategoryEntryPoint, nil
	}
	return CategoryAgents, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
