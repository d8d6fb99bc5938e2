// Package consult coordinates the four categories of the consult/transfer
// picker: one paginated loader per fetched category, a local agent list,
// the shared debounced search string, category switching with lazy first
// loads, and the infinite-scroll trigger.
//
// Picker is driven from a Bubble Tea Update loop. Every handler returns the
// tea.Cmd that performs the resulting fetch (or nil), and fetch results come
// back through HandlePageLoaded.
package consult
