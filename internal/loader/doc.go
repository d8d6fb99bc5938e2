// Package loader implements the per-category paginated loading state used by
// the consult/transfer picker.
//
// A Loader wraps an optional catalog.FetchFunc and a transform, and keeps the
// accumulated items, last loaded page, has-more flag and loading flag for one
// category. Loads are split in three steps so they fit a Bubble Tea update
// loop:
//   - Begin marks the loader busy and returns a Request (Update goroutine)
//   - Fetch performs the network call (command goroutine)
//   - Complete applies the Result (Update goroutine)
//
// Load runs all three synchronously for hosts without an event loop.
//
// Every Begin and Reset bumps a generation counter. A Result whose
// generation is no longer current is discarded, so a slow response cannot
// repopulate a list that was reset while it was in flight.
package loader
