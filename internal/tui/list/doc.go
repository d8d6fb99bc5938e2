// Package listview provides a virtual-scrolling list for Bubble Tea views.
//
// Only the rows inside the viewport are rendered. Items may be appended
// while the user scrolls; SentinelVisible reports when the last row is on
// screen so the owner can fetch the next page.
package listview
