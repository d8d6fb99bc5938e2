// Package catalog defines the consult/transfer target model shared by the
// picker: categories, directory records, paginated responses and the pure
// helpers that turn records into list items, filter agents locally and
// validate manually typed targets.
//
// Helpers in this package never panic past their boundary. Bad input is
// logged and mapped to a safe default (empty list, false, or a default
// message) so a single malformed record cannot break the picker.
package catalog
