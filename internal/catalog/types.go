package catalog

import (
	"context"
	"errors"
)

// ErrUnknownCategory is returned by ParseCategory.
var ErrUnknownCategory = errors.New("unknown category")

// Agent is a consultable agent. DialNumber is the optional secondary identifier.
type Agent struct {
	ID         string `json:"id"                   yaml:"id"`
	Name       string `json:"name"                 yaml:"name"`
	DialNumber string `json:"dialNumber,omitempty" yaml:"dial_number,omitempty"`
}

// Queue is a routable contact-center queue.
type Queue struct {
	ID          string `json:"id"                    yaml:"id"`
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// EntryPoint is an IVR/queue entry address.
type EntryPoint struct {
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// AddressBookEntry is an external dial number.
type AddressBookEntry struct {
	ID     string `json:"id"     yaml:"id"`
	Name   string `json:"name"   yaml:"name"`
	Number string `json:"number" yaml:"number"`
}

// PaginationMeta is the paging block of a PaginatedResponse.
type PaginationMeta struct {
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
}

// PaginatedResponse is one page returned by a FetchFunc.
// A nil Data slice means the response carried no data field at all.
type PaginatedResponse[T any] struct {
	Data []T            `json:"data"`
	Meta *PaginationMeta `json:"meta,omitempty"`
}

// HasData reports whether the response carried a data field.
func (r PaginatedResponse[T]) HasData() bool {
	return r.Data != nil
}

// HasMore reports whether pages remain after meta.Page.
// A nil meta or zero TotalPages means no more pages.
func HasMore(meta *PaginationMeta) bool {
	if meta == nil {
		return false
	}
	return meta.TotalPages > 0 && meta.Page < meta.TotalPages-1
}

// FetchParams are the request parameters passed to a FetchFunc.
// Search is empty when no search filter applies.
type FetchParams struct {
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Search   string `json:"search,omitempty"`
}

// FetchFunc fetches one page of records.
type FetchFunc[T any] func(ctx context.Context, params FetchParams) (PaginatedResponse[T], error)
