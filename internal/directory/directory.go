// Package directory serves consult/transfer targets from a YAML directory
// file. It exposes the paginated, searchable catalog.FetchFunc sources the
// picker consumes, so the picker can run without a contact-center backend.
package directory

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/agentdesk/internal/callcontrol"
	"github.com/rshade/agentdesk/internal/catalog"
)

// ErrInvalidPage is returned for negative pages or non-positive page sizes.
var ErrInvalidPage = errors.New("invalid page request")

// Directory is the content of a directory file.
type Directory struct {
	Agents        []catalog.Agent            `yaml:"agents"`
	Queues        []catalog.Queue            `yaml:"queues"`
	EntryPoints   []catalog.EntryPoint       `yaml:"entry_points"`
	AddressBook   []catalog.AddressBookEntry `yaml:"address_book"`
	WrapUpReasons []callcontrol.WrapUpReason `yaml:"wrapup_reasons"`
	ANIs          []callcontrol.ANIOption    `yaml:"outdial_ani"`

	// latency is added to every fetch, for exercising loading states.
	latency time.Duration
	// digest identifies the parsed content; empty for literals.
	digest  string
}

// Load reads and parses a directory file.
func Load(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading directory file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses directory YAML.
func Parse(data []byte) (*Directory, error) {
	var d Directory
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing directory YAML: %w", err)
	}
	sum := sha256.Sum256(data)
	d.digest = hex.EncodeToString(sum[:])
	return &d, nil
}

// Digest returns the sha256 of the YAML the directory was parsed from.
// Cache entries are namespaced by it, so editing or switching the
// directory file never serves another file's pages.
func (d *Directory) Digest() string {
	return d.digest
}

// WithLatency makes every fetch wait d before answering.
func (d *Directory) WithLatency(latency time.Duration) *Directory {
	d.latency = latency
	return d
}

// QueueSource returns the paginated queue source.
func (d *Directory) QueueSource() catalog.FetchFunc[catalog.Queue] {
	return source(d, func() []catalog.Queue { return d.Queues }, func(q catalog.Queue) []string {
		return []string{q.Name, q.ID, q.Description}
	})
}

// EntryPointSource returns the paginated entry point source.
func (d *Directory) EntryPointSource() catalog.FetchFunc[catalog.EntryPoint] {
	return source(d, func() []catalog.EntryPoint { return d.EntryPoints }, func(ep catalog.EntryPoint) []string {
		return []string{ep.Name, ep.ID}
	})
}

// AddressBookSource returns the paginated address book source.
func (d *Directory) AddressBookSource() catalog.FetchFunc[catalog.AddressBookEntry] {
	return source(d, func() []catalog.AddressBookEntry { return d.AddressBook }, func(e catalog.AddressBookEntry) []string {
		return []string{e.Name, e.Number}
	})
}

func source[T any](d *Directory, all func() []T, fields func(T) []string) catalog.FetchFunc[T] {
	return func(ctx context.Context, params catalog.FetchParams) (catalog.PaginatedResponse[T], error) {
		if d.latency > 0 {
			timer := time.NewTimer(d.latency)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return catalog.PaginatedResponse[T]{}, ctx.Err()
			case <-timer.C:
			}
		}
		return Paginate(all(), params, fields)
	}
}

// Paginate filters items by params.Search across fields (case-insensitive
// substring) and returns page params.Page of size params.PageSize.
// Pages past the end return an empty data slice.
func Paginate[T any](items []T, params catalog.FetchParams, fields func(T) []string) (catalog.PaginatedResponse[T], error) {
	if params.Page < 0 || params.PageSize <= 0 {
		return catalog.PaginatedResponse[T]{}, fmt.Errorf("%w: page=%d pageSize=%d",
			ErrInvalidPage, params.Page, params.PageSize)
	}

	matched := items
	if query := strings.ToLower(strings.TrimSpace(params.Search)); query != "" {
		matched = make([]T, 0, len(items))
		for _, it := range items {
			for _, f := range fields(it) {
				if strings.Contains(strings.ToLower(f), query) {
					matched = append(matched, it)
					break
				}
			}
		}
	}

	totalPages := (len(matched) + params.PageSize - 1) / params.PageSize
	start := params.Page * params.PageSize
	end := min(start+params.PageSize, len(matched))

	data := []T{}
	if start < len(matched) {
		data = append(data, matched[start:end]...)
	}

	return catalog.PaginatedResponse[T]{
		Data: data,
		Meta: &catalog.PaginationMeta{Page: params.Page, TotalPages: totalPages},
	}, nil
}
