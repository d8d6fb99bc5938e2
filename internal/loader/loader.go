package loader

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/agentdesk/internal/catalog"
)

// DefaultPageSize is the page size requested from every FetchFunc.
const DefaultPageSize = 25

// ErrMissingData is logged when a response has no data field.
var ErrMissingData = errors.New("response has no data field")

// Transform converts a fetched record into its display form. page and index
// identify the record's position in the response that delivered it.
type Transform[T, U any] func(entry T, page, index int) U

// State is a snapshot of a loader's pagination state.
type State[U any] struct {
	Items   []U
	Page    int
	HasMore bool
	Loading bool
}

// Request describes one load started by Begin.
type Request struct {
	Category   catalog.Category
	Params     catalog.FetchParams
	Reset      bool
	Generation uint64
}

// Result is the outcome of fetching a Request.
type Result[T any] struct {
	Request  Request
	Response catalog.PaginatedResponse[T]
	Err      error
}

// PageLoadedMsg carries a finished fetch back into the Bubble Tea update loop.
// Result holds a Result[T] for the loader that issued the request.
type PageLoadedMsg struct {
	Category catalog.Category
	Result   any
}

// Loader holds the pagination state for one category.
type Loader[T, U any] struct {
	category  catalog.Category
	fetch     catalog.FetchFunc[T]
	transform Transform[T, U]
	pageSize  int
	logger    zerolog.Logger

	items   []U
	page    int
	hasMore bool
	loading bool

	// generation increments on every Begin and Reset; pending is the
	// generation of the most recent Begin.
	generation uint64
	pending    uint64
}

// Option configures a Loader.
type Option func(*loaderOptions)

type loaderOptions struct {
	pageSize int
	logger   zerolog.Logger
}

// WithPageSize overrides DefaultPageSize.
func WithPageSize(size int) Option {
	return func(o *loaderOptions) {
		if size > 0 {
			o.pageSize = size
		}
	}
}

// WithLogger sets the logger used to report fetch failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *loaderOptions) {
		o.logger = logger
	}
}

// New creates an idle loader. fetch may be nil, which makes the category inert.
func New[T, U any](
	category catalog.Category,
	fetch catalog.FetchFunc[T],
	transform Transform[T, U],
	opts ...Option,
) *Loader[T, U] {
	o := loaderOptions{pageSize: DefaultPageSize, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Loader[T, U]{
		category:  category,
		fetch:     fetch,
		transform: transform,
		pageSize:  o.pageSize,
		logger:    o.logger.With().Str("category", category.String()).Logger(),
		items:     []U{},
		hasMore:   true,
	}
}

// Category returns the category this loader serves.
func (l *Loader[T, U]) Category() catalog.Category {
	return l.category
}

// Enabled reports whether a fetch function is configured.
func (l *Loader[T, U]) Enabled() bool {
	return l.fetch != nil
}

// State returns a snapshot of the pagination state. Items is a copy.
func (l *Loader[T, U]) State() State[U] {
	items := make([]U, len(l.items))
	copy(items, l.items)
	return State[U]{Items: items, Page: l.page, HasMore: l.hasMore, Loading: l.loading}
}

// Items returns the accumulated items without copying.
func (l *Loader[T, U]) Items() []U {
	return l.items
}

// Page returns the last successfully loaded page.
func (l *Loader[T, U]) Page() int {
	return l.page
}

// HasMore reports whether more pages can be requested.
func (l *Loader[T, U]) HasMore() bool {
	return l.hasMore
}

// Loading reports whether a request is in flight.
func (l *Loader[T, U]) Loading() bool {
	return l.loading
}

// Reset empties the items, rewinds to page 0 and re-arms HasMore.
// Loading is left alone; an in-flight request becomes stale.
func (l *Loader[T, U]) Reset() {
	l.items = []U{}
	l.page = 0
	l.hasMore = true
	l.generation++
}

// Begin starts a load of page. It returns false when no fetch function is
// configured, in which case the loader is cleared and marked exhausted.
func (l *Loader[T, U]) Begin(page int, search string, reset bool) (Request, bool) {
	if l.fetch == nil {
		l.items = []U{}
		l.hasMore = false
		return Request{}, false
	}

	l.generation++
	l.pending = l.generation
	l.loading = true

	params := catalog.FetchParams{Page: page, PageSize: l.pageSize}
	if trimmed := strings.TrimSpace(search); trimmed != "" {
		params.Search = search
	}

	return Request{
		Category:   l.category,
		Params:     params,
		Reset:      reset,
		Generation: l.generation,
	}, true
}

// Fetch runs the fetch function for req. It does not touch loader state and
// may run on any goroutine. A panicking fetch is reported as an error.
func (l *Loader[T, U]) Fetch(ctx context.Context, req Request) (res Result[T]) {
	res.Request = req
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("fetch panicked: %v", r)
		}
	}()

	resp, err := l.fetch(ctx, req.Params)
	res.Response = resp
	res.Err = err
	return res
}

// Complete applies a fetch result. Stale results are dropped.
func (l *Loader[T, U]) Complete(res Result[T]) {
	req := res.Request
	if req.Generation == l.pending {
		l.loading = false
	}
	if req.Generation != l.generation {
		l.logger.Debug().
			Int("page", req.Params.Page).
			Uint64("generation", req.Generation).
			Msg("discarding stale page")
		return
	}

	replace := req.Reset || req.Params.Page == 0

	if res.Err != nil {
		if replace {
			l.items = []U{}
		}
		l.hasMore = false
		l.logger.Error().Err(res.Err).
			Int("page", req.Params.Page).
			Msgf("error loading %s: %s", l.category, res.Err.Error())
		return
	}

	if !res.Response.HasData() {
		if replace {
			l.items = []U{}
		}
		l.hasMore = false
		l.logger.Warn().Err(ErrMissingData).
			Int("page", req.Params.Page).
			Msgf("no data in %s response", l.category)
		return
	}

	transformed, err := l.transformPage(res.Response.Data, req.Params.Page)
	if err != nil {
		if replace {
			l.items = []U{}
		}
		l.hasMore = false
		l.logger.Error().Err(err).Int("page", req.Params.Page).Msgf("error transforming %s page", l.category)
		return
	}

	if replace {
		l.items = transformed
	} else {
		l.items = append(l.items, transformed...)
	}

	l.page = req.Params.Page
	if res.Response.Meta != nil {
		l.page = res.Response.Meta.Page
	}
	l.hasMore = catalog.HasMore(res.Response.Meta)
}

// transformPage converts a whole page, so a failing transform leaves no partial page behind.
func (l *Loader[T, U]) transformPage(data []T, page int) (out []U, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("transform panicked: %v", r)
		}
	}()

	out = make([]U, 0, len(data))
	for i, entry := range data {
		out = append(out, l.transform(entry, page, i))
	}
	return out, nil
}

// Cmd begins a load now and returns the command that fetches it.
// It returns nil for an inert category.
func (l *Loader[T, U]) Cmd(ctx context.Context, page int, search string, reset bool) tea.Cmd {
	req, ok := l.Begin(page, search, reset)
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return PageLoadedMsg{Category: l.category, Result: l.Fetch(ctx, req)}
	}
}

// Apply completes a PageLoadedMsg issued by this loader. It reports false if
// the message belongs to another loader.
func (l *Loader[T, U]) Apply(msg PageLoadedMsg) bool {
	if msg.Category != l.category {
		return false
	}
	res, ok := msg.Result.(Result[T])
	if !ok {
		return false
	}
	l.Complete(res)
	return true
}
