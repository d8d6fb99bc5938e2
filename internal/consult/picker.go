package consult

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/agentdesk/internal/catalog"
	"github.com/rshade/agentdesk/internal/loader"
	"github.com/rshade/agentdesk/internal/search"
)

// categoryLoader is the type-erased view of a loader.Loader used by the
// category table.
type categoryLoader interface {
	Cmd(ctx context.Context, page int, search string, reset bool) tea.Cmd
	Apply(msg loader.PageLoadedMsg) bool
	Reset()
	Items() []catalog.ListItem
	Page() int
	HasMore() bool
	Loading() bool
	Enabled() bool
}

// Picker is the state of one consult/transfer picker session.
type Picker struct {
	ctx    context.Context
	logger zerolog.Logger

	agents      []catalog.Agent
	entryPoints *loader.Loader[catalog.EntryPoint, catalog.ListItem]
	loaders     map[catalog.Category]categoryLoader

	active    catalog.Category
	search    string
	debouncer *search.Debouncer
	trigger   *ScrollTrigger
	closed    bool
}

// NewPicker creates a picker over src. The active category starts at
// opts.InitialCategory; call EnsureLoaded to start its first load.
func NewPicker(ctx context.Context, src Sources, opts Options) *Picker {
	logger := opts.Logger.With().Str("component", "consult").Logger()
	loaderOpts := []loader.Option{loader.WithLogger(logger)}
	if opts.PageSize > 0 {
		loaderOpts = append(loaderOpts, loader.WithPageSize(opts.PageSize))
	}

	entryPoints := loader.New(catalog.CategoryEntryPoint, src.EntryPoints, catalog.EntryPointTransform, loaderOpts...)

	p := &Picker{
		ctx:         ctx,
		logger:      logger,
		agents:      src.Agents,
		entryPoints: entryPoints,
		loaders: map[catalog.Category]categoryLoader{
			catalog.CategoryQueues: loader.New(
				catalog.CategoryQueues, src.Queues, catalog.QueueTransform, loaderOpts...),
			catalog.CategoryDialNumber: loader.New(
				catalog.CategoryDialNumber, src.DialNumbers, catalog.AddressBookTransform, loaderOpts...),
			catalog.CategoryEntryPoint: entryPoints,
		},
		active:    catalog.CategoryAgents,
		debouncer: search.NewDebouncer(opts.DebounceDelay),
		trigger:   &ScrollTrigger{},
	}
	if opts.InitialCategory.Valid() {
		p.active = opts.InitialCategory
	}
	return p
}

// Active returns the active category.
func (p *Picker) Active() catalog.Category {
	return p.active
}

// Search returns the shared search string.
func (p *Picker) Search() string {
	return p.search
}

// loaderFor returns the loader of a fetched category, or nil for Agents.
func (p *Picker) loaderFor(c catalog.Category) categoryLoader {
	return p.loaders[c]
}

// Snapshot is the pagination state of one category as seen by the view.
type Snapshot struct {
	Items   []catalog.ListItem
	Page    int
	HasMore bool
	Loading bool
}

// State returns the pagination state of c. Agents report their filtered list
// with HasMore false.
func (p *Picker) State(c catalog.Category) Snapshot {
	if c == catalog.CategoryAgents {
		return Snapshot{Items: p.agentItems()}
	}
	l := p.loaderFor(c)
	if l == nil {
		return Snapshot{}
	}
	return Snapshot{Items: l.Items(), Page: l.Page(), HasMore: l.HasMore(), Loading: l.Loading()}
}

// Items returns the display items of the active category.
func (p *Picker) Items() []catalog.ListItem {
	return p.State(p.active).Items
}

// Loading reports whether the active category has a fetch in flight.
func (p *Picker) Loading() bool {
	return p.State(p.active).Loading
}

func (p *Picker) agentItems() []catalog.ListItem {
	return catalog.AgentItems(catalog.FilterAgents(p.agents, p.search))
}

// EntryPoints returns the loaded entry point records' display items as
// entry points, for manual entry matching.
func (p *Picker) EntryPoints() []catalog.EntryPoint {
	items := p.entryPoints.Items()
	eps := make([]catalog.EntryPoint, 0, len(items))
	for _, it := range items {
		eps = append(eps, catalog.EntryPoint{ID: it.ID, Name: it.Name})
	}
	return eps
}

// ManualAction returns the manual-entry row for the current search text.
func (p *Picker) ManualAction() catalog.ManualAction {
	return catalog.ManualEntry(p.active, p.search, p.EntryPoints())
}

// HandleSearchChange stores value as the search string immediately. For
// fetched categories it returns the debounce command for the remote search.
func (p *Picker) HandleSearchChange(value string) tea.Cmd {
	if p.closed {
		return nil
	}
	p.search = value
	if p.active == catalog.CategoryAgents {
		return nil
	}
	return p.debouncer.Trigger(value, p.active)
}

// HandleDebounced runs the remote search for a settled search value. Values
// of a single character are ignored until cleared or extended.
func (p *Picker) HandleDebounced(msg search.DebouncedMsg) tea.Cmd {
	if !p.debouncer.Accept(msg) {
		return nil
	}
	if !search.ShouldQuery(msg.Value) {
		p.logger.Debug().Str("category", msg.Category.String()).Msg("search too short, skipping fetch")
		return nil
	}
	l := p.loaderFor(msg.Category)
	if l == nil {
		return nil
	}
	p.logger.Debug().
		Str("category", msg.Category.String()).
		Str("search", msg.Value).
		Msg("debounced search")
	return l.Cmd(p.ctx, 0, msg.Value, true)
}

// HandleCategoryChange activates c, clears the search and resets every
// fetched category, then starts the lazy first load of c if needed.
func (p *Picker) HandleCategoryChange(c catalog.Category) tea.Cmd {
	if p.closed || !c.Valid() {
		return nil
	}
	p.active = c
	p.search = ""
	p.debouncer.Cancel()
	for _, fc := range catalog.FetchedCategories {
		p.loaders[fc].Reset()
	}
	p.trigger.Reset()
	p.logger.Debug().Str("category", c.String()).Msg("category changed")
	return p.EnsureLoaded()
}

// EnsureLoaded starts the first-page load of the active category when it is a
// fetched category with nothing loaded yet.
func (p *Picker) EnsureLoaded() tea.Cmd {
	if p.closed {
		return nil
	}
	l := p.loaderFor(p.active)
	if l == nil || len(l.Items()) > 0 {
		return nil
	}
	return l.Cmd(p.ctx, 0, "", true)
}

// HandlePageLoaded routes a finished fetch to its loader.
func (p *Picker) HandlePageLoaded(msg loader.PageLoadedMsg) {
	l := p.loaderFor(msg.Category)
	if l == nil {
		return
	}
	l.Apply(msg)
}

// LoadNextPage requests the next page of the active category using the
// committed search string. It is a no-op while loading or when exhausted.
func (p *Picker) LoadNextPage() tea.Cmd {
	if p.closed {
		return nil
	}
	l := p.loaderFor(p.active)
	if l == nil || !l.HasMore() || l.Loading() {
		return nil
	}
	return l.Cmd(p.ctx, l.Page()+1, p.search, false)
}

// HandleSentinel reports the visibility of the list-end sentinel and returns
// the next-page command when the scroll trigger fires.
func (p *Picker) HandleSentinel(visible bool) tea.Cmd {
	if p.closed {
		return nil
	}
	st := p.State(p.active)
	if !p.trigger.Check(visible, st.HasMore, st.Loading) {
		return nil
	}
	p.logger.Debug().
		Str("category", p.active.String()).
		Int("page", st.Page+1).
		Int("sentinel_fires", p.trigger.fired).
		Msg("sentinel requested next page")
	return p.LoadNextPage()
}

// Close ends the session. Pending debounced searches are dropped and all
// handlers become no-ops.
func (p *Picker) Close() {
	p.closed = true
	p.debouncer.Stop()
	p.trigger.Reset()
}
