package consult

import (
	"context"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/agentdesk/internal/catalog"
	"github.com/rshade/agentdesk/internal/loader"
	"github.com/rshade/agentdesk/internal/search"
)

// pagedQueues serves totalPages pages of two queues each and records requests.
type pagedQueues struct {
	totalPages int
	calls      []catalog.FetchParams
}

func (s *pagedQueues) fetch(_ context.Context, p catalog.FetchParams) (catalog.PaginatedResponse[catalog.Queue], error) {
	s.calls = append(s.calls, p)
	data := []catalog.Queue{
		{ID: fmt.Sprintf("q-%d-0", p.Page), Name: fmt.Sprintf("%sQueue %d.0", p.Search, p.Page)},
		{ID: fmt.Sprintf("q-%d-1", p.Page), Name: fmt.Sprintf("%sQueue %d.1", p.Search, p.Page)},
	}
	return catalog.PaginatedResponse[catalog.Queue]{
		Data: data,
		Meta: &catalog.PaginationMeta{Page: p.Page, TotalPages: s.totalPages},
	}, nil
}

func staticEntryPoints(_ context.Context, p catalog.FetchParams) (catalog.PaginatedResponse[catalog.EntryPoint], error) {
	return catalog.PaginatedResponse[catalog.EntryPoint]{
		Data: []catalog.EntryPoint{{ID: "ep-1", Name: "Main IVR"}},
		Meta: &catalog.PaginationMeta{Page: p.Page, TotalPages: 1},
	}, nil
}

func staticDialNumbers(_ context.Context, p catalog.FetchParams) (catalog.PaginatedResponse[catalog.AddressBookEntry], error) {
	return catalog.PaginatedResponse[catalog.AddressBookEntry]{
		Data: []catalog.AddressBookEntry{{ID: "d-1", Name: "Front desk", Number: "5551000"}},
		Meta: &catalog.PaginationMeta{Page: p.Page, TotalPages: 1},
	}, nil
}

func newTestPicker(queues *pagedQueues) *Picker {
	return NewPicker(context.Background(), Sources{
		Agents: []catalog.Agent{
			{ID: "a1", Name: "Alice"},
			{ID: "a2", Name: "Bob", DialNumber: "5552000"},
			{ID: "a3", Name: " "},
		},
		Queues:      queues.fetch,
		DialNumbers: staticDialNumbers,
		EntryPoints: staticEntryPoints,
	}, Options{DebounceDelay: time.Millisecond})
}

// run executes cmd and feeds page loads back into the picker, returning any
// debounce message produced.
func run(t *testing.T, p *Picker, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if loaded, ok := msg.(loader.PageLoadedMsg); ok {
		p.HandlePageLoaded(loaded)
	}
	return msg
}

func itemNames(items []catalog.ListItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestNewPicker(t *testing.T) {
	p := newTestPicker(&pagedQueues{totalPages: 1})

	assert.Equal(t, catalog.CategoryAgents, p.Active())
	assert.Empty(t, p.Search())
	assert.Equal(t, []string{"Alice", "Bob"}, itemNames(p.Items()))
	assert.Nil(t, p.EnsureLoaded(), "agents are never fetched")

	for _, c := range catalog.FetchedCategories {
		st := p.State(c)
		assert.Empty(t, st.Items, c.String())
		assert.True(t, st.HasMore, c.String())
		assert.False(t, st.Loading, c.String())
	}
}

func TestPicker_InitialCategory(t *testing.T) {
	queues := &pagedQueues{totalPages: 1}
	p := NewPicker(context.Background(), Sources{Queues: queues.fetch},
		Options{InitialCategory: catalog.CategoryQueues})

	assert.Equal(t, catalog.CategoryQueues, p.Active())
	run(t, p, p.EnsureLoaded())
	assert.Len(t, p.Items(), 2)
}

func TestPicker_AgentSearchIsLocal(t *testing.T) {
	queues := &pagedQueues{totalPages: 1}
	p := newTestPicker(queues)

	cmd := p.HandleSearchChange("bo")

	assert.Nil(t, cmd)
	assert.Equal(t, "bo", p.Search())
	assert.Equal(t, []string{"Bob"}, itemNames(p.Items()))
	assert.Empty(t, queues.calls)

	p.HandleSearchChange("2000")
	assert.Equal(t, []string{"Bob"}, itemNames(p.Items()))
}

func TestPicker_CategoryChangeLazyLoad(t *testing.T) {
	queues := &pagedQueues{totalPages: 3}
	p := newTestPicker(queues)

	cmd := p.HandleCategoryChange(catalog.CategoryQueues)
	require.NotNil(t, cmd)
	assert.True(t, p.Loading())

	run(t, p, cmd)
	assert.False(t, p.Loading())
	assert.Equal(t, []string{"Queue 0.0", "Queue 0.1"}, itemNames(p.Items()))
	require.Len(t, queues.calls, 1)
	assert.Equal(t, catalog.FetchParams{Page: 0, PageSize: loader.DefaultPageSize}, queues.calls[0])

	assert.Nil(t, p.EnsureLoaded(), "already loaded")
}

func TestPicker_CategoryChangeResetsAll(t *testing.T) {
	queues := &pagedQueues{totalPages: 3}
	p := newTestPicker(queues)

	run(t, p, p.HandleCategoryChange(catalog.CategoryQueues))
	run(t, p, p.LoadNextPage())
	require.Len(t, p.Items(), 4)

	p.HandleSearchChange("sal")

	cmd := p.HandleCategoryChange(catalog.CategoryAgents)

	assert.Nil(t, cmd)
	assert.Empty(t, p.Search())
	for _, c := range catalog.FetchedCategories {
		st := p.State(c)
		assert.Empty(t, st.Items, c.String())
		assert.Equal(t, 0, st.Page, c.String())
		assert.True(t, st.HasMore, c.String())
	}
}

func TestPicker_SwitchBetweenFetchedCategories(t *testing.T) {
	queues := &pagedQueues{totalPages: 1}
	p := newTestPicker(queues)

	run(t, p, p.HandleCategoryChange(catalog.CategoryEntryPoint))
	require.Len(t, p.Items(), 1)

	run(t, p, p.HandleCategoryChange(catalog.CategoryQueues))
	assert.Empty(t, p.State(catalog.CategoryEntryPoint).Items, "entry points reset on leaving")
	assert.Len(t, p.Items(), 2)

	run(t, p, p.HandleCategoryChange(catalog.CategoryQueues))
	assert.Len(t, queues.calls, 2, "re-selecting the category reloads it")
}

func TestPicker_DebouncedSearch(t *testing.T) {
	queues := &pagedQueues{totalPages: 1}
	p := newTestPicker(queues)
	run(t, p, p.HandleCategoryChange(catalog.CategoryQueues))
	queues.calls = nil

	first := p.HandleSearchChange("q")
	second := p.HandleSearchChange("qu")
	assert.Equal(t, "qu", p.Search(), "search string updates immediately")

	firstMsg := first().(search.DebouncedMsg)
	secondMsg := second().(search.DebouncedMsg)

	assert.Nil(t, p.HandleDebounced(firstMsg), "superseded keystroke")
	run(t, p, p.HandleDebounced(secondMsg))

	require.Len(t, queues.calls, 1)
	assert.Equal(t, "qu", queues.calls[0].Search)
	assert.Equal(t, []string{"quQueue 0.0", "quQueue 0.1"}, itemNames(p.Items()))

	cleared := p.HandleSearchChange("")
	run(t, p, p.HandleDebounced(cleared().(search.DebouncedMsg)))

	require.Len(t, queues.calls, 2)
	assert.Empty(t, queues.calls[1].Search, "cleared search omits the search field")
	assert.Equal(t, []string{"Queue 0.0", "Queue 0.1"}, itemNames(p.Items()))
}

func TestPicker_SingleCharacterSearchDoesNotFetch(t *testing.T) {
	queues := &pagedQueues{totalPages: 1}
	p := newTestPicker(queues)
	run(t, p, p.HandleCategoryChange(catalog.CategoryQueues))
	queues.calls = nil

	cmd := p.HandleSearchChange("q")
	require.NotNil(t, cmd)
	assert.Nil(t, p.HandleDebounced(cmd().(search.DebouncedMsg)))
	assert.Empty(t, queues.calls)
}

func TestPicker_PendingSearchDroppedOnCategoryChange(t *testing.T) {
	queues := &pagedQueues{totalPages: 1}
	p := newTestPicker(queues)
	run(t, p, p.HandleCategoryChange(catalog.CategoryQueues))
	queues.calls = nil

	pending := p.HandleSearchChange("sales")
	p.HandleCategoryChange(catalog.CategoryAgents)

	assert.Nil(t, p.HandleDebounced(pending().(search.DebouncedMsg)))
	assert.Empty(t, queues.calls)
}

func TestPicker_LoadNextPage(t *testing.T) {
	queues := &pagedQueues{totalPages: 2}
	p := newTestPicker(queues)

	assert.Nil(t, p.LoadNextPage(), "agents have no pages")

	run(t, p, p.HandleCategoryChange(catalog.CategoryQueues))

	cmd := p.LoadNextPage()
	require.NotNil(t, cmd)
	assert.Nil(t, p.LoadNextPage(), "gated while loading")

	run(t, p, cmd)
	assert.Len(t, p.Items(), 4)
	assert.False(t, p.State(catalog.CategoryQueues).HasMore)
	assert.Nil(t, p.LoadNextPage(), "exhausted")

	require.Len(t, queues.calls, 2)
	assert.Equal(t, 1, queues.calls[1].Page)
}

func TestPicker_NextPageUsesCommittedSearch(t *testing.T) {
	queues := &pagedQueues{totalPages: 3}
	p := newTestPicker(queues)
	run(t, p, p.HandleCategoryChange(catalog.CategoryQueues))

	debounced := p.HandleSearchChange("sup")
	run(t, p, p.HandleDebounced(debounced().(search.DebouncedMsg)))
	run(t, p, p.LoadNextPage())

	last := queues.calls[len(queues.calls)-1]
	assert.Equal(t, catalog.FetchParams{Page: 1, PageSize: loader.DefaultPageSize, Search: "sup"}, last)
	assert.Len(t, p.Items(), 4)
}

func TestPicker_HandleSentinel(t *testing.T) {
	queues := &pagedQueues{totalPages: 3}
	p := newTestPicker(queues)
	run(t, p, p.HandleCategoryChange(catalog.CategoryQueues))

	assert.Nil(t, p.HandleSentinel(false))

	cmd := p.HandleSentinel(true)
	require.NotNil(t, cmd)
	assert.Nil(t, p.HandleSentinel(true), "no second request while loading")
	run(t, p, cmd)

	run(t, p, p.HandleSentinel(true))
	assert.Len(t, p.Items(), 6)
	assert.Nil(t, p.HandleSentinel(true), "no more pages")
	assert.Equal(t, 2, p.trigger.fired)
}

func TestPicker_ManualAction(t *testing.T) {
	p := newTestPicker(&pagedQueues{totalPages: 1})

	run(t, p, p.HandleCategoryChange(catalog.CategoryDialNumber))
	p.HandleSearchChange("+14155551234")
	action := p.ManualAction()
	assert.True(t, action.Visible)
	assert.Equal(t, "+14155551234", action.Title)

	p.HandleSearchChange("abc")
	assert.Equal(t, catalog.ManualAction{Visible: false}, p.ManualAction())

	run(t, p, p.HandleCategoryChange(catalog.CategoryEntryPoint))
	p.HandleSearchChange("Main IVR")
	assert.True(t, p.ManualAction().Visible)
}

func TestPicker_DisabledCategory(t *testing.T) {
	p := NewPicker(context.Background(), Sources{}, Options{})

	assert.Nil(t, p.HandleCategoryChange(catalog.CategoryQueues))
	st := p.State(catalog.CategoryQueues)
	assert.Empty(t, st.Items)
	assert.False(t, st.HasMore)
	assert.Nil(t, p.LoadNextPage())
}

func TestPicker_Close(t *testing.T) {
	queues := &pagedQueues{totalPages: 2}
	p := newTestPicker(queues)
	run(t, p, p.HandleCategoryChange(catalog.CategoryQueues))

	pending := p.HandleSearchChange("sales")
	p.Close()

	assert.Nil(t, p.HandleDebounced(pending().(search.DebouncedMsg)))
	assert.Nil(t, p.HandleSearchChange("x"))
	assert.Nil(t, p.HandleCategoryChange(catalog.CategoryEntryPoint))
	assert.Nil(t, p.LoadNextPage())
	assert.Nil(t, p.HandleSentinel(true))
}

func TestScrollTrigger(t *testing.T) {
	var trig ScrollTrigger
	assert.False(t, trig.Check(true, false, false))
	assert.False(t, trig.Check(true, true, true))
	assert.False(t, trig.Check(false, true, false))
	assert.Equal(t, 0, trig.fired)
	assert.True(t, trig.Check(true, true, false))
	assert.True(t, trig.Check(true, true, false), "level-triggered: fires again while visible")
	assert.Equal(t, 2, trig.fired)
	trig.Reset()
	assert.Equal(t, 0, trig.fired)
}
