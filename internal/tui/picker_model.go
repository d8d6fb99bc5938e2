package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/agentdesk/internal/catalog"
	"github.com/rshade/agentdesk/internal/consult"
	"github.com/rshade/agentdesk/internal/loader"
	"github.com/rshade/agentdesk/internal/search"
	listview "github.com/rshade/agentdesk/internal/tui/list"
)

const (
	defaultWidth         = 80
	defaultHeight        = 24
	searchInputCharLimit = 64
	// chromeRows is everything the view draws besides the list:
	// title, tabs, search, blank, status, help and the box border.
	chromeRows = 8
)

// ViewState is the lifecycle of the picker view.
type ViewState int

// Picker view states.
const (
	ViewStatePicking ViewState = iota
	ViewStateSelected
	ViewStateCancelled
)

// Selection is the target chosen in the picker.
type Selection struct {
	Category                    catalog.Category
	Item                        catalog.ListItem
	Manual                      bool
	AllowParticipantsToInteract bool
	Handled                     bool
}

// row is one line of the list: a loaded item or the manual-entry action.
type row struct {
	item   catalog.ListItem
	manual bool
	title  string
}

// PickerModel is the Bubble Tea model of the consult/transfer picker.
type PickerModel struct {
	picker   *consult.Picker
	selector catalog.Selector
	logger   zerolog.Logger

	keys    pickerKeyMap
	help    help.Model
	input   textinput.Model
	loading *LoadingState
	list    *listview.VirtualListModel[row]

	state         ViewState
	allowInteract bool
	selection     *Selection
	width         int
	height        int
}

// NewPickerModel builds the picker view over src. Selections are routed to
// selector.
func NewPickerModel(
	ctx context.Context,
	src consult.Sources,
	selector catalog.Selector,
	opts consult.Options,
) *PickerModel {
	m := &PickerModel{
		picker:   consult.NewPicker(ctx, src, opts),
		selector: selector,
		logger:   opts.Logger.With().Str("component", "tui").Logger(),
		keys:     defaultPickerKeys(),
		help:     help.New(),
		input:    newSearchInput(),
		loading:  NewLoadingState("Loading..."),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.list = listview.NewVirtualListModel(nil, m.listHeight(), m.width, m.renderRow)
	m.syncRows()
	return m
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = "/ "
	ti.CharLimit = searchInputCharLimit
	ti.Focus()
	return ti
}

// Init starts the first load of the initial category and the spinner.
func (m *PickerModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loading.Init(), m.picker.EnsureLoaded())
}

// Update implements tea.Model.
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state != ViewStatePicking {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.SetSize(m.listHeight(), m.width)
		return m, m.checkSentinel()

	case loader.PageLoadedMsg:
		m.picker.HandlePageLoaded(msg)
		m.syncRows()
		return m, m.checkSentinel()

	case search.DebouncedMsg:
		cmd := m.picker.HandleDebounced(msg)
		m.syncRows()
		return m, cmd

	case spinner.TickMsg:
		return m, m.loading.Update(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = ViewStateCancelled
		m.picker.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextCategory):
		return m, m.switchCategory(m.picker.Active().Next())

	case key.Matches(msg, m.keys.PrevCategory):
		return m, m.switchCategory(m.picker.Active().Prev())

	case key.Matches(msg, m.keys.Select):
		return m, m.selectCurrent()

	case key.Matches(msg, m.keys.Interact):
		m.allowInteract = !m.allowInteract
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.list.SetSelected(m.list.Selected() - 1)
	case key.Matches(msg, m.keys.Down):
		m.list.SetSelected(m.list.Selected() + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.list.SetSelected(m.list.Selected() - m.list.Height())
	case key.Matches(msg, m.keys.PageDown):
		m.list.SetSelected(m.list.Selected() + m.list.Height())
	case key.Matches(msg, m.keys.Home):
		m.list.SetSelected(0)
	case key.Matches(msg, m.keys.End):
		m.list.SetSelected(m.list.ItemCount() - 1)

	default:
		return m.handleTyping(msg)
	}
	return m, m.checkSentinel()
}

// handleTyping feeds the search input and reports a changed value to the
// picker, which filters agents at once and debounces remote searches.
func (m *PickerModel) handleTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.input.Value()
	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, inputCmd
	}

	searchCmd := m.picker.HandleSearchChange(m.input.Value())
	m.list.SetSelected(0)
	m.syncRows()
	return m, tea.Batch(inputCmd, searchCmd)
}

func (m *PickerModel) switchCategory(c catalog.Category) tea.Cmd {
	m.input.SetValue("")
	cmd := m.picker.HandleCategoryChange(c)
	m.list.SetSelected(0)
	m.syncRows()
	return cmd
}

// selectCurrent routes the row under the cursor to the selector and ends
// the session.
func (m *PickerModel) selectCurrent() tea.Cmd {
	r := m.list.GetSelectedItem()
	if r == nil {
		return nil
	}
	c := m.picker.Active()
	handled := m.selector.Select(c, r.item, m.allowInteract)
	m.logger.Debug().
		Str("category", c.String()).
		Bool("manual", r.manual).
		Bool("handled", handled).
		Msg("picker closed with selection")
	m.selection = &Selection{
		Category:                    c,
		Item:                        r.item,
		Manual:                      r.manual,
		AllowParticipantsToInteract: m.allowInteract,
		Handled:                     handled,
	}
	m.state = ViewStateSelected
	m.picker.Close()
	return tea.Quit
}

// syncRows rebuilds the list rows from the picker state: the manual-entry
// action first, when offered, then the loaded items.
func (m *PickerModel) syncRows() {
	items := m.picker.Items()
	rows := make([]row, 0, len(items)+1)
	if action := m.picker.ManualAction(); action.Visible {
		item := catalog.ListItem{Key: "manual", ID: action.ID, Name: action.Name}
		if m.picker.Active() == catalog.CategoryDialNumber {
			item.Number = action.ID
		}
		rows = append(rows, row{item: item, manual: true, title: action.Title})
	}
	for _, it := range items {
		rows = append(rows, row{item: it})
	}
	m.list.SetItems(rows)
}

// checkSentinel re-evaluates the list-end sentinel after any change to the
// viewport or the active category's pagination state.
func (m *PickerModel) checkSentinel() tea.Cmd {
	return m.picker.HandleSentinel(m.list.SentinelVisible())
}

func (m *PickerModel) listHeight() int {
	return max(m.height-chromeRows, 1)
}

// State returns the view lifecycle state.
func (m *PickerModel) State() ViewState {
	return m.state
}

// Selection returns the chosen target, or nil when nothing was selected.
func (m *PickerModel) Selection() *Selection {
	return m.selection
}

// Picker exposes the underlying session.
func (m *PickerModel) Picker() *consult.Picker {
	return m.picker
}
