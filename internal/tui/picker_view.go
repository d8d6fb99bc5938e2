package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/agentdesk/internal/catalog"
)

// View implements tea.Model.
func (m *PickerModel) View() string {
	if m.state != ViewStatePicking {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Consult / Transfer"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return BoxStyle.Width(max(m.width-2, 20)).Render(b.String())
}

func (m *PickerModel) renderTabs() string {
	tabs := make([]string, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		if c == m.picker.Active() {
			tabs = append(tabs, ActiveTabStyle.Render(c.String()))
			continue
		}
		tabs = append(tabs, TabStyle.Render(c.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *PickerModel) renderBody() string {
	if m.list.ItemCount() > 0 {
		return m.list.View()
	}
	if m.picker.Loading() {
		return m.loading.View()
	}
	isEmpty := strings.TrimSpace(m.picker.Search()) == ""
	return SubtleStyle.Render(catalog.EmptyStateMessage(m.picker.Active(), isEmpty))
}

func (m *PickerModel) renderStatus() string {
	var parts []string
	st := m.picker.State(m.picker.Active())
	switch {
	case st.Loading && m.list.ItemCount() > 0:
		parts = append(parts, m.loading.View())
	case st.HasMore:
		parts = append(parts, SubtleStyle.Render("scroll for more"))
	}
	if m.allowInteract {
		parts = append(parts, WarningStyle.Render("participants may interact"))
	}
	return strings.Join(parts, "  ")
}

func (m *PickerModel) renderRow(r row, selected bool) string {
	var line string
	switch {
	case r.manual:
		line = ManualStyle.Render("↳ Use \"" + r.title + "\"")
	case r.item.Number != "" && r.item.Number != r.item.Name:
		line = r.item.Name + "  " + SubtleStyle.Render(r.item.Number)
	default:
		line = r.item.Name
	}
	if selected {
		return SelectedStyle.Render("> " + line)
	}
	return "  " + line
}
