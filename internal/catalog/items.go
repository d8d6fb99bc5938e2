package catalog

import (
	"strconv"
	"strings"
)

// ListItem is the display form of any picker target.
// Key is unique within one category's loaded list.
type ListItem struct {
	Key    string `json:"key"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number,omitempty"`
}

// itemKey prefers the record id and falls back to the page position.
func itemKey(id string, page, index int) string {
	if strings.TrimSpace(id) != "" {
		return id
	}
	return strconv.Itoa(page) + "-" + strconv.Itoa(index)
}

// AgentItem builds the list item for an agent.
func AgentItem(a Agent) ListItem {
	return ListItem{Key: a.ID, ID: a.ID, Name: a.Name, Number: a.DialNumber}
}

// AgentItems builds list items for agents, skipping unavailable ones.
func AgentItems(agents []Agent) []ListItem {
	return guard("AgentItems", []ListItem{}, func() []ListItem {
		items := make([]ListItem, 0, len(agents))
		for _, a := range agents {
			if !IsAgentAvailable(a) {
				continue
			}
			items = append(items, AgentItem(a))
		}
		return items
	})
}

// QueueTransform is the loader transform for queues.
func QueueTransform(q Queue, page, index int) ListItem {
	return ListItem{Key: itemKey(q.ID, page, index), ID: q.ID, Name: q.Name}
}

// EntryPointTransform is the loader transform for entry points.
func EntryPointTransform(ep EntryPoint, page, index int) ListItem {
	return ListItem{Key: itemKey(ep.ID, page, index), ID: ep.ID, Name: ep.Name}
}

// AddressBookTransform is the loader transform for address book entries.
// Entries without a name display their number.
func AddressBookTransform(e AddressBookEntry, page, index int) ListItem {
	name := e.Name
	if strings.TrimSpace(name) == "" {
		name = e.Number
	}
	return ListItem{Key: itemKey(e.ID, page, index), ID: e.ID, Name: name, Number: e.Number}
}
