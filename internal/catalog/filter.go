package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Empty-state messages shown when a category has nothing to list.
const (
	EmptyAgentsMessage      = "No agents are available for consult or transfer."
	EmptyQueuesMessage      = "No queues are available for consult or transfer."
	EmptyDialNumbersMessage = "No dial numbers are available. Type a number to dial it."
	EmptyEntryPointsMessage = "No entry points are available for consult or transfer."
	EmptyGenericMessage     = "No agents, queues, dial numbers or entry points match your search."
)

// IsAgentAvailable reports whether the agent has a usable id and name.
func IsAgentAvailable(a Agent) bool {
	return strings.TrimSpace(a.ID) != "" && strings.TrimSpace(a.Name) != ""
}

// FilterAgents returns the agents whose name, dial number or id contain
// search, ignoring case. An empty search returns agents unchanged.
func FilterAgents(agents []Agent, search string) []Agent {
	return guard("FilterAgents", []Agent{}, func() []Agent {
		query := strings.TrimSpace(search)
		if query == "" {
			return agents
		}

		fold := cases.Fold()
		query = fold.String(query)

		filtered := make([]Agent, 0, len(agents))
		for _, a := range agents {
			if strings.Contains(fold.String(a.Name), query) ||
				(a.DialNumber != "" && strings.Contains(fold.String(a.DialNumber), query)) ||
				strings.Contains(fold.String(a.ID), query) {
				filtered = append(filtered, a)
			}
		}
		return filtered
	})
}

// EmptyStateMessage returns the message for an empty list. When isEmpty is
// false the list is empty because of a search, so the generic message is used.
func EmptyStateMessage(c Category, isEmpty bool) string {
	if !isEmpty {
		return EmptyGenericMessage
	}
	switch c {
	case CategoryAgents:
		return EmptyAgentsMessage
	case CategoryQueues:
		return EmptyQueuesMessage
	case CategoryDialNumber:
		return EmptyDialNumbersMessage
	case CategoryEntryPoint:
		return EmptyEntryPointsMessage
	default:
		return EmptyGenericMessage
	}
}
