package catalog

// SelectFunc is invoked when the agent picks a target.
type SelectFunc func(id, name string, allowParticipantsToInteract bool)

// Selector routes a picked target to the host's category callback.
// Any callback may be nil; selecting in that category is then a logged no-op.
type Selector struct {
	OnAgent      SelectFunc
	OnQueue      SelectFunc
	OnDialNumber SelectFunc
	OnEntryPoint SelectFunc
}

func (s Selector) callback(c Category) SelectFunc {
	switch c {
	case CategoryAgents:
		return s.OnAgent
	case CategoryQueues:
		return s.OnQueue
	case CategoryDialNumber:
		return s.OnDialNumber
	case CategoryEntryPoint:
		return s.OnEntryPoint
	}
	return nil
}

// Select logs the selection and invokes the category callback if present.
// It reports whether a callback ran. Dial numbers are passed by number.
func (s Selector) Select(c Category, item ListItem, allowParticipantsToInteract bool) bool {
	return guard("Select", false, func() bool {
		id := item.ID
		if c == CategoryDialNumber && item.Number != "" {
			id = item.Number
		}

		cb := s.callback(c)
		l := helperLogger()
		l.Info().
			Str("category", c.String()).
			Str("target_id", id).
			Str("target_name", item.Name).
			Bool("allow_participants_to_interact", allowParticipantsToInteract).
			Bool("handled", cb != nil).
			Msg("consult/transfer target selected")

		if cb == nil {
			return false
		}
		cb(id, item.Name, allowParticipantsToInteract)
		return true
	})
}
