package consult

// ScrollTrigger decides when the list-end sentinel should request the next
// page. It is level-triggered: it is re-evaluated after every state change,
// so a sentinel that stays visible after a short page keeps pulling pages
// until the category is exhausted.
type ScrollTrigger struct {
	// fired counts next-page requests since the list was last replaced.
	fired int
}

// Check reports whether a next-page request should be issued for the
// observed sentinel visibility.
func (t *ScrollTrigger) Check(visible, hasMore, loading bool) bool {
	if !visible || !hasMore || loading {
		return false
	}
	t.fired++
	return true
}

// Reset starts a new count, as when the list is replaced.
func (t *ScrollTrigger) Reset() {
	t.fired = 0
}
