package consult

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/agentdesk/internal/catalog"
)

// Sources are the host-supplied data sources for one picker session.
// Any FetchFunc may be nil, which disables that category.
type Sources struct {
	Agents      []catalog.Agent
	Queues      catalog.FetchFunc[catalog.Queue]
	DialNumbers catalog.FetchFunc[catalog.AddressBookEntry]
	EntryPoints catalog.FetchFunc[catalog.EntryPoint]
}

// Options tune a picker session. Zero values select the defaults.
type Options struct {
	PageSize        int
	DebounceDelay   time.Duration
	Logger          zerolog.Logger
	InitialCategory catalog.Category
}
