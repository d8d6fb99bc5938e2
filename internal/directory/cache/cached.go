package cache

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"

	"github.com/rshade/agentdesk/internal/catalog"
	"github.com/rshade/agentdesk/internal/logging"
)

// Cached wraps fetch so pages are served from store when present.
// namespace identifies the data behind fetch; entries written under one
// namespace are never served for another.
// Successful responses are written back; fetch errors are returned as-is
// and never cached. A nil or disabled store returns fetch unchanged.
func Cached[T any](
	fetch catalog.FetchFunc[T],
	store *Store,
	namespace string,
	category catalog.Category,
	logger zerolog.Logger,
) catalog.FetchFunc[T] {
	if fetch == nil || !store.Enabled() {
		return fetch
	}
	log := logging.ComponentLogger(logger, "cache").With().Str("category", category.String()).Logger()

	return func(ctx context.Context, params catalog.FetchParams) (catalog.PaginatedResponse[T], error) {
		key := Key(namespace, category, params)

		if entry, err := store.Get(key); err == nil {
			var resp catalog.PaginatedResponse[T]
			if jsonErr := json.Unmarshal(entry.Data, &resp); jsonErr == nil {
				log.Debug().Int("page", params.Page).Str("search", params.Search).
					Dur("age", entry.Age()).Msg("cache hit")
				return resp, nil
			}
			log.Warn().Str("key", key).Msg("discarding unreadable cache entry")
			_ = store.Delete(key)
		} else if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrExpired) {
			log.Warn().Err(err).Msg("cache read failed")
		}

		resp, err := fetch(ctx, params)
		if err != nil {
			return resp, err
		}

		data, err := json.Marshal(resp)
		if err != nil {
			log.Warn().Err(err).Msg("cache encode failed")
			return resp, nil
		}
		if err = store.Set(key, category.String(), data); err != nil {
			log.Warn().Err(err).Msg("cache write failed")
		}
		return resp, nil
	}
}
