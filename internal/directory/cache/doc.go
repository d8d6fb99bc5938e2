// Package cache keeps fetched directory pages on disk with a TTL.
//
// Each page is stored as one JSON file named after the SHA256 of the
// request (category, page, page size, search), so a repeated picker
// request is served without calling the directory again. Cached wraps a
// catalog.FetchFunc with this lookup. Cache failures never fail a fetch;
// they are logged and the underlying source is called instead.
//
// Configuration comes from the agentdesk config file and may be
// overridden with AGENTDESK_CACHE_ENABLED, AGENTDESK_CACHE_DIR,
// AGENTDESK_CACHE_TTL_SECONDS and AGENTDESK_CACHE_MAX_SIZE_MB.
package cache
