package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/rshade/agentdesk/internal/catalog"
)

// Key returns the cache key for one page request against the source
// identified by namespace. Search is trimmed and lower-cased the same way
// the directory matches it, so "Sales" and " sales" share an entry.
func Key(namespace string, category catalog.Category, params catalog.FetchParams) string {
	search := strings.ToLower(strings.TrimSpace(params.Search))

	h := sha256.New()
	for _, part := range []string{
		namespace,
		category.String(),
		strconv.Itoa(params.Page),
		strconv.Itoa(params.PageSize),
		search,
	} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
