package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rshade/agentdesk/internal/catalog"
	"github.com/rshade/agentdesk/internal/config"
	"github.com/rshade/agentdesk/internal/consult"
	"github.com/rshade/agentdesk/internal/directory"
	"github.com/rshade/agentdesk/internal/directory/cache"
)

// directoryFileName is the directory file looked up in a project directory.
const directoryFileName = "directory.yaml"

// directoryPath returns the directory file for cfg. A directory.yaml in the
// resolved project directory wins over the configured file.
func directoryPath(cfg *config.Config) string {
	if projectDir := config.GetResolvedProjectDir(); projectDir != "" {
		candidate := filepath.Join(projectDir, directoryFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return cfg.Directory.File
}

// openDirectory loads the directory file named by cfg.
func openDirectory(cfg *config.Config) (*directory.Directory, error) {
	path := directoryPath(cfg)
	if path == "" {
		return nil, fmt.Errorf("no directory file configured (set directory.file or %s)", config.EnvDirectory)
	}
	dir, err := directory.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", path).
		Int("agents", len(dir.Agents)).
		Int("queues", len(dir.Queues)).
		Int("entry_points", len(dir.EntryPoints)).
		Int("address_book", len(dir.AddressBook)).
		Msg("directory loaded")
	return dir.WithLatency(cfg.Directory.Latency()), nil
}

// openCache opens the page cache described by cfg. noCache or a disabled
// config yields a disabled store. A cache under the project directory gets
// a .gitignore so cached pages stay out of version control.
func openCache(cfg *config.Config, noCache bool) (*cache.Store, error) {
	settings := cache.Settings{
		Enabled:   cfg.Cache.Enabled,
		Dir:       cfg.Cache.Dir,
		TTL:       cfg.Cache.TTL(),
		MaxSizeMB: cfg.Cache.MaxSizeMB,
	}.ApplyEnv()
	if noCache {
		settings.Enabled = false
	}

	store, err := cache.NewStore(settings)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	projectDir := config.GetResolvedProjectDir()
	if store.Enabled() && projectDir != "" && isWithin(projectDir, settings.Dir) {
		if created, gitErr := config.EnsureGitignore(projectDir); gitErr != nil {
			logger.Warn().Err(gitErr).Str("dir", projectDir).Msg("could not write .gitignore")
		} else if created {
			logger.Debug().Str("dir", projectDir).Msg("wrote .gitignore")
		}
	}
	return store, nil
}

// isWithin reports whether path is inside dir.
func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// buildSources wires the directory's fetch functions through the cache.
func buildSources(dir *directory.Directory, store *cache.Store, log zerolog.Logger) consult.Sources {
	ns := dir.Digest()
	return consult.Sources{
		Agents:      dir.Agents,
		Queues:      cache.Cached(dir.QueueSource(), store, ns, catalog.CategoryQueues, log),
		DialNumbers: cache.Cached(dir.AddressBookSource(), store, ns, catalog.CategoryDialNumber, log),
		EntryPoints: cache.Cached(dir.EntryPointSource(), store, ns, catalog.CategoryEntryPoint, log),
	}
}
