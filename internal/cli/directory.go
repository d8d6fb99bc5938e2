package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rshade/agentdesk/internal/catalog"
	"github.com/rshade/agentdesk/internal/cli/pagination"
	"github.com/rshade/agentdesk/internal/config"
	"github.com/rshade/agentdesk/internal/consult"
	"github.com/rshade/agentdesk/internal/directory"
	"github.com/rshade/agentdesk/internal/loader"
	"github.com/rshade/agentdesk/internal/logging"
)

// Output formats accepted by directory list.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// warmConcurrency bounds the parallel fetches of directory warm.
const warmConcurrency = 3

// ErrUnknownOutput is returned for an unsupported --output value.
var ErrUnknownOutput = errors.New("unknown output format")

// listResult is the machine-readable form of directory list.
type listResult struct {
	Category string             `json:"category" yaml:"category"`
	Items    []catalog.ListItem `json:"items"    yaml:"items"`
	Meta     pagination.Meta    `json:"meta"     yaml:"meta"`
}

func newDirectoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "directory",
		Short: "Inspect the consult/transfer directory",
	}
	cmd.AddCommand(newDirectoryListCmd(), newDirectoryWarmCmd(), newDirectoryPruneCmd())
	return cmd
}

func newDirectoryListCmd() *cobra.Command {
	params := pagination.NewParams()
	var (
		category string
		output   string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of a category",
		Example: `  agentdesk directory list --category queues
  agentdesk directory list --category dial-number --search smith --sort name:desc
  agentdesk directory list --category entry-point --page 2 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDirectoryList(cmd, category, *params, output, noCache)
		},
	}

	cmd.Flags().StringVar(&category, "category", "agents", "category to list (agents, queues, dial-number, entry-point)")
	cmd.Flags().IntVar(&params.Page, "page", pagination.DefaultPage, "page number (1-based)")
	cmd.Flags().IntVar(&params.PageSize, "page-size", pagination.DefaultPageSize, "items per page")
	cmd.Flags().StringVar(&params.Search, "search", "", "case-insensitive search text")
	cmd.Flags().StringVar(&params.Sort, "sort", "", "sort the page by name, id or number (e.g. name:desc)")
	cmd.Flags().StringVar(&output, "output", outputTable, "output format (table, json, yaml)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the page cache")
	return cmd
}

func runDirectoryList(cmd *cobra.Command, categoryName string, params pagination.Params, output string, noCache bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := params.Validate(); err != nil {
		return err
	}
	if output != outputTable && output != outputJSON && output != outputYAML {
		return fmt.Errorf("%w: %q (valid: table, json, yaml)", ErrUnknownOutput, output)
	}
	category, err := catalog.ParseCategory(categoryName)
	if err != nil {
		return err
	}

	cfg := config.GetGlobalConfig()
	dir, err := openDirectory(cfg)
	if err != nil {
		return err
	}
	store, err := openCache(cfg, noCache)
	if err != nil {
		return err
	}
	src := buildSources(dir, store, logging.FromContext(ctx))

	resp, err := fetchItems(ctx, src, category, params.FetchParams())
	if err != nil {
		return fmt.Errorf("listing %s: %w", category, err)
	}
	items, err := pagination.NewItemSorter().Apply(resp.Data, params.Sort)
	if err != nil {
		return err
	}

	result := listResult{
		Category: category.String(),
		Items:    items,
		Meta:     pagination.NewMeta(params, resp.Meta, len(items)),
	}
	return renderList(cmd.OutOrStdout(), output, category, params.Search, result)
}

// fetchItems fetches one page of category as list items. Agents are filtered
// locally and paginated in memory.
func fetchItems(
	ctx context.Context,
	src consult.Sources,
	category catalog.Category,
	params catalog.FetchParams,
) (catalog.PaginatedResponse[catalog.ListItem], error) {
	switch category {
	case catalog.CategoryAgents:
		agents := catalog.AgentItems(catalog.FilterAgents(src.Agents, params.Search))
		params.Search = ""
		return directory.Paginate(agents, params, func(catalog.ListItem) []string { return nil })
	case catalog.CategoryQueues:
		return fetchPage(ctx, src.Queues, params, catalog.QueueTransform)
	case catalog.CategoryDialNumber:
		return fetchPage(ctx, src.DialNumbers, params, catalog.AddressBookTransform)
	case catalog.CategoryEntryPoint:
		return fetchPage(ctx, src.EntryPoints, params, catalog.EntryPointTransform)
	}
	return catalog.PaginatedResponse[catalog.ListItem]{}, catalog.ErrUnknownCategory
}

func fetchPage[T any](
	ctx context.Context,
	fetch catalog.FetchFunc[T],
	params catalog.FetchParams,
	transform loader.Transform[T, catalog.ListItem],
) (catalog.PaginatedResponse[catalog.ListItem], error) {
	if fetch == nil {
		return catalog.PaginatedResponse[catalog.ListItem]{Data: []catalog.ListItem{}}, nil
	}
	resp, err := fetch(ctx, params)
	if err != nil {
		return catalog.PaginatedResponse[catalog.ListItem]{}, err
	}
	items := make([]catalog.ListItem, 0, len(resp.Data))
	for i, entry := range resp.Data {
		items = append(items, transform(entry, params.Page, i))
	}
	return catalog.PaginatedResponse[catalog.ListItem]{Data: items, Meta: resp.Meta}, nil
}

func renderList(w io.Writer, output string, category catalog.Category, search string, result listResult) error {
	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(result)
	}

	if len(result.Items) == 0 {
		fmt.Fprintln(w, catalog.EmptyStateMessage(category, strings.TrimSpace(search) == ""))
		return nil
	}

	const tabPadding = 2
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "Name\tID\tNumber")
	fmt.Fprintln(tw, "----\t--\t------")
	for _, it := range result.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", it.Name, it.ID, it.Number)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	m := result.Meta
	fmt.Fprintf(w, "\nPage %d of %d (%d items)", m.CurrentPage, max(m.TotalPages, 1), m.Count)
	if m.HasNext {
		fmt.Fprintf(w, ", next: --page %d", m.CurrentPage+1)
	}
	fmt.Fprintln(w)
	return nil
}

func newDirectoryWarmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "warm",
		Short: "Prefetch the first page of every fetched category into the cache",
		Args:  cobra.NoArgs,
		RunE:  runDirectoryWarm,
	}
}

func runDirectoryWarm(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.GetGlobalConfig()
	dir, err := openDirectory(cfg)
	if err != nil {
		return err
	}
	store, err := openCache(cfg, false)
	if err != nil {
		return err
	}
	if !store.Enabled() {
		cmd.Println("Cache is disabled; nothing to warm.")
		return nil
	}
	src := buildSources(dir, store, logging.FromContext(ctx))

	params := catalog.FetchParams{Page: 0, PageSize: cfg.Picker.PageSize}
	if params.PageSize <= 0 {
		params.PageSize = loader.DefaultPageSize
	}

	var mu sync.Mutex
	counts := make(map[catalog.Category]int, len(catalog.FetchedCategories))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(warmConcurrency)
	for _, c := range catalog.FetchedCategories {
		g.Go(func() error {
			resp, fetchErr := fetchItems(gCtx, src, c, params)
			if fetchErr != nil {
				return fmt.Errorf("warming %s: %w", c, fetchErr)
			}
			mu.Lock()
			counts[c] = len(resp.Data)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, c := range catalog.FetchedCategories {
		cmd.Printf("%-12s %d items cached\n", c.String()+":", counts[c])
	}
	return nil
}

func newDirectoryPruneCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove expired pages from the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openCache(config.GetGlobalConfig(), false)
			if err != nil {
				return err
			}
			if !store.Enabled() {
				cmd.Println("Cache is disabled; nothing to prune.")
				return nil
			}
			if all {
				if clearErr := store.Clear(); clearErr != nil {
					return fmt.Errorf("clearing cache: %w", clearErr)
				}
				cmd.Printf("Cleared cache at %s\n", store.Dir())
				return nil
			}
			removed, err := store.CleanupExpired()
			if err != nil {
				return fmt.Errorf("pruning cache: %w", err)
			}
			remaining, _ := store.Count()
			cmd.Printf("Removed %d expired entries, %d remaining\n", removed, remaining)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "remove every cached page, not only expired ones")
	return cmd
}
