package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/agentdesk/internal/catalog"
	"github.com/rshade/agentdesk/internal/config"
	"github.com/rshade/agentdesk/internal/consult"
	"github.com/rshade/agentdesk/internal/logging"
	"github.com/rshade/agentdesk/internal/tui"
)

// ErrNotTerminal is returned when the picker is started without a TTY.
var ErrNotTerminal = errors.New("the picker needs an interactive terminal; use 'agentdesk directory list' instead")

// target records the callback that handled a selection.
type target struct {
	category catalog.Category
	id       string
	name     string
	interact bool
}

func newPickerCmd() *cobra.Command {
	var (
		category string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "picker",
		Short: "Pick a consult or transfer target",
		Long: `Open the interactive consult/transfer picker.

Tab switches between Agents, Queues, Dial Number and Entry Point. Typing
filters the list; fetched categories search the directory after a short
pause. Enter selects, ctrl+t toggles whether participants may interact.`,
		Example: `  agentdesk picker
  agentdesk picker --category dial-number`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return ErrNotTerminal
			}
			return runPicker(cmd, category, noCache)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "initial category (agents, queues, dial-number, entry-point)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the page cache")
	return cmd
}

func runPicker(cmd *cobra.Command, categoryFlag string, noCache bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.GetGlobalConfig()

	initial := cfg.Picker.Category()
	if categoryFlag != "" {
		c, err := catalog.ParseCategory(categoryFlag)
		if err != nil {
			return err
		}
		initial = c
	}

	dir, err := openDirectory(cfg)
	if err != nil {
		return err
	}
	store, err := openCache(cfg, noCache)
	if err != nil {
		return err
	}

	log := logging.FromContext(ctx)
	var picked *target
	record := func(c catalog.Category) catalog.SelectFunc {
		return func(id, name string, interact bool) {
			picked = &target{category: c, id: id, name: name, interact: interact}
		}
	}
	selector := catalog.Selector{
		OnAgent:      record(catalog.CategoryAgents),
		OnQueue:      record(catalog.CategoryQueues),
		OnDialNumber: record(catalog.CategoryDialNumber),
		OnEntryPoint: record(catalog.CategoryEntryPoint),
	}

	model := tui.NewPickerModel(ctx, buildSources(dir, store, log), selector, consult.Options{
		PageSize:        cfg.Picker.PageSize,
		DebounceDelay:   cfg.Picker.DebounceDelay(),
		Logger:          log,
		InitialCategory: initial,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("running picker: %w", err)
	}

	pm, ok := finalModel.(*tui.PickerModel)
	if !ok {
		return fmt.Errorf("unexpected model type: %T, expected *tui.PickerModel", finalModel)
	}
	return printSelection(cmd.OutOrStdout(), pm.State(), picked)
}

// printSelection reports the outcome of a picker session.
func printSelection(w io.Writer, state tui.ViewState, picked *target) error {
	if state != tui.ViewStateSelected || picked == nil {
		_, err := fmt.Fprintln(w, "No target selected.")
		return err
	}
	if _, err := fmt.Fprintf(w, "%s: %s (%s)\n", picked.category, picked.name, picked.id); err != nil {
		return err
	}
	if picked.interact {
		_, err := fmt.Fprintln(w, "Participants may interact.")
		return err
	}
	return nil
}
