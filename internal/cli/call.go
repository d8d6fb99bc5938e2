package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/agentdesk/internal/callcontrol"
	"github.com/rshade/agentdesk/internal/config"
	"github.com/rshade/agentdesk/internal/logging"
)

func newCallButtonsCmd() *cobra.Command {
	var (
		state   callcontrol.TaskState
		media   string
		all     bool
		press   string
		elapsed time.Duration
	)

	cmd := &cobra.Command{
		Use:   "buttons",
		Short: "Show the call-control buttons for a task state",
		Example: `  agentdesk call buttons --connected
  agentdesk call buttons --connected --held --consult-in-progress
  agentdesk call buttons --media chat --connected --all
  agentdesk call buttons --connected --elapsed 95s --press hold`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state.Media = callcontrol.MediaType(media)
			buttons := callcontrol.Buttons(state, logging.FromContext(cmd.Context()))
			if !all {
				buttons = callcontrol.VisibleButtons(buttons)
			}
			if elapsed > 0 {
				cmd.Printf("Call time: %s\n", callcontrol.FormatElapsed(elapsed))
			}
			if press != "" {
				return pressButton(cmd, callcontrol.ButtonID(press), state)
			}
			if len(buttons) == 0 {
				cmd.Println("No call-control buttons.")
				return nil
			}

			const tabPadding = 2
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
			fmt.Fprintln(w, "Button\tLabel\tState")
			fmt.Fprintln(w, "------\t-----\t-----")
			for _, b := range buttons {
				fmt.Fprintf(w, "%s\t%s\t%s\n", b.ID, b.Label, buttonState(b))
			}
			return w.Flush()
		},
	}

	f := cmd.Flags()
	f.StringVar(&media, "media", string(callcontrol.MediaTelephony), "task media (telephony, chat, email, social)")
	f.BoolVar(&state.Connected, "connected", false, "the task is connected")
	f.BoolVar(&state.Held, "held", false, "the call is on hold")
	f.BoolVar(&state.Muted, "muted", false, "the agent is muted")
	f.BoolVar(&state.Recording, "recording", false, "the call is being recorded")
	f.BoolVar(&state.RecordingPaused, "recording-paused", false, "recording is paused")
	f.BoolVar(&state.ConsultInProgress, "consult-in-progress", false, "a consult has been started")
	f.BoolVar(&state.ConsultConnected, "consult-connected", false, "the consulted party answered")
	f.IntVar(&state.Participants, "participants", 2, "number of participants on the call")
	f.BoolVar(&state.WrapUpRequired, "wrapup-required", false, "the task is waiting for a wrap-up reason")
	f.BoolVar(&state.EndCallEnabled, "end-call-enabled", true, "the agent may end the call")
	f.BoolVar(&all, "all", false, "include hidden buttons")
	f.StringVar(&press, "press", "", "press a button (mute, hold, consult, transfer, conference, record, end, wrapup)")
	f.DurationVar(&elapsed, "elapsed", 0, "time since the call connected")
	return cmd
}

// ErrButtonUnavailable is returned when --press names a hidden or disabled button.
var ErrButtonUnavailable = errors.New("button is not available in this state")

// pressButton runs the action behind id. Actions only report what the task
// SDK would be asked to do.
func pressButton(cmd *cobra.Command, id callcontrol.ButtonID, state callcontrol.TaskState) error {
	log := logging.FromContext(cmd.Context())
	var button *callcontrol.Button
	for _, b := range callcontrol.Buttons(state, log) {
		if b.ID == id {
			button = &b
			break
		}
	}
	if button == nil || !button.Visible || button.Disabled {
		return fmt.Errorf("%w: %q", ErrButtonUnavailable, id)
	}

	request := func(what string) callcontrol.ActionFunc {
		return func() error {
			cmd.Printf("Requested: %s\n", what)
			return nil
		}
	}
	actions := callcontrol.Actions{
		Mute:       request("mute"),
		Unmute:     request("unmute"),
		Hold:       request("hold"),
		Resume:     request("resume"),
		Consult:    request("consult"),
		Transfer:   request("transfer"),
		Conference: request("conference"),
		Record:     request(strings.ToLower(button.Label)),
		End:        request("end"),
		WrapUp:     request("wrap up"),
		Logger:     log,
	}
	actions.Invoke(id, state)
	return nil
}

func buttonState(b callcontrol.Button) string {
	switch {
	case !b.Visible:
		return "hidden"
	case b.Disabled:
		return "disabled"
	case b.Active:
		return "active"
	default:
		return "enabled"
	}
}

func newCallWrapUpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wrapup [reason-id]",
		Short: "List wrap-up reasons or check one",
		Long: `Without an argument, list the directory's wrap-up reasons. With a reason
id, check that it exists; an empty id falls back to the default reason.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := openDirectory(config.GetGlobalConfig())
			if err != nil {
				return err
			}

			if len(args) == 0 {
				if len(dir.WrapUpReasons) == 0 {
					cmd.Println("No wrap-up reasons configured.")
					return nil
				}
				const tabPadding = 2
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
				fmt.Fprintln(w, "ID\tName\tDefault")
				fmt.Fprintln(w, "--\t----\t-------")
				for _, r := range dir.WrapUpReasons {
					def := ""
					if r.IsDefault {
						def = "yes"
					}
					fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Name, def)
				}
				return w.Flush()
			}

			id := args[0]
			if id == "" {
				if def, ok := callcontrol.DefaultWrapUpReason(dir.WrapUpReasons); ok {
					id = def.ID
				}
			}
			reason, err := callcontrol.ValidateWrapUp(id, dir.WrapUpReasons)
			if err != nil {
				return err
			}
			cmd.Printf("OK %s (%s)\n", reason.ID, reason.Name)
			return nil
		},
	}
	return cmd
}
