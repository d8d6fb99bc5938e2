package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/agentdesk/internal/callcontrol"
	"github.com/rshade/agentdesk/internal/catalog"
	"github.com/rshade/agentdesk/internal/config"
)

// Outdial validation errors.
var (
	ErrInvalidDialNumber = errors.New("invalid dial number")
	ErrUnknownANI        = errors.New("caller id is not an available outdial ANI")
)

func newDialValidateCmd() *cobra.Command {
	var ani string

	cmd := &cobra.Command{
		Use:   "validate <number>",
		Short: "Check a number against the outdial format",
		Long: fmt.Sprintf(`Check that a number can be dialed.

Characters that are not keypad keys are dropped before checking. The
accepted format is %s.
With --ani, the caller id must be one of the directory's outdial ANIs.`, catalog.DialNumberPattern),
		Example: `  agentdesk dial validate +14155550100
  agentdesk dial validate "(415) 555-0100" --ani +18005550199`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var keypad callcontrol.Keypad
			keypad.SetNumber(args[0])
			if !keypad.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidDialNumber, keypad.Number())
			}

			if ani != "" {
				dir, err := openDirectory(config.GetGlobalConfig())
				if err != nil {
					return err
				}
				if !keypad.SelectANI(ani, dir.ANIs) {
					return fmt.Errorf("%w: %q", ErrUnknownANI, ani)
				}
			}

			cmd.Printf("OK %s", keypad.Number())
			if keypad.ANI() != "" {
				cmd.Printf(" (caller id %s)", keypad.ANI())
			}
			cmd.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&ani, "ani", "", "outbound caller id to present")
	return cmd
}
