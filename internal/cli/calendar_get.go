package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariestwn/quickcal/internal/profile"
)

var calendarGetCmd = LeafCommand{
	Use:   "get",
	Short: "Show the default calendar",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runCalendarGet(cmd, homeDir)
	},
}.Build()

func runCalendarGet(cmd *cobra.Command, homeDir string) error {
	cfg, err := profile.Load(profile.Path(homeDir))
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Primary(cfg.DefaultCalendar))
	return nil
}
