package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariestwn/quickcal/internal/profile"
)

var calendarListCmd = LeafCommand{
	Use:   "list",
	Short: "List the known calendars",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runCalendarList(cmd, homeDir)
	},
}.Build()

func runCalendarList(cmd *cobra.Command, homeDir string) error {
	cfg, err := profile.Load(profile.Path(homeDir))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	names := cfg.Calendars
	if len(names) == 0 {
		names = []string{cfg.DefaultCalendar}
	}
	for _, name := range names {
		if name == cfg.DefaultCalendar {
			_, _ = fmt.Fprintf(out, "* %s\n", Primary(name))
			continue
		}
		_, _ = fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}
