package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ariestwn/quickcal/internal/profile"
)

var calendarSetCmd = LeafCommand{
	Use:   "set <name>",
	Short: "Set the default calendar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runCalendarSet(cmd, homeDir, args[0])
	},
}.Build()

func runCalendarSet(cmd *cobra.Command, homeDir, name string) error {
	path := profile.Path(homeDir)
	cfg, err := profile.Load(path)
	if err != nil {
		return err
	}

	cfg.DefaultCalendar = name
	if !slices.Contains(cfg.Calendars, name) {
		cfg.Calendars = append(cfg.Calendars, name)
	}
	if err := profile.Save(path, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Default calendar set to %s\n", Primary(name))
	return nil
}
