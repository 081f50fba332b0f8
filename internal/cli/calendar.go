package cli

import "github.com/spf13/cobra"

var calendarCmd = GroupCommand{
	Use:   "calendar",
	Short: "Manage the calendars events are filed under",
	Subcommands: []*cobra.Command{
		calendarGetCmd,
		calendarSetCmd,
		calendarListCmd,
	},
}.Build()
