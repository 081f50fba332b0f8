package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariestwn/quickcal/internal/eventparse"
	applog "github.com/ariestwn/quickcal/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "quickcal",
	Short: "Create calendar events from one line of natural language",

	// Parse errors print their own one-line message; everything else is
	// printed by Execute.
	SilenceErrors: true,
	SilenceUsage:  true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			applog.SetLevel(applog.LevelDebug)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && eventparse.CodeOf(err) == "" {
		_, _ = fmt.Fprintln(os.Stderr, Error(err.Error()))
	}
	return err
}
