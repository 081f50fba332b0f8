package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ariestwn/quickcal/internal/event"
	"github.com/ariestwn/quickcal/internal/eventparse"
	"github.com/ariestwn/quickcal/internal/ics"
	applog "github.com/ariestwn/quickcal/internal/log"
	"github.com/ariestwn/quickcal/internal/profile"
	"github.com/ariestwn/quickcal/internal/stringutil"
)

var addCmd = LeafCommand{
	Use:   "add <description>...",
	Short: "Parse an event description and save it as an .ics file",
	Args:  cobra.MinimumNArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip the confirmation prompt"},
		{Name: "stdout", Usage: "print the iCalendar data instead of writing a file"},
	},
	StrFlags: []StringFlag{
		{Name: "output", Usage: "directory to write the .ics file into (overrides the profile)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		confirm := NewConfirmFunc()
		if yes, _ := cmd.Flags().GetBool("yes"); yes {
			confirm = AlwaysYes()
		}

		return runAdd(cmd, homeDir, strings.Join(args, " "), time.Now(), confirm)
	},
}.Build()

func runAdd(cmd *cobra.Command, homeDir, text string, now time.Time, confirm ConfirmFunc) error {
	cfg, err := profile.Load(profile.Path(homeDir))
	if err != nil {
		return err
	}

	ev, err := eventparse.Parse(text, now, now.Location(), cfg.DefaultCalendar)
	if err != nil {
		return renderParseError(cmd, err)
	}

	// Profile-level default alerts; the parser itself never injects any.
	if len(ev.Alerts) == 0 {
		for _, mins := range cfg.DefaultAlerts {
			ev.Alerts = append(ev.Alerts, time.Duration(mins)*time.Minute)
		}
	}

	printEvent(cmd, ev, now)

	ok, err := confirm("Create this event?")
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Silent("Cancelled."))
		return nil
	}

	data, err := ics.Write(ev, now)
	if err != nil {
		return err
	}

	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	dir, _ := cmd.Flags().GetString("output")
	if dir == "" {
		dir = cfg.OutputDir
	}
	path := filepath.Join(dir, stringutil.EventFilename(ev.Title))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	applog.Debug("event written", "path", path, "calendar", ev.Calendar)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", Primary(path))
	return nil
}

// printEvent renders the parsed event the way the confirmation prompt shows
// it: title first, then one line per populated field.
func printEvent(cmd *cobra.Command, ev event.Event, now time.Time) {
	out := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(out, "%s\n", Primary(ev.Title))
	_, _ = fmt.Fprintf(out, "  %s  %s - %s\n",
		Info(ev.Calendar),
		event.FormatStart(ev, now),
		ev.End.Format("3:04 PM"))

	if ev.TimeInferred {
		_, _ = fmt.Fprintf(out, "  %s\n", Warning(fmt.Sprintf("assumed %s (no am/pm given)", ev.Start.Format("3:04 PM"))))
	}
	if ev.Location != "" {
		_, _ = fmt.Fprintf(out, "  at %s\n", ev.Location)
	}
	if rec := event.FormatRecurrence(ev); rec != "" {
		_, _ = fmt.Fprintf(out, "  repeats %s\n", rec)
	}
	if len(ev.Alerts) > 0 {
		_, _ = fmt.Fprintf(out, "  alerts %s before\n", event.FormatAlerts(ev.Alerts))
	}
	if ev.URL != "" {
		_, _ = fmt.Fprintf(out, "  url %s\n", ev.URL)
	}
	if ev.Notes != "" {
		_, _ = fmt.Fprintf(out, "  notes %s\n", ev.Notes)
	}
}

// renderParseError prints the one-line user message for typed parse errors
// and passes everything else through untouched.
func renderParseError(cmd *cobra.Command, err error) error {
	var pe *eventparse.Error
	if errors.As(err, &pe) {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", Error(pe.Message()))
	}
	return err
}
