package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ariestwn/quickcal/internal/eventparse"
	"github.com/ariestwn/quickcal/internal/profile"
)

var previewCmd = LeafCommand{
	Use:   "preview <description>...",
	Short: "Parse an event description and show the result without saving",
	Args:  cobra.MinimumNArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "json", Usage: "print the parsed event as JSON"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")
		return runPreview(cmd, homeDir, strings.Join(args, " "), time.Now(), asJSON)
	},
}.Build()

// previewJSON is the machine-readable shape of a parsed event.
type previewJSON struct {
	Title        string   `json:"title"`
	Calendar     string   `json:"calendar"`
	Start        string   `json:"start"`
	End          string   `json:"end"`
	Location     string   `json:"location,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	URL          string   `json:"url,omitempty"`
	AlertMinutes []int    `json:"alert_minutes,omitempty"`
	RRule        string   `json:"rrule,omitempty"`
	TimeInferred bool     `json:"time_inferred,omitempty"`
}

func runPreview(cmd *cobra.Command, homeDir, text string, now time.Time, asJSON bool) error {
	cfg, err := profile.Load(profile.Path(homeDir))
	if err != nil {
		return err
	}

	ev, err := eventparse.Parse(text, now, now.Location(), cfg.DefaultCalendar)
	if err != nil {
		return renderParseError(cmd, err)
	}

	if !asJSON {
		printEvent(cmd, ev, now)
		return nil
	}

	out := previewJSON{
		Title:        ev.Title,
		Calendar:     ev.Calendar,
		Start:        ev.Start.Format(time.RFC3339),
		End:          ev.End.Format(time.RFC3339),
		Location:     ev.Location,
		Notes:        ev.Notes,
		URL:          ev.URL,
		TimeInferred: ev.TimeInferred,
	}
	for _, a := range ev.Alerts {
		out.AlertMinutes = append(out.AlertMinutes, int(a/time.Minute))
	}
	if ev.Recurrence != nil {
		out.RRule = ev.Recurrence.OrigOptions.RRuleString()
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding preview: %w", err)
	}
	return nil
}
