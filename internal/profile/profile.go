// Package profile stores the user's calendar preferences, most importantly
// the default calendar applied when input carries no "#calendar" tag. The
// parser core never reads this; the CLI shell loads it and passes values in.
package profile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultCalendarName matches the calendar every system ships with.
const DefaultCalendarName = "Calendar"

// Config is the persisted profile.
type Config struct {
	// DefaultCalendar receives events whose input has no "#calendar" tag.
	DefaultCalendar string `yaml:"default_calendar"`

	// Calendars is an optional allow-list of known calendar names, used by
	// `calendar list` for display. Tags outside the list are still accepted.
	Calendars []string `yaml:"calendars,omitempty"`

	// DefaultAlerts are lead times in minutes the shell adds to events that
	// carry no alert phrase. The parser itself never injects alerts.
	DefaultAlerts []int `yaml:"default_alerts,omitempty"`

	// OutputDir is where `add` writes .ics files. Empty means the working
	// directory.
	OutputDir string `yaml:"output_dir,omitempty"`
}

// Normalize fills zero values so configs from older versions keep working.
func (c *Config) Normalize() {
	if c.DefaultCalendar == "" {
		c.DefaultCalendar = DefaultCalendarName
	}
	for _, i := range c.DefaultAlerts {
		if i < 0 {
			c.DefaultAlerts = nil
			break
		}
	}
}

// Path returns the profile location: $QUICKCAL_CONFIG when set, otherwise
// ~/.quickcal/config.yaml under the given home directory.
func Path(homeDir string) string {
	if p := os.Getenv("QUICKCAL_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(homeDir, ".quickcal", "config.yaml")
}

// Load reads the profile. On first run the file does not exist yet: a
// default profile is written with 0600 perms and returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := &Config{DefaultCalendar: DefaultCalendarName}
			if err := Save(path, cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes the profile, creating its directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
