package config

import (
	"time"

	"github.com/daytally-io/daytally/internal/models"
)

// LoadSettings loads the global settings from ~/.daytally/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := SettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewSettings)
}

// SaveSettings saves the global settings to ~/.daytally/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := SettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}

// TickInterval returns the stopwatch tick cadence from settings, falling
// back to the default when the stored value is zero or negative.
func TickInterval(s *models.Settings) time.Duration {
	ms := s.TickIntervalMS
	if ms <= 0 {
		ms = models.NewSettings().TickIntervalMS
	}
	return time.Duration(ms) * time.Millisecond
}

// WeekStart returns the configured first day of the week.
func WeekStart(s *models.Settings) time.Weekday {
	if s.WeekStart == "sunday" {
		return time.Sunday
	}
	return time.Monday
}
