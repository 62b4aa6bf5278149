package models

// Settings represents global application settings.
// This corresponds to ~/.daytally/settings.yaml.
type Settings struct {
	Version int `yaml:"version"`

	// WeekStart is the first day of calendar rows: "monday" or "sunday".
	WeekStart string `yaml:"week_start"`

	// TickIntervalMS is the stopwatch tick cadence in milliseconds.
	TickIntervalMS int `yaml:"tick_interval_ms"`

	// Theme is "system", "light" or "dark".
	Theme string `yaml:"theme"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:        1,
		WeekStart:      "monday",
		TickIntervalMS: 100,
		Theme:          "system",
	}
}
