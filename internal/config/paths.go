// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global daytally directory.
	GlobalDirName = ".daytally"

	// TasksDirName is the name of the tasks directory.
	TasksDirName = "tasks"

	// LedgerDirName is the name of the ledger directory.
	LedgerDirName = "ledger"
)

// File names
const (
	SettingsFileName = "settings.yaml"
)

// GlobalDir returns the path to the global daytally directory (~/.daytally/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// SettingsFile returns the path to the settings.yaml file.
func SettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// TasksDir returns the path to the tasks directory.
func TasksDir() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, TasksDirName), nil
}

// LedgerDir returns the path to the ledger directory.
func LedgerDir() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LedgerDirName), nil
}

// TaskFile returns the path to a specific task file.
func TaskFile(tasksDir, taskID string) string {
	return filepath.Join(tasksDir, taskID+".yaml")
}

// EnsureDirs creates the global directory structure if it doesn't exist.
func EnsureDirs() error {
	tasksDir, err := TasksDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(tasksDir, 0o755); err != nil {
		return err
	}
	ledgerDir, err := LedgerDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(ledgerDir, 0o755)
}
