package store

import "github.com/ayoisaiah/proctor/settings"

// DB is the settings storage interface.
type DB interface {
	// LoadSettings returns the stored settings. found is false when nothing
	// usable is stored under the current version key.
	LoadSettings() (s settings.ClockSettings, found bool, err error)
	// SaveSettings overwrites the stored settings with s
	SaveSettings(s settings.ClockSettings) error
	// Close ends the database connection
	Close() error
}
