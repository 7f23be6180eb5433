// Package store persists the clock settings in a bolt database
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/proctor/internal/apperr"
	"github.com/ayoisaiah/proctor/internal/osutil"
	"github.com/ayoisaiah/proctor/settings"
)

const settingsBucket = "settings"

var (
	errProctorRunning = &apperr.Error{
		Message: "is proctor already running? Only one instance can be active at a time",
	}

	errOpenDB = &apperr.Error{
		Message: "unable to open the settings database at %s",
	}
)

// Key is the key the settings blob of the current version is stored under.
func Key() []byte {
	return fmt.Appendf(nil, "settingsV%d", settings.Version)
}

// Client is a BoltDB database client.
type Client struct {
	db *bolt.DB
}

// NewClient opens the database at dbFilePath and creates the settings
// bucket if needed. The file stays locked until Close.
func NewClient(dbFilePath string) (*Client, error) {
	db, err := openDB(dbFilePath)
	if err != nil {
		return nil, err
	}

	return &Client{db: db}, nil
}

// LoadSettings reads the stored settings. A blob that cannot be decoded is
// reported as not found and logged.
func (c *Client) LoadSettings() (settings.ClockSettings, bool, error) {
	var (
		raw []byte
		s   settings.ClockSettings
	)

	err := c.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(settingsBucket)).Get(Key())
		if v != nil {
			raw = append([]byte(nil), v...)
		}

		return nil
	})
	if err != nil {
		return s, false, err
	}

	if len(raw) == 0 {
		return settings.Default(), false, nil
	}

	// fields missing from the blob keep their default value
	s = settings.Default()

	err = json.Unmarshal(raw, &s)
	if err != nil {
		slog.Warn(
			"ignoring unreadable stored settings",
			slog.String("key", string(Key())),
			slog.Any("error", err),
		)

		return settings.Default(), false, nil
	}

	return s, true, nil
}

// SaveSettings serialises s in full and stores it under Key.
func (c *Client) SaveSettings(s settings.ClockSettings) error {
	value, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(settingsBucket)).Put(Key(), value)
	})
}

// LoadOrInit returns the stored settings, storing the defaults first when
// nothing is stored yet.
func (c *Client) LoadOrInit() (settings.ClockSettings, error) {
	s, found, err := c.LoadSettings()
	if err != nil {
		return s, err
	}

	if found {
		return s, nil
	}

	slog.Info("storing default settings", slog.String("key", string(Key())))

	return s, c.SaveSettings(s)
}

// Close releases the database lock.
func (c *Client) Close() error {
	return c.db.Close()
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.FilePermission,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errProctorRunning
		}

		return nil, errOpenDB.Fmt(pathToDB).Wrap(err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(settingsBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}
