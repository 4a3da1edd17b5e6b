package store

import (
	"github.com/ayoisaiah/calmclock/internal/config"
)

// KV is a key-value store holding JSON-encoded records. Get returns a nil
// value and a nil error for a missing key.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	// Close releases the handle to the underlying store
	Close() error
}

// Open opens the key-value store at path using the named driver.
func Open(driver, path string) (KV, error) {
	switch driver {
	case config.DriverSQLite:
		return NewSQLite(path)
	case config.DriverBolt, "":
		return NewClient(path)
	default:
		return nil, errUnknownDriver.Fmt(driver)
	}
}
