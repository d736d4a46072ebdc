package store

import "context"

// Domain keys. One value per domain, read at startup and written on
// every committed state change.
const (
	KeyLastLocation = "last_location"
	KeySettings     = "settings"
	KeyLastWeather  = "lastWeather"
)

// Store is the opaque key-value contract the engine persists through.
// Values are serialized strings; the store never interprets them.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
