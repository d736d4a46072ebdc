package location

import (
	"context"

	"funweather/internal/models"
)

// PositionSource mirrors the device GPS capability surface: a
// permission gate, a one-shot position read, and a continuous watch.
type PositionSource interface {
	RequestPermission(ctx context.Context) (bool, error)
	CurrentPosition(ctx context.Context) (models.Coordinates, error)
	Watch(fn func(models.Coordinates)) (Subscription, error)
}

// Subscription is a handle on an active position watch. Stop must be
// idempotent.
type Subscription interface {
	Stop()
}

// ReverseGeocoder turns coordinates into a city/country label.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, coords models.Coordinates) (models.Place, error)
}
