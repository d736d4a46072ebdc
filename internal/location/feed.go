package location

import (
	"context"
	"fmt"
	"sync"

	"funweather/internal/models"
)

// Feed adapts reported device fixes (e.g. from the ingest endpoint)
// into the PositionSource capability. The device client pushes fixes;
// the arbiter consumes them as a GPS stream.
type Feed struct {
	mu       sync.Mutex
	granted  bool
	last     *models.Coordinates
	nextID   int
	watchers map[int]func(models.Coordinates)
	waiters  []chan models.Coordinates
}

func NewFeed(granted bool) *Feed {
	return &Feed{
		granted:  granted,
		watchers: make(map[int]func(models.Coordinates)),
	}
}

// Publish records a new fix and delivers it to all watchers and any
// CurrentPosition callers waiting for a first fix. Fixes are delivered
// one at a time under the lock, matching the provider contract of
// serialized watch callbacks.
func (f *Feed) Publish(c models.Coordinates) {
	f.mu.Lock()
	f.last = &c
	for _, ch := range f.waiters {
		ch <- c
	}
	f.waiters = nil
	fns := make([]func(models.Coordinates), 0, len(f.watchers))
	for _, fn := range f.watchers {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}

func (f *Feed) RequestPermission(_ context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.granted, nil
}

// SetGranted flips the permission gate.
func (f *Feed) SetGranted(granted bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.granted = granted
}

// CurrentPosition returns the latest published fix, waiting for the
// first one if none has arrived yet.
func (f *Feed) CurrentPosition(ctx context.Context) (models.Coordinates, error) {
	f.mu.Lock()
	if f.last != nil {
		c := *f.last
		f.mu.Unlock()
		return c, nil
	}
	ch := make(chan models.Coordinates, 1)
	f.waiters = append(f.waiters, ch)
	f.mu.Unlock()

	select {
	case c := <-ch:
		return c, nil
	case <-ctx.Done():
		return models.Coordinates{}, fmt.Errorf("no position fix available: %w", ctx.Err())
	}
}

// Watch registers a callback for every future fix.
func (f *Feed) Watch(fn func(models.Coordinates)) (Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.watchers[id] = fn
	return &feedSub{feed: f, id: id}, nil
}

type feedSub struct {
	once sync.Once
	feed *Feed
	id   int
}

// Stop is idempotent.
func (s *feedSub) Stop() {
	s.once.Do(func() {
		s.feed.mu.Lock()
		delete(s.feed.watchers, s.id)
		s.feed.mu.Unlock()
	})
}
