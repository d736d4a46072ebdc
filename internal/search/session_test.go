package search

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"funweather/internal/models"
	"go.uber.org/zap"
)

type funcProvider struct {
	fn func(ctx context.Context, query, language string, count int) ([]models.GeoPlace, error)
}

func (f *funcProvider) Search(ctx context.Context, query, language string, count int) ([]models.GeoPlace, error) {
	return f.fn(ctx, query, language, count)
}

func TestSessionDebounceCoalescesKeystrokes(t *testing.T) {
	var calls int32
	fp := &funcProvider{fn: func(_ context.Context, query, _ string, _ int) ([]models.GeoPlace, error) {
		atomic.AddInt32(&calls, 1)
		return []models.GeoPlace{place(query, "IT", "PPL")}, nil
	}}

	s := NewSession(NewRanker(fp, zap.NewNop()))
	s.SetTimings(30*time.Millisecond, 80*time.Millisecond)

	s.Update("mi", "it")
	s.Update("mil", "it")
	s.Update("mila", "it")
	s.Update("milano", "it")

	time.Sleep(100 * time.Millisecond)

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("expected a single provider call after debounce, got %d", got)
	}
	res := s.Results()
	if len(res) != 1 || res[0].Name != "milano" {
		t.Errorf("expected results for final keystroke, got %v", res)
	}
}

func TestSessionStaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	fp := &funcProvider{fn: func(_ context.Context, query, _ string, _ int) ([]models.GeoPlace, error) {
		if query == "torino" {
			<-release // slow early request
		}
		return []models.GeoPlace{place(query, "IT", "PPL")}, nil
	}}

	s := NewSession(NewRanker(fp, zap.NewNop()))
	s.SetTimings(10*time.Millisecond, 80*time.Millisecond)

	s.Update("torino", "it")
	time.Sleep(30 * time.Millisecond) // first request is now in flight, blocked

	s.Update("milano", "it")
	time.Sleep(40 * time.Millisecond)

	res := s.Results()
	if len(res) != 1 || res[0].Name != "milano" {
		t.Fatalf("expected milano results, got %v", res)
	}

	// Let the slow early response land: it must not clobber the newer
	// results.
	close(release)
	time.Sleep(30 * time.Millisecond)

	res = s.Results()
	if len(res) != 1 || res[0].Name != "milano" {
		t.Errorf("stale response overwrote newer results: %v", res)
	}
}

func TestSessionShortQueryClearsResults(t *testing.T) {
	fp := &funcProvider{fn: func(_ context.Context, query, _ string, _ int) ([]models.GeoPlace, error) {
		return []models.GeoPlace{place(query, "IT", "PPL")}, nil
	}}

	s := NewSession(NewRanker(fp, zap.NewNop()))
	s.SetTimings(10*time.Millisecond, 80*time.Millisecond)

	s.Update("milano", "it")
	time.Sleep(40 * time.Millisecond)
	if len(s.Results()) != 1 {
		t.Fatal("expected results before clearing")
	}

	s.Update("m", "it")
	if s.Results() != nil {
		t.Error("short query must clear results synchronously")
	}
	if s.Loading() {
		t.Error("short query must not leave the session loading")
	}
}

func TestSessionNoResultsGate(t *testing.T) {
	fp := &funcProvider{fn: func(_ context.Context, _, _ string, _ int) ([]models.GeoPlace, error) {
		return nil, nil
	}}

	s := NewSession(NewRanker(fp, zap.NewNop()))
	s.SetTimings(10*time.Millisecond, 80*time.Millisecond)

	if s.ShowNoResults() {
		t.Error("empty session must not show the no-results state")
	}

	s.Update("atlantis", "en")
	time.Sleep(40 * time.Millisecond) // search done, gate still closed

	if s.ShowNoResults() {
		t.Error("no-results asserted before the minimum display delay")
	}

	time.Sleep(60 * time.Millisecond) // past the 80ms gate
	if !s.ShowNoResults() {
		t.Error("expected no-results state after the display delay")
	}

	s.Update("a", "en")
	if s.ShowNoResults() {
		t.Error("short query must never show the no-results state")
	}
}
