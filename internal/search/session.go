package search

import (
	"context"
	"sync"
	"time"

	"funweather/internal/models"
)

// Session timings. The debounce window absorbs typing bursts; the
// no-results gate avoids flashing an empty state during normal
// debounce/network latency.
const (
	DefaultDebounce       = 400 * time.Millisecond
	DefaultNoResultsDelay = 800 * time.Millisecond
	searchTimeout         = 10 * time.Second
)

// Session is a keystroke-driven search front for the Ranker. It owns
// the debounce window and a monotonically increasing request sequence
// number: responses are applied in query-issuance order, so a slow
// early response can never clobber a fast later one.
type Session struct {
	mu sync.Mutex

	ranker         *Ranker
	debounce       time.Duration
	noResultsDelay time.Duration
	now            func() time.Time

	seq        uint64
	timer      *time.Timer
	query      string
	results    []models.GeoPlace
	errKind    models.ErrorKind
	loading    bool
	lastChange time.Time
}

func NewSession(ranker *Ranker) *Session {
	return &Session{
		ranker:         ranker,
		debounce:       DefaultDebounce,
		noResultsDelay: DefaultNoResultsDelay,
		now:            time.Now,
	}
}

// SetTimings overrides the debounce and no-results windows. Used in
// tests to keep them short.
func (s *Session) SetTimings(debounce, noResultsDelay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debounce = debounce
	s.noResultsDelay = noResultsDelay
}

// Update registers a new keystroke state. Only the last update within
// the debounce window reaches the provider.
func (s *Session) Update(query, language string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	seq := s.seq
	s.query = query
	s.lastChange = s.now()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if len([]rune(query)) < MinQueryLength {
		s.results = nil
		s.errKind = models.ErrNone
		s.loading = false
		return
	}

	s.loading = true
	s.timer = time.AfterFunc(s.debounce, func() {
		s.fire(seq, query, language)
	})
}

// fire issues the provider call for one debounced query. The sequence
// number is re-checked before and after the call so stale responses
// are discarded regardless of arrival order.
func (s *Session) fire(seq uint64, query, language string) {
	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()

	results, errKind := s.ranker.Search(ctx, query, language)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return
	}
	s.results = results
	s.errKind = errKind
	s.loading = false
}

// Results returns the current ranked result set.
func (s *Session) Results() []models.GeoPlace {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// Loading reports whether a debounced request is pending or in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// ErrKind returns the recoverable signal from the last completed
// search.
func (s *Session) ErrKind() models.ErrorKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errKind
}

// ShowNoResults reports whether the caller may assert an empty state:
// a long-enough query, no pending work, an empty result set, and the
// minimum display delay elapsed since the last query change.
func (s *Session) ShowNoResults() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len([]rune(s.query)) < MinQueryLength {
		return false
	}
	if s.loading || len(s.results) > 0 {
		return false
	}
	return s.now().Sub(s.lastChange) >= s.noResultsDelay
}
