package search

import (
	"context"
	"errors"
	"sync"
	"testing"

	"funweather/internal/models"
	"go.uber.org/zap"
)

type fakeProvider struct {
	mu      sync.Mutex
	calls   int
	results []models.GeoPlace
	err     error
}

func (f *fakeProvider) Search(_ context.Context, _, _ string, _ int) ([]models.GeoPlace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.results, f.err
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func place(name, country, featureCode string) models.GeoPlace {
	return models.GeoPlace{Name: name, Country: country, FeatureCode: featureCode}
}

func TestShortQuerySkipsProvider(t *testing.T) {
	fp := &fakeProvider{}
	r := NewRanker(fp, zap.NewNop())

	got, errKind := r.Search(context.Background(), "r", "en")
	if got != nil || errKind != models.ErrNone {
		t.Errorf("expected empty clean result, got %v / %v", got, errKind)
	}
	if fp.callCount() != 0 {
		t.Error("provider must not be contacted for queries under 2 runes")
	}
}

func TestProviderFailureDegrades(t *testing.T) {
	fp := &fakeProvider{err: errors.New("boom")}
	r := NewRanker(fp, zap.NewNop())

	got, errKind := r.Search(context.Background(), "rome", "en")
	if len(got) != 0 {
		t.Errorf("expected empty results on failure, got %v", got)
	}
	if errKind != models.ErrNetworkFailure {
		t.Errorf("expected NetworkFailure signal, got %q", errKind)
	}
}

func TestRankFiltersNonPopulatedPlaces(t *testing.T) {
	raw := []models.GeoPlace{
		place("Roma", "IT", "PPLC"),
		place("Roma", "IT", "ADM1"),
		place("Romano Museum", "IT", "MUS"),
	}
	got := Rank(raw, "rom")
	if len(got) != 1 || got[0].FeatureCode != "PPLC" {
		t.Errorf("expected only the PPLC entry, got %v", got)
	}
}

func TestRankDropsProviderFalsePositives(t *testing.T) {
	raw := []models.GeoPlace{
		place("Roma", "IT", "PPLC"),
		place("Lazio", "IT", "PPL"), // fuzzy provider hit, name lacks the query
	}
	got := Rank(raw, "rom")
	if len(got) != 1 || got[0].Name != "Roma" {
		t.Errorf("expected false positive dropped, got %v", got)
	}
}

func TestRankKeepsAccentedDuplicate(t *testing.T) {
	raw := []models.GeoPlace{
		place("San Jose", "CR", "PPLC"),
		place("San José", "CR", "PPLC"),
	}
	got := Rank(raw, "san jos")
	if len(got) != 1 {
		t.Fatalf("expected 1 deduplicated result, got %d", len(got))
	}
	if got[0].Name != "San José" {
		t.Errorf("expected accented variant kept, got %q", got[0].Name)
	}

	// Same outcome when the accented variant arrives first.
	got = Rank([]models.GeoPlace{raw[1], raw[0]}, "san jos")
	if len(got) != 1 || got[0].Name != "San José" {
		t.Errorf("expected accented variant kept regardless of order, got %v", got)
	}
}

func TestRankRegionExcludedFromIdentity(t *testing.T) {
	raw := []models.GeoPlace{
		{Name: "Springfield", Region: "Illinois", Country: "US", FeatureCode: "PPL"},
		{Name: "Springfield", Region: "IL", Country: "US", FeatureCode: "PPL"},
	}
	got := Rank(raw, "spring")
	if len(got) != 1 {
		t.Errorf("region must not split duplicates, got %d results", len(got))
	}
}

func TestRankPrefixBeforeSubstring(t *testing.T) {
	raw := []models.GeoPlace{
		place("Romagnano", "IT", "PPL"),
		place("Roma", "IT", "PPLC"),
		place("Crotone", "IT", "PPL"), // contains "rot", not "rom"
	}
	got := Rank(raw, "rom")
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d: %v", len(got), got)
	}
	if got[0].Name != "Roma" || got[1].Name != "Romagnano" {
		t.Errorf("expected [Roma Romagnano], got [%s %s]", got[0].Name, got[1].Name)
	}
}

func TestRankSubstringGroupShorterFirst(t *testing.T) {
	// Neither name starts with "ome"; both contain it. Shorter
	// normalized name ranks first.
	raw := []models.GeoPlace{
		place("Castellomere", "IT", "PPL"),
		place("Salomeo", "IT", "PPL"),
	}
	got := Rank(raw, "ome")
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Name != "Salomeo" {
		t.Errorf("expected shorter substring match first, got %q", got[0].Name)
	}
}

func TestRankDiacriticInsensitiveMatching(t *testing.T) {
	raw := []models.GeoPlace{place("München", "DE", "PPLA")}
	got := Rank(raw, "munch")
	if len(got) != 1 {
		t.Errorf("expected diacritic-insensitive match, got %v", got)
	}
}
