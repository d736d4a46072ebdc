package search

import (
	"context"
	"sort"
	"strings"

	"funweather/internal/models"
	"funweather/internal/textutil"
	"go.uber.org/zap"
)

// Provider is the geocoding backend the ranker queries.
type Provider interface {
	Search(ctx context.Context, query, language string, count int) ([]models.GeoPlace, error)
}

// DefaultResultCap is how many raw results we request from the
// provider before filtering.
const DefaultResultCap = 50

// MinQueryLength is the minimum number of runes before the provider is
// contacted at all.
const MinQueryLength = 2

// Ranker filters, deduplicates, and orders raw geocoding results into
// a ranked city list.
type Ranker struct {
	provider  Provider
	logger    *zap.Logger
	resultCap int
}

func NewRanker(provider Provider, logger *zap.Logger) *Ranker {
	return &Ranker{
		provider:  provider,
		logger:    logger,
		resultCap: DefaultResultCap,
	}
}

// Search runs a ranked city lookup. Provider failures degrade to an
// empty result with a recoverable NetworkFailure signal; nothing is
// propagated as an error past this boundary.
func (r *Ranker) Search(ctx context.Context, query, language string) ([]models.GeoPlace, models.ErrorKind) {
	if len([]rune(query)) < MinQueryLength {
		return nil, models.ErrNone
	}

	raw, err := r.provider.Search(ctx, query, language, r.resultCap)
	if err != nil {
		r.logger.Warn("City search failed",
			zap.String("query", query),
			zap.Error(err))
		return nil, models.ErrNetworkFailure
	}

	return Rank(raw, query), models.ErrNone
}

// Rank applies the filter/dedup/order pipeline to raw provider
// results. Exposed separately so it stays testable without a provider.
func Rank(raw []models.GeoPlace, query string) []models.GeoPlace {
	normQuery := textutil.Normalize(query)

	// Populated places only, and the normalized name must actually
	// contain the query (providers return fuzzy false positives).
	kept := make([]models.GeoPlace, 0, len(raw))
	for _, p := range raw {
		if !isPopulatedPlace(p.FeatureCode) {
			continue
		}
		if !strings.Contains(textutil.Normalize(p.Name), normQuery) {
			continue
		}
		kept = append(kept, p)
	}

	// Dedup on normalized name + country; region is excluded because
	// providers report it inconsistently. On collision the variant
	// whose literal name carries accents wins: it is the more complete
	// rendition of the same place.
	seen := make(map[string]int, len(kept))
	deduped := make([]models.GeoPlace, 0, len(kept))
	for _, p := range kept {
		key := textutil.Normalize(p.Name) + "-" + p.Country
		if i, ok := seen[key]; ok {
			if textutil.HasAccent(p.Name) && !textutil.HasAccent(deduped[i].Name) {
				deduped[i] = p
			}
			continue
		}
		seen[key] = len(deduped)
		deduped = append(deduped, p)
	}

	// Prefix matches first, then shorter names as a proxy for "more
	// likely the primary match". Stable to preserve provider order on
	// ties.
	sort.SliceStable(deduped, func(i, j int) bool {
		ni := textutil.Normalize(deduped[i].Name)
		nj := textutil.Normalize(deduped[j].Name)
		pi := strings.HasPrefix(ni, normQuery)
		pj := strings.HasPrefix(nj, normQuery)
		if pi != pj {
			return pi
		}
		return len(ni) < len(nj)
	})

	return deduped
}

// isPopulatedPlace reports whether the GeoNames feature code denotes a
// populated place (the PPL family). Administrative regions and POIs
// are discarded.
func isPopulatedPlace(featureCode string) bool {
	return strings.HasPrefix(featureCode, "PPL")
}
