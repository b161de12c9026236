package recipe

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"smart-shopping/internal/infrastructure/cache"
	"smart-shopping/internal/pkg/common"
)

const (
	defaultSearchLimit = 5
	maxSearchLimit     = 20
)

var foldLigatures = strings.NewReplacer("œ", "oe", "æ", "ae")

// foldText lowercases and strips accents so queries match regardless of
// diacritics ("pâtes" and "pates" find the same recipes). The transform chain
// keeps per-call buffers, so it is built per call rather than shared.
func foldText(s string) string {
	s = foldLigatures.Replace(strings.ToLower(s))
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(chain, s); err == nil {
		s = folded
	}
	return strings.TrimSpace(s)
}

// Service searches the built-in catalog, memoizing results in the cache store.
type Service struct {
	store cache.Store
	ttl   time.Duration
}

// NewService builds a search service. store may be nil when caching is disabled.
func NewService(store cache.Store, ttl time.Duration) *Service {
	return &Service{store: store, ttl: ttl}
}

// Search returns up to limit catalog recipes matching query. Results are
// cached per normalized query so repeated searches skip the catalog scan.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]Recipe, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	folded := foldText(query)
	key := fmt.Sprintf("recipe_search:%s:%d", folded, limit)

	if s.store != nil {
		if data, err := s.store.Get(ctx, key); err == nil {
			var cached []Recipe
			if err := common.ParseJSONBytes(data, &cached); err == nil {
				common.LogCacheHit("recipe_search", key)
				return cached, nil
			}
		} else if err != cache.ErrMiss {
			common.LogWarn(fmt.Sprintf("recipe search cache read failed: %v", err))
		} else {
			common.LogCacheMiss("recipe_search", key)
		}
	}

	results := make([]Recipe, 0, limit)
	for _, r := range catalog {
		if r.matches(folded) {
			results = append(results, r)
			if len(results) == limit {
				break
			}
		}
	}

	if s.store != nil {
		if data, err := common.ToJSON(results); err == nil {
			if err := s.store.Set(ctx, key, []byte(data), s.ttl); err != nil {
				common.LogWarn(fmt.Sprintf("recipe search cache write failed: %v", err))
			}
		}
	}
	return results, nil
}
