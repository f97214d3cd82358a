package service

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/cache"
	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/engine"
	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"
	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/platform"
	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/repository"
	"github.com/javimartin54-cpu/arbitraje-inteligente/pkg/apierror"
)

// SearchConfig holds the orchestrator's tunables and optional dependencies.
type SearchConfig struct {
	Adapters       []platform.Adapter
	Fees           engine.FeeTable
	Matcher        engine.Matcher
	AdapterTimeout time.Duration
	DefaultResults int
	MaxResultsCap  int

	// Cache is optional; when set, per-platform raw results are cached
	// under CacheTTL so repeated searches don't re-hit the marketplaces.
	Cache    cache.Cache
	CacheTTL time.Duration

	// History is optional; when set, each search is recorded best-effort.
	History repository.HistoryRepository
}

// SearchService fans keyword searches out to every platform adapter and
// drives the normalize -> match -> cost/risk -> rank pipeline over the
// collected listings. Stateless across requests.
type SearchService struct {
	cfg SearchConfig
}

// NewSearchService creates the orchestrator. Adapters are required.
func NewSearchService(cfg SearchConfig) *SearchService {
	if len(cfg.Adapters) == 0 {
		return nil
	}
	if cfg.AdapterTimeout <= 0 {
		cfg.AdapterTimeout = 12 * time.Second
	}
	if cfg.DefaultResults <= 0 {
		cfg.DefaultResults = 20
	}
	if cfg.MaxResultsCap <= 0 {
		cfg.MaxResultsCap = 50
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	return &SearchService{cfg: cfg}
}

// platformSlot receives one adapter's outcome. Each goroutine writes only
// its own slot, so fan-in needs no locking.
type platformSlot struct {
	platform model.Platform
	listings []model.Listing
}

// Search runs one arbitrage search. It fails only on input validation;
// individual adapter failures degrade to a zero-count stats entry. The
// stats map always contains exactly one entry per configured adapter.
func (s *SearchService) Search(ctx context.Context, keywords []string, maxResults int) (*model.SearchResult, error) {
	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			cleaned = append(cleaned, kw)
		}
	}
	if len(cleaned) == 0 {
		return nil, apierror.ValidationError("keywords are required")
	}

	if maxResults <= 0 {
		maxResults = s.cfg.DefaultResults
	}
	if maxResults > s.cfg.MaxResultsCap {
		maxResults = s.cfg.MaxResultsCap
	}

	// Fan out one task per adapter. Every task gets an independent timeout:
	// a slow or failed platform must not block or poison its siblings.
	slots := make([]platformSlot, len(s.cfg.Adapters))
	var wg sync.WaitGroup
	for i, adapter := range s.cfg.Adapters {
		wg.Add(1)
		go func(i int, adapter platform.Adapter) {
			defer wg.Done()

			adapterCtx, cancel := context.WithTimeout(ctx, s.cfg.AdapterTimeout)
			defer cancel()

			p := adapter.Platform()
			raws, err := s.fetchPlatform(adapterCtx, adapter, cleaned, maxResults)
			if err != nil {
				log.Printf("[SearchService] %s search failed: %v", p, err)
				slots[i] = platformSlot{platform: p}
				return
			}

			slots[i] = platformSlot{
				platform: p,
				listings: engine.Normalize(raws, p, time.Now().UTC()),
			}
		}(i, adapter)
	}
	wg.Wait()

	stats := make(model.SearchStats, len(slots))
	var pool []model.Listing
	for _, slot := range slots {
		stats[slot.platform] = len(slot.listings)
		pool = append(pool, slot.listings...)
	}

	pairs := s.cfg.Matcher.Match(pool)
	opportunities := s.cfg.Fees.Rank(pairs)
	if len(opportunities) > maxResults {
		opportunities = opportunities[:maxResults]
	}

	result := &model.SearchResult{
		TotalOpportunities: len(opportunities),
		Opportunities:      opportunities,
		PlatformsSearched:  stats,
	}

	s.recordSearch(cleaned, result)

	return result, nil
}

// fetchPlatform calls one adapter, going through the cache when configured.
// Adapter errors are never cached.
func (s *SearchService) fetchPlatform(ctx context.Context, adapter platform.Adapter, keywords []string, limit int) ([]platform.RawListing, error) {
	if s.cfg.Cache == nil {
		return adapter.Search(ctx, keywords, limit)
	}

	// limit is part of the key: a search cached under a small limit must not
	// cap a later, larger search
	key := string(adapter.Platform()) + ":" + strconv.Itoa(limit) + ":" + strings.ToLower(strings.Join(keywords, " "))
	data, err := s.cfg.Cache.GetOrSet(ctx, key, s.cfg.CacheTTL, func() ([]byte, error) {
		raws, err := adapter.Search(ctx, keywords, limit)
		if err != nil {
			return nil, err
		}
		return json.Marshal(raws)
	})
	if err != nil {
		return nil, err
	}

	var raws []platform.RawListing
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	return raws, nil
}

// recordSearch writes the search to history, best-effort and off the request
// path. Failures are logged and never surface to the caller.
func (s *SearchService) recordSearch(keywords []string, result *model.SearchResult) {
	if s.cfg.History == nil {
		return
	}

	platformsJSON, err := json.Marshal(result.PlatformsSearched)
	if err != nil {
		return
	}

	bestScore := 0.0
	if len(result.Opportunities) > 0 {
		bestScore = result.Opportunities[0].Score
	}

	record := &model.SearchRecord{
		Keywords:      strings.Join(keywords, " "),
		PlatformsJSON: string(platformsJSON),
		Opportunities: result.TotalOpportunities,
		BestScore:     bestScore,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.cfg.History.SaveSearch(ctx, record); err != nil {
			log.Printf("[SearchService] Failed to save search history: %v", err)
		}
	}()
}

// RecentSearches exposes the stored history. Returns an empty slice when no
// history store is configured.
func (s *SearchService) RecentSearches(ctx context.Context, limit int) ([]model.SearchRecord, error) {
	if s.cfg.History == nil {
		return []model.SearchRecord{}, nil
	}
	return s.cfg.History.RecentSearches(ctx, limit)
}
