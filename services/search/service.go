package search

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fierogr/findfarewells-sub000/database/repository"
	"github.com/fierogr/findfarewells-sub000/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProximityRadiusKm is the widening radius applied when direct region
// matching yields no results.
const ProximityRadiusKm = 50

const (
	fetchRetries    = 2
	fetchRetryDelay = time.Second
	resultCacheTTL  = 5 * time.Minute
	resultCachePfx  = "search:"
)

// DefaultSearchService is the production implementation.
type DefaultSearchService struct {
	PartnerRepo repository.PartnerRepository
	LogRepo     repository.SearchLogRepository
	CacheClient *redis.Client
	Geo         Geocoder
	Logger      *zap.Logger
}

// Search executes the full pipeline and logs the request when a contact
// phone number was captured.
func (s *DefaultSearchService) Search(ctx context.Context, query models.SearchQuery) (*models.ResultPage, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Sort == "" {
		query.Sort = models.SortAscending
	}

	page, err := s.searchCached(ctx, query)
	if err != nil {
		return nil, err
	}

	if query.Phone != "" {
		// Analytics only; a logging failure must not fail the search.
		go s.logSearch(query)
	}

	return page, nil
}

// searchCached consults the result cache before running the pipeline.
func (s *DefaultSearchService) searchCached(ctx context.Context, query models.SearchQuery) (*models.ResultPage, error) {
	key := s.cacheKey(query)

	if s.CacheClient != nil {
		cached, err := s.CacheClient.Get(ctx, key).Result()
		if err == nil && cached != "" {
			var page models.ResultPage
			if err := json.Unmarshal([]byte(cached), &page); err == nil {
				return &page, nil
			}
			// If unmarshal fails, we fall through to re-computation.
		}
	}

	page, err := s.run(ctx, query)
	if err != nil {
		return nil, err
	}

	if s.CacheClient != nil {
		if b, err := json.Marshal(page); err == nil {
			s.CacheClient.Set(ctx, key, b, resultCacheTTL)
		}
	}
	return page, nil
}

// run is the uncached pipeline.
func (s *DefaultSearchService) run(ctx context.Context, query models.SearchQuery) (*models.ResultPage, error) {
	prefecture := query.Prefecture
	resolved := prefecture != ""
	if prefecture == "" && query.Location != "" {
		prefecture, resolved = ResolvePrefecture(query.Location)
		if !resolved {
			// A place the resolver has never heard of cannot widen by
			// proximity either, so the answer is an empty page, not the
			// unfiltered directory.
			return &models.ResultPage{
				Rows:       []models.ResultRow{},
				Page:       1,
				TotalPages: 1,
			}, nil
		}
	}

	partners, err := s.fetchPartners(ctx)
	if err != nil {
		return nil, err
	}

	criteria := FilterCriteria{
		Prefecture: prefecture,
		Regions:    query.Regions,
		Services:   query.Services,
	}
	matched := FilterPartners(partners, criteria)

	// Best-effort widening: when a location was given and nothing matched
	// directly, accept partners serving a region within the proximity radius.
	if len(matched) == 0 && (query.Location != "" || prefecture != "") {
		origin := query.Location
		if origin == "" {
			origin = prefecture
		}
		var widened []models.Partner
		for i := range partners {
			p := partners[i]
			p.NormalizeRegions()
			if !WithinDistance(s.Geo, origin, p.Regions, ProximityRadiusKm) {
				continue
			}
			if len(query.Services) > 0 && !matchesAllServices(&p, query.Services) {
				continue
			}
			widened = append(widened, p)
		}
		matched = widened
	}

	rows := BuildRows(matched)
	SortRows(rows, query.Sort)
	pageRows, page, totalPages := Paginate(rows, query.Page, PageSize)

	return &models.ResultPage{
		Rows:               pageRows,
		Page:               page,
		TotalPages:         totalPages,
		Total:              len(rows),
		Prefecture:         prefecture,
		PrefectureResolved: resolved,
	}, nil
}

// fetchPartners loads the directory, retrying on failure with a fixed backoff
// before surfacing a terminal error.
func (s *DefaultSearchService) fetchPartners(ctx context.Context) ([]models.Partner, error) {
	var lastErr error
	for attempt := 0; attempt <= fetchRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(fetchRetryDelay):
			}
		}
		partners, err := s.PartnerRepo.GetAll()
		if err == nil {
			return partners, nil
		}
		lastErr = err
		s.Logger.Warn("directory fetch failed",
			zap.Int("attempt", attempt+1),
			zap.Error(err))
	}
	return nil, fmt.Errorf("failed to load directory after %d attempts: %w", fetchRetries+1, lastErr)
}

func (s *DefaultSearchService) cacheKey(query models.SearchQuery) string {
	// The phone number is analytics-only and must not fragment the cache.
	keyed := struct {
		Location   string   `json:"l"`
		Prefecture string   `json:"p"`
		Regions    []string `json:"r"`
		Services   []string `json:"s"`
		Sort       string   `json:"o"`
		Page       int      `json:"n"`
	}{query.Location, query.Prefecture, query.Regions, query.Services, query.Sort, query.Page}
	b, _ := json.Marshal(keyed)
	return fmt.Sprintf("%s%x", resultCachePfx, b)
}

func (s *DefaultSearchService) logSearch(query models.SearchQuery) {
	req := &models.SearchRequest{
		ID:         uuid.NewString(),
		Location:   query.Location,
		Prefecture: query.Prefecture,
		Services:   query.Services,
		Phone:      query.Phone,
		CreatedAt:  time.Now(),
	}
	if err := s.LogRepo.LogSearch(req); err != nil {
		s.Logger.Warn("failed to log search request", zap.Error(err))
	}
}
