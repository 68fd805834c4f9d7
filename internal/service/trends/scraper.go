// Package trends scrapes public trending-hashtag pages so the dashboard can
// surface tag ideas next to the scheduling suggestions.
package trends

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/postpilot/content-planner-go/internal/constants"
	"github.com/postpilot/content-planner-go/internal/domain"
	"github.com/postpilot/content-planner-go/internal/service/cache"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// ErrNoSource is returned for platforms without a configured trends page.
var ErrNoSource = errors.New("no trends source configured")

type ScraperService struct {
	httpClient *http.Client
	cache      *cache.CacheService
	sources    map[string]string // platform -> trends page URL
	logger     *zap.Logger
}

func NewScraperService(sources map[string]string, cacheService *cache.CacheService, logger *zap.Logger) *ScraperService {
	logger.Info("Trends scraper initialized", zap.Int("sources", len(sources)))

	return &ScraperService{
		httpClient: &http.Client{
			Timeout: constants.TrendsConfig.FetchTimeout,
		},
		cache:   cacheService,
		sources: sources,
		logger:  logger,
	}
}

// Platforms lists the platforms with a configured trends source, sorted.
func (s *ScraperService) Platforms() []string {
	platforms := make([]string, 0, len(s.sources))
	for platform := range s.sources {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)
	return platforms
}

// FetchPlatform returns the trending tags for one platform, cache first.
func (s *ScraperService) FetchPlatform(ctx context.Context, platform string) ([]domain.TrendingTag, error) {
	platform = strings.ToLower(strings.TrimSpace(platform))

	url, ok := s.sources[platform]
	if !ok {
		return nil, fmt.Errorf("%w for %q", ErrNoSource, platform)
	}

	if s.cache != nil {
		if cached, found := s.cache.GetTrendingTags(ctx, platform); found {
			s.logger.Debug("Trends cache hit", zap.String("platform", platform))
			return cached, nil
		}
	}

	tags, err := s.scrapePage(ctx, platform, url)
	if err != nil {
		return nil, fmt.Errorf("trends fetch failed for %s: %w", platform, err)
	}

	if s.cache != nil {
		s.cache.SetTrendingTags(ctx, platform, tags)
	}

	s.logger.Info("Trends fetched",
		zap.String("platform", platform),
		zap.Int("tags", len(tags)))

	return tags, nil
}

// FetchAll scrapes every configured platform concurrently. Platforms that
// fail are skipped; the combined result keeps whatever succeeded.
func (s *ScraperService) FetchAll(ctx context.Context) (map[string][]domain.TrendingTag, error) {
	results := make(map[string][]domain.TrendingTag)
	var mu sync.Mutex

	p := pool.New().WithMaxGoroutines(constants.TrendsConfig.MaxConcurrency)
	for _, platform := range s.Platforms() {
		platform := platform
		p.Go(func() {
			tags, err := s.FetchPlatform(ctx, platform)
			if err != nil {
				s.logger.Warn("Trends source failed",
					zap.String("platform", platform),
					zap.Error(err))
				return
			}
			mu.Lock()
			results[platform] = tags
			mu.Unlock()
		})
	}
	p.Wait()

	if len(results) == 0 && len(s.sources) > 0 {
		return nil, fmt.Errorf("all trends sources failed")
	}

	return results, nil
}

func (s *ScraperService) scrapePage(ctx context.Context, platform, url string) ([]domain.TrendingTag, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; ContentPlannerBot/1.0)")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("HTML parse failed: %w", err)
	}

	fetchedAt := time.Now().UTC()
	seen := make(map[string]bool)
	tags := make([]domain.TrendingTag, 0, constants.TrendsConfig.MaxTags)

	// Trend pages differ per platform but all render tags as anchor or list
	// text starting with '#'. Collect in document order, first occurrence wins.
	doc.Find("a, li, span").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		tag := extractTag(sel.Text())
		if tag == "" || seen[tag] {
			return true
		}
		seen[tag] = true
		tags = append(tags, domain.TrendingTag{
			Platform:  platform,
			Tag:       tag,
			Rank:      len(tags) + 1,
			FetchedAt: fetchedAt,
		})
		return len(tags) < constants.TrendsConfig.MaxTags
	})

	if len(tags) == 0 {
		return nil, &StructureChangedError{
			Platform: platform,
			Message:  "no hashtags found, page structure may have changed",
		}
	}

	return tags, nil
}

// extractTag normalizes a scraped text node to a single "#tag" token, or ""
// when the node is not a usable hashtag.
func extractTag(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "#") {
		return ""
	}

	fields := strings.Fields(text)
	if len(fields) != 1 {
		return ""
	}

	tag := fields[0]
	if len(tag) < 2 || len(tag) > 64 {
		return ""
	}
	return strings.ToLower(tag)
}

type StructureChangedError struct {
	Platform string
	Message  string
}

func (e *StructureChangedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Platform, e.Message)
}

func IsStructureError(err error) bool {
	_, ok := err.(*StructureChangedError)
	return ok
}
