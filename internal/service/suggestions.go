package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/postpilot/content-planner-go/internal/domain"
	"github.com/postpilot/content-planner-go/internal/planner"
	"github.com/postpilot/content-planner-go/internal/service/cache"
	"go.uber.org/zap"
)

// SuggestionService fronts the recommender with caching. The recommender
// itself is pure; cache reads and writes live here.
type SuggestionService struct {
	recommender *planner.Recommender
	cache       *cache.CacheService
	logger      *zap.Logger
}

func NewSuggestionService(recommender *planner.Recommender, cacheService *cache.CacheService, logger *zap.Logger) *SuggestionService {
	return &SuggestionService{
		recommender: recommender,
		cache:       cacheService,
		logger:      logger,
	}
}

// Suggest returns posting-time suggestions for the platforms, content type
// and calendar date, cache first.
func (s *SuggestionService) Suggest(ctx context.Context, platforms []string, contentType, date string) []domain.Suggestion {
	key := suggestionCacheKey(platforms, contentType, date)
	if s.cache != nil {
		if cached, found := s.cache.GetSuggestions(ctx, key); found {
			s.logger.Debug("Suggestion cache hit", zap.String("key", key))
			return cached
		}
	}

	suggestions := s.recommender.Recommend(platforms, contentType, date)

	if s.cache != nil {
		s.cache.SetSuggestions(ctx, key, suggestions)
	}
	return suggestions
}

func suggestionCacheKey(platforms []string, contentType, date string) string {
	normalized := make([]string, 0, len(platforms))
	for _, p := range platforms {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(p)))
	}
	return fmt.Sprintf("suggest:%s:%s:%s",
		strings.Join(normalized, ","), strings.ToLower(contentType), date)
}
