// Package service hosts the orchestration layer between the HTTP surface and
// the pure engine packages.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/postpilot/content-planner-go/internal/domain"
	"github.com/postpilot/content-planner-go/internal/scoring"
	"github.com/postpilot/content-planner-go/internal/service/cache"
	"go.uber.org/zap"
)

// ContentAnalyzer produces free-text engagement analysis for a draft.
type ContentAnalyzer interface {
	AnalyzeContent(ctx context.Context, platform string, features domain.ContentFeatures) (string, error)
}

// ScorerService runs the two-stage scoring pipeline: AI analysis parsed into
// a breakdown, with the deterministic heuristic as fallback when the AI is
// unavailable or its response carries no recognizable scores.
type ScorerService struct {
	analyzer ContentAnalyzer
	cache    *cache.CacheService
	logger   *zap.Logger
}

func NewScorerService(analyzer ContentAnalyzer, cacheService *cache.CacheService, logger *zap.Logger) *ScorerService {
	return &ScorerService{
		analyzer: analyzer,
		cache:    cacheService,
		logger:   logger,
	}
}

// Score scores a draft for a platform. When analysisText is non-empty it is
// parsed directly and no provider call is made.
func (s *ScorerService) Score(ctx context.Context, platform string, features domain.ContentFeatures, analysisText string) (*domain.ScoreResult, error) {
	key := scoreCacheKey(platform, features)
	if s.cache != nil && analysisText == "" {
		if cached, found := s.cache.GetScoreResult(ctx, key); found {
			s.logger.Debug("Score cache hit", zap.String("key", key))
			return cached, nil
		}
	}

	result := s.score(ctx, platform, features, analysisText)

	if s.cache != nil && analysisText == "" {
		s.cache.SetScoreResult(ctx, key, result)
	}
	return result, nil
}

func (s *ScorerService) score(ctx context.Context, platform string, features domain.ContentFeatures, analysisText string) *domain.ScoreResult {
	text := analysisText
	if text == "" && s.analyzer != nil {
		analyzed, err := s.analyzer.AnalyzeContent(ctx, platform, features)
		if err != nil {
			s.logger.Warn("AI analysis failed, scoring heuristically", zap.Error(err))
		} else {
			text = analyzed
		}
	}

	if text != "" {
		parsed := scoring.ParseAnalysis(text)
		if parsed.Matched {
			return &domain.ScoreResult{
				Scores:      parsed.Scores,
				Suggestions: parsed.Suggestions,
				Source:      domain.ScoreSourceAI,
			}
		}
		s.logger.Debug("Analysis text carried no scores, falling back to heuristic")
	}

	scores := scoring.ScoreContent(features.Caption, features.Hashtags, features.Title)
	return &domain.ScoreResult{
		Scores:      scores,
		Suggestions: heuristicTips(scores),
		Source:      domain.ScoreSourceHeuristic,
	}
}

// heuristicTips turns weak axes into actionable suggestions, worst first.
func heuristicTips(scores domain.ScoreBreakdown) []string {
	var tips []string
	if scores.Hook < 50 {
		tips = append(tips, "Open with a question or bold statement to hook readers in the first line")
	}
	if scores.CTA < 50 {
		tips = append(tips, "Add a clear call to action, e.g. ask readers to comment or share")
	}
	if scores.Hashtags < 50 {
		tips = append(tips, "Use 3 to 10 relevant hashtags to widen reach")
	}
	if scores.BrandVoice < 60 {
		tips = append(tips, "Expand the caption so your brand voice comes through")
	}
	return tips
}

func scoreCacheKey(platform string, features domain.ContentFeatures) string {
	sum := sha256.Sum256([]byte(strings.Join([]string{
		strings.ToLower(platform),
		features.Title,
		features.Caption,
		features.Hashtags,
	}, "\x1f")))
	return fmt.Sprintf("score:%s", hex.EncodeToString(sum[:16]))
}
