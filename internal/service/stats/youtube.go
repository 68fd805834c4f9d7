// Package stats reads public channel statistics so the dashboard can show
// audience size next to the planner.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/postpilot/content-planner-go/internal/domain"
	"github.com/postpilot/content-planner-go/internal/service/cache"
	"github.com/postpilot/content-planner-go/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

type YouTubeStatsService struct {
	service *youtube.Service
	cache   *cache.CacheService
	logger  *zap.Logger
}

func NewYouTubeStatsService(ctx context.Context, apiKey string, cacheService *cache.CacheService, logger *zap.Logger) (*YouTubeStatsService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	logger.Info("YouTube stats service initialized")

	return &YouTubeStatsService{
		service: service,
		cache:   cacheService,
		logger:  logger,
	}, nil
}

// GetChannelStats returns subscriber, view and video counts for a channel,
// cache first.
func (ys *YouTubeStatsService) GetChannelStats(ctx context.Context, channelID string) (*domain.ChannelStats, error) {
	if channelID == "" {
		return nil, errors.NewValidationError("channel ID is required", "channelId", channelID)
	}

	if ys.cache != nil {
		if cached, found := ys.cache.GetChannelStats(ctx, channelID); found {
			ys.logger.Debug("Channel stats cache hit", zap.String("channel", channelID))
			return cached, nil
		}
	}

	call := ys.service.Channels.List([]string{"snippet", "statistics"}).Id(channelID)

	resp, err := call.Context(ctx).Do()
	if err != nil {
		ys.logger.Error("Failed to get channel statistics",
			zap.String("channel", channelID),
			zap.Error(err))
		return nil, errors.NewServiceError("failed to fetch channel statistics", "youtube", "channels.list", err)
	}

	if len(resp.Items) == 0 {
		return nil, errors.NewValidationError("channel not found", "channelId", channelID)
	}

	item := resp.Items[0]
	stats := &domain.ChannelStats{
		ChannelID:   item.Id,
		Subscribers: item.Statistics.SubscriberCount,
		Views:       item.Statistics.ViewCount,
		VideoCount:  item.Statistics.VideoCount,
		FetchedAt:   time.Now().UTC(),
	}
	if item.Snippet != nil {
		stats.Title = item.Snippet.Title
	}

	if ys.cache != nil {
		ys.cache.SetChannelStats(ctx, channelID, stats)
	}

	ys.logger.Info("Channel stats fetched",
		zap.String("channel", channelID),
		zap.Uint64("subscribers", stats.Subscribers))

	return stats, nil
}
