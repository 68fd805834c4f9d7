package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/postpilot/content-planner-go/internal/constants"
	"github.com/postpilot/content-planner-go/internal/domain"
	"github.com/postpilot/content-planner-go/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CacheService fronts Redis for the planner: scored drafts, time suggestions,
// and scraped trends all pass through here so the engine itself stays free of
// I/O. A cache failure is logged and surfaces as a miss, never as a hard
// error to the caller.
type CacheService struct {
	client *redis.Client
	logger *zap.Logger
}

type CacheConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

func NewCacheService(cfg CacheConfig, logger *zap.Logger) (*CacheService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.NewCacheError("failed to connect to Redis", "ping", "", err)
	}

	logger.Info("Redis connected",
		zap.String("addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		zap.Int("db", cfg.DB),
	)

	return &CacheService{
		client: client,
		logger: logger,
	}, nil
}

func (c *CacheService) Get(ctx context.Context, key string, dest any) (bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		c.logger.Error("Cache get failed", zap.String("key", key), zap.Error(err))
		return false, errors.NewCacheError("get failed", "get", key, err)
	}

	if dest != nil {
		if err := json.Unmarshal([]byte(value), dest); err != nil {
			c.logger.Error("Cache unmarshal failed", zap.String("key", key), zap.Error(err))
			return false, errors.NewCacheError("unmarshal failed", "get", key, err)
		}
	}

	return true, nil
}

func (c *CacheService) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return errors.NewCacheError("marshal failed", "set", key, err)
	}

	if err := c.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		c.logger.Error("Cache set failed", zap.String("key", key), zap.Error(err))
		return errors.NewCacheError("set failed", "set", key, err)
	}

	return nil
}

func (c *CacheService) Del(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Error("Cache delete failed", zap.String("key", key), zap.Error(err))
		return errors.NewCacheError("delete failed", "del", key, err)
	}
	return nil
}

// GetScoreResult fetches a cached scoring result; a miss or cache failure
// both come back as not-found.
func (c *CacheService) GetScoreResult(ctx context.Context, key string) (*domain.ScoreResult, bool) {
	var result domain.ScoreResult
	found, err := c.Get(ctx, key, &result)
	if err != nil || !found {
		return nil, false
	}
	return &result, true
}

func (c *CacheService) SetScoreResult(ctx context.Context, key string, result *domain.ScoreResult) {
	if err := c.Set(ctx, key, result, constants.CacheTTL.ScoreResult); err != nil {
		c.logger.Warn("Failed to cache score result", zap.String("key", key), zap.Error(err))
	}
}

func (c *CacheService) GetSuggestions(ctx context.Context, key string) ([]domain.Suggestion, bool) {
	var suggestions []domain.Suggestion
	found, err := c.Get(ctx, key, &suggestions)
	if err != nil || !found || suggestions == nil {
		return nil, false
	}
	return suggestions, true
}

func (c *CacheService) SetSuggestions(ctx context.Context, key string, suggestions []domain.Suggestion) {
	if err := c.Set(ctx, key, suggestions, constants.CacheTTL.TimeSuggestions); err != nil {
		c.logger.Warn("Failed to cache suggestions", zap.String("key", key), zap.Error(err))
	}
}

func (c *CacheService) GetTrendingTags(ctx context.Context, platform string) ([]domain.TrendingTag, bool) {
	var tags []domain.TrendingTag
	found, err := c.Get(ctx, trendsKey(platform), &tags)
	if err != nil || !found || tags == nil {
		return nil, false
	}
	return tags, true
}

func (c *CacheService) SetTrendingTags(ctx context.Context, platform string, tags []domain.TrendingTag) {
	if err := c.Set(ctx, trendsKey(platform), tags, constants.CacheTTL.TrendingTags); err != nil {
		c.logger.Warn("Failed to cache trending tags", zap.String("platform", platform), zap.Error(err))
	}
}

func (c *CacheService) GetChannelStats(ctx context.Context, channelID string) (*domain.ChannelStats, bool) {
	var stats domain.ChannelStats
	found, err := c.Get(ctx, statsKey(channelID), &stats)
	if err != nil || !found {
		return nil, false
	}
	return &stats, true
}

func (c *CacheService) SetChannelStats(ctx context.Context, channelID string, stats *domain.ChannelStats) {
	if err := c.Set(ctx, statsKey(channelID), stats, constants.CacheTTL.ChannelStats); err != nil {
		c.logger.Warn("Failed to cache channel stats", zap.String("channel", channelID), zap.Error(err))
	}
}

func (c *CacheService) IsConnected(ctx context.Context) bool {
	return c.client.Ping(ctx).Err() == nil
}

func (c *CacheService) Close() error {
	if err := c.client.Close(); err != nil {
		c.logger.Error("Failed to close Redis connection", zap.Error(err))
		return err
	}
	c.logger.Info("Redis disconnected")
	return nil
}

func trendsKey(platform string) string {
	return fmt.Sprintf("trends:%s", platform)
}

func statsKey(channelID string) string {
	return fmt.Sprintf("stats:channel:%s", channelID)
}
