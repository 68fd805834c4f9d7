package app

import (
	"context"
	"fmt"

	"github.com/postpilot/content-planner-go/internal/api"
	"github.com/postpilot/content-planner-go/internal/config"
	"github.com/postpilot/content-planner-go/internal/planner"
	"github.com/postpilot/content-planner-go/internal/service"
	"github.com/postpilot/content-planner-go/internal/service/ai"
	"github.com/postpilot/content-planner-go/internal/service/cache"
	"github.com/postpilot/content-planner-go/internal/service/database"
	"github.com/postpilot/content-planner-go/internal/service/post"
	"github.com/postpilot/content-planner-go/internal/service/stats"
	"github.com/postpilot/content-planner-go/internal/service/trends"
	"github.com/postpilot/content-planner-go/internal/timetable"
	"go.uber.org/zap"
)

// Container bundles the assembled services for constructing the HTTP server.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	server  *api.Server
	closers []func()
}

// NewServer returns the fully wired HTTP server.
func (c *Container) NewServer() (*api.Server, error) {
	if c == nil || c.server == nil {
		return nil, fmt.Errorf("server dependencies not initialized")
	}
	return c.server, nil
}

// Close releases infrastructure connections in reverse build order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// Build assembles all infrastructure services. Heavy initialization
// (DB/cache/AI clients) happens here so the handlers stay orchestration-only.
// Optional services degrade gracefully: a missing Gemini key means heuristic
// scoring only, a missing YouTube key disables the stats panel.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	// Cache and database
	cacheSvc, err := cache.NewCacheService(cache.CacheConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache service: %w", err)
	}
	closers = append(closers, func() {
		_ = cacheSvc.Close()
	})

	postgresSvc, err := database.NewPostgresService(database.PostgresConfig{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres service: %w", err)
	}
	closers = append(closers, func() {
		_ = postgresSvc.Close()
	})

	if err := postgresSvc.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	postRepo := post.NewRepository(postgresSvc, logger)

	// Engine wiring: reference timetable, recommender, suggestion cache.
	recommender := planner.New(timetable.Default())
	suggestionSvc := service.NewSuggestionService(recommender, cacheSvc, logger)

	// AI stack; heuristic-only when no Gemini key is configured.
	var analyzer service.ContentAnalyzer
	if cfg.Gemini.APIKey != "" {
		aiAnalyzer, aiErr := ai.NewAnalyzer(ctx, ai.AnalyzerConfig{
			GeminiAPIKey:   cfg.Gemini.APIKey,
			GeminiModel:    cfg.Gemini.Model,
			OpenAIAPIKey:   cfg.OpenAI.APIKey,
			OpenAIModel:    cfg.OpenAI.Model,
			EnableFallback: cfg.OpenAI.EnableFallback,
		}, logger)
		if aiErr != nil {
			return nil, fmt.Errorf("failed to create AI analyzer: %w", aiErr)
		}
		analyzer = aiAnalyzer
	} else {
		logger.Warn("GEMINI_API_KEY not set, scoring heuristically only")
	}
	scorerSvc := service.NewScorerService(analyzer, cacheSvc, logger)

	// Optional dashboard panels
	var trendsSvc api.TrendsProvider
	if len(cfg.Trends.Sources) > 0 {
		trendsSvc = trends.NewScraperService(cfg.Trends.Sources, cacheSvc, logger)
	} else {
		logger.Info("No trend sources configured, trends panel disabled")
	}

	var statsSvc api.ChannelStatsProvider
	if cfg.YouTube.APIKey != "" {
		ytStats, ytErr := stats.NewYouTubeStatsService(ctx, cfg.YouTube.APIKey, cacheSvc, logger)
		if ytErr != nil {
			logger.Warn("Failed to initialize YouTube stats (optional feature)", zap.Error(ytErr))
		} else {
			statsSvc = ytStats
		}
	}

	server := api.NewServer(api.Config{
		Port:          cfg.Server.Port,
		AIRatePerMin:  cfg.Server.AIRatePerMin,
		AllowedOrigin: cfg.Server.AllowedOrigin,
	}, api.Dependencies{
		Scorer:    scorerSvc,
		Suggester: suggestionSvc,
		Trends:    trendsSvc,
		Stats:     statsSvc,
		Posts:     postRepo,
		Cache:     cacheSvc,
	}, logger)

	return &Container{
		Config:  cfg,
		Logger:  logger,
		server:  server,
		closers: closers,
	}, nil
}
