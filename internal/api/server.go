// Package api is the HTTP and WebSocket surface of the planner. All engine
// calls go through the service layer; handlers only translate between JSON
// and domain types.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/postpilot/content-planner-go/internal/domain"
	"github.com/postpilot/content-planner-go/internal/service/cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Scorer runs the scoring pipeline for a draft.
type Scorer interface {
	Score(ctx context.Context, platform string, features domain.ContentFeatures, analysisText string) (*domain.ScoreResult, error)
}

// Suggester produces posting-time suggestions.
type Suggester interface {
	Suggest(ctx context.Context, platforms []string, contentType, date string) []domain.Suggestion
}

// TrendsProvider serves scraped trending tags.
type TrendsProvider interface {
	FetchPlatform(ctx context.Context, platform string) ([]domain.TrendingTag, error)
	FetchAll(ctx context.Context) (map[string][]domain.TrendingTag, error)
}

// ChannelStatsProvider serves channel analytics.
type ChannelStatsProvider interface {
	GetChannelStats(ctx context.Context, channelID string) (*domain.ChannelStats, error)
}

// PostStore persists drafts and scheduled posts.
type PostStore interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	Update(ctx context.Context, p *domain.Post) (*domain.Post, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*domain.Post, error)
}

type Config struct {
	Port          int
	AIRatePerMin  int
	AllowedOrigin string
}

// Dependencies carries the wired services. Trends, Stats, Posts and Cache may
// be nil when the deployment does not configure them; the matching routes
// then answer 503.
type Dependencies struct {
	Scorer    Scorer
	Suggester Suggester
	Trends    TrendsProvider
	Stats     ChannelStatsProvider
	Posts     PostStore
	Cache     *cache.CacheService
}

type Server struct {
	echo     *echo.Echo
	deps     Dependencies
	upgrader websocket.Upgrader
	logger   *zap.Logger
	port     int
}

func NewServer(cfg Config, deps Dependencies, logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo: e,
		deps: deps,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     originChecker(cfg.AllowedOrigin),
		},
		logger: logger,
		port:   cfg.Port,
	}

	e.Use(middleware.Recover())
	e.Use(s.requestLogger())

	s.registerRoutes(cfg)
	return s
}

func (s *Server) registerRoutes(cfg Config) {
	e := s.echo

	e.GET("/healthz", s.handleHealth)

	v1 := e.Group("/api/v1")
	v1.POST("/suggestions", s.handleSuggestions)
	v1.GET("/trends", s.handleTrends)
	v1.GET("/stats/channel", s.handleChannelStats)

	v1.POST("/posts", s.handleCreatePost)
	v1.GET("/posts", s.handleListPosts)
	v1.GET("/posts/:id", s.handleGetPost)
	v1.PUT("/posts/:id", s.handleUpdatePost)
	v1.DELETE("/posts/:id", s.handleDeletePost)

	// AI-backed routes get their own rate limit; everything else is free.
	aiLimit := aiRateLimiter(cfg.AIRatePerMin)
	v1.POST("/score", s.handleScore, aiLimit)
	e.GET("/ws/score", s.handleLiveScore, aiLimit)
}

func aiRateLimiter(perMinute int) echo.MiddlewareFunc {
	if perMinute <= 0 {
		perMinute = 30
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(float64(perMinute) / 60.0),
				Burst:     perMinute,
				ExpiresIn: 3 * time.Minute,
			},
		),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusTooManyRequests, errorBody("rate limit exceeded, please try again later"))
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, errorBody("rate limit exceeded, please try again later"))
		},
	})
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			s.logger.Info("HTTP request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			)
			return err
		}
	}
}

func originChecker(allowed string) func(*http.Request) bool {
	if allowed == "" || allowed == "*" {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		return r.Header.Get("Origin") == allowed
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("HTTP server starting", zap.String("addr", addr))

	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down")
	return s.echo.Shutdown(ctx)
}

func errorBody(message string) map[string]string {
	return map[string]string{"error": message}
}
