package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/postpilot/content-planner-go/internal/domain"
	"github.com/postpilot/content-planner-go/internal/service/trends"
	plannererrors "github.com/postpilot/content-planner-go/pkg/errors"
	"go.uber.org/zap"
)

type scoreRequest struct {
	Platform string `json:"platform"`
	Title    string `json:"title"`
	Caption  string `json:"caption"`
	Hashtags string `json:"hashtags"`
	Analysis string `json:"analysis,omitempty"`
}

func (s *Server) handleScore(c echo.Context) error {
	var req scoreRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	result, err := s.deps.Scorer.Score(c.Request().Context(), req.Platform, domain.ContentFeatures{
		Title:    req.Title,
		Caption:  req.Caption,
		Hashtags: req.Hashtags,
	}, req.Analysis)
	if err != nil {
		s.logger.Error("Scoring failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorBody("scoring failed"))
	}

	return c.JSON(http.StatusOK, result)
}

type suggestionsRequest struct {
	Platforms   []string `json:"platforms"`
	ContentType string   `json:"contentType"`
	Date        string   `json:"date"`
}

type suggestionsResponse struct {
	Suggestions []domain.Suggestion `json:"suggestions"`
}

func (s *Server) handleSuggestions(c echo.Context) error {
	var req suggestionsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	// Unknown platforms, types and malformed dates degrade to an empty list.
	suggestions := s.deps.Suggester.Suggest(c.Request().Context(), req.Platforms, req.ContentType, req.Date)
	if suggestions == nil {
		suggestions = []domain.Suggestion{}
	}

	return c.JSON(http.StatusOK, suggestionsResponse{Suggestions: suggestions})
}

func (s *Server) handleTrends(c echo.Context) error {
	if s.deps.Trends == nil {
		return c.JSON(http.StatusServiceUnavailable, errorBody("trends are not configured"))
	}

	ctx := c.Request().Context()
	platform := c.QueryParam("platform")

	if platform != "" {
		tags, err := s.deps.Trends.FetchPlatform(ctx, platform)
		if errors.Is(err, trends.ErrNoSource) {
			return c.JSON(http.StatusNotFound, errorBody("no trends source for platform "+platform))
		}
		if err != nil {
			s.logger.Error("Trends fetch failed", zap.String("platform", platform), zap.Error(err))
			return c.JSON(http.StatusBadGateway, errorBody("trends fetch failed"))
		}
		return c.JSON(http.StatusOK, map[string][]domain.TrendingTag{platform: tags})
	}

	all, err := s.deps.Trends.FetchAll(ctx)
	if err != nil {
		s.logger.Error("Trends fetch failed", zap.Error(err))
		return c.JSON(http.StatusBadGateway, errorBody("trends fetch failed"))
	}
	return c.JSON(http.StatusOK, all)
}

func (s *Server) handleChannelStats(c echo.Context) error {
	if s.deps.Stats == nil {
		return c.JSON(http.StatusServiceUnavailable, errorBody("channel stats are not configured"))
	}

	channelID := c.QueryParam("id")
	if channelID == "" {
		return c.JSON(http.StatusBadRequest, errorBody("id query parameter is required"))
	}

	stats, err := s.deps.Stats.GetChannelStats(c.Request().Context(), channelID)
	if err != nil {
		var validation *plannererrors.ValidationError
		if errors.As(err, &validation) {
			return c.JSON(validation.StatusCode, errorBody(validation.Message))
		}
		s.logger.Error("Channel stats failed", zap.String("channel", channelID), zap.Error(err))
		return c.JSON(http.StatusBadGateway, errorBody("channel stats fetch failed"))
	}

	return c.JSON(http.StatusOK, stats)
}

type postRequest struct {
	Platform    string     `json:"platform"`
	ContentType string     `json:"contentType"`
	Title       string     `json:"title"`
	Caption     string     `json:"caption"`
	Hashtags    string     `json:"hashtags"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	Status      string     `json:"status"`
	Score       *int       `json:"score"`
}

func (s *Server) handleCreatePost(c echo.Context) error {
	if s.deps.Posts == nil {
		return c.JSON(http.StatusServiceUnavailable, errorBody("post storage is not configured"))
	}

	var req postRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}
	if req.Platform == "" {
		return c.JSON(http.StatusBadRequest, errorBody("platform is required"))
	}

	created, err := s.deps.Posts.Create(c.Request().Context(), &domain.Post{
		Platform:    req.Platform,
		ContentType: req.ContentType,
		Title:       req.Title,
		Caption:     req.Caption,
		Hashtags:    req.Hashtags,
		ScheduledAt: req.ScheduledAt,
		Status:      domain.PostStatus(req.Status),
		Score:       req.Score,
	})
	if err != nil {
		return s.postError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

func (s *Server) handleGetPost(c echo.Context) error {
	if s.deps.Posts == nil {
		return c.JSON(http.StatusServiceUnavailable, errorBody("post storage is not configured"))
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid post id"))
	}

	post, err := s.deps.Posts.Get(c.Request().Context(), id)
	if err != nil {
		return s.postError(c, err)
	}
	if post == nil {
		return c.JSON(http.StatusNotFound, errorBody("post not found"))
	}

	return c.JSON(http.StatusOK, post)
}

func (s *Server) handleUpdatePost(c echo.Context) error {
	if s.deps.Posts == nil {
		return c.JSON(http.StatusServiceUnavailable, errorBody("post storage is not configured"))
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid post id"))
	}

	var req postRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	updated, err := s.deps.Posts.Update(c.Request().Context(), &domain.Post{
		ID:          id,
		Platform:    req.Platform,
		ContentType: req.ContentType,
		Title:       req.Title,
		Caption:     req.Caption,
		Hashtags:    req.Hashtags,
		ScheduledAt: req.ScheduledAt,
		Status:      domain.PostStatus(req.Status),
		Score:       req.Score,
	})
	if err != nil {
		return s.postError(c, err)
	}
	if updated == nil {
		return c.JSON(http.StatusNotFound, errorBody("post not found"))
	}

	return c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDeletePost(c echo.Context) error {
	if s.deps.Posts == nil {
		return c.JSON(http.StatusServiceUnavailable, errorBody("post storage is not configured"))
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid post id"))
	}

	deleted, err := s.deps.Posts.Delete(c.Request().Context(), id)
	if err != nil {
		return s.postError(c, err)
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, errorBody("post not found"))
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleListPosts(c echo.Context) error {
	if s.deps.Posts == nil {
		return c.JSON(http.StatusServiceUnavailable, errorBody("post storage is not configured"))
	}

	from, to, err := calendarRange(c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	posts, err := s.deps.Posts.ListRange(c.Request().Context(), from, to)
	if err != nil {
		return s.postError(c, err)
	}

	return c.JSON(http.StatusOK, map[string][]*domain.Post{"posts": posts})
}

// calendarRange parses the from/to query parameters as YYYY-MM-DD, defaulting
// to the current month when both are absent. The range is [from, to).
func calendarRange(fromStr, toStr string) (time.Time, time.Time, error) {
	if fromStr == "" && toStr == "" {
		now := time.Now().UTC()
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(0, 1, 0), nil
	}

	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("from must be YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("to must be YYYY-MM-DD")
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, errors.New("to must be after from")
	}
	return from, to, nil
}

func (s *Server) postError(c echo.Context, err error) error {
	var validation *plannererrors.ValidationError
	if errors.As(err, &validation) {
		return c.JSON(validation.StatusCode, errorBody(validation.Message))
	}

	s.logger.Error("Post storage error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, errorBody("storage error"))
}

func (s *Server) handleHealth(c echo.Context) error {
	health := map[string]any{"status": "ok"}
	if s.deps.Cache != nil {
		health["redis"] = s.deps.Cache.IsConnected(c.Request().Context())
	}
	return c.JSON(http.StatusOK, health)
}
