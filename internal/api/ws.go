package api

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/postpilot/content-planner-go/internal/constants"
	"github.com/postpilot/content-planner-go/internal/domain"
	"go.uber.org/zap"
)

type liveDraft struct {
	Platform string `json:"platform"`
	Title    string `json:"title"`
	Caption  string `json:"caption"`
	Hashtags string `json:"hashtags"`
}

// handleLiveScore streams scores back while the user types. Each incoming
// draft resets a debounce window and cancels any scoring already in flight;
// only after the window passes quietly does a draft get scored.
func (s *Server) handleLiveScore(c echo.Context) error {
	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	conn.SetReadLimit(constants.LiveScoreConfig.MaxFrameBytes)

	ctx := c.Request().Context()
	drafts := make(chan liveDraft, 1)
	readErr := make(chan error, 1)

	go func() {
		for {
			var d liveDraft
			if err := conn.ReadJSON(&d); err != nil {
				readErr <- err
				return
			}
			// Keep only the newest draft; stale ones are superseded anyway.
			select {
			case drafts <- d:
			default:
				select {
				case <-drafts:
				default:
				}
				drafts <- d
			}
		}
	}()

	debounce := time.NewTimer(constants.LiveScoreConfig.DebounceWindow)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	var pending *liveDraft
	var cancelScore context.CancelFunc
	defer func() {
		if cancelScore != nil {
			cancelScore()
		}
	}()

	results := make(chan *domain.ScoreResult, 1)

	for {
		select {
		case d := <-drafts:
			pending = &d
			if cancelScore != nil {
				cancelScore()
				cancelScore = nil
			}
			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(constants.LiveScoreConfig.DebounceWindow)

		case <-debounce.C:
			if pending == nil {
				continue
			}
			d := *pending
			pending = nil

			scoreCtx, cancel := context.WithCancel(ctx)
			cancelScore = cancel

			go func() {
				result, err := s.deps.Scorer.Score(scoreCtx, d.Platform, domain.ContentFeatures{
					Title:    d.Title,
					Caption:  d.Caption,
					Hashtags: d.Hashtags,
				}, "")
				if err != nil || scoreCtx.Err() != nil {
					return
				}
				select {
				case results <- result:
				case <-scoreCtx.Done():
				}
			}()

		case result := <-results:
			conn.SetWriteDeadline(time.Now().Add(constants.LiveScoreConfig.WriteTimeout))
			if err := conn.WriteJSON(result); err != nil {
				s.logger.Debug("Live score write failed", zap.Error(err))
				return nil
			}

		case err := <-readErr:
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("Live score connection closed", zap.Error(err))
			}
			return nil

		case <-ctx.Done():
			return nil
		}
	}
}
