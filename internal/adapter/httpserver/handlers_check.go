package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mindvr/yt-live-monitor/internal/domain"
	apperrors "github.com/mindvr/yt-live-monitor/internal/platform/errors"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type channelURLRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleStatus(c echo.Context) error {
	response := map[string]string{
		"status":  "ok",
		"service": serviceName,
	}
	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// handleCheckLiveByID checks a channel given directly by ID (or anything the
// resolver accepts in a path segment). Failures are data in the envelope,
// so the route always answers 200 with a CheckResult.
func (s *Server) handleCheckLiveByID(c echo.Context) error {
	input := c.Param("channel_id")
	if input == "" {
		return apperrors.ValidationError("channel_id is required")
	}

	result := s.checks.Check(c.Request().Context(), input)
	if err := c.JSON(http.StatusOK, result); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleCheckLiveByURL(c echo.Context) error {
	var req channelURLRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if req.URL == "" {
		return apperrors.ValidationError("url is required")
	}

	result := s.checks.Check(c.Request().Context(), req.URL)
	if err := c.JSON(http.StatusOK, result); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// handleResolveChannelID is the companion identifier-only operation.
func (s *Server) handleResolveChannelID(c echo.Context) error {
	var req channelURLRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if req.URL == "" {
		return apperrors.ValidationError("url is required")
	}

	id, err := s.checks.ResolveChannelID(c.Request().Context(), req.URL)
	if err != nil {
		var resErr *domain.ResolutionError
		if errors.As(err, &resErr) {
			return apperrors.ValidationError(resErr.Error()).WithField("input", req.URL)
		}
		return apperrors.InternalError("failed to resolve channel ID", err)
	}

	if err := c.JSON(http.StatusOK, map[string]string{"channel_id": id.String()}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleHistory(c echo.Context) error {
	if s.history == nil {
		return apperrors.NotFoundError("check history is not enabled")
	}

	limit := defaultHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxHistoryLimit {
			return apperrors.ValidationError("limit must be an integer between 1 and 100").WithField("limit", raw)
		}
		limit = parsed
	}

	results, err := s.history.Recent(c.Request().Context(), limit)
	if err != nil {
		return apperrors.InternalError("failed to load check history", err)
	}
	if results == nil {
		results = []domain.CheckResult{}
	}

	if err := c.JSON(http.StatusOK, results); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
