package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shortlink-lab/go-shortlinks/internal/app/service"
	"github.com/shortlink-lab/go-shortlinks/internal/middleware"
	"github.com/shortlink-lab/go-shortlinks/internal/models"
	"github.com/shortlink-lab/go-shortlinks/internal/storage"
)

type GetHandler struct {
	linkService service.LinkServiceIface
	logger      *zap.Logger
	events      EventEmitter
}

func NewGet(s service.LinkServiceIface, l *zap.Logger, events EventEmitter) *GetHandler {
	return &GetHandler{
		linkService: s,
		logger:      l,
		events:      events,
	}
}

// Stats handles GET /shorturls/{shortcode}. Read-only: expired links answer
// 410 but keep their stored stats.
func (h *GetHandler) Stats(res http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "shortcode")

	record, stats, err := h.linkService.Stats(req.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			_ = h.events.Emit("backend", "warn", "handler", fmt.Sprintf("Shortcode not found: %s", code))
			writeError(res, http.StatusNotFound, "Short URL not found")

		case errors.Is(err, service.ErrExpired):
			_ = h.events.Emit("backend", "info", "handler", fmt.Sprintf("Expired shortcode accessed: %s", code))
			writeError(res, http.StatusGone, "Short URL has expired")

		default:
			h.logger.Error("fetching URL stats", zap.Error(err))
			_ = h.events.Emit("backend", "error", "handler", fmt.Sprintf("Error fetching URL stats: %s", err))
			writeError(res, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(res, http.StatusOK, models.StatsResponse{
		OriginalURL: record.OriginalURL,
		Created:     record.Created,
		Expiry:      record.Expiry,
		TotalClicks: stats.Clicks,
		ClickData:   stats.ClickData,
	})
}

// Redirect handles GET /{shortcode}: records the click, then sends the
// visitor to the original URL.
func (h *GetHandler) Redirect(res http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "shortcode")

	event := storage.ClickEvent{
		Referrer:  req.Referer(),
		UserAgent: req.UserAgent(),
		Location:  middleware.ClientIPFromContext(req.Context()),
	}

	record, err := h.linkService.Resolve(req.Context(), code, event)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			_ = h.events.Emit("backend", "warn", "handler", fmt.Sprintf("Shortcode not found for redirect: %s", code))
			writeError(res, http.StatusNotFound, "Short URL not found")

		case errors.Is(err, service.ErrExpired):
			_ = h.events.Emit("backend", "info", "handler", fmt.Sprintf("Expired shortcode redirect attempted: %s", code))
			writeError(res, http.StatusGone, "Short URL has expired")

		default:
			h.logger.Error("resolving redirect", zap.Error(err))
			_ = h.events.Emit("backend", "error", "handler", fmt.Sprintf("Error in redirect: %s", err))
			writeError(res, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	_ = h.events.Emit("backend", "info", "handler", fmt.Sprintf("Redirect performed for: %s", code))

	http.Redirect(res, req, record.OriginalURL, http.StatusFound)
}
