package handler

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/shortlink-lab/go-shortlinks/internal/app/service"
	"github.com/shortlink-lab/go-shortlinks/internal/models"
)

type PostHandler struct {
	scheme      string
	linkService service.LinkServiceIface
	logger      *zap.Logger
	events      EventEmitter
}

func NewPost(scheme string, s service.LinkServiceIface, l *zap.Logger, events EventEmitter) *PostHandler {
	return &PostHandler{
		scheme:      scheme,
		linkService: s,
		logger:      l,
		events:      events,
	}
}

// CreateShortURL handles POST /shorturls.
func (h *PostHandler) CreateShortURL(res http.ResponseWriter, req *http.Request) {
	var request models.CreateRequest

	err := decodeJSONBody(res, req, &request)
	if err != nil {
		var mr *malformedRequest
		if errors.As(err, &mr) {
			writeError(res, mr.status, mr.msg)
			return
		}

		h.logger.Error("decoding create request", zap.Error(err))
		writeError(res, http.StatusInternalServerError, "Internal server error")
		return
	}

	validity := service.DefaultValidityMinutes
	if request.Validity != nil {
		validity = *request.Validity
	}

	record, err := h.linkService.Create(req.Context(), request.URL, validity, request.Shortcode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidURL):
			_ = h.events.Emit("backend", "error", "handler", "Invalid URL provided")
			writeError(res, http.StatusBadRequest, "Invalid URL")

		case errors.Is(err, service.ErrCodeTaken):
			_ = h.events.Emit("backend", "error", "handler", "Requested shortcode already exists")
			writeError(res, http.StatusConflict, "Shortcode already exists")

		default:
			h.logger.Error("creating short URL", zap.Error(err))
			_ = h.events.Emit("backend", "error", "handler", fmt.Sprintf("Error creating short URL: %s", err))
			writeError(res, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	_ = h.events.Emit("backend", "info", "handler", fmt.Sprintf("Short URL created: %s", record.Code))

	writeJSON(res, http.StatusCreated, models.CreateResponse{
		ShortLink: fmt.Sprintf("%s://%s/%s", h.scheme, req.Host, record.Code),
		Expiry:    record.Expiry,
	})
}
