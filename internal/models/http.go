// Package models defines the request and response data structures used
// for communication between the client and the short-link service.
package models

import (
	"time"

	"github.com/shortlink-lab/go-shortlinks/internal/storage"
)

// CreateRequest represents a request to create a short link.
type CreateRequest struct {
	// URL is the original URL to be shortened.
	URL string `json:"url"`

	// Validity is the lifetime of the link in minutes. Absent means 30.
	Validity *int `json:"validity,omitempty"`

	// Shortcode is an optional caller-chosen code.
	Shortcode string `json:"shortcode,omitempty"`
}

// CreateResponse represents the response for a created short link.
type CreateResponse struct {
	// ShortLink is the full short URL, scheme://host/code.
	ShortLink string `json:"shortLink"`

	// Expiry is the instant after which the link stops resolving.
	Expiry time.Time `json:"expiry"`
}

// StatsResponse carries a link's metadata and its click history.
type StatsResponse struct {
	OriginalURL string               `json:"originalUrl"`
	Created     time.Time            `json:"created"`
	Expiry      time.Time            `json:"expiry"`
	TotalClicks int                  `json:"totalClicks"`
	ClickData   []storage.ClickEvent `json:"clickData"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}
