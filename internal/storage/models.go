package storage

import "time"

// LinkRecord is a single short link. OriginalURL and Created never change
// after insertion; Expiry is fixed at creation time.
type LinkRecord struct {
	Code        string    `json:"code"`
	OriginalURL string    `json:"originalUrl"`
	Created     time.Time `json:"created"`
	Expiry      time.Time `json:"expiry"`
}

// Expired reports whether the link is past its expiry at the given instant.
func (r LinkRecord) Expired(now time.Time) bool {
	return now.After(r.Expiry)
}

// ClickEvent is one recorded redirect visit.
type ClickEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Referrer  string    `json:"referrer"`
	UserAgent string    `json:"userAgent,omitempty"`
	Location  string    `json:"location"`
}

// ClickStats holds the visit counter and the ordered click history for one
// link. Clicks always equals len(ClickData).
type ClickStats struct {
	Clicks    int          `json:"clicks"`
	ClickData []ClickEvent `json:"clickData"`
}
