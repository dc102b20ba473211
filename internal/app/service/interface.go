package service

import (
	"context"

	"github.com/shortlink-lab/go-shortlinks/internal/storage"
)

// LinkServiceIface is what the HTTP handlers depend on; mocked in
// internal/mocks.
type LinkServiceIface interface {
	Create(ctx context.Context, originalURL string, validityMinutes int, customCode string) (storage.LinkRecord, error)
	Stats(ctx context.Context, code string) (storage.LinkRecord, storage.ClickStats, error)
	Resolve(ctx context.Context, code string, event storage.ClickEvent) (storage.LinkRecord, error)
}
