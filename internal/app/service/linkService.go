// Package service holds the short-link orchestration: validation, code
// resolution, expiry computation and click recording.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shortlink-lab/go-shortlinks/internal/storage"
	"github.com/shortlink-lab/go-shortlinks/internal/validation"
)

var (
	ErrInvalidURL = errors.New("invalid URL")
	ErrCodeTaken  = errors.New("shortcode already exists")
	ErrNotFound   = errors.New("short URL not found")
	ErrExpired    = errors.New("short URL has expired")
)

// DefaultValidityMinutes applies when the caller does not name a validity
// window.
const DefaultValidityMinutes = 30

// maxGenerateRetries bounds collision retries for generated codes.
const maxGenerateRetries = 3

type LinkService struct {
	storage storage.Storage
	logger  *zap.Logger
	now     func() time.Time
}

func NewLink(s storage.Storage, logger *zap.Logger) *LinkService {
	return &LinkService{
		storage: s,
		logger:  logger,
		now:     time.Now,
	}
}

// Create validates the URL, resolves the final code and inserts the link
// with expiry = created + validity minutes. A caller-supplied code that is
// already taken yields ErrCodeTaken; generated codes retry on collision.
func (s *LinkService) Create(ctx context.Context, originalURL string, validityMinutes int, customCode string) (storage.LinkRecord, error) {
	if !validation.IsValidURL(originalURL) {
		return storage.LinkRecord{}, ErrInvalidURL
	}

	created := s.now()
	expiry := created.Add(time.Duration(validityMinutes) * time.Minute)

	if customCode != "" {
		record := storage.LinkRecord{
			Code:        customCode,
			OriginalURL: originalURL,
			Created:     created,
			Expiry:      expiry,
		}

		if err := s.storage.Create(ctx, record); err != nil {
			if errors.Is(err, storage.ErrExists) {
				return storage.LinkRecord{}, ErrCodeTaken
			}
			return storage.LinkRecord{}, err
		}
		return record, nil
	}

	var err error
	for i := 0; i < maxGenerateRetries; i++ {
		var code string
		code, err = GenerateCode()
		if err != nil {
			return storage.LinkRecord{}, err
		}

		record := storage.LinkRecord{
			Code:        code,
			OriginalURL: originalURL,
			Created:     created,
			Expiry:      expiry,
		}

		err = s.storage.Create(ctx, record)
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, storage.ErrExists) {
			return storage.LinkRecord{}, err
		}

		s.logger.Warn("generated code collided, retrying", zap.String("code", code))
	}

	return storage.LinkRecord{}, fmt.Errorf("failed to generate a free code after %d retries: %w", maxGenerateRetries, err)
}

// Stats returns the link and its click history. Unknown codes yield
// ErrNotFound, expired ones ErrExpired; expired entries stay in the store.
func (s *LinkService) Stats(ctx context.Context, code string) (storage.LinkRecord, storage.ClickStats, error) {
	record, err := s.storage.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.LinkRecord{}, storage.ClickStats{}, ErrNotFound
		}
		return storage.LinkRecord{}, storage.ClickStats{}, err
	}

	stats, err := s.storage.StatsByCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.LinkRecord{}, storage.ClickStats{}, ErrNotFound
		}
		return storage.LinkRecord{}, storage.ClickStats{}, err
	}

	if record.Expired(s.now()) {
		return storage.LinkRecord{}, storage.ClickStats{}, ErrExpired
	}

	return record, stats, nil
}

// Resolve looks the code up for a redirect and records the click. The stats
// mutation happens before the record is returned, so a stats read issued
// after the redirect response sees the new click. No mutation on expiry.
func (s *LinkService) Resolve(ctx context.Context, code string, event storage.ClickEvent) (storage.LinkRecord, error) {
	record, err := s.storage.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.LinkRecord{}, ErrNotFound
		}
		return storage.LinkRecord{}, err
	}

	if record.Expired(s.now()) {
		return storage.LinkRecord{}, ErrExpired
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	if event.Referrer == "" {
		event.Referrer = "direct"
	}

	if err := s.storage.AddClick(ctx, code, event); err != nil {
		return storage.LinkRecord{}, err
	}

	return record, nil
}
