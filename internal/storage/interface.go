package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrExists is returned by Create when the code is already taken.
	ErrExists = errors.New("already exists")
	// ErrNotFound is returned when no record is stored under the code.
	ErrNotFound = errors.New("not found")
)

// Storage keeps short links together with their click statistics. A stats
// entry is created with every link and shares its code.
type Storage interface {
	Create(ctx context.Context, record LinkRecord) error
	FindByCode(ctx context.Context, code string) (LinkRecord, error)
	StatsByCode(ctx context.Context, code string) (ClickStats, error)
	AddClick(ctx context.Context, code string, event ClickEvent) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
	Len() int
}
